// Package screen implements the game Surface on a tcell terminal.
package screen

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mike-rambil/python-snake/board"
	"github.com/mike-rambil/python-snake/game"
)

// Terminal is a game.Surface backed by a tcell.Screen. Key events are pumped
// from tcell into a buffered channel so PollInput can wait with a deadline.
type Terminal struct {
	screen tcell.Screen
	theme  Theme

	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
}

var _ game.Surface = (*Terminal)(nil)

// New opens the process terminal.
func New(theme Theme) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Open(s, theme)
}

// Open initialises s and starts pumping its events. Close must be called to
// restore the terminal.
func Open(s tcell.Screen, theme Theme) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()

	t := &Terminal{
		screen: s,
		theme:  theme,
		events: make(chan tcell.Event, 32),
		quit:   make(chan struct{}),
	}
	go s.ChannelEvents(t.events, t.quit)
	return t, nil
}

// Close stops the event pump and restores the terminal. It is safe to call
// more than once.
func (t *Terminal) Close() {
	t.once.Do(func() {
		close(t.quit)
		t.screen.Fini()
	})
}

// Interrupt asks a pending or future PollInput or WaitInput to return
// game.Quit. It is safe to call from any goroutine.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (t *Terminal) Configure() (width, height int) {
	return t.screen.Size()
}

func (t *Terminal) PollInput(timeout time.Duration) game.Event {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return game.Quit
			}
			if e, handled := t.translate(ev); handled {
				return e
			}
		case <-timer.C:
			return game.NoEvent
		}
	}
}

func (t *Terminal) WaitInput() game.Event {
	for ev := range t.events {
		if e, handled := t.translate(ev); handled {
			return e
		}
	}
	return game.Quit
}

// translate turns a tcell event into a game event. Resizes redraw the
// current buffer and are otherwise swallowed; the board keeps its size.
// Interrupts come from Interrupt and quit the game.
func (t *Terminal) translate(ev tcell.Event) (game.Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return keyEvent(e), true
	case *tcell.EventInterrupt:
		return game.Quit, true
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return game.NoEvent, false
}

func keyEvent(e *tcell.EventKey) game.Event {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit
	case tcell.KeyUp:
		return game.MoveUp
	case tcell.KeyDown:
		return game.MoveDown
	case tcell.KeyLeft:
		return game.MoveLeft
	case tcell.KeyRight:
		return game.MoveRight
	case tcell.KeyRune:
		switch e.Rune() {
		case 'q', 'Q':
			return game.Quit
		case 'w', 'W':
			return game.MoveUp
		case 's', 'S':
			return game.MoveDown
		case 'a', 'A':
			return game.MoveLeft
		case 'd', 'D':
			return game.MoveRight
		}
	}
	return game.OtherKey
}

func (t *Terminal) Draw(p board.Position, g game.Glyph, s game.Style) {
	t.screen.SetContent(p.Col, p.Row, rune(g), nil, t.theme.Style(s))
}

func (t *Terminal) Erase(p board.Position) {
	t.screen.SetContent(p.Col, p.Row, ' ', nil, tcell.StyleDefault)
}

func (t *Terminal) DrawText(p board.Position, text string, s game.Style) {
	st := t.theme.Style(s)
	for i, ch := range []rune(text) {
		t.screen.SetContent(p.Col+i, p.Row, ch, nil, st)
	}
}

func (t *Terminal) Show() {
	t.screen.Show()
}
