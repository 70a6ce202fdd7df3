// Package game runs the fixed-tick snake loop: it polls a Surface for input,
// advances the board and describes the resulting screen changes back to the
// Surface.
package game

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/mike-rambil/python-snake/board"
)

// TickInterval is the default simulation cadence.
const TickInterval = 100 * time.Millisecond

const (
	quitHint     = " Press 'q' to quit "
	quitHintFrom = 25 // columns from the right edge
	scoreCol     = 2
)

// StopReason says why Run returned.
type StopReason uint8

const (
	UserQuit StopReason = iota
	GameOver
)

func (r StopReason) String() string {
	if r == UserQuit {
		return "UserQuit"
	}
	return "GameOver"
}

// Result summarises a finished game.
type Result struct {
	Reason StopReason
	// Outcome is the terminal board outcome when Reason is GameOver.
	Outcome board.Outcome
	Score   int
	Length  int
	Ticks   int
}

// Glyphs are the runes used for the snake and food.
type Glyphs struct {
	Head Glyph
	Body Glyph
	Food Glyph
}

// DefaultGlyphs matches the classic curses snake.
var DefaultGlyphs = Glyphs{Head: 'O', Body: 'o', Food: '*'}

// Option configures Run.
type Option func(*loop)

// WithLogger sends game transitions to l.
func WithLogger(l *log.Logger) Option {
	return func(g *loop) {
		if l != nil {
			g.log = l
		}
	}
}

// WithGlyphs overrides the snake and food runes. Zero runes keep the default.
func WithGlyphs(gl Glyphs) Option {
	return func(g *loop) {
		if gl.Head != 0 {
			g.glyphs.Head = gl.Head
		}
		if gl.Body != 0 {
			g.glyphs.Body = gl.Body
		}
		if gl.Food != 0 {
			g.glyphs.Food = gl.Food
		}
	}
}

type loop struct {
	surface Surface
	state   *board.State
	tick    time.Duration
	glyphs  Glyphs
	log     *log.Logger

	width, height int
	ticks         int
}

// Run plays st on s until the player quits or the board reaches a terminal
// outcome. After a terminal outcome it shows the game-over message and waits
// for one more key before returning. Run owns st for its whole duration.
func Run(s Surface, st *board.State, tick time.Duration, opts ...Option) Result {
	if tick <= 0 {
		tick = TickInterval
	}
	g := &loop{
		surface: s,
		state:   st,
		tick:    tick,
		glyphs:  DefaultGlyphs,
		log:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.width, g.height = s.Configure()
	return g.run()
}

func (g *loop) run() Result {
	g.log.Printf("start: board %dx%d, tick %v", g.state.Height(), g.state.Width(), g.tick)
	g.drawInitial()

	for {
		g.drawQuitHint()
		g.surface.Show()

		ev := g.surface.PollInput(g.tick)
		if ev == Quit {
			g.log.Printf("quit after %d ticks, score %d", g.ticks, g.state.Score())
			return g.result(UserQuit, board.Moved)
		}

		dir := g.state.Direction()
		if want, ok := DirectionFor(ev); ok {
			dir = g.state.Turn(want)
		}

		prevHead, prevTail := g.state.Head(), g.state.Tail()
		out := g.state.Advance(dir)
		g.ticks++

		switch out {
		case board.Moved:
			g.surface.Erase(prevTail)
			if g.state.Len() > 1 {
				g.surface.Draw(prevHead, g.glyphs.Body, StyleSnake)
			}
			g.surface.Draw(g.state.Head(), g.glyphs.Head, StyleSnake)
		case board.AteFood:
			g.surface.Draw(prevHead, g.glyphs.Body, StyleSnake)
			g.surface.Draw(g.state.Head(), g.glyphs.Head, StyleSnake)
			g.drawScore()
			g.drawFood()
		case board.Collided, board.BoardFull:
			g.log.Printf("%s after %d ticks, score %d, length %d", out, g.ticks, g.state.Score(), g.state.Len())
			if out == board.BoardFull {
				// The head landed on the last free cell.
				g.surface.Draw(prevHead, g.glyphs.Body, StyleSnake)
				g.surface.Draw(g.state.Head(), g.glyphs.Head, StyleSnake)
				g.drawScore()
			}
			g.drawGameOver(out)
			g.surface.Show()
			g.surface.WaitInput()
			return g.result(GameOver, out)
		}
	}
}

func (g *loop) result(reason StopReason, out board.Outcome) Result {
	return Result{
		Reason:  reason,
		Outcome: out,
		Score:   g.state.Score(),
		Length:  g.state.Len(),
		Ticks:   g.ticks,
	}
}

// drawInitial paints the frame, the whole snake, the food and the score.
func (g *loop) drawInitial() {
	g.drawBorder()
	for i, p := range g.state.Snake() {
		if i == 0 {
			g.surface.Draw(p, g.glyphs.Head, StyleSnake)
			continue
		}
		g.surface.Draw(p, g.glyphs.Body, StyleSnake)
	}
	g.drawFood()
	g.drawScore()
}

func (g *loop) drawBorder() {
	h, w := g.state.Height(), g.state.Width()
	for c := 1; c < w-1; c++ {
		g.surface.Draw(board.Position{Row: 0, Col: c}, '─', StyleBorder)
		g.surface.Draw(board.Position{Row: h - 1, Col: c}, '─', StyleBorder)
	}
	for r := 1; r < h-1; r++ {
		g.surface.Draw(board.Position{Row: r, Col: 0}, '│', StyleBorder)
		g.surface.Draw(board.Position{Row: r, Col: w - 1}, '│', StyleBorder)
	}
	g.surface.Draw(board.Position{Row: 0, Col: 0}, '┌', StyleBorder)
	g.surface.Draw(board.Position{Row: 0, Col: w - 1}, '┐', StyleBorder)
	g.surface.Draw(board.Position{Row: h - 1, Col: 0}, '└', StyleBorder)
	g.surface.Draw(board.Position{Row: h - 1, Col: w - 1}, '┘', StyleBorder)
}

func (g *loop) drawFood() {
	if food, ok := g.state.Food(); ok {
		g.surface.Draw(food, g.glyphs.Food, StyleFood)
	}
}

func (g *loop) drawScore() {
	g.surface.DrawText(board.Position{Row: 0, Col: scoreCol}, scoreText(g.state.Score()), StyleText)
}

// drawQuitHint is skipped when the top border is too short to hold both the
// score and the hint.
func (g *loop) drawQuitHint() {
	col := g.width - quitHintFrom
	if col < scoreCol+len(scoreText(g.state.Score()))+1 {
		return
	}
	g.surface.DrawText(board.Position{Row: 0, Col: col}, quitHint, StyleText)
}

func (g *loop) drawGameOver(out board.Outcome) {
	headline := " GAME OVER! "
	if out == board.BoardFull {
		headline = " BOARD CLEARED! "
	}
	mid := g.height / 2
	g.drawCentered(mid, headline, StyleTitle)
	g.drawCentered(mid+1, fmt.Sprintf(" Final Score: %d ", g.state.Score()), StyleText)
	g.drawCentered(mid+2, " Press any key to exit ", StyleText)
}

func (g *loop) drawCentered(row int, text string, s Style) {
	col := max((g.width-len([]rune(text)))/2, 0)
	g.surface.DrawText(board.Position{Row: row, Col: col}, text, s)
}

func scoreText(score int) string {
	return fmt.Sprintf(" Score: %d ", score)
}
