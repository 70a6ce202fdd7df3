package game

import (
	"time"

	"github.com/mike-rambil/python-snake/board"
)

// Event is a normalized input event delivered by a Surface.
type Event uint8

const (
	NoEvent Event = iota
	Quit
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	// OtherKey is any key press that is neither a move nor quit. It still
	// counts as the acknowledgement on the game-over screen.
	OtherKey
)

func (e Event) String() string {
	switch e {
	case NoEvent:
		return "None"
	case Quit:
		return "Quit"
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case OtherKey:
		return "OtherKey"
	default:
		return "Unknown"
	}
}

// Glyph is the rune drawn in a single cell.
type Glyph rune

// Style names the role of a drawn cell; the surface decides how it looks.
type Style uint8

const (
	StyleDefault Style = iota
	StyleSnake
	StyleFood
	StyleText
	StyleTitle
	StyleBorder
)

// Surface is the terminal the game loop renders to and reads keys from.
// Positions use board coordinates: row down, column across.
type Surface interface {
	// Configure reports the usable width and height in cells.
	Configure() (width, height int)
	// PollInput waits at most timeout for one input event and returns
	// NoEvent if none arrived.
	PollInput(timeout time.Duration) Event
	// WaitInput blocks until one input event arrives.
	WaitInput() Event

	Draw(p board.Position, g Glyph, s Style)
	Erase(p board.Position)
	DrawText(p board.Position, text string, s Style)
	// Show flushes pending drawing to the terminal.
	Show()
}

// DirectionFor maps a move event to a board direction.
func DirectionFor(e Event) (board.Direction, bool) {
	switch e {
	case MoveUp:
		return board.Up, true
	case MoveDown:
		return board.Down, true
	case MoveLeft:
		return board.Left, true
	case MoveRight:
		return board.Right, true
	}
	return 0, false
}
