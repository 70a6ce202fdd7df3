package board

// Outcome is the tagged result of a single Advance.
type Outcome uint8

const (
	// Moved: the snake stepped forward, length unchanged.
	Moved Outcome = iota
	// AteFood: the snake grew by one and new food was placed.
	AteFood
	// Collided: the next head hit the wall ring or the body. Terminal.
	Collided
	// BoardFull: the snake ate and now covers every interior cell, so no
	// food can be placed. Terminal, but a win rather than a crash.
	BoardFull
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "Moved"
	case AteFood:
		return "AteFood"
	case Collided:
		return "Collided"
	case BoardFull:
		return "BoardFull"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the outcome ends the game.
func (o Outcome) Terminal() bool {
	return o == Collided || o == BoardFull
}
