// Package board holds the snake game state and its per-tick transition.
// It performs no I/O: the game loop owns a *State and feeds it directions.
package board

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

// InitialLength is the number of segments the snake starts with.
const InitialLength = 3

// State is the complete game state: board bounds, snake, food, heading and
// score. A State is owned by a single caller and is not safe for concurrent
// use.
type State struct {
	height int
	width  int

	snake   []Position // head first
	food    Position
	hasFood bool
	dir     Direction
	score   int

	over bool
	end  Outcome

	rng *rand.Rand
}

// New builds the starting state for a height x width board. The snake lies
// horizontally left of centre with its head on the right, heading Right, and
// food is placed on a random free interior cell.
//
// A nil rng falls back to a time-seeded source.
func New(height, width int, rng *rand.Rand) (*State, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	free := interiorCells(height, width)
	if free < InitialLength+1 {
		return nil, &ConfigurationError{
			Height: height, Width: width,
			Free: free, Required: InitialLength + 1,
			Reason: "not enough interior cells",
		}
	}
	// The body must fit on one interior row, tail at column >= 1.
	if width-2 < InitialLength {
		return nil, &ConfigurationError{
			Height: height, Width: width,
			Free: free, Required: InitialLength + 1,
			Reason: "interior narrower than the initial snake",
		}
	}

	row := height / 2
	col := max(width/4, InitialLength)
	body := make([]Position, InitialLength)
	for i := range body {
		body[i] = Position{Row: row, Col: col - i}
	}

	s := &State{height: height, width: width, snake: body, dir: Right, rng: rng}
	s.placeFood()
	return s, nil
}

// NewSeeded is New with a deterministic PCG source.
func NewSeeded(height, width int, seed uint64) (*State, error) {
	return New(height, width, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// FromBody builds a state around an explicit snake body (head first) and
// heading. The body must be a connected chain of distinct interior cells.
// Food is placed at random; use PlaceFood to pin it.
func FromBody(height, width int, body []Position, dir Direction, rng *rand.Rand) (*State, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty snake body", ErrConfiguration)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	s := &State{height: height, width: width, dir: dir, rng: rng}
	for i, p := range body {
		if !s.inside(p) || s.OnWall(p) {
			return nil, fmt.Errorf("%w: segment %d at %v is not an interior cell", ErrConfiguration, i, p)
		}
		if slices.Contains(body[:i], p) {
			return nil, fmt.Errorf("%w: segment %d at %v overlaps the body", ErrConfiguration, i, p)
		}
		if i > 0 && !adjacent(body[i-1], p) {
			return nil, fmt.Errorf("%w: segment %d at %v is detached from %v", ErrConfiguration, i, p, body[i-1])
		}
	}
	s.snake = slices.Clone(body)
	if len(s.snake) >= interiorCells(height, width) {
		return nil, &ConfigurationError{
			Height: height, Width: width,
			Free: interiorCells(height, width), Required: len(body) + 1,
			Reason: "no room left for food",
		}
	}
	s.placeFood()
	return s, nil
}

// Turn resolves a requested heading against the current one. A request to
// reverse straight into the neck is ignored and the current heading kept.
// Turn does not modify the state.
func (s *State) Turn(requested Direction) Direction {
	if requested == s.dir.Opposite() {
		return s.dir
	}
	return requested
}

// Advance moves the snake one cell in dir and reports what happened.
//
// The candidate head is checked against the wall ring and every current body
// cell, tail included, before anything is committed; on Collided the snake is
// left untouched. Once a terminal outcome has been returned the state is
// frozen and every later call returns that same outcome.
func (s *State) Advance(dir Direction) Outcome {
	if s.over {
		return s.end
	}

	next := s.Head().Step(dir)
	if s.OnWall(next) || s.Occupied(next) {
		s.finish(Collided)
		return Collided
	}
	s.dir = dir

	grown := make([]Position, 0, len(s.snake)+1)
	grown = append(grown, next)
	grown = append(grown, s.snake...)

	if s.hasFood && next == s.food {
		s.snake = grown
		s.score++
		s.hasFood = false
		if len(s.snake) >= interiorCells(s.height, s.width) {
			s.finish(BoardFull)
			return BoardFull
		}
		s.placeFood()
		return AteFood
	}

	s.snake = grown[:len(grown)-1]
	return Moved
}

// PlaceFood pins the food to p. It rejects wall cells, cells outside the
// board and cells under the snake.
func (s *State) PlaceFood(p Position) error {
	if !s.inside(p) || s.OnWall(p) {
		return fmt.Errorf("board: food at %v is not an interior cell", p)
	}
	if s.Occupied(p) {
		return fmt.Errorf("board: food at %v overlaps the snake", p)
	}
	s.food = p
	s.hasFood = true
	return nil
}

// placeFood picks a uniformly random interior cell the snake does not cover.
// Callers guarantee at least one such cell exists.
func (s *State) placeFood() {
	taken := make(map[Position]struct{}, len(s.snake))
	for _, p := range s.snake {
		taken[p] = struct{}{}
	}
	free := make([]Position, 0, interiorCells(s.height, s.width)-len(s.snake))
	for r := 1; r < s.height-1; r++ {
		for c := 1; c < s.width-1; c++ {
			p := Position{Row: r, Col: c}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		s.hasFood = false
		return
	}
	s.food = free[s.rng.IntN(len(free))]
	s.hasFood = true
}

func (s *State) finish(o Outcome) {
	s.over = true
	s.end = o
}

// OnWall reports whether p lies on the outermost ring of the board.
func (s *State) OnWall(p Position) bool {
	return p.Row == 0 || p.Row == s.height-1 || p.Col == 0 || p.Col == s.width-1
}

// Occupied reports whether any snake segment covers p.
func (s *State) Occupied(p Position) bool {
	return slices.Contains(s.snake, p)
}

func (s *State) inside(p Position) bool {
	return p.Row >= 0 && p.Row < s.height && p.Col >= 0 && p.Col < s.width
}

// Snake returns a copy of the body, head first.
func (s *State) Snake() []Position { return slices.Clone(s.snake) }

// Len is the number of segments.
func (s *State) Len() int { return len(s.snake) }

func (s *State) Head() Position { return s.snake[0] }
func (s *State) Tail() Position { return s.snake[len(s.snake)-1] }

// Food returns the food cell. ok is false only after BoardFull.
func (s *State) Food() (p Position, ok bool) { return s.food, s.hasFood }

func (s *State) Direction() Direction { return s.dir }
func (s *State) Score() int           { return s.score }
func (s *State) Height() int          { return s.height }
func (s *State) Width() int           { return s.width }

// Over reports whether the game has reached a terminal outcome, and which.
func (s *State) Over() (Outcome, bool) { return s.end, s.over }

func interiorCells(height, width int) int {
	if height < 3 || width < 3 {
		return 0
	}
	return (height - 2) * (width - 2)
}

func adjacent(a, b Position) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}
