package board

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlacesSnakeLeftOfCentre(t *testing.T) {
	s, err := NewSeeded(24, 80, 1)
	require.NoError(t, err)

	assert.Equal(t, []Position{{12, 20}, {12, 19}, {12, 18}}, s.Snake())
	assert.Equal(t, Right, s.Direction())
	assert.Equal(t, 0, s.Score())

	food, ok := s.Food()
	require.True(t, ok)
	assert.False(t, s.OnWall(food))
	assert.False(t, s.Occupied(food))

	_, over := s.Over()
	assert.False(t, over)
}

func TestNewNarrowBoardKeepsSnakeInside(t *testing.T) {
	s, err := NewSeeded(3, 6, 7)
	require.NoError(t, err)
	assert.Equal(t, []Position{{1, 3}, {1, 2}, {1, 1}}, s.Snake())

	food, ok := s.Food()
	require.True(t, ok)
	assert.Equal(t, Position{1, 4}, food)
}

func TestNewRejectsDegenerateBoards(t *testing.T) {
	for _, tc := range []struct {
		name          string
		height, width int
	}{
		{"tiny", 3, 3},
		{"no interior", 2, 40},
		{"narrow", 10, 4},
		{"single row of three", 3, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSeeded(tc.height, tc.width, 1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfiguration))

			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.height, cfgErr.Height)
			assert.Equal(t, tc.width, cfgErr.Width)
		})
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	s, err := NewSeeded(20, 20, 1)
	require.NoError(t, err)
	require.Equal(t, Right, s.Direction())

	assert.Equal(t, Right, s.Turn(Left))
	assert.Equal(t, Up, s.Turn(Up))
	assert.Equal(t, Down, s.Turn(Down))
	assert.Equal(t, Right, s.Turn(Right))
	assert.Equal(t, Right, s.Direction(), "Turn must not change the heading")
}

func TestTurnIsIdempotent(t *testing.T) {
	s, err := NewSeeded(20, 20, 1)
	require.NoError(t, err)

	for _, d := range []Direction{Up, Down, Left, Right} {
		once := s.Turn(d)
		assert.Equal(t, once, s.Turn(d), "direction %v", d)
	}
}

func TestAdvanceMovesRight(t *testing.T) {
	s, err := NewSeeded(20, 20, 42)
	require.NoError(t, err)
	require.NoError(t, s.PlaceFood(Position{1, 1}))

	before := s.Snake()
	for i := 0; i < 4; i++ {
		require.Equal(t, Moved, s.Advance(s.Turn(Right)))
	}

	after := s.Snake()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, Position{before[i].Row, before[i].Col + 4}, after[i])
	}
	assert.Equal(t, 0, s.Score())
}

func TestAdvanceEatsFoodAhead(t *testing.T) {
	s, err := NewSeeded(20, 20, 3)
	require.NoError(t, err)

	ahead := s.Head().Step(Right)
	require.NoError(t, s.PlaceFood(ahead))
	tail := s.Tail()

	require.Equal(t, AteFood, s.Advance(Right))
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, InitialLength+1, s.Len())
	assert.Equal(t, ahead, s.Head())
	assert.Equal(t, tail, s.Tail(), "tail stays put when growing")

	food, ok := s.Food()
	require.True(t, ok)
	assert.NotEqual(t, ahead, food)
	assert.False(t, s.Occupied(food))
	assert.False(t, s.OnWall(food))
}

func TestAdvanceIntoWallCollides(t *testing.T) {
	body := []Position{{1, 5}, {2, 5}, {3, 5}}
	s, err := FromBody(10, 10, body, Up, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	require.Equal(t, Collided, s.Advance(Up))
	assert.Equal(t, body, s.Snake(), "snake is not mutated on collision")
	assert.Equal(t, 0, s.Score())

	out, over := s.Over()
	assert.True(t, over)
	assert.Equal(t, Collided, out)

	// Terminal state is frozen.
	assert.Equal(t, Collided, s.Advance(Right))
	assert.Equal(t, body, s.Snake())
}

func TestAdvanceOffEveryEdgeCollides(t *testing.T) {
	for _, tc := range []struct {
		body []Position
		dir  Direction
	}{
		{[]Position{{1, 4}, {2, 4}}, Up},
		{[]Position{{6, 4}, {5, 4}}, Down},
		{[]Position{{3, 1}, {3, 2}}, Left},
		{[]Position{{3, 6}, {3, 5}}, Right},
	} {
		t.Run(tc.dir.String(), func(t *testing.T) {
			s, err := FromBody(8, 8, tc.body, tc.dir, rand.New(rand.NewPCG(3, 3)))
			require.NoError(t, err)

			next := s.Head().Step(tc.dir)
			require.True(t, s.OnWall(next))
			assert.Equal(t, Collided, s.Advance(tc.dir))
			assert.Equal(t, tc.body, s.Snake())
		})
	}
}

func TestDriveIntoRightWall(t *testing.T) {
	s, err := NewSeeded(20, 20, 9)
	require.NoError(t, err)
	require.NoError(t, s.PlaceFood(Position{18, 1}))

	var out Outcome
	steps := 0
	for out = s.Advance(Right); out == Moved; out = s.Advance(Right) {
		steps++
	}
	require.Equal(t, Collided, out)
	assert.Equal(t, Position{10, 18}, s.Head())
	assert.Equal(t, 18-5, steps)
}

func TestAdvanceIntoTailCollides(t *testing.T) {
	// A closed 2x2 loop: stepping onto the tail is a collision because the
	// tail has not moved yet when the check runs.
	body := []Position{{2, 2}, {2, 3}, {3, 3}, {3, 2}}
	s, err := FromBody(8, 8, body, Left, rand.New(rand.NewPCG(5, 5)))
	require.NoError(t, err)

	require.Equal(t, Down, s.Turn(Down))
	require.Equal(t, Collided, s.Advance(Down))
	assert.Equal(t, body, s.Snake())
}

func TestAdvanceReversalHitsNeck(t *testing.T) {
	s, err := NewSeeded(20, 20, 1)
	require.NoError(t, err)
	require.Equal(t, Collided, s.Advance(Left))
}

func TestAdvanceFillsBoard(t *testing.T) {
	// 2x3 interior, five segments, one free cell left for the food.
	body := []Position{{2, 1}, {2, 2}, {2, 3}, {1, 3}, {1, 2}}
	s, err := FromBody(4, 5, body, Left, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	food, ok := s.Food()
	require.True(t, ok)
	require.Equal(t, Position{1, 1}, food)

	require.Equal(t, BoardFull, s.Advance(Up))
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 6, s.Len())

	_, ok = s.Food()
	assert.False(t, ok)

	out, over := s.Over()
	assert.True(t, over)
	assert.Equal(t, BoardFull, out)
	assert.Equal(t, BoardFull, s.Advance(Down))
}

func TestFromBodyValidates(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for name, body := range map[string][]Position{
		"empty":    nil,
		"on wall":  {{0, 3}, {1, 3}},
		"outside":  {{-1, 3}},
		"overlap":  {{2, 2}, {2, 3}, {2, 2}},
		"detached": {{2, 2}, {4, 4}},
		"no room":  {{1, 1}, {1, 2}, {2, 2}, {2, 1}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromBody(4, 4, body, Right, rng)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestPlaceFoodRejectsInvalidCells(t *testing.T) {
	s, err := NewSeeded(10, 20, 1)
	require.NoError(t, err)

	assert.Error(t, s.PlaceFood(Position{0, 4}))
	assert.Error(t, s.PlaceFood(Position{5, 19}))
	assert.Error(t, s.PlaceFood(Position{50, 50}))
	assert.Error(t, s.PlaceFood(s.Head()))
	assert.NoError(t, s.PlaceFood(Position{8, 8}))
}

// TestRandomWalkProperties plays many games on a small board, turning at
// random but avoiding certain death, and checks the per-outcome properties
// after every tick.
func TestRandomWalkProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 10))
	dirs := []Direction{Up, Down, Left, Right}
	eaten := 0

	for game := 0; game < 50; game++ {
		s, err := NewSeeded(8, 12, uint64(game))
		require.NoError(t, err)

		for tick := 0; tick < 500; tick++ {
			lenBefore, scoreBefore := s.Len(), s.Score()
			foodBefore, _ := s.Food()
			snakeBefore := s.Snake()

			out := s.Advance(s.Turn(safeDirection(s, rng, dirs)))
			switch out {
			case Moved:
				require.Equal(t, lenBefore, s.Len())
				require.Equal(t, scoreBefore, s.Score())
			case AteFood:
				eaten++
				require.Equal(t, lenBefore+1, s.Len())
				require.Equal(t, scoreBefore+1, s.Score())
				food, ok := s.Food()
				require.True(t, ok)
				require.NotEqual(t, foodBefore, food)
				require.False(t, s.Occupied(food))
			case Collided:
				require.Equal(t, snakeBefore, s.Snake())
			}

			if food, ok := s.Food(); ok {
				require.False(t, s.Occupied(food), "food under snake at tick %d", tick)
				require.False(t, s.OnWall(food))
			}
			if out.Terminal() {
				break
			}
		}
	}
	assert.Positive(t, eaten, "walk never reached any food")
}

// safeDirection picks a random heading whose next cell is free, or any
// heading when the snake is boxed in.
func safeDirection(s *State, rng *rand.Rand, dirs []Direction) Direction {
	order := rng.Perm(len(dirs))
	for _, i := range order {
		d := s.Turn(dirs[i])
		next := s.Head().Step(d)
		if !s.OnWall(next) && !s.Occupied(next) {
			return d
		}
	}
	return dirs[order[0]]
}
