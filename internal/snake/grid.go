// Package snake implements the grid game: the board state with its
// movement, growth and collision rules, and the tick-driven loop that
// advances it in response to player input.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// GridOptions configures a new GridState.
type GridOptions struct {
	GridSize int        // Cells per side; < 1 means the default, capped at core.MaxGridSize
	Rand     *rand.Rand // Source for food placement; nil means time seeded

	// AvoidBodyWhenPlacingFood restricts food to cells the snake does not
	// occupy. Off by default: food may spawn under the snake.
	AvoidBodyWhenPlacingFood bool

	// ForbidReversal ignores direction requests that would move the head
	// straight back onto the cell behind it. Off by default.
	ForbidReversal bool
}

// GridStateFromConfig builds a GridState from the runtime configuration.
func GridStateFromConfig(cfg core.RuntimeConfig) *GridState {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGridState(GridOptions{
		GridSize:                 cfg.GridSize,
		Rand:                     rand.New(rand.NewSource(seed)),
		AvoidBodyWhenPlacingFood: cfg.AvoidBodyWhenPlacingFood,
		ForbidReversal:           cfg.ForbidReversal,
	})
}

// GridState owns the board: its size, the snake's body, heading and target
// length, and the food cell. It performs no I/O.
type GridState struct {
	gridSize     int
	body         []Cell // Tail at index 0, head last
	direction    Direction
	targetLength int
	food         Cell
	rng          *rand.Rand

	avoidBody      bool
	forbidReversal bool
}

// NewGridState creates a board with a one-cell snake in the middle heading
// down, and places the first food.
func NewGridState(opts GridOptions) *GridState {
	size := opts.GridSize
	if size < 1 {
		size = core.DefaultGridSize
	}
	size = min(size, core.MaxGridSize)
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	mid := size / 2
	g := &GridState{
		gridSize:       size,
		body:           []Cell{{X: mid, Y: mid}},
		direction:      DirDown,
		targetLength:   1,
		rng:            rng,
		avoidBody:      opts.AvoidBodyWhenPlacingFood,
		forbidReversal: opts.ForbidReversal,
	}
	g.PlaceFood()
	return g
}

// GridSize returns the number of cells per side.
func (g *GridState) GridSize() int {
	return g.gridSize
}

// CurrentHead returns the newest body cell. It never mutates the state.
func (g *GridState) CurrentHead() Cell {
	return g.body[len(g.body)-1]
}

// Body returns a copy of the occupied cells, tail first.
func (g *GridState) Body() []Cell {
	out := make([]Cell, len(g.body))
	copy(out, g.body)
	return out
}

// Direction returns the heading used by the next Advance.
func (g *GridState) Direction() Direction {
	return g.direction
}

// TargetLength returns the length the body is trimmed to.
func (g *GridState) TargetLength() int {
	return g.targetLength
}

// Food returns the food cell.
func (g *GridState) Food() Cell {
	return g.food
}

// Advance moves the head one cell in the current direction. The oldest
// cells are dropped until the body is back to the target length, so a
// normal move translates the snake and a growing move extends it.
func (g *GridState) Advance() {
	g.body = append(g.body, g.CurrentHead().Add(g.direction.Delta()))

	if excess := len(g.body) - g.targetLength; excess > 0 {
		n := copy(g.body, g.body[excess:])
		g.body = g.body[:n]
	}
}

// RequestDirection sets the heading for the next Advance, replacing any
// earlier request. Invalid directions are ignored. With ForbidReversal set,
// a direction that would put the head onto the cell right behind it is
// ignored too. Reports whether the heading was applied.
func (g *GridState) RequestDirection(d Direction) bool {
	if !d.Valid() {
		return false
	}
	if g.forbidReversal && len(g.body) >= 2 {
		neck := g.body[len(g.body)-2]
		if g.CurrentHead().Add(d.Delta()) == neck {
			return false
		}
	}
	g.direction = d
	return true
}

// IsBoundaryCollision reports whether the head has left the board.
func (g *GridState) IsBoundaryCollision() bool {
	return !g.inBounds(g.CurrentHead())
}

// IsSelfCollision reports whether the head overlaps any other body cell.
func (g *GridState) IsSelfCollision() bool {
	head := g.CurrentHead()
	for _, c := range g.body[:len(g.body)-1] {
		if c == head {
			return true
		}
	}
	return false
}

// IsFoodCollision reports whether the head is on the food.
func (g *GridState) IsFoodCollision() bool {
	return g.CurrentHead() == g.food
}

// ConsumeFood grows the target length by one and places new food.
func (g *GridState) ConsumeFood() {
	g.targetLength++
	g.PlaceFood()
}

// PlaceFood moves the food to a uniformly random cell. Unless
// AvoidBodyWhenPlacingFood is set, the cell may be occupied by the snake.
func (g *GridState) PlaceFood() {
	if g.avoidBody {
		if free := g.freeCells(); len(free) > 0 {
			g.food = free[g.rng.Intn(len(free))]
			return
		}
		// Board is full; fall through to an unrestricted pick.
	}
	g.food = Cell{
		X: g.rng.Intn(g.gridSize),
		Y: g.rng.Intn(g.gridSize),
	}
}

// freeCells lists board cells not covered by the body, row by row.
func (g *GridState) freeCells() []Cell {
	occupied := make(map[Cell]bool, len(g.body))
	for _, c := range g.body {
		occupied[c] = true
	}

	free := make([]Cell, 0, max(0, g.gridSize*g.gridSize-len(occupied)))
	for y := range g.gridSize {
		for x := range g.gridSize {
			c := Cell{X: x, Y: y}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}
	return free
}

func (g *GridState) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.gridSize && c.Y >= 0 && c.Y < g.gridSize
}
