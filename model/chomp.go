package model

// ChompGame is a two player game on a grid of still-playable cells.
// A move at (x, y) eats that cell plus everything below it in its
// column and everything right of it in its row. Whoever is forced to
// take the last cell at (0, 0) loses.
type ChompGame struct {
	grid *Grid[bool]
}

// NewChompGame returns a board with every cell still playable.
func NewChompGame(width, height int) *ChompGame {
	grid := NewGrid[bool](width, height)
	grid.Each(func(x, y int, cell *bool) {
		*cell = true
	})
	return &ChompGame{grid: grid}
}

func (c *ChompGame) Width() int  { return c.grid.Width }
func (c *ChompGame) Height() int { return c.grid.Height }

// Playable reports whether the cell at (x, y) is still on the board.
func (c *ChompGame) Playable(x, y int) bool {
	cell, ok := c.grid.Get(x, y)
	return ok && cell
}

// Clone returns an independent copy of the position.
func (c *ChompGame) Clone() *ChompGame {
	return &ChompGame{grid: c.grid.Clone()}
}

// Chomp eats the cell at (x, y) along with the rest of its column
// below it and the rest of its row right of it. The removal is this
// L shape, not the full below-right rectangle. Returns false and
// leaves the board untouched when (x, y) is out of bounds.
func (c *ChompGame) Chomp(x, y int) bool {
	if !c.grid.In(x, y) {
		return false
	}
	for yy := y; yy < c.grid.Height; yy++ {
		c.grid.Set(x, yy, false)
	}
	for xx := x; xx < c.grid.Width; xx++ {
		c.grid.Set(xx, y, false)
	}
	return true
}

// Lost reports whether (0, 0) is the last cell left. When any other
// cell is still playable it returns false; otherwise it returns the
// flag stored at (0, 0) itself, so a fully eaten board reads as not
// lost. The search below depends on this exact truth table.
func (c *ChompGame) Lost() bool {
	for y := 0; y < c.grid.Height; y++ {
		for x := 0; x < c.grid.Width; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if cell, _ := c.grid.Get(x, y); cell {
				return false
			}
		}
	}
	cell, _ := c.grid.Get(0, 0)
	return cell
}

// WinningMove searches the full game tree for a move that leaves the
// opponent without a winning reply. Candidates are tried in row-major
// order, (0, 0) excluded, and the first forced win found is returned.
// Every trial move runs on a cloned board, so the position itself is
// never disturbed. Exponential in the worst case; boards are expected
// to stay small.
func (c *ChompGame) WinningMove() (x, y int, ok bool) {
	if c.Lost() {
		return 0, 0, false
	}
	for cy := 0; cy < c.grid.Height; cy++ {
		for cx := 0; cx < c.grid.Width; cx++ {
			if cx == 0 && cy == 0 {
				continue
			}
			if !c.Playable(cx, cy) {
				continue
			}
			trial := c.Clone()
			trial.Chomp(cx, cy)
			if _, _, reply := trial.WinningMove(); !reply {
				return cx, cy, true
			}
		}
	}
	return 0, 0, false
}

// chompSize counts the playable cells a chomp at (x, y) would eat,
// without touching the board.
func (c *ChompGame) chompSize(x, y int) int {
	n := 0
	for yy := y; yy < c.grid.Height; yy++ {
		if c.Playable(x, yy) {
			n++
		}
	}
	for xx := x + 1; xx < c.grid.Width; xx++ {
		if c.Playable(xx, y) {
			n++
		}
	}
	return n
}

// SmallestChomp returns the playable cell whose chomp would eat the
// fewest cells, first in row-major order on ties. It only fails when
// nothing is left to play.
func (c *ChompGame) SmallestChomp() (x, y int, ok bool) {
	best := -1
	for cy := 0; cy < c.grid.Height; cy++ {
		for cx := 0; cx < c.grid.Width; cx++ {
			if !c.Playable(cx, cy) {
				continue
			}
			if n := c.chompSize(cx, cy); best == -1 || n < best {
				best = n
				x, y = cx, cy
				ok = true
			}
		}
	}
	return x, y, ok
}

// MoveKind says how the engine picked its move.
type MoveKind int

const (
	ForcedWin MoveKind = iota
	Heuristic
)

// EngineMove is the outcome of letting the engine take a turn.
// Defeated means no move was made and the engine concedes.
type EngineMove struct {
	X, Y     int
	Kind     MoveKind
	Defeated bool
}

// AIMove plays one engine turn: a forced winning move when the search
// finds one, otherwise concede on a lost position, otherwise the
// smallest available chomp.
func (c *ChompGame) AIMove() EngineMove {
	if x, y, ok := c.WinningMove(); ok {
		c.Chomp(x, y)
		return EngineMove{X: x, Y: y, Kind: ForcedWin}
	}
	if c.Lost() {
		return EngineMove{Defeated: true}
	}
	if x, y, ok := c.SmallestChomp(); ok {
		c.Chomp(x, y)
		return EngineMove{X: x, Y: y, Kind: Heuristic}
	}
	return EngineMove{Defeated: true}
}
