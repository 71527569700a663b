package model

import (
	"errors"
	"math/rand"
)

var (
	// ErrOutOfBounds is returned for moves addressing a cell outside
	// the board.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrBadCellState is returned for moves the target cell's state
	// does not allow, e.g. marking an already revealed square.
	ErrBadCellState = errors.New("cell state does not allow this move")
)

// CellState tracks what the player has done with a square. Exactly
// one state holds at any time.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// Square is one minefield cell. Proximity stays -1 until the square
// is revealed; it is computed once and never again.
type Square struct {
	State     CellState
	Proximity int
	Mine      bool
}

// MineField is a minesweeper board. Mines must all be flagged to win.
// The random source is injected so mine placement is reproducible
// under test.
type MineField struct {
	grid *Grid[Square]
	rng  *rand.Rand
}

// NewMineField returns a board of hidden squares with no mines placed
// yet.
func NewMineField(width, height int, rng *rand.Rand) *MineField {
	grid := NewGrid[Square](width, height)
	grid.Each(func(x, y int, sq *Square) {
		sq.Proximity = -1
	})
	return &MineField{grid: grid, rng: rng}
}

func (f *MineField) Width() int  { return f.grid.Width }
func (f *MineField) Height() int { return f.grid.Height }

// Square returns a copy of the cell at (x, y).
func (f *MineField) Square(x, y int) (Square, bool) {
	return f.grid.Get(x, y)
}

// PlaceMines marks count distinct squares as mines, resampling on
// collision. The caller is responsible for not asking for more mines
// than there are free squares.
func (f *MineField) PlaceMines(count int) {
	placed := 0
	for placed < count {
		x := f.rng.Intn(f.grid.Width)
		y := f.rng.Intn(f.grid.Height)
		sq := f.grid.at(x, y)
		if !sq.Mine {
			sq.Mine = true
			placed++
		}
	}
}

// RaiseDifficulty places another batch of mines worth a tenth of the
// board, same as the initial difficulty step, and returns the batch
// size. Repeated calls keep raising the density.
func (f *MineField) RaiseDifficulty() int {
	count := f.grid.Width * f.grid.Height / 10
	f.PlaceMines(count)
	return count
}

// Mines returns how many squares currently hold a mine.
func (f *MineField) Mines() int {
	n := 0
	f.grid.Each(func(x, y int, sq *Square) {
		if sq.Mine {
			n++
		}
	})
	return n
}

// IsMine reports whether (x, y) holds a mine. Out of bounds squares
// do not.
func (f *MineField) IsMine(x, y int) bool {
	sq, ok := f.grid.Get(x, y)
	return ok && sq.Mine
}

// Proximity counts the mines in the 3x3 neighbourhood around (x, y),
// the square itself included. Neighbours beyond the board edge do not
// contribute. Pure read, no state changes.
func (f *MineField) Proximity(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if sq, ok := f.grid.Get(x+dx, y+dy); ok && sq.Mine {
				count++
			}
		}
	}
	return count
}

// RevealResult is the outcome of a reveal move. Exploded means the
// target held a mine; the board is left untouched in that case and
// the session is over for the player.
type RevealResult struct {
	Exploded  bool
	Proximity int
}

// Reveal uncovers the square at (x, y), computing and storing its
// proximity count. Only the target square changes; neighbouring
// squares are never uncovered or recomputed, so a zero-proximity
// reveal does not cascade.
func (f *MineField) Reveal(x, y int) (RevealResult, error) {
	if !f.grid.In(x, y) {
		return RevealResult{}, ErrOutOfBounds
	}
	sq := f.grid.at(x, y)
	if sq.Mine {
		return RevealResult{Exploded: true}, nil
	}
	if sq.State != Hidden {
		return RevealResult{}, ErrBadCellState
	}
	sq.Proximity = f.Proximity(x, y)
	sq.State = Revealed
	return RevealResult{Proximity: sq.Proximity}, nil
}

// Mark flags the square at (x, y). Only hidden squares can be
// flagged; there is no unflagging.
func (f *MineField) Mark(x, y int) error {
	if !f.grid.In(x, y) {
		return ErrOutOfBounds
	}
	sq := f.grid.at(x, y)
	if sq.State != Hidden {
		return ErrBadCellState
	}
	sq.State = Flagged
	return nil
}

// Won reports whether every mine is flagged. Non-mine squares do not
// matter for winning.
func (f *MineField) Won() bool {
	for _, row := range f.grid.Rows() {
		for _, sq := range row {
			if sq.Mine && sq.State != Flagged {
				return false
			}
		}
	}
	return true
}
