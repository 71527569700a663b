package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testField(w, h int) *MineField {
	return NewMineField(w, h, rand.New(rand.NewSource(1)))
}

// mineAt forces a mine onto a known square so tests do not depend on
// the random placement.
func mineAt(f *MineField, x, y int) {
	f.grid.at(x, y).Mine = true
}

func TestPlaceMinesExactCount(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		count int
	}{
		{"sparse", 10, 10, 10},
		{"single", 5, 5, 1},
		{"dense", 4, 4, 15},
		{"full", 3, 3, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := testField(tt.w, tt.h)
			f.PlaceMines(tt.count)
			assert.Equal(t, tt.count, f.Mines())
		})
	}
}

func TestRaiseDifficultyAddsTenthPerCall(t *testing.T) {
	f := testField(10, 10)
	assert.Equal(t, 10, f.RaiseDifficulty())
	assert.Equal(t, 10, f.Mines())
	assert.Equal(t, 10, f.RaiseDifficulty())
	assert.Equal(t, 20, f.Mines())
}

func TestProximitySingleMine(t *testing.T) {
	f := testField(5, 5)
	mineAt(f, 2, 2)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := 0
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				want = 1
			}
			assert.Equal(t, want, f.Proximity(x, y), "at (%d, %d)", x, y)
		}
	}
}

func TestProximityClipsAtEdges(t *testing.T) {
	f := testField(3, 3)
	mineAt(f, 0, 0)
	assert.Equal(t, 1, f.Proximity(0, 0))
	assert.Equal(t, 1, f.Proximity(1, 1))
	assert.Equal(t, 0, f.Proximity(2, 2))
}

func TestRevealSetsStateAndProximity(t *testing.T) {
	f := testField(5, 5)
	mineAt(f, 0, 0)

	res, err := f.Reveal(1, 1)
	require.NoError(t, err)
	assert.False(t, res.Exploded)
	assert.Equal(t, f.Proximity(1, 1), res.Proximity)

	sq, _ := f.Square(1, 1)
	assert.Equal(t, Revealed, sq.State)
	assert.Equal(t, 1, sq.Proximity)
}

// A reveal changes exactly one square. Neighbours stay hidden and
// their proximity stays uncomputed even when the revealed square has
// zero mines around it.
func TestRevealDoesNotCascade(t *testing.T) {
	f := testField(5, 5)

	res, err := f.Reveal(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Proximity)

	changed := 0
	f.grid.Each(func(x, y int, sq *Square) {
		if sq.State != Hidden || sq.Proximity != -1 {
			changed++
			assert.Equal(t, 2, x)
			assert.Equal(t, 2, y)
		}
	})
	assert.Equal(t, 1, changed)
}

func TestRevealMineExplodesWithoutMutation(t *testing.T) {
	f := testField(3, 3)
	mineAt(f, 1, 1)

	res, err := f.Reveal(1, 1)
	require.NoError(t, err)
	assert.True(t, res.Exploded)

	sq, _ := f.Square(1, 1)
	assert.Equal(t, Hidden, sq.State)
}

func TestRevealRejections(t *testing.T) {
	f := testField(3, 3)
	_, err := f.Reveal(5, 5)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	require.NoError(t, f.Mark(0, 0))
	_, err = f.Reveal(0, 0)
	assert.ErrorIs(t, err, ErrBadCellState)

	_, err = f.Reveal(1, 1)
	require.NoError(t, err)
	_, err = f.Reveal(1, 1)
	assert.ErrorIs(t, err, ErrBadCellState)
}

func TestMarkRequiresHidden(t *testing.T) {
	f := testField(3, 3)

	require.NoError(t, f.Mark(0, 0))
	sq, _ := f.Square(0, 0)
	assert.Equal(t, Flagged, sq.State)

	assert.ErrorIs(t, f.Mark(0, 0), ErrBadCellState)

	_, err := f.Reveal(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, f.Mark(2, 2), ErrBadCellState)

	assert.ErrorIs(t, f.Mark(-1, 0), ErrOutOfBounds)
}

func TestWonRequiresEveryMineFlagged(t *testing.T) {
	f := testField(4, 4)
	mines := [][2]int{{0, 0}, {3, 1}, {2, 3}}
	for _, m := range mines {
		mineAt(f, m[0], m[1])
	}

	assert.False(t, f.Won())

	for i, m := range mines {
		require.NoError(t, f.Mark(m[0], m[1]))
		if i < len(mines)-1 {
			assert.False(t, f.Won())
		}
	}
	assert.True(t, f.Won())
}

func TestWonIgnoresNonMineState(t *testing.T) {
	f := testField(3, 3)
	mineAt(f, 1, 1)
	require.NoError(t, f.Mark(1, 1))
	require.NoError(t, f.Mark(0, 0)) // wrong flag, irrelevant
	assert.True(t, f.Won())
}
