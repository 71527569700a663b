package model

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMineField(t *testing.T) {
	f := NewMineField(3, 2, rand.New(rand.NewSource(1)))
	mineAt(f, 0, 0)
	require.NoError(t, f.Mark(0, 0))
	_, err := f.Reveal(1, 1)
	require.NoError(t, err)

	out := RenderMineField(f)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "1")
	assert.Contains(t, lines[0], "3")
	assert.True(t, strings.HasPrefix(lines[1], "a "))
	assert.True(t, strings.HasPrefix(lines[2], "b "))
	assert.Contains(t, lines[1], string(rune(flagSquare)))
	assert.Contains(t, lines[2], "1") // revealed proximity next to the mine
}

func TestRenderChomp(t *testing.T) {
	c := NewChompGame(3, 3)
	c.Chomp(2, 2)

	out := RenderChomp(c)
	assert.Contains(t, out, "#")
	assert.Contains(t, out, ".")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Count(lines[3], "."), 1)
}
