package model

import (
	"fmt"
	"strings"
)

const (
	hiddenSquare = '◻' // ◻
	flagSquare   = '\U0001F6A9'
)

// RenderMineField formats the board for the console: 1-based column
// numbers across the top, letter row labels down the side. Hidden
// squares draw as boxes unless a proximity count was ever stored for
// them, flags draw as flags, and revealed squares show their count
// (or * for a mine shown at game over).
func RenderMineField(f *MineField) string {
	var b strings.Builder
	b.WriteString(" ")
	for i := 0; i < f.Width(); i++ {
		if i >= 10 {
			fmt.Fprintf(&b, "%d  ", i+1)
		} else {
			fmt.Fprintf(&b, " %d  ", i+1)
		}
	}
	b.WriteString("\n")

	for y := 0; y < f.Height(); y++ {
		fmt.Fprintf(&b, "%c ", 'a'+rune(y))
		for x := 0; x < f.Width(); x++ {
			if x > 0 {
				b.WriteString(" | ")
			}
			sq, _ := f.Square(x, y)
			switch sq.State {
			case Hidden:
				if sq.Proximity != -1 {
					fmt.Fprintf(&b, "%d", sq.Proximity)
				} else {
					b.WriteRune(hiddenSquare)
				}
			case Revealed:
				if sq.Mine {
					b.WriteString("*")
				} else {
					fmt.Fprintf(&b, "%d", sq.Proximity)
				}
			case Flagged:
				b.WriteRune(flagSquare)
			}
		}
		b.WriteString(" |\n")
	}
	return b.String()
}

// RenderChomp formats the chomp board, # for cells still on the board
// and . for eaten ones, with the same coordinate labels as the
// minefield so move input works identically for both games.
func RenderChomp(c *ChompGame) string {
	var b strings.Builder
	b.WriteString(" ")
	for i := 0; i < c.Width(); i++ {
		if i >= 10 {
			fmt.Fprintf(&b, "%d  ", i+1)
		} else {
			fmt.Fprintf(&b, " %d  ", i+1)
		}
	}
	b.WriteString("\n")

	for y := 0; y < c.Height(); y++ {
		fmt.Fprintf(&b, "%c ", 'a'+rune(y))
		for x := 0; x < c.Width(); x++ {
			if x > 0 {
				b.WriteString(" | ")
			}
			if c.Playable(x, y) {
				b.WriteString("#")
			} else {
				b.WriteString(".")
			}
		}
		b.WriteString(" |\n")
	}
	return b.String()
}
