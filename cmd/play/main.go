package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/NathanMoes/minechomp/model"
)

const (
	MAX_WIDTH  = 99
	MAX_HEIGHT = 99
)

func main() {
	rl, err := readline.New("> ")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer rl.Close()

	fmt.Println("Welcome! Pick a game:")
	for {
		choice, err := prompt(rl, "1. Minesweeper\n2. Chomp\n")
		if err != nil {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			runMinesweeper(rl)
			return
		case "2":
			runChomp(rl)
			return
		default:
			fmt.Println("Invalid input. Please enter 1 or 2.")
		}
	}
}

func runMinesweeper(rl *readline.Instance) {
	fmt.Println("Note that all mines MUST be marked as flagged in order to win the game")
	width := promptSize(rl, "Enter the width you wish for the board\n", MAX_WIDTH)
	if width == 0 {
		return
	}
	height := promptSize(rl, "Enter the height you wish for the board\n", MAX_HEIGHT)
	if height == 0 {
		return
	}

	field := model.NewMineField(width, height, rand.New(rand.NewSource(time.Now().UnixNano())))
	field.PlaceMines(width * height / 10)
	fmt.Print(model.RenderMineField(field))

	score := 0
	for {
		if field.Won() {
			fmt.Println("You won!")
			break
		}

		action, err := prompt(rl, "What would you like to do?\n1. Mark/Flag a spot\n2. Select a spot\n3. Raise difficulty\n")
		if err != nil {
			break
		}
		switch strings.TrimSpace(action) {
		case "1":
			for {
				x, y, err := promptCoord(rl, width, height)
				if err != nil {
					fmt.Println(err)
					continue
				}
				if err := field.Mark(x, y); err != nil {
					fmt.Println("Invalid square to mark. Please try again.")
					continue
				}
				break
			}
			fmt.Printf("Board after your mark:\n%s", model.RenderMineField(field))
		case "2":
			lost := false
			for {
				x, y, err := promptCoord(rl, width, height)
				if err != nil {
					fmt.Println(err)
					continue
				}
				if field.IsMine(x, y) {
					lost = true
					break
				}
				if _, err := field.Reveal(x, y); err != nil {
					fmt.Println("Invalid move")
					continue
				}
				score++
				break
			}
			if lost {
				fmt.Println("You lose")
				fmt.Printf("Your score is %d\n", score)
				return
			}
			fmt.Printf("Board after your move:\n%s", model.RenderMineField(field))
		case "3":
			added := field.RaiseDifficulty()
			fmt.Printf("Added %d mines.\n", added)
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
	fmt.Printf("Your score is %d\n", score)
}

func runChomp(rl *readline.Instance) {
	fmt.Println("Chomp: whoever eats the top-left cell loses. You move first.")
	width := promptSize(rl, "Enter the width you wish for the board\n", MAX_WIDTH)
	if width == 0 {
		return
	}
	height := promptSize(rl, "Enter the height you wish for the board\n", MAX_HEIGHT)
	if height == 0 {
		return
	}

	game := model.NewChompGame(width, height)
	fmt.Print(model.RenderChomp(game))

	for {
		x, y, err := promptCoord(rl, width, height)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if !game.Playable(x, y) {
			fmt.Println("That cell is already eaten. Please try again.")
			continue
		}
		game.Chomp(x, y)
		fmt.Printf("Board after your move:\n%s", model.RenderChomp(game))
		if x == 0 && y == 0 {
			fmt.Println("You ate the poisoned cell. You lose")
			return
		}

		mv := game.AIMove()
		if mv.Defeated {
			fmt.Println("Nothing left for me but the poisoned cell. You won!")
			return
		}
		how := "greedy"
		if mv.Kind == model.ForcedWin {
			how = "forced"
		}
		fmt.Printf("I eat %c%d (%s).\n", 'a'+rune(mv.Y), mv.X+1, how)
		fmt.Print(model.RenderChomp(game))

		if game.Lost() {
			fmt.Println("Only the poisoned cell is left for you. You lose")
			return
		}
	}
}

func prompt(rl *readline.Instance, text string) (string, error) {
	rl.SetPrompt(text)
	return rl.Readline()
}

// promptSize keeps asking until a board dimension between 1 and max
// comes back. Returns 0 when input is closed.
func promptSize(rl *readline.Instance, text string, max int) int {
	for {
		line, err := prompt(rl, text)
		if err != nil {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			fmt.Println("Invalid input. Please enter a valid number.")
		case n < 1:
			fmt.Println("Value must be greater than 0")
		case n > max:
			fmt.Printf("Value must be less than %d\n", max)
		default:
			return n
		}
	}
}

// promptCoord asks for a row letter and a 1-based column number and
// translates them to grid coordinates.
func promptCoord(rl *readline.Instance, width, height int) (x, y int, err error) {
	row, err := prompt(rl, "Enter row selection (must be char): ")
	if err != nil {
		return 0, 0, err
	}
	row = strings.TrimSpace(row)
	if len(row) != 1 || row[0] < 'a' || row[0] > 'z' {
		return 0, 0, errors.New("Invalid row selection. Please enter a character from 'a' to 'z'.")
	}
	y = int(row[0] - 'a')

	col, err := prompt(rl, "Enter column selection (must be num): ")
	if err != nil {
		return 0, 0, err
	}
	n, aerr := strconv.Atoi(strings.TrimSpace(col))
	if aerr != nil || n < 1 {
		return 0, 0, errors.New("Invalid column selection. Please enter a positive number.")
	}
	x = n - 1

	if y >= height {
		return 0, 0, errors.New("Row selected is out of bounds")
	}
	if x >= width {
		return 0, 0, errors.New("Column selected is out of bounds")
	}
	return x, y, nil
}
