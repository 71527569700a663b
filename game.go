package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"github.com/NathanMoes/minechomp/model"
)

const (
	size = 40
)

var cols = 10
var rows = 10
var screenWidth = cols * size
var screenHeight = rows * size

type GameState int

const (
	PLAYING GameState = iota + 1
	EXPLODING
	GAME_OVER
	WON
)

func (s GameState) Name() string {
	switch s {
	case PLAYING:
		return "PLAYING"
	case EXPLODING:
		return "BOOM"
	case GAME_OVER:
		return "GAME OVER"
	case WON:
		return "YOU WON"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Game struct {
	State GameState
	Field *model.MineField
	Anims map[*gween.Tween]*Anim

	// per-cell reveal fade, keyed by (x, y)
	reveals map[[2]int]float64
	flash   float64
}

var theGame *Game

var tileImage *ebiten.Image
var Font font.Face

func init() {
	rand.Seed(time.Now().UnixNano())

	tileImage = flatTile(size)
	Font = loadFont()

	field := model.NewMineField(cols, rows, rand.New(rand.NewSource(time.Now().UnixNano())))
	field.PlaceMines(cols * rows / 10)

	theGame = &Game{
		State:   PLAYING,
		Field:   field,
		Anims:   make(map[*gween.Tween]*Anim),
		reveals: make(map[[2]int]float64),
	}
}

func cellAt(px, py int) (int, int) {
	return px / size, py / size
}

func (g *Game) reveal(x, y int) {
	if g.Field.IsMine(x, y) {
		g.explode()
		return
	}
	if _, err := g.Field.Reveal(x, y); err != nil {
		return
	}
	key := [2]int{x, y}
	g.reveals[key] = 0
	t := gween.New(0, 1, 0.3, ease.Linear)
	g.Anims[t] = &Anim{onTick: func(v float32) {
		g.reveals[key] = float64(v)
	}}
}

// explode flashes the board and then settles into game over, mines
// shown.
func (g *Game) explode() {
	g.State = EXPLODING
	flashUp := gween.New(0, 1, 0.15, ease.Linear)
	up := &Anim{onTick: func(v float32) {
		g.flash = float64(v)
	}}
	down := up.chain(gween.New(1, 0, 0.4, ease.Linear))
	down.onTick = up.onTick
	down.whenDone(func() {
		g.State = GAME_OVER
	})
	g.Anims[flashUp] = up
}

func (g *Game) mark(x, y int) {
	if g.Field.Mark(x, y) != nil {
		return
	}
	if g.Field.Won() {
		g.State = WON
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	for t, a := range g.Anims {
		curr, finished := t.Update(0.02)
		if a.onTick != nil {
			a.onTick(curr)
		}
		if finished {
			for _, done := range a.done {
				done()
			}
			for _, chained := range a.chained {
				chained(g)
			}
			delete(g.Anims, t)
		}
	}

	if g.State == PLAYING {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := cellAt(ebiten.CursorPosition())
			g.reveal(x, y)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			x, y := cellAt(ebiten.CursorPosition())
			g.mark(x, y)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyD) {
			g.Field.RaiseDifficulty()
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if e := screen.Fill(color.RGBA{70, 70, 70, 255}); e != nil {
		log.Printf("%v", e)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sq, ok := g.Field.Square(x, y)
			if !ok {
				continue
			}
			g.drawSquare(screen, x, y, sq)
		}
	}

	if g.flash > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(screenWidth)/size, float64(screenHeight)/size)
		op.ColorM.Scale(1, 0.3, 0.1, g.flash*0.6)
		screen.DrawImage(tileImage, op)
	}

	ebitenutil.DebugPrintAt(screen, g.State.Name(), 4, 0)

	return nil
}

func (g *Game) drawSquare(screen *ebiten.Image, x int, y int, sq model.Square) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(.92, .92)
	op.GeoM.Translate(float64(x*size), float64(y*size))

	showMine := sq.Mine && (g.State == GAME_OVER || g.State == EXPLODING)
	switch {
	case showMine:
		op.ColorM.Scale(0.9, 0.2, 0.1, 1)
	case sq.State == model.Flagged:
		op.ColorM.Scale(0.9, 0.7, 0.1, 1)
	case sq.State == model.Revealed:
		alpha := 1.0
		if v, ok := g.reveals[[2]int{x, y}]; ok {
			alpha = v
		}
		op.ColorM.Scale(0.8, 0.8, 0.8, 0.3+0.7*alpha)
	default:
		op.ColorM.Scale(0.25, 0.25, 0.3, 1)
	}
	screen.DrawImage(tileImage, op)

	if sq.State == model.Revealed && !sq.Mine && sq.Proximity > 0 {
		label := fmt.Sprintf("%d", sq.Proximity)
		text.Draw(screen, label, Font, x*size+size/2-5, y*size+size/2+8, color.White)
	}
	if showMine {
		text.Draw(screen, "*", Font, x*size+size/2-5, y*size+size/2+10, color.Black)
	}
}

func main() {
	if err := ebiten.Run(theGame.update, screenWidth, screenHeight, 1, "Minesweeper"); err != nil {
		log.Fatal(err)
	}
}
