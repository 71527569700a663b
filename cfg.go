package main

import (
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const fontFile = "Teko-Light.ttf"

// loadFont prefers the bundled ttf and falls back to the fixed
// bitmap face so the client still runs without assets on disk.
func loadFont() font.Face {
	dat, err := os.ReadFile(fontFile)
	if err != nil {
		return basicfont.Face7x13
	}
	tt, err := truetype.Parse(dat)
	if err != nil {
		return basicfont.Face7x13
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    28,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// flatTile returns a solid square image to be tinted per cell via
// ColorM when drawn.
func flatTile(px int) *ebiten.Image {
	img, _ := ebiten.NewImage(px, px, ebiten.FilterDefault)
	_ = img.Fill(color.White)
	return img
}
