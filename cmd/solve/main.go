package main

import (
	"flag"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/NathanMoes/minechomp/model"
)

// Runs the chomp search over a full board and reports the move and
// how long the tree walk took. Useful for sizing boards the server
// can afford, since the search clones the position at every node.
func main() {
	width := flag.Int("width", 4, "board width")
	height := flag.Int("height", 4, "board height")
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	game := model.NewChompGame(*width, *height)

	start := time.Now()
	x, y, ok := game.WinningMove()
	elapsed := time.Since(start)

	if ok {
		log.Infof("%dx%d: forced win at (%d, %d) in %s", *width, *height, x, y, elapsed)
	} else {
		log.Infof("%dx%d: no forced win, searched %s", *width, *height, elapsed)
		if x, y, ok := game.SmallestChomp(); ok {
			log.Infof("greedy fallback would take (%d, %d)", x, y)
		}
	}
}
