package main

import "github.com/tanema/gween"

// Anim couples a running tween with what it drives on screen. onTick
// gets the tween's current value every frame; done callbacks fire
// once it finishes, after which any chained tween is scheduled.
type Anim struct {
	onTick  func(float32)
	done    []func()
	chained []func(g *Game)
}

func (a *Anim) whenDone(f func()) {
	a.done = append(a.done, f)
}

// chain schedules t to start when this anim finishes and returns the
// anim driving t, ready to be configured.
func (a *Anim) chain(t *gween.Tween) *Anim {
	next := &Anim{}
	a.chained = append(a.chained, func(g *Game) {
		g.Anims[t] = next
	})
	return next
}
