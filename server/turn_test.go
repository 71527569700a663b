package server

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NathanMoes/minechomp/model"
)

func minesSession(w, h int) *GameSession {
	return &GameSession{
		State: GS_PLAY,
		Kind:  model.GameMinesweeper,
		Mine:  model.NewMineField(w, h, rand.New(rand.NewSource(1))),
	}
}

func chompSession(w, h int) *GameSession {
	return &GameSession{
		State: GS_PLAY,
		Kind:  model.GameChomp,
		Chomp: model.NewChompGame(w, h),
	}
}

func TestMinesTurnReveal(t *testing.T) {
	gs := minesSession(5, 5)
	gs.Mine.PlaceMines(1)
	var cx, cy int
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if !gs.Mine.IsMine(x, y) {
				cx, cy = x, y
			}
		}
	}
	want := gs.Mine.Proximity(cx, cy)
	result, over := gs.Turn(model.ClientMessage{Action: model.ActionReveal, X: cx, Y: cy})
	assert.False(t, over)
	assert.False(t, result.Rejected)
	assert.Equal(t, want, result.Proximity)
	assert.Equal(t, 1, gs.Score)
	assert.NotEmpty(t, result.Board)
}

func TestMinesTurnRevealRejected(t *testing.T) {
	gs := minesSession(5, 5)
	gs.Mine.PlaceMines(1)
	result, over := gs.Turn(model.ClientMessage{Action: model.ActionReveal, X: 9, Y: 9})
	assert.False(t, over)
	assert.True(t, result.Rejected)
	assert.Equal(t, 0, gs.Score)
}

func TestMinesTurnExplosionEndsSession(t *testing.T) {
	gs := minesSession(5, 5)
	gs.Mine.PlaceMines(1)
	var mx, my int
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if gs.Mine.IsMine(x, y) {
				mx, my = x, y
			}
		}
	}
	result, over := gs.Turn(model.ClientMessage{Action: model.ActionReveal, X: mx, Y: my})
	assert.True(t, over)
	assert.True(t, result.Exploded)
	assert.True(t, result.PlayerLost)
}

func TestMinesTurnMarkWins(t *testing.T) {
	gs := minesSession(5, 5)
	gs.Mine.PlaceMines(1)
	var mx, my int
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if gs.Mine.IsMine(x, y) {
				mx, my = x, y
			}
		}
	}
	result, over := gs.Turn(model.ClientMessage{Action: model.ActionMark, X: mx, Y: my})
	assert.True(t, over)
	assert.True(t, result.Won)
}

func TestMinesTurnRaiseDifficulty(t *testing.T) {
	gs := minesSession(10, 10)
	result, over := gs.Turn(model.ClientMessage{Action: model.ActionRaiseDifficulty})
	assert.False(t, over)
	assert.Equal(t, 10, result.MinesAdded)
	assert.Equal(t, 10, gs.Mine.Mines())
}

func TestChompTurnEngineReplies(t *testing.T) {
	gs := chompSession(3, 3)
	result, over := gs.Turn(model.ClientMessage{Action: model.ActionChomp, X: 2, Y: 2})
	assert.False(t, result.Rejected)
	assert.False(t, gs.Chomp.Playable(2, 2))
	if !over {
		assert.False(t, gs.Chomp.Playable(result.EngineX, result.EngineY))
	}
}

func TestChompTurnRejectsEatenCell(t *testing.T) {
	gs := chompSession(3, 3)
	gs.Chomp.Chomp(1, 1)
	result, over := gs.Turn(model.ClientMessage{Action: model.ActionChomp, X: 1, Y: 1})
	assert.False(t, over)
	assert.True(t, result.Rejected)
}

func TestChompTurnPoisonedCellEndsSession(t *testing.T) {
	gs := chompSession(2, 2)
	result, over := gs.Turn(model.ClientMessage{Action: model.ActionChomp, X: 0, Y: 0})
	assert.True(t, over)
	assert.True(t, result.PlayerLost)
	assert.False(t, result.EngineDefeated)
	assert.False(t, result.Rejected)
}

func TestChompTurnEngineConcedes(t *testing.T) {
	gs := chompSession(3, 3)
	gs.Chomp.Chomp(1, 0)
	gs.Chomp.Chomp(2, 1)
	// eating the rest of column 0 below the poison leaves the engine
	// only (0, 0)
	result, over := gs.Turn(model.ClientMessage{Action: model.ActionChomp, X: 0, Y: 1})
	assert.True(t, over)
	assert.True(t, result.EngineDefeated)
	assert.True(t, result.Won)
}
