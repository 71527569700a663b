package model

// Wire types exchanged between server and clients, gob encoded over
// the websocket.

type GameKind int

const (
	GameMinesweeper GameKind = iota + 1
	GameChomp
)

type ActionKind int

const (
	ActionReveal ActionKind = iota + 1
	ActionMark
	ActionChomp
	ActionRaiseDifficulty
)

// ClientMessage is one move request from the player.
type ClientMessage struct {
	Action ActionKind
	X, Y   int
}

// ServerMessage carries everything the server has to say after a
// connection or a move. Slices stay empty when the section does not
// apply.
type ServerMessage struct {
	Setup   []Setup
	Results []MoveResult
}

// Setup is sent once when a session starts.
type Setup struct {
	Game      GameKind
	SessionID string
	Cols      int
	Rows      int
	Mines     int
}

// MoveResult reports the outcome of a single move. For chomp moves
// the engine's reply is included; EngineDefeated set means the player
// has won the session.
type MoveResult struct {
	Action    ActionKind
	X, Y      int
	Rejected  bool
	Reason    string
	Proximity int
	Exploded  bool
	Won       bool

	MinesAdded int

	EngineX        int
	EngineY        int
	EngineForced   bool
	EngineDefeated bool
	PlayerLost     bool

	Board string
}
