package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/NathanMoes/minechomp/model"
)

type GameServer struct {
	Config       Config
	GameSessions []*GameSession
	GameRequests chan GameRequest
	Upgrader     *websocket.Upgrader
}

type ResponseCode int

const (
	GAME_READY ResponseCode = iota + 1
	GAME_INVALID
)

const (
	HTTP_TIMEOUT    = http.StatusServiceUnavailable
	HTTP_SERVER_ERR = http.StatusInternalServerError
)

func (c ResponseCode) ToHttp() int {
	switch c {
	case GAME_READY:
		return http.StatusOK
	case GAME_INVALID:
		return http.StatusBadRequest
	default:
		return HTTP_SERVER_ERR
	}
}

// GameRequest asks the server loop for a fresh session of the given
// game.
type GameRequest struct {
	Kind                model.GameKind
	GameContextAwaiting chan GameContextAwaiting
}

type GameContextAwaiting struct {
	ResponseCode ResponseCode
	GameSession  *GameSession
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_ERR
	GS_OVER
)

// GameSession is one player against the engine. Exactly one of Mine
// and Chomp is set, per Kind.
type GameSession struct {
	ID    string
	State GameSessionState
	Kind  model.GameKind
	Mine  *model.MineField
	Chomp *model.ChompGame
	Score int

	Errors                chan struct{}
	Events                chan PlayerEvent
	PlayerConnectRequests chan PlayerConnectRequest

	Player *PlayerSession
}

type PlayerConnectRequest struct {
	Con      *websocket.Conn
	GameOver chan struct{}
}

type PlayerEvent struct {
	Message model.ClientMessage
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
)

type PlayerSession struct {
	State       PlayerSessionState
	GameSession *GameSession
	Conn        *websocket.Conn
	GameOver    chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
}
