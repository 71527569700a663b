package server

import (
	"encoding/gob"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/NathanMoes/minechomp/model"
)

func NewGameServer(cfg Config) *GameServer {
	return &GameServer{
		Config:       cfg,
		GameSessions: make([]*GameSession, 0),
		GameRequests: make(chan GameRequest),
		Upgrader:     &websocket.Upgrader{},
	}
}

// HandleHTTPCall upgrades the connection to a websocket and parks it
// on a fresh game session until the game ends. The game is picked by
// the :game route segment, "mines" or "chomp".
func (s *GameServer) HandleHTTPCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		var kind model.GameKind
		switch way.Param(r.Context(), "game") {
		case "mines":
			kind = model.GameMinesweeper
		case "chomp":
			kind = model.GameChomp
		default:
			log.Warnf("HandleHTTPCall unknown game %q", way.Param(r.Context(), "game"))
			w.WriteHeader(GAME_INVALID.ToHttp())
			return
		}

		gcas := make(chan GameContextAwaiting)
		select {
		case s.GameRequests <- GameRequest{Kind: kind, GameContextAwaiting: gcas}:
		case <-time.After(timeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			if gca.ResponseCode != GAME_READY {
				w.WriteHeader(gca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warn("HandleHTTPCall GameContextAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		log.Printf("HandleHTTPCall session %s ready", gca.GameSession.ID)

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("HandleHTTPCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		gameOver := make(chan struct{})
		select {
		case gca.GameSession.PlayerConnectRequests <- PlayerConnectRequest{
			Con:      con,
			GameOver: gameOver}:
		case <-time.After(timeout):
			return
		}

		<-gameOver
	}
}

// Loop creates sessions on demand. Every request gets its own session
// since a game here is one player against the engine.
func (s *GameServer) Loop() {
	log.Printf("GameServer.Loop starting")
	for gameReq := range s.GameRequests {
		gs := s.newSession(gameReq.Kind)
		if gs == nil {
			gameReq.GameContextAwaiting <- GameContextAwaiting{ResponseCode: GAME_INVALID}
			continue
		}
		s.GameSessions = append(s.GameSessions, gs)
		go gs.Loop()
		gameReq.GameContextAwaiting <- GameContextAwaiting{
			ResponseCode: GAME_READY,
			GameSession:  gs,
		}
	}
}

func (s *GameServer) newSession(kind model.GameKind) *GameSession {
	gs := &GameSession{
		ID:                    uuid.NewString(),
		State:                 GS_NEW,
		Kind:                  kind,
		Errors:                make(chan struct{}),
		Events:                make(chan PlayerEvent),
		PlayerConnectRequests: make(chan PlayerConnectRequest),
	}
	w, h := s.Config.BoardWidth, s.Config.BoardHeight
	switch kind {
	case model.GameMinesweeper:
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		gs.Mine = model.NewMineField(w, h, rng)
		gs.Mine.PlaceMines(w * h / 10)
	case model.GameChomp:
		gs.Chomp = model.NewChompGame(w, h)
	default:
		return nil
	}
	log.Infof("created %s session %s (%dx%d)", kindName(kind), gs.ID, w, h)
	return gs
}

func kindName(kind model.GameKind) string {
	switch kind {
	case model.GameMinesweeper:
		return "minesweeper"
	case model.GameChomp:
		return "chomp"
	default:
		return "unknown"
	}
}

func (gs *GameSession) Loop() {
	log.Infof("GameSession.Loop start %s", gs.ID)
	for {
		select {
		case pcr := <-gs.PlayerConnectRequests:
			gs.addPlayer(pcr.Con, pcr.GameOver)
			gs.State = GS_PLAY
			gs.Player.State = PS_PLAY
			gs.Player.MessagesToSend <- gs.MakeGameSetupMessage()
		case <-gs.Errors:
			log.Warnf("killing session %s", gs.ID)
			gs.State = GS_ERR
			if gs.Player != nil {
				gs.Player.State = PS_ERR
				close(gs.Player.GameOver)
			}
			return
		case pe := <-gs.Events:
			if gs.State != GS_PLAY {
				continue
			}
			result, over := gs.Turn(pe.Message)
			gs.Player.MessagesToSend <- model.ServerMessage{
				Results: []model.MoveResult{result},
			}
			if over {
				gs.State = GS_OVER
				gs.Player.State = PS_OVER
				log.Infof("session %s over, score %d", gs.ID, gs.Score)
				close(gs.Player.GameOver)
				return
			}
		}
	}
}

// Turn applies one player move and, for chomp, the engine's reply.
// The second return value reports whether the session ended.
func (gs *GameSession) Turn(cm model.ClientMessage) (model.MoveResult, bool) {
	switch gs.Kind {
	case model.GameMinesweeper:
		return gs.minesTurn(cm)
	case model.GameChomp:
		return gs.chompTurn(cm)
	}
	return model.MoveResult{Rejected: true, Reason: "no game"}, true
}

func (gs *GameSession) minesTurn(cm model.ClientMessage) (model.MoveResult, bool) {
	result := model.MoveResult{Action: cm.Action, X: cm.X, Y: cm.Y}
	switch cm.Action {
	case model.ActionReveal:
		// a reveal is never applied to a mine square; losing is
		// detected first and the board stays as the player left it
		if gs.Mine.IsMine(cm.X, cm.Y) {
			result.Exploded = true
			result.PlayerLost = true
			result.Board = model.RenderMineField(gs.Mine)
			return result, true
		}
		res, err := gs.Mine.Reveal(cm.X, cm.Y)
		if err != nil {
			result.Rejected = true
			result.Reason = err.Error()
			return result, false
		}
		gs.Score++
		result.Proximity = res.Proximity
	case model.ActionMark:
		if err := gs.Mine.Mark(cm.X, cm.Y); err != nil {
			result.Rejected = true
			result.Reason = err.Error()
			return result, false
		}
	case model.ActionRaiseDifficulty:
		result.MinesAdded = gs.Mine.RaiseDifficulty()
	default:
		result.Rejected = true
		result.Reason = "action not valid for minesweeper"
		return result, false
	}
	result.Won = gs.Mine.Won()
	result.Board = model.RenderMineField(gs.Mine)
	return result, result.Won
}

func (gs *GameSession) chompTurn(cm model.ClientMessage) (model.MoveResult, bool) {
	result := model.MoveResult{Action: cm.Action, X: cm.X, Y: cm.Y}
	if cm.Action != model.ActionChomp {
		result.Rejected = true
		result.Reason = "action not valid for chomp"
		return result, false
	}
	if !gs.Chomp.Playable(cm.X, cm.Y) || !gs.Chomp.Chomp(cm.X, cm.Y) {
		result.Rejected = true
		result.Reason = "cell not playable"
		return result, false
	}
	gs.Score++
	if cm.X == 0 && cm.Y == 0 {
		// the player ate the poisoned cell; the engine never gets to
		// reply
		result.PlayerLost = true
		result.Board = model.RenderChomp(gs.Chomp)
		return result, true
	}

	mv := gs.Chomp.AIMove()
	if mv.Defeated {
		result.EngineDefeated = true
		result.Won = true
		result.Board = model.RenderChomp(gs.Chomp)
		return result, true
	}
	result.EngineX = mv.X
	result.EngineY = mv.Y
	result.EngineForced = mv.Kind == model.ForcedWin
	result.Board = model.RenderChomp(gs.Chomp)
	if gs.Chomp.Lost() {
		// only the poisoned cell is left for the player
		result.PlayerLost = true
		return result, true
	}
	return result, false
}

func (gs *GameSession) addPlayer(conn *websocket.Conn, gameOver chan struct{}) {
	ps := &PlayerSession{
		State:          PS_NEW,
		GameSession:    gs,
		Conn:           conn,
		GameOver:       gameOver,
		MessagesToSend: make(chan model.ServerMessage, 10),
	}
	conn.SetPingHandler(func(message string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
		if err == websocket.ErrCloseSent {
			return nil
		}
		return err
	})
	go ps.LoopChannelRead()
	go ps.LoopChannelWrite()
	gs.Player = ps
}

func (gs *GameSession) MakeGameSetupMessage() model.ServerMessage {
	setup := model.Setup{
		Game:      gs.Kind,
		SessionID: gs.ID,
	}
	switch gs.Kind {
	case model.GameMinesweeper:
		setup.Cols = gs.Mine.Width()
		setup.Rows = gs.Mine.Height()
		setup.Mines = gs.Mine.Mines()
	case model.GameChomp:
		setup.Cols = gs.Chomp.Width()
		setup.Rows = gs.Chomp.Height()
	}
	return model.ServerMessage{Setup: []model.Setup{setup}}
}

func (ps *PlayerSession) LoopChannelRead() {
loop:
	for {
		_, r, err := ps.Conn.NextReader()
		if err != nil {
			if ps.State == PS_OVER {
				break loop
			}
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			ps.State = PS_ERR
			ps.GameSession.Errors <- struct{}{}
			break loop
		}
		dec := gob.NewDecoder(r)
		cm := &model.ClientMessage{}
		if err := dec.Decode(cm); err != nil {
			log.Warn("cant decode")
			ps.State = PS_ERR
			ps.GameSession.Errors <- struct{}{}
			break loop
		}
		ps.DebugLastMessage = time.Now()
		ps.DebugInMessages++

		select {
		case ps.GameSession.Events <- PlayerEvent{Message: *cm}:
		default:
			log.Warnf("dropping move, GameSession.Events full")
		}
	}
	log.Printf("LoopChannelRead ENDED")
}

// this function only consumes. no worries about full buffer stuck
func (ps *PlayerSession) LoopChannelWrite() {
loop:
	for {
		select {
		case mes := <-ps.MessagesToSend:
			if ps.State == PS_ERR {
				break loop
			}
			w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
			if err != nil {
				log.Warnf("LoopChannelWrite cant get writer %v", err)
				break loop
			}
			enc := gob.NewEncoder(w)
			if err := enc.Encode(mes); err != nil {
				log.Warnf("LoopChannelWrite cant encode %v", err)
				break loop
			}
			if err := w.Close(); err != nil {
				log.Warnf("LoopChannelWrite cant flush %v", err)
				break loop
			}
			ps.DebugOutMessages++
		case <-ps.GameOver:
			// drain what is left, then stop
			for {
				select {
				case mes := <-ps.MessagesToSend:
					if w, err := ps.Conn.NextWriter(websocket.BinaryMessage); err == nil {
						_ = gob.NewEncoder(w).Encode(mes)
						_ = w.Close()
					}
				default:
					break loop
				}
			}
		}
	}
	log.Printf("LoopChannelWrite ENDED")
}
