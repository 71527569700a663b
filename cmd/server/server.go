package main

import (
	"net/http"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/NathanMoes/minechomp/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func main() {
	cfg := server.LoadConfig()
	srv := Server{
		GameServer: server.NewGameServer(cfg),
	}
	go srv.GameServer.Loop()
	srv.routes()
	log.Printf("listening on :%s", cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, srv.router))
}
