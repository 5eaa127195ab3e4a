package main

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"sousvide/server"
	"sousvide/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	st, err := store.Open(server.Cfg.DBPath)
	if err != nil {
		log.Error("open store, running without persistence: ", err)
		st = nil
	}
	s := server.NewServer(server.Cfg.Addr, upgrader, st)
	s.Serve()
}
