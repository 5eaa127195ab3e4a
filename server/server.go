package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"sousvide/history"
	"sousvide/model"
	"sousvide/store"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	st       *store.Store
	hist     *history.Ring
}

// NewServer wires the websocket endpoint to the cook model. st may be nil;
// the server then runs without persistence.
func NewServer(addr string, upgrader websocket.Upgrader, st *store.Store) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		st:       st,
		hist:     history.New(Cfg.HistorySize),
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer conn.Close()
	activeConnections.Inc()
	defer activeConnections.Dec()

	hub := NewHub(s.st, s.hist)
	hub.conn = conn
	go hub.handleRequest()
	go hub.handleResponse()
	defer close(hub.done)

	log.Info("client connected: ", conn.RemoteAddr())
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.Info("client gone: ", err)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", s.serveWs)
	http.Handle("/metrics", promhttp.Handler())
	log.Info("listening on ", s.addr)
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
