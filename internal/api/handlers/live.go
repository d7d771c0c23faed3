package handlers

import (
	"log"
	"net/http"

	"github.com/dom/rift-companion/internal/live"
	ws "github.com/gorilla/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type LiveHandler struct {
	hub *live.Hub
}

func NewLiveHandler(hub *live.Hub) *LiveHandler {
	return &LiveHandler{hub: hub}
}

// Handle upgrades the request and starts a live assistant session. The first
// message on the socket is SESSION with the session ID.
func (h *LiveHandler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [live.Handle] upgrade failed: %v", err)
		return
	}

	client := live.NewClient(h.hub, conn)
	if !h.hub.Register(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.RunTimers()

	msg, err := live.NewMessage(live.MessageTypeSession, live.SessionPayload{SessionID: client.SessionID().String()})
	if err == nil {
		client.Send(msg)
	}

	go client.ReadPump()
}
