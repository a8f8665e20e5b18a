package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"devapi/internal/domain"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins (shell webview, localhost, etc)
	},
}

const statusInterval = 2 * time.Second

// handleConnect streams status frames to the spawning shell so it can watch
// liveness without polling the JSON endpoints.
func (a *Api) handleConnect(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Print("api: upgrade:", err)
		return
	}
	defer c.Close()

	if err := c.WriteJSON(a.statusFrame()); err != nil {
		return
	}

	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := c.WriteJSON(a.statusFrame()); err != nil {
			return // client went away, close connection
		}
	}
}

func (a *Api) statusFrame() domain.StatusFrame {
	return domain.StatusFrame{
		APIName:          a.ctx.Config.APIName,
		Status:           "ok",
		UptimeSec:        int64(time.Since(a.startedAt).Seconds()),
		NumericAvailable: a.caps.Available("numeric"),
		RecordsAvailable: a.caps.Available("records"),
		DatasetSize:      len(a.data.Sequence()),
	}
}
