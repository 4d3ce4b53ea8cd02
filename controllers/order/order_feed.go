package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Stas75687876/verceldingsdabumsda/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	feedMu      sync.Mutex
	feedClients = make(map[*websocket.Conn]bool)
)

// OrderFeedHandler upgrades GET /api/orders/ws to a websocket. Connected
// admin panels receive every new order and status change as JSON.
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	feedMu.Lock()
	feedClients[conn] = true
	feedMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feedMu.Lock()
			delete(feedClients, conn)
			feedMu.Unlock()
			break
		}
	}
}

// BroadcastOrder pushes an order to all connected admin panels. Write
// failures drop the client; it reconnects on its own.
func BroadcastOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	feedMu.Lock()
	defer feedMu.Unlock()
	for client := range feedClients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(feedClients, client)
		}
	}
}
