// web_socket.go
package notifyControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	clientsMu sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

// Event is one toast pushed to connected storefront clients.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Handler upgrades the connection and keeps it registered until the peer
// goes away. Clients only listen; anything they send is discarded.
func Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	clientsMu.Lock()
	wsClients[conn] = true
	clientsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			clientsMu.Lock()
			delete(wsClients, conn)
			clientsMu.Unlock()
			break
		}
	}
}

// Broadcast fans an event out to every connected client. Write failures
// are ignored; a dead peer unregisters itself in Handler.
func Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	clientsMu.Lock()
	defer clientsMu.Unlock()
	for client := range wsClients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
