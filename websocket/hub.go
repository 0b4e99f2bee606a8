package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/karigarhub/karigar-backend/database"
	"github.com/karigarhub/karigar-backend/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Message)

// RunHub fans persisted chat messages out to the other participant of the
// message's room. One connection per user; a newer connection replaces an
// older one.
func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			var room models.ChatRoom
			err := database.DB.First(&room, "id = ?", message.ChatRoomID).Error
			if err != nil {
				log.Printf("Error fetching chat room %s: %v", message.ChatRoomID, err)
				continue
			}

			recipients := []uuid.UUID{room.CustomerID, room.WorkerID}
			clientsMu.RLock()
			var stale []uuid.UUID
			for _, recipient := range recipients {
				if recipient == message.SenderID {
					continue
				}
				if conn, ok := clients[recipient]; ok {
					if err := conn.WriteJSON(message); err != nil {
						log.Printf("Error sending message to client %s: %v", recipient, err)
						conn.Close()
						stale = append(stale, recipient)
					}
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, recipient := range stale {
					delete(clients, recipient)
				}
				clientsMu.Unlock()
			}
		}
	}
}
