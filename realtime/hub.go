package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vmihailov/reservation-app/models"
)

// Event types
const (
	EventReservationCreate = "reservation_create"
	EventReservationUpdate = "reservation_update"
	EventReservationCancel = "reservation_cancel"
	EventLayoutUpdate      = "layout_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client layar (resepsionis, admin) untuk broadcast
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastReservation -> menyiarkan perubahan reservasi ke semua layar
func BroadcastReservation(event string, res models.Reservation) {
	broadcast(Message{
		Event: event,
		Data:  res,
	})
}

// BroadcastLayoutUpdate -> layar denah harus query ulang state meja
func BroadcastLayoutUpdate(data interface{}) {
	broadcast(Message{
		Event: EventLayoutUpdate,
		Data:  data,
	})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("realtime: failed to marshal %s event: %v", msg.Event, err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("realtime: dropping client: %v", err)
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
