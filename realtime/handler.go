package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vmihailov/reservation-app/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler upgrade koneksi websocket; role diambil dari middleware auth
func Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	role := "staff"
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(string); ok && r != "" {
			role = r
		}
	}
	RegisterClient(conn, role)
	utils.InfoLogger.Printf("websocket client connected (role=%s)", role)

	// Loop baca hanya untuk mendeteksi close dari client
	go func() {
		defer UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
