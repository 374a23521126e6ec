package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/vmihailov/reservation-app/config"
)

// CORSMiddlewares membolehkan frontend dari origin yang dikonfigurasi
// (env CORS_ORIGIN). Allow-Credentials hanya dikirim untuk origin
// eksplisit; browser menolak kombinasi wildcard + credentials.
func CORSMiddlewares() gin.HandlerFunc {
	origin := config.CORSOrigin()
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		if origin != "*" {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, Sec-WebSocket-Protocol, Sec-WebSocket-Version, Sec-WebSocket-Key, Upgrade")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			if c.GetHeader("Upgrade") == "websocket" {
				c.Writer.Header().Set("Connection", "Upgrade")
				c.Writer.Header().Set("Upgrade", "websocket")
			}
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
