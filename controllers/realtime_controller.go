package controllers

import (
	"net/http"
	"time"

	"github.com/Surya-k-bot/food-management-system/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// AlertsWS upgrades an admin dashboard connection and keeps it registered
// on the hub until the client goes away.
func AlertsWS(hub *services.RealtimeHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		client := &services.WSClient{Conn: conn}
		hub.Register(client)

		// keep connections alive through proxies
		go func() {
			t := time.NewTicker(25 * time.Second)
			defer t.Stop()
			for range t.C {
				if err := client.Write(websocket.PingMessage, nil); err != nil {
					hub.Unregister(client)
					return
				}
			}
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(client)
				return
			}
		}
	}
}
