package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// pingInterval keeps idle log-stream connections alive.
const pingInterval = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// El middleware de hosts ya filtró la solicitud.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// logsStreamHandler streams the log buffer over a websocket: first the
// snapshot, then every new line as it arrives.
func logsStreamHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Logs == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "log buffer no disponible"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn(fmt.Sprintf("No se pudo abrir el websocket de logs: %v", err), "WebServer")
			return
		}
		defer conn.Close()

		for _, line := range deps.Logs.Snapshot() {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
				return
			}
		}

		ch := deps.Logs.Subscribe()
		defer deps.Logs.Unsubscribe(ch)

		// Drena lecturas para detectar el cierre del cliente.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()

		for {
			select {
			case line, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}
}
