package controllers

import (
	"net/http"

	"github.com/adityab94/FitForge/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func PushSubscribe(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body services.PushInput
		if !bindJSON(c, &body) {
			return
		}
		if err := svc.Subscribe(c.Request.Context(), userID, body); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscribed"})
	}
}

// RealtimeWS streams record change events to the caller's dashboard.
func RealtimeWS(hub *services.RealtimeHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		hub.Serve(services.NewWSClient(userID, conn))
	}
}

// Banner identifies the service.
func Banner() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "FitForge API"})
	}
}

// ReadProbe answers as long as the process serves HTTP.
func ReadProbe() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "main thread alive"})
	}
}

// CheckLive also pings the store.
func CheckLive(svc *services.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Ping(c.Request.Context()); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "store unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "main thread alive"})
	}
}
