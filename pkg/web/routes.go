// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VortexStudios/VortexBotGo/pkg/config"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
	"github.com/VortexStudios/VortexBotGo/pkg/giveaway"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
	"github.com/VortexStudios/VortexBotGo/pkg/store"
)

// Deps are the services the API reads from. The web layer never mutates
// state, only Views it.
type Deps struct {
	Store   *store.Service
	Engine  *giveaway.Engine
	Economy *economy.Service
	Logs    *logger.Buffer
}

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server, deps Deps) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler(deps))
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/giveaways", giveawaysHandler(deps))
		api.GET("/leaderboard", leaderboardHandler(deps))
		api.GET("/logs", logsHandler(deps))
		api.GET("/logs/stream", logsStreamHandler(deps))
	}
}

// statusHandler returns the bot and store status
func statusHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := discord.Get()

		botOnline := false
		if client != nil {
			botOnline = client.IsReady()
		}

		var users, giveaways, tickets int
		deps.Store.View(func(s *models.State) {
			users = len(s.Users)
			giveaways = len(s.Giveaways)
			tickets = len(s.Tickets)
		})

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"store": gin.H{
				"driver":    config.Get().StoreDriver,
				"users":     users,
				"giveaways": giveaways,
				"tickets":   tickets,
			},
			"bot": gin.H{
				"isOnline": botOnline,
			},
		})
	}
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "VortexBot Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// giveawaysHandler returns the currently running giveaways
func giveawaysHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		active := deps.Engine.Active()
		c.JSON(http.StatusOK, gin.H{
			"count":     len(active),
			"giveaways": active,
		})
	}
}

// leaderboardHandler returns the top balances
func leaderboardHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows := deps.Economy.Leaderboard(10, nil)
		c.JSON(http.StatusOK, gin.H{
			"count":       len(rows),
			"leaderboard": rows,
		})
	}
}

// logsHandler returns a snapshot of the recent log lines
func logsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Logs == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "log buffer no disponible"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"lines": deps.Logs.Snapshot(),
		})
	}
}
