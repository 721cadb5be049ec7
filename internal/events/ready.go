// Package events provides event handlers for the bot
package events

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// recoverOnce guards startup recovery against gateway reconnects, which
// re-emit Ready.
var recoverOnce sync.Once

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient, b *services.Bundle) {
	client.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		onReady(s, r, client, b)
	})
}

// onReady is called when the bot successfully connects to Discord
func onReady(s *discordgo.Session, r *discordgo.Ready, client *discord.ExtendedClient, b *services.Bundle) {
	logger.Success(fmt.Sprintf("✅ Bot conectado: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("📊 Conectado a %d servidores", len(r.Guilds)), "Ready")

	// Establecer estado del bot
	err := s.UpdateGameStatus(0, "🎉 Sorteos con /giveaway")
	if err != nil {
		logger.Error(fmt.Sprintf("Error estableciendo estado: %v", err), "Ready")
	}

	recoverOnce.Do(func() {
		// Los sorteos vencidos durante el apagado se concluyen aquí;
		// el resto se reprograma.
		b.Engine.Start()
		b.Engine.RecoverOnStartup()

		for _, g := range r.Guilds {
			cacheGuildInvites(s, g.ID)
		}

		go func() {
			refreshPanels(s, client, b)
			ticker := time.NewTicker(time.Hour)
			defer ticker.Stop()
			for range ticker.C {
				refreshPanels(s, client, b)
			}
		}()
	})
}
