// Package events provides a registry for organizing bot events.
// Events are organized by category (guild, member, message, etc.)
package events

import (
	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, b *services.Bundle) {
	logger.System("📋 Registrando eventos del bot...", "Events")

	// Ready event (recovery, panels, presence)
	RegisterReadyEvent(client, b)

	// Guild events (server join/leave, invite caching)
	RegisterGuildEvents(client)

	// Member events (welcome/goodbye, invite attribution)
	RegisterMemberEvents(client, b)

	// Message events (anti-spam, passive coins)
	RegisterMessageEvents(client, b)

	// Shard connection events
	RegisterShardEvents(client)

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
