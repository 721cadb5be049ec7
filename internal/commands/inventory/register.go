// Package inventory provides the inventory, chest and claim commands.
// Each command is in its own file for better organization
package inventory

import (
	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// bundle holds the wired services for every inventory handler.
var bundle *services.Bundle

// RegisterInventoryCommands registers the inventory commands
func RegisterInventoryCommands(client *discord.ExtendedClient, b *services.Bundle) {
	bundle = b

	client.CommandHandler.RegisterCommand(createInvCommand())
	client.CommandHandler.RegisterCommand(createOpenCommand())
	client.CommandHandler.RegisterCommand(createClaimCommand())
}
