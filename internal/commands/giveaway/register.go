// Package giveaway provides giveaway commands organized as subcommands
// under /giveaway. Each command is in its own file for better organization
package giveaway

import (
	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// bundle holds the wired services for every /giveaway handler.
var bundle *services.Bundle

// RegisterGiveawayCommands registers all giveaway commands as /giveaway subcommands
func RegisterGiveawayCommands(client *discord.ExtendedClient, b *services.Bundle) {
	bundle = b

	startCmd := createStartCommand()
	endCmd := createEndCommand()
	rerollCmd := createRerollCommand()
	listCmd := createListCommand()

	group := client.CommandHandler.BuildCommandGroup(
		"giveaway",
		"Comandos de sorteos",
		startCmd,
		endCmd,
		rerollCmd,
		listCmd,
	)

	client.CommandHandler.AddGlobalCommand(group)
}
