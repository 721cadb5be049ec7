// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// bundle holds the wired services for every /mod handler.
var bundle *services.Bundle

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient, b *services.Bundle) {
	bundle = b

	// Create individual subcommands (each can be in its own file)
	banCmd := createBanCommand()
	kickCmd := createKickCommand()
	muteCmd := createMuteCommand()
	warnCmd := createWarnCommand()
	unwarnCmd := createUnwarnCommand()
	warningsCmd := createWarningsCommand()
	staffWarnCmd := createStaffWarnCommand()
	removeStaffWarnCmd := createRemoveStaffWarnCommand()
	coinsCmd := createCoinsCommand()
	itemCmd := createItemCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		banCmd,
		kickCmd,
		muteCmd,
		warnCmd,
		unwarnCmd,
		warningsCmd,
		staffWarnCmd,
		removeStaffWarnCmd,
		coinsCmd,
		itemCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
