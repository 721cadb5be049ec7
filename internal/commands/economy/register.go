// Package economy provides currency commands: balance, work, daily,
// gamble, transfer and the leaderboard. Each command is in its own file
// for better organization
package economy

import (
	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// bundle holds the wired services for every economy handler.
var bundle *services.Bundle

// RegisterEconomyCommands registers all economy commands
func RegisterEconomyCommands(client *discord.ExtendedClient, b *services.Bundle) {
	bundle = b

	client.CommandHandler.RegisterCommand(createBalanceCommand())
	client.CommandHandler.RegisterCommand(createWorkCommand())
	client.CommandHandler.RegisterCommand(createDailyCommand())
	client.CommandHandler.RegisterCommand(createGambleCommand())
	client.CommandHandler.RegisterCommand(createTransferCommand())
	client.CommandHandler.RegisterCommand(createLeaderboardCommand())
}
