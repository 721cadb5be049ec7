// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, giveaway,
// economy, inventory, tickets, mod, dev)
package commands

import (
	"github.com/VortexStudios/VortexBotGo/internal/commands/dev"
	"github.com/VortexStudios/VortexBotGo/internal/commands/economy"
	"github.com/VortexStudios/VortexBotGo/internal/commands/giveaway"
	"github.com/VortexStudios/VortexBotGo/internal/commands/inventory"
	"github.com/VortexStudios/VortexBotGo/internal/commands/mod"
	"github.com/VortexStudios/VortexBotGo/internal/commands/tickets"
	"github.com/VortexStudios/VortexBotGo/internal/commands/utils"
	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient, b *services.Bundle) {
	// Utility commands (/utils ping, /utils status, /utils help, /utils stats)
	utils.RegisterUtilsCommands(client, b)

	// Giveaway commands (/giveaway start, /giveaway end, /giveaway reroll, /giveaway list)
	giveaway.RegisterGiveawayCommands(client, b)

	// Economy commands (/coins, /work, /daily, /gamble, /transfer, /leaderboard)
	economy.RegisterEconomyCommands(client, b)

	// Inventory commands (/inv, /open, /claim)
	inventory.RegisterInventoryCommands(client, b)

	// Ticket command and buttons (/ticket, close/reopen/delete, chest shop)
	tickets.RegisterTicketComponents(client, b)

	// Moderation commands (/mod ban, /mod kick, /mod warn, /mod mute, ...)
	mod.RegisterModCommands(client, b)

	// Dev commands (/dev eval, only in the dev guild)
	dev.Register(client, b)
}
