// Package tickets wires the ticket buttons and the chest-shop button.
// Handlers live in their own files for better organization
package tickets

import (
	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// bundle holds the wired services for every ticket handler.
var bundle *services.Bundle

// RegisterTicketComponents registers the button handlers for tickets and
// the chest shop.
func RegisterTicketComponents(client *discord.ExtendedClient, b *services.Bundle) {
	bundle = b

	client.CommandHandler.RegisterCommand(createTicketCommand())
	client.CommandHandler.RegisterCommand(createRenameTicketCommand())

	client.RegisterComponent("buy_chest", buyChestHandler)
	client.RegisterComponent("ticket_close", ticketCloseHandler)
	client.RegisterComponent("ticket_reopen", ticketReopenHandler)
	client.RegisterComponent("ticket_delete", ticketDeleteHandler)
}
