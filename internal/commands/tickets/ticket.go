// Package tickets - /ticket command
package tickets

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// createTicketCommand creates the /ticket command
func createTicketCommand() *discord.Command {
	return discord.NewCommand(
		"ticket",
		"Abre un ticket de soporte con el staff",
		"tickets",
		ticketHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Motivo del ticket",
			Required:    true,
		},
	)
}

// ticketHandler handles the /ticket command
func ticketHandler(ctx *discord.CommandContext) error {
	if err := ctx.Defer(); err != nil {
		return err
	}

	reason := ctx.GetStringOption("razon")
	channelID, err := bundle.Tickets.OpenTicket(ctx.User().ID, reason)
	if err != nil {
		return ctx.EditReply("❌ No se pudo crear el ticket. Inténtalo de nuevo.")
	}

	return ctx.EditReply(fmt.Sprintf("🎫 Ticket creado: <#%s>", channelID))
}
