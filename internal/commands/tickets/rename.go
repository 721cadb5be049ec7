// Package tickets - /rename-ticket command
package tickets

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// createRenameTicketCommand creates the /rename-ticket command
func createRenameTicketCommand() *discord.Command {
	return discord.NewCommand(
		"rename-ticket",
		"Renombra el canal del ticket actual",
		"tickets",
		renameTicketHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "nombre",
			Description: "Nuevo nombre del canal",
			Required:    true,
		},
	).AsStaff()
}

// renameTicketHandler handles the /rename-ticket command
func renameTicketHandler(ctx *discord.CommandContext) error {
	channelID := ctx.Interaction.ChannelID
	if _, err := bundle.Tickets.Get(channelID); err != nil {
		return ctx.ReplyEphemeral("❌ Este canal no es un ticket.")
	}

	name := strings.TrimSpace(ctx.GetStringOption("nombre"))
	if name == "" {
		return ctx.ReplyEphemeral("❌ El nombre no puede estar vacío.")
	}
	// Los nombres de canal no aceptan espacios.
	name = strings.ReplaceAll(strings.ToLower(name), " ", "-")

	if _, err := ctx.Session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo renombrar el ticket %s: %v", channelID, err), "Tickets")
		return ctx.ReplyEphemeral("❌ No se pudo renombrar el canal.")
	}

	return ctx.Reply(fmt.Sprintf("✏️ Ticket renombrado a **%s**.", name))
}
