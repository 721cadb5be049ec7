// Package inventory - /claim command
package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/tickets"
)

// createClaimCommand creates the /claim command
func createClaimCommand() *discord.Command {
	return discord.NewCommand(
		"claim",
		"Reclama los premios de tu inventario en un ticket",
		"inventory",
		claimHandler,
	)
}

// claimHandler handles the /claim command
func claimHandler(ctx *discord.CommandContext) error {
	// Crear el canal puede tardar, mejor deferir
	if err := ctx.Defer(); err != nil {
		return err
	}

	res, err := bundle.Tickets.Claim(ctx.User().ID)
	if err != nil {
		switch {
		case errors.Is(err, tickets.ErrEmptyInventory):
			return ctx.EditReply("❌ Tu inventario está vacío, no hay nada que reclamar.")
		case errors.Is(err, tickets.ErrTicketCreation):
			return ctx.EditReply("❌ No se pudo crear el ticket. Tu inventario quedó intacto, inténtalo de nuevo.")
		default:
			return ctx.EditReply("❌ No se pudo completar el claim. Inténtalo de nuevo.")
		}
	}

	description := fmt.Sprintf("🎫 Ticket creado: <#%s>\n\n**Premios reclamados:**\n", res.ChannelID)
	for i, it := range res.Items {
		description += fmt.Sprintf("> **%d.** %s\n", i+1, it.Item)
	}
	description += "\nUn miembro del staff te atenderá en el ticket."

	return ctx.EditReplyEmbed(&discordgo.MessageEmbed{
		Title:       "✅ Premios reclamados",
		Color:       0x2ECC71,
		Description: description,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by VortexStudios",
		},
	})
}
