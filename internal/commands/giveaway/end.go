// Package giveaway - /giveaway end command
package giveaway

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	gw "github.com/VortexStudios/VortexBotGo/pkg/giveaway"
)

// createEndCommand creates the /giveaway end subcommand
func createEndCommand() *discord.Command {
	return discord.NewCommand(
		"end",
		"Concluye un sorteo antes de tiempo",
		"giveaway",
		endHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mensaje",
			Description: "ID del mensaje del sorteo",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "forzar",
			Description: "Concluir de nuevo aunque ya haya terminado",
			Required:    false,
		},
	).AsStaff()
}

// endHandler handles the /giveaway end command
func endHandler(ctx *discord.CommandContext) error {
	messageID := ctx.GetStringOption("mensaje")
	force := ctx.GetBoolOption("forzar")

	err := bundle.Engine.EndGiveaway(messageID, force)
	switch {
	case errors.Is(err, gw.ErrNotFound):
		return ctx.ReplyEphemeral("❌ No existe un sorteo con ese ID de mensaje.")
	case errors.Is(err, gw.ErrAlreadyEnded):
		return ctx.ReplyEphemeral("❌ Ese sorteo ya terminó. Usa la opción `forzar` para repetir el sorteo.")
	case err != nil:
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo concluir el sorteo: %v", err))
	}

	return ctx.ReplyEphemeral("✅ Sorteo concluido. Revisa el canal del anuncio para ver los ganadores.")
}
