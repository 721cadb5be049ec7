// Package giveaway - /giveaway reroll command
package giveaway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	gw "github.com/VortexStudios/VortexBotGo/pkg/giveaway"
)

// createRerollCommand creates the /giveaway reroll subcommand
func createRerollCommand() *discord.Command {
	return discord.NewCommand(
		"reroll",
		"Vuelve a sortear los ganadores de un sorteo terminado",
		"giveaway",
		rerollHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "mensaje",
			Description: "ID del mensaje del sorteo",
			Required:    true,
		},
	).AsStaff()
}

// rerollHandler handles the /giveaway reroll command
func rerollHandler(ctx *discord.CommandContext) error {
	messageID := ctx.GetStringOption("mensaje")

	winners, err := bundle.Engine.Reroll(messageID)
	switch {
	case errors.Is(err, gw.ErrNotFound):
		return ctx.ReplyEphemeral("❌ No existe un sorteo con ese ID de mensaje.")
	case errors.Is(err, gw.ErrNotEnded):
		return ctx.ReplyEphemeral("❌ Ese sorteo aún no termina. Usa `/giveaway end` primero.")
	case err != nil:
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo hacer el reroll: %v", err))
	}

	if len(winners) == 0 {
		return ctx.ReplyEphemeral("❌ No hay entradas válidas para sortear.")
	}

	mentionList := make([]string, 0, len(winners))
	for _, id := range winners {
		mentionList = append(mentionList, "<@"+id+">")
	}
	return ctx.ReplyEphemeral(fmt.Sprintf("🔄 Reroll completado. Nuevos ganadores: %s", strings.Join(mentionList, ", ")))
}
