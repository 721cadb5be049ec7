// Package giveaway - /giveaway start command
package giveaway

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	gw "github.com/VortexStudios/VortexBotGo/pkg/giveaway"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

// createStartCommand creates the /giveaway start subcommand
func createStartCommand() *discord.Command {
	return discord.NewCommand(
		"start",
		"Inicia un sorteo en este canal",
		"giveaway",
		startHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "premio",
			Description: "Premio del sorteo",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración del sorteo (ej: 30s, 10m, 2h, 1d)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "ganadores",
			Description: "Cantidad de ganadores (1-20)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    gw.MaxWinners,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tipo",
			Description: "Tipo de premio",
			Required:    false,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Objeto", Value: string(models.PrizeItem)},
				{Name: "Monedas", Value: string(models.PrizeCoins)},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "monedas",
			Description: "Monedas por ganador (solo para premios de monedas)",
			Required:    false,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	).AsStaff()
}

// startHandler handles the /giveaway start command
func startHandler(ctx *discord.CommandContext) error {
	prize := ctx.GetStringOption("premio")
	rawDuration := ctx.GetStringOption("duracion")
	winners := int(ctx.GetIntOption("ganadores"))

	kind := models.PrizeItem
	if ctx.GetStringOption("tipo") == string(models.PrizeCoins) {
		kind = models.PrizeCoins
	}

	duration, err := gw.ParseDuration(rawDuration)
	if err != nil {
		return ctx.ReplyEphemeral("❌ Duración inválida. Usa formatos como `30s`, `10m`, `2h` o `1d`.")
	}

	rec, err := bundle.Engine.StartGiveaway(gw.StartParams{
		ChannelID:   ctx.Interaction.ChannelID,
		HostID:      ctx.User().ID,
		Prize:       prize,
		Kind:        kind,
		CoinsAmount: ctx.GetIntOption("monedas"),
		Winners:     winners,
		Duration:    duration,
	})
	if err != nil {
		var vErr *gw.ValidationError
		if errors.As(err, &vErr) {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ %v", vErr))
		}
		return ctx.ReplyEphemeral("❌ No se pudo iniciar el sorteo. Inténtalo de nuevo.")
	}

	return ctx.ReplyEphemeral(fmt.Sprintf(
		"🎉 Sorteo iniciado: **%s**\n> 🏆 Ganadores: **%d**\n> ⏰ Termina: <t:%d:R>\n> 🆔 Mensaje: `%s`",
		rec.Prize, rec.Winners, rec.EndsAt/1000, rec.MessageID,
	))
}
