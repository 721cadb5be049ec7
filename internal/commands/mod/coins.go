// Package mod - /mod coins subcommand (admin coin management)
package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// createCoinsCommand creates the /mod coins subcommand
func createCoinsCommand() *discord.Command {
	return discord.NewCommand(
		"coins",
		"Administra las monedas de un usuario",
		"mod",
		coinsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a modificar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "accion",
			Description: "Qué hacer con las monedas",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Agregar", Value: "add"},
				{Name: "Quitar", Value: "remove"},
				{Name: "Reiniciar a 0", Value: "reset"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Cantidad de monedas (no aplica para reiniciar)",
			Required:    false,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	).AsAdmin()
}

// coinsHandler handles the /mod coins subcommand
func coinsHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("usuario")
	if target == nil || target.Bot {
		return ctx.ReplyEphemeral("❌ Debes indicar un usuario válido (no un bot).")
	}

	action := ctx.GetStringOption("accion")
	amount := ctx.GetIntOption("cantidad")

	var balance int64
	var detail string
	switch action {
	case "add":
		if amount < 1 {
			return ctx.ReplyEphemeral("❌ Indica la cantidad de monedas a agregar.")
		}
		balance = bundle.Economy.Credit(target.ID, amount)
		detail = fmt.Sprintf("➕ Se agregaron **%d** 🪙", amount)
	case "remove":
		if amount < 1 {
			return ctx.ReplyEphemeral("❌ Indica la cantidad de monedas a quitar.")
		}
		// Credit con monto negativo tiene piso en cero.
		balance = bundle.Economy.Credit(target.ID, -amount)
		detail = fmt.Sprintf("➖ Se quitaron **%d** 🪙", amount)
	case "reset":
		current := bundle.Economy.Account(target.ID).Coins
		balance = bundle.Economy.Credit(target.ID, -current)
		detail = "🔄 Saldo reiniciado a **0**"
	default:
		return ctx.ReplyEphemeral("❌ Acción desconocida.")
	}

	logger.Info(fmt.Sprintf("Monedas de %s ajustadas por %s: %s (saldo %d)",
		target.ID, ctx.User().ID, action, balance), "Mod")

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "🪙 Monedas actualizadas",
		Color:       0xF1C40F,
		Description: fmt.Sprintf("%s a <@%s>\n> **Saldo actual:** %d 🪙", detail, target.ID, balance),
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by VortexStudios",
		},
	})
}
