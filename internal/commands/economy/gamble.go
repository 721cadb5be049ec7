// Package economy - /gamble command
package economy

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
)

// createGambleCommand creates the /gamble command
func createGambleCommand() *discord.Command {
	return discord.NewCommand(
		"gamble",
		"Apuesta monedas a doble o nada",
		"economy",
		gambleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: fmt.Sprintf("Monedas a apostar (mínimo %d)", economy.MinGamble),
			Required:    true,
			MinValue:    func() *float64 { v := float64(economy.MinGamble); return &v }(),
		},
	)
}

// gambleHandler handles the /gamble command
func gambleHandler(ctx *discord.CommandContext) error {
	amount := ctx.GetIntOption("cantidad")

	won, balance, err := bundle.Economy.Gamble(ctx.User().ID, amount)
	if err != nil {
		var vErr *economy.ValidationError
		switch {
		case errors.Is(err, economy.ErrInsufficientFunds):
			return ctx.ReplyEphemeral("❌ No tienes suficientes monedas para esa apuesta.")
		case errors.As(err, &vErr):
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ %s.", vErr.Reason))
		default:
			return ctx.ReplyEphemeral("❌ No se pudo procesar la apuesta. Inténtalo de nuevo.")
		}
	}

	if won {
		return ctx.Reply(fmt.Sprintf("🎰 ¡Ganaste! Has duplicado tus **%d** monedas.\n> 🪙 Saldo actual: **%d**", amount, balance))
	}
	return ctx.Reply(fmt.Sprintf("🎰 Perdiste **%d** monedas... mejor suerte la próxima.\n> 🪙 Saldo actual: **%d**", amount, balance))
}
