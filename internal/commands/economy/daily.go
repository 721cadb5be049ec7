// Package economy - /daily command
package economy

import (
	"errors"
	"fmt"
	"time"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
)

// createDailyCommand creates the /daily command
func createDailyCommand() *discord.Command {
	return discord.NewCommand(
		"daily",
		"Reclama tu recompensa diaria",
		"economy",
		dailyHandler,
	)
}

// dailyHandler handles the /daily command
func dailyHandler(ctx *discord.CommandContext) error {
	earned, balance, err := bundle.Economy.Daily(ctx.User().ID)
	if err != nil {
		var cd *economy.CooldownError
		if errors.As(err, &cd) {
			return ctx.ReplyEphemeral(fmt.Sprintf("⏰ Ya reclamaste tu recompensa diaria. Vuelve en **%s**.", cd.Remaining.Round(time.Second)))
		}
		return ctx.ReplyEphemeral("❌ No se pudo reclamar la recompensa. Inténtalo de nuevo.")
	}

	return ctx.Reply(fmt.Sprintf("🎁 Reclamaste tu recompensa diaria: **%d** monedas.\n> 🪙 Saldo actual: **%d**", earned, balance))
}
