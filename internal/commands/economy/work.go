// Package economy - /work command
package economy

import (
	"errors"
	"fmt"
	"time"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
)

// createWorkCommand creates the /work command
func createWorkCommand() *discord.Command {
	return discord.NewCommand(
		"work",
		"Trabaja y gana monedas (cada hora)",
		"economy",
		workHandler,
	)
}

// workHandler handles the /work command
func workHandler(ctx *discord.CommandContext) error {
	earned, balance, err := bundle.Economy.Work(ctx.User().ID)
	if err != nil {
		var cd *economy.CooldownError
		if errors.As(err, &cd) {
			return ctx.ReplyEphemeral(fmt.Sprintf("⏰ Ya trabajaste hace poco. Vuelve en **%s**.", cd.Remaining.Round(time.Second)))
		}
		return ctx.ReplyEphemeral("❌ No se pudo completar el trabajo. Inténtalo de nuevo.")
	}

	return ctx.Reply(fmt.Sprintf("💼 Trabajaste y ganaste **%d** monedas.\n> 🪙 Saldo actual: **%d**", earned, balance))
}
