// Package economy - /transfer command
package economy

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
)

// createTransferCommand creates the /transfer command
func createTransferCommand() *discord.Command {
	return discord.NewCommand(
		"transfer",
		"Transfiere monedas a otro usuario",
		"economy",
		transferHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Destinatario de las monedas",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Monedas a transferir",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	)
}

// transferHandler handles the /transfer command
func transferHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("usuario")
	amount := ctx.GetIntOption("cantidad")

	if target == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario válido.")
	}
	if target.Bot {
		return ctx.ReplyEphemeral("❌ No puedes transferir monedas a un bot.")
	}

	err := bundle.Economy.Transfer(ctx.User().ID, target.ID, amount)
	if err != nil {
		var vErr *economy.ValidationError
		switch {
		case errors.Is(err, economy.ErrSelfTransfer):
			return ctx.ReplyEphemeral("❌ No puedes transferirte monedas a ti mismo.")
		case errors.Is(err, economy.ErrInsufficientFunds):
			return ctx.ReplyEphemeral("❌ No tienes suficientes monedas para esa transferencia.")
		case errors.As(err, &vErr):
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ %s.", vErr.Reason))
		default:
			return ctx.ReplyEphemeral("❌ No se pudo completar la transferencia. Inténtalo de nuevo.")
		}
	}

	return ctx.Reply(fmt.Sprintf("💸 Transferiste **%d** monedas a %s.", amount, target.Mention()))
}
