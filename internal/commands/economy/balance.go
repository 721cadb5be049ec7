// Package economy - /coins command
package economy

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// createBalanceCommand creates the /coins command
func createBalanceCommand() *discord.Command {
	return discord.NewCommand(
		"coins",
		"Muestra tu saldo de monedas (o el de otro usuario)",
		"economy",
		balanceHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (opcional)",
			Required:    false,
		},
	)
}

// balanceHandler handles the /coins command
func balanceHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("usuario")
	if target == nil {
		target = ctx.User()
	}

	acct := bundle.Economy.Account(target.ID)

	rank := "—"
	for i, row := range bundle.Economy.Leaderboard(0, nil) {
		if row.UserID == target.ID {
			rank = fmt.Sprintf("#%d", i+1)
			break
		}
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("💰 Monedas de %s", target.Username),
		Color:       0xF1C40F,
		Description: fmt.Sprintf("> 🪙 **Saldo:** %d monedas\n> 🏆 **Puesto:** %s\n> 🎒 **Objetos en inventario:** %d", acct.Coins, rank, len(acct.Inventory)),
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by VortexStudios",
		},
	})
}
