// Package inventory - /open command
package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
)

// createOpenCommand creates the /open command
func createOpenCommand() *discord.Command {
	return discord.NewCommand(
		"open",
		"Abre un Mystery Chest de tu inventario",
		"inventory",
		openHandler,
	)
}

// openHandler handles the /open command
func openHandler(ctx *discord.CommandContext) error {
	res, err := bundle.Economy.OpenChest(ctx.User().ID)
	if err != nil {
		if errors.Is(err, economy.ErrNoChest) {
			return ctx.ReplyEphemeral("❌ No tienes ningún 🎁 Mystery Chest sin abrir. Compra uno en la tienda.")
		}
		return ctx.ReplyEphemeral("❌ No se pudo abrir el cofre. Inténtalo de nuevo.")
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎁 %s", res.Reward.Rarity),
		Color: res.Reward.Color,
		Description: fmt.Sprintf(
			"¡Abriste un Mystery Chest!\n\n> 🎮 **Juego:** %s\n> 🏆 **Premio:** %s\n\nEl premio ya está en tu inventario. Usa `/claim` para reclamarlo.",
			res.Game, res.Prize,
		),
		Timestamp: time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by VortexStudios",
		},
	})
}
