// Package inventory - /inv command
package inventory

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// createInvCommand creates the /inv command
func createInvCommand() *discord.Command {
	return discord.NewCommand(
		"inv",
		"Muestra tu inventario (o el de otro usuario)",
		"inventory",
		invHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (opcional)",
			Required:    false,
		},
	)
}

// invHandler handles the /inv command
func invHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("usuario")
	if target == nil {
		target = ctx.User()
	}

	items := bundle.Economy.Inventory(target.ID)

	if len(items) == 0 {
		return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🎒 Inventario de %s", target.Username),
			Color:       0x95A5A6,
			Description: "El inventario está vacío.\n\n> Gana premios en los sorteos o compra un 🎁 Mystery Chest en la tienda.",
			Footer: &discordgo.MessageEmbedFooter{
				Text: "💫 - Developed by VortexStudios",
			},
		})
	}

	description := ""
	for i, it := range items {
		line := fmt.Sprintf("**%d.** %s", i+1, it.Item)
		if it.Unopened {
			line += " *(sin abrir — usa `/open`)*"
		}
		description += line + fmt.Sprintf("\n> 📦 Origen: %s\n", it.Source)
	}
	description += "\n> 🎫 Usa `/claim` para reclamar tus premios."

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎒 Inventario de %s (%d objetos)", target.Username, len(items)),
		Color:       0x3498DB,
		Description: description,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by VortexStudios",
		},
	})
}
