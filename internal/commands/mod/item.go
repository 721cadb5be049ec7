// Package mod - /mod item subcommand (admin inventory management)
package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

// createItemCommand creates the /mod item subcommand
func createItemCommand() *discord.Command {
	return discord.NewCommand(
		"item",
		"Administra el inventario de un usuario",
		"mod",
		itemHandler,
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
			Description: "Qué hacer con el inventario",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Agregar objeto", Value: "add"},
				{Name: "Vaciar inventario", Value: "clear"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "objeto",
			Description: "Nombre del objeto a agregar",
			Required:    false,
		},
	).AsAdmin()
}

// itemHandler handles the /mod item subcommand
func itemHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("usuario")
	if target == nil || target.Bot {
		return ctx.ReplyEphemeral("❌ Debes indicar un usuario válido (no un bot).")
	}

	var detail string
	switch ctx.GetStringOption("accion") {
	case "add":
		item := ctx.GetStringOption("objeto")
		if item == "" {
			return ctx.ReplyEphemeral("❌ Indica el nombre del objeto a agregar.")
		}
		bundle.Economy.AddItem(target.ID, models.InventoryItem{
			Item:   item,
			Source: "Staff",
			Date:   time.Now().Format(time.RFC3339),
		})
		detail = fmt.Sprintf("➕ Se agregó **%s** al inventario", item)
	case "clear":
		removed := bundle.Economy.ClearInventory(target.ID)
		detail = fmt.Sprintf("🗑️ Inventario vaciado (**%d** objetos eliminados)", removed)
	default:
		return ctx.ReplyEphemeral("❌ Acción desconocida.")
	}

	logger.Info(fmt.Sprintf("Inventario de %s modificado por %s", target.ID, ctx.User().ID), "Mod")

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "🎒 Inventario actualizado",
		Color:       0x3498DB,
		Description: fmt.Sprintf("%s de <@%s>.", detail, target.ID),
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by VortexStudios",
		},
	})
}
