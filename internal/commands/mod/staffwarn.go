// Package mod - /mod staffwarn command
package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// createStaffWarnCommand creates the /mod staffwarn subcommand
func createStaffWarnCommand() *discord.Command {
	return discord.NewCommand(
		"staffwarn",
		"Registra una advertencia formal a un miembro del staff",
		"mod",
		staffWarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Miembro del staff a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).AsAdmin()
}

// staffWarnHandler handles the /mod staffwarn command
func staffWarnHandler(ctx *discord.CommandContext) error {
	targetUser := ctx.GetUserOption("usuario")
	reason := ctx.GetStringOption("razon")

	if targetUser == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario válido.")
	}
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una razón.")
	}

	warn := bundle.Economy.StaffWarn(targetUser.ID, ctx.User().ID, reason)

	embed := &discordgo.MessageEmbed{
		Title: "📋 - Advertencia de staff registrada",
		Color: 0xFFA500,
		Description: fmt.Sprintf(
			"👤 - **Usuario:** %s\n"+
				"📝 - **Razón:** %s\n"+
				"🆔 - **ID:** `%s`\n"+
				"🕒 - **Fecha:** <t:%d:F>",
			targetUser.Mention(), reason, warn.ID, time.Now().Unix(),
		),
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "💫 - Developed by VortexStudios",
			IconURL: ctx.Client.Session.State.User.AvatarURL(""),
		},
	}

	// Registrar en el canal de staff si está configurado
	if channelID := ctx.Client.GetConfig().StaffWarnChannelID; channelID != "" {
		if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, embed); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo publicar la advertencia de staff: %v", err), "CMD-StaffWarn")
		}
	}

	// Avisar al usuario por MD
	if userChannel, err := ctx.Session.UserChannelCreate(targetUser.ID); err == nil {
		_, _ = ctx.Session.ChannelMessageSendEmbed(userChannel.ID, &discordgo.MessageEmbed{
			Title: "⚠ - Has recibido una advertencia de staff",
			Color: 0xFFA500,
			Description: fmt.Sprintf(
				"⚒ - **Servidor:** %s\n📝 - **Razón:** %s\n🕒 - **Fecha:** <t:%d:F>",
				ctx.Guild().Name, reason, time.Now().Unix(),
			),
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 - Developed by VortexStudios",
				IconURL: ctx.Client.Session.State.User.AvatarURL(""),
			},
		})
	}

	return ctx.ReplyEphemeralEmbed(embed)
}
