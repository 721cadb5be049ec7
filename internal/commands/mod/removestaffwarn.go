package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/errors"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// createRemoveStaffWarnCommand creates the /mod removestaffwarn subcommand
func createRemoveStaffWarnCommand() *discord.Command {
	return discord.NewCommand(
		"removestaffwarn",
		"Elimina una advertencia de staff específica de un usuario",
		"mod",
		removeStaffWarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario del cual eliminar la advertencia",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "id",
			Description:  "ID de la advertencia a eliminar",
			Required:     true,
			Autocomplete: true,
		},
	).WithAutoComplete(removeStaffWarnAutoComplete).AsAdmin()
}

// removeStaffWarnHandler handles the /mod removestaffwarn command
func removeStaffWarnHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		// 1. Obtener argumentos
		targetUser := ctx.GetUserOption("usuario")
		warnID := ctx.GetStringOption("id")

		if targetUser == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario válido.")
			return
		}

		if warnID == "" {
			ctx.ReplyEphemeral("❌ Debes especificar el ID de la advertencia.")
			return
		}

		// 2. Feedback inicial
		embedProcess := &discordgo.MessageEmbed{
			Title:       "🗑️ Eliminando advertencia...",
			Description: fmt.Sprintf("Eliminando advertencia de **%s**...\n\nEspere un momento...", targetUser.String()),
			Color:       0xFFFF00, // Yellow
			Footer: &discordgo.MessageEmbedFooter{
				Text:    fmt.Sprintf("Solicitado por %s", ctx.User().String()),
				IconURL: ctx.User().AvatarURL(""),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		if err := ctx.ReplyEmbed(embedProcess); err != nil {
			logger.Error(fmt.Sprintf("Error enviando reply inicial: %v", err), "CMD-RemoveStaffWarn")
			return
		}

		// 3. Buscar la advertencia para el mensaje de éxito
		acct := bundle.Economy.Account(targetUser.ID)
		removedReason := ""
		for _, w := range acct.StaffWarns {
			if w.ID == warnID {
				removedReason = w.Reason
				break
			}
		}

		// 4. Eliminar
		if !bundle.Economy.RemoveStaffWarn(targetUser.ID, warnID) {
			ctx.EditReply("❌ No se encontró una advertencia con ese ID.")
			return
		}

		// 5. Embed de Éxito
		embedSuccess := &discordgo.MessageEmbed{
			Title:       "✅ Advertencia eliminada con éxito",
			Description: fmt.Sprintf("La advertencia de **%s** ha sido eliminada.\n\n**Razón original:** %s\n**ID:** `%s`", targetUser.String(), removedReason, warnID),
			Color:       0x00FF00, // Green
			Footer: &discordgo.MessageEmbedFooter{
				Text:    fmt.Sprintf("Solicitado por %s", ctx.User().String()),
				IconURL: ctx.User().AvatarURL(""),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}
		ctx.EditReplyEmbed(embedSuccess)

		// 6. Enviar MD al usuario
		embedDM := &discordgo.MessageEmbed{
			Title: "ℹ - Advertencia eliminada",
			Color: 0x00FF00,
			Description: fmt.Sprintf(
				"⚒ - **Servidor:** %s (%s)\n"+
					"🗑 ️ - **Advertencia eliminada:** %s\n\n"+
					"🕒 - **Fecha:** <t:%d:F>",
				ctx.Guild().Name, ctx.Interaction.GuildID, removedReason, time.Now().Unix(),
			),
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 - Developed by VortexStudios",
				IconURL: ctx.Client.Session.State.User.AvatarURL(""),
			},
		}

		userChannel, err := ctx.Session.UserChannelCreate(targetUser.ID)
		if err == nil {
			_, _ = ctx.Session.ChannelMessageSendEmbed(userChannel.ID, embedDM)
		} else {
			// Notificar fallo de MD
			msg, _ := ctx.Session.ChannelMessageSend(ctx.Interaction.ChannelID, fmt.Sprintf("ℹ️ No se pudo enviar un mensaje directo a **%s**.", targetUser.String()))
			go func() {
				time.Sleep(5 * time.Second)
				err := ctx.Session.ChannelMessageDelete(ctx.Interaction.ChannelID, msg.ID)
				if err != nil {
					return
				}
			}()
		}
	}()

	return nil
}

// removeStaffWarnAutoComplete handles autocomplete for the removestaffwarn command
func removeStaffWarnAutoComplete(ctx *discord.CommandContext) {
	go func() {
		defer errors.RecoverMiddleware()()

		targetUser := ctx.GetUserOption("usuario")
		if targetUser == nil {
			return
		}

		acct := bundle.Economy.Account(targetUser.ID)
		if len(acct.StaffWarns) == 0 {
			return
		}

		choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 25)
		for i, warn := range acct.StaffWarns {
			if i >= 25 {
				break
			}
			name := fmt.Sprintf("ID: %s - Razón: %s", warn.ID, warn.Reason)
			if len(name) > 100 {
				name = name[:97] + "..."
			}
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  name,
				Value: warn.ID,
			})
		}

		ctx.SendAutoCompleteChoices(choices)
	}()
}
