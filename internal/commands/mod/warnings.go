package mod

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

// createWarningsCommand creates the /mod warns subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warns",
		"Lista de advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "[STAFF] Usuario a buscar (opcional)",
			Required:    false,
		},
	)
}

func warningsHandler(ctx *discord.CommandContext) error {
	// 1. Determinar objetivo y permisos
	targetUser := ctx.GetUserOption("usuario")
	isSelf := false

	isModerator := ctx.Client.Roles.IsStaff(ctx.Member())

	if targetUser == nil {
		targetUser = ctx.User()
		isSelf = true
	}

	// Si intenta ver advertencias de otro y no es moderador
	if !isSelf && !isModerator {
		return ctx.ReplyEphemeral("❌ No tienes permisos para ver la lista de advertencias de otro usuario.")
	}

	acct := bundle.Economy.Account(targetUser.ID)

	// 2. Sin advertencias
	if acct.Warns == 0 && len(acct.StaffWarns) == 0 {
		return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s", targetUser.Username),
			Color:       0x00FF00,
			Description: fmt.Sprintf("No se han encontrado advertencias del usuario en este servidor\n\n> 💫 - **Cantidad de advertencias:** 0\n> 🕒 - **Fecha de consulta:** <t:%d>", time.Now().Unix()),
			Footer: &discordgo.MessageEmbedFooter{
				Text: "💫 - Developed by VortexStudios",
			},
		})
	}

	// 3. Construir lista de advertencias
	description := fmt.Sprintf("> ⚠️ - **Advertencias regulares:** %d\n\n", acct.Warns)
	description += staffWarnLines(acct.StaffWarns, isModerator)
	description += fmt.Sprintf("> 💫 - **Advertencias de staff:** %d \n> 🕒 - **Fecha de consulta:** <t:%d>", len(acct.StaffWarns), time.Now().Unix())

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s (%s)", targetUser.Username, targetUser.ID),
		Color:       0xFFA500,
		Description: description,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by VortexStudios",
		},
	})
}

// staffWarnLines renders the staff warn entries. Non-staff viewers do
// not see who issued each warn.
func staffWarnLines(warns []models.StaffWarn, isModerator bool) string {
	var out string
	for _, w := range warns {
		by := "Oculto"
		if isModerator {
			by = w.By
		}
		out += fmt.Sprintf("> **Advertencia:** %s \n> **Moderador:** %s \n> **ID:** `%s` \n\n", w.Reason, by, w.ID)
	}
	return out
}
