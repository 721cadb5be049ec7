// Package mod - /mod unwarn command
package mod

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// createUnwarnCommand creates the /mod unwarn subcommand
func createUnwarnCommand() *discord.Command {
	return discord.NewCommand(
		"unwarn",
		"Retira una advertencia de un usuario",
		"mod",
		unwarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que retirar la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).AsStaff()
}

// unwarnHandler handles the /mod unwarn command
func unwarnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	total := bundle.Economy.Unwarn(user.ID)

	return ctx.Reply(fmt.Sprintf("✅ **%s** ahora tiene **%d** advertencia(s).",
		user.Username,
		total,
	))
}
