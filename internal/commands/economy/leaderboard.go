// Package economy - /leaderboard command
package economy

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// leaderboardLimit is how many accounts the board shows.
const leaderboardLimit = 10

var medals = []string{"🥇", "🥈", "🥉"}

// createLeaderboardCommand creates the /leaderboard command
func createLeaderboardCommand() *discord.Command {
	return discord.NewCommand(
		"leaderboard",
		"Top 10 de usuarios con más monedas",
		"economy",
		leaderboardHandler,
	)
}

// leaderboardHandler handles the /leaderboard command. Staff accounts
// stay off the board.
func leaderboardHandler(ctx *discord.CommandContext) error {
	guildID := ctx.Interaction.GuildID
	rows := bundle.Economy.Leaderboard(leaderboardLimit, func(userID string) bool {
		return ctx.Client.Roles.IsStaffID(ctx.Session, guildID, userID)
	})

	if len(rows) == 0 {
		return ctx.ReplyEphemeral("📊 Todavía no hay nadie en el leaderboard. ¡Usa `/work` para empezar a ganar monedas!")
	}

	description := ""
	for i, row := range rows {
		rank := fmt.Sprintf("**#%d**", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		description += fmt.Sprintf("%s <@%s> — **%d** monedas\n", rank, row.UserID, row.Coins)
	}

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "📊 Leaderboard de monedas",
		Color:       0xF1C40F,
		Description: description,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by VortexStudios",
		},
	})
}
