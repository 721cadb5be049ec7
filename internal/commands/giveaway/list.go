// Package giveaway - /giveaway list command
package giveaway

import (
	"fmt"
	"sort"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// createListCommand creates the /giveaway list subcommand
func createListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Lista los sorteos activos",
		"giveaway",
		listHandler,
	)
}

// listHandler handles the /giveaway list command
func listHandler(ctx *discord.CommandContext) error {
	active := bundle.Engine.Active()

	if len(active) == 0 {
		return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
			Title:       "🎉 Sorteos activos",
			Color:       0xF1C40F,
			Description: "No hay sorteos activos en este momento.\n\n> Los staff pueden iniciar uno con `/giveaway start`.",
			Footer: &discordgo.MessageEmbedFooter{
				Text: "💫 - Developed by VortexStudios",
			},
		})
	}

	// Los que terminan antes, primero
	sort.Slice(active, func(i, j int) bool {
		return active[i].EndsAt < active[j].EndsAt
	})

	description := ""
	for _, rec := range active {
		description += fmt.Sprintf(
			"🏆 **%s**\n> 📍 Canal: <#%s>\n> 👥 Ganadores: **%d**\n> ⏰ Termina: <t:%d:R>\n> 🆔 `%s`\n\n",
			rec.Prize, rec.ChannelID, rec.Winners, rec.EndsAt/1000, rec.MessageID,
		)
	}

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎉 Sorteos activos (%d)", len(active)),
		Color:       0xF1C40F,
		Description: description,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "💫 - Developed by VortexStudios",
		},
	})
}
