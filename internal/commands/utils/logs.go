// Package utils - /utils logs subcommand
package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// logsShown bounds how many buffered lines fit in one embed.
const logsShown = 20

// createLogsCommand creates the /utils logs subcommand
func createLogsCommand() *discord.Command {
	return discord.NewCommand(
		"logs",
		"Muestra las últimas líneas del log del bot",
		"utils",
		logsHandler,
	).AsStaff()
}

// logsHandler handles the /utils logs subcommand
func logsHandler(ctx *discord.CommandContext) error {
	lines := bundle.Logs.Snapshot()
	if len(lines) == 0 {
		return ctx.ReplyEphemeral("📭 El buffer de logs está vacío.")
	}

	total := len(lines)
	if len(lines) > logsShown {
		lines = lines[len(lines)-logsShown:]
	}

	// Discord caps embed descriptions at 4096; recortar desde el inicio.
	body := strings.Join(lines, "\n")
	for len(body) > 3900 && len(lines) > 1 {
		lines = lines[1:]
		body = strings.Join(lines, "\n")
	}

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       "📜 Logs del bot",
		Color:       0x95A5A6,
		Description: "```\n" + body + "\n```",
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Mostrando %d de %d líneas — 💫 Developed by VortexStudios", len(lines), total),
		},
	})
}
