package dev

import (
	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
)

// bundle holds the wired services for the dev handlers.
var bundle *services.Bundle

// Register registers all dev commands as /dev subcommands (only in dev guild)
func Register(client *discord.ExtendedClient, b *services.Bundle) {
	bundle = b

	evalCmd := CreateEvalCommand()

	// Build the /dev command group
	devGroup := &discordgo.ApplicationCommand{
		Name:        "dev",
		Description: "Comandos de desarrollo",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        evalCmd.Name,
				Description: evalCmd.Description,
				Options:     evalCmd.Options,
			},
		},
	}

	// Register the individual commands in the command map
	client.Commands.Set("dev.eval", evalCmd)

	// Register the command group as dev-only command
	client.CommandHandler.AddDevCommand(devGroup)
}
