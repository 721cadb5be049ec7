package utils

import (
	"fmt"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/errors"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado del bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		var users, giveaways, active, tickets int
		bundle.Store.View(func(s *models.State) {
			users = len(s.Users)
			giveaways = len(s.Giveaways)
			tickets = len(s.Tickets)
			for _, g := range s.Giveaways {
				if !g.Ended {
					active++
				}
			}
		})

		ctx.Reply(fmt.Sprintf(
			"📊 **Estado del Bot**\n"+
				"• Bot: 🟢 Online\n"+
				"• Almacenamiento: %s\n"+
				"• Servidores: %d\n"+
				"• Usuarios registrados: %d\n"+
				"• Sorteos: %d (%d activos)\n"+
				"• Tickets: %d",
			ctx.Client.GetConfig().StoreDriver,
			ctx.Client.GuildCount(),
			users,
			giveaways, active,
			tickets,
		))
	}()
	return nil
}
