package utils

import (
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de VortexBot Go**\n\n" +
				"**Sorteos:**\n" +
				"• `/giveaway start <premio> <duracion> <ganadores>` - Inicia un sorteo (staff)\n" +
				"• `/giveaway end <mensaje>` - Concluye un sorteo (staff)\n" +
				"• `/giveaway reroll <mensaje>` - Sortea ganadores nuevos (staff)\n" +
				"• `/giveaway list` - Lista los sorteos activos\n\n" +
				"**Economía:**\n" +
				"• `/coins [usuario]` - Consulta un saldo\n" +
				"• `/work` - Gana monedas cada hora\n" +
				"• `/daily` - Recompensa diaria\n" +
				"• `/gamble <cantidad>` - Apuesta a doble o nada\n" +
				"• `/transfer <usuario> <cantidad>` - Transfiere monedas\n" +
				"• `/leaderboard` - Top 10 de monedas\n\n" +
				"**Inventario:**\n" +
				"• `/inv [usuario]` - Muestra un inventario\n" +
				"• `/open` - Abre un Mystery Chest\n" +
				"• `/claim` - Reclama tus premios en un ticket\n" +
				"• `/ticket <razon>` - Abre un ticket de soporte\n\n" +
				"**Moderación (staff):**\n" +
				"• `/mod ban <usuario> <razón>` - Banea a un usuario\n" +
				"• `/mod kick <usuario> <razón>` - Expulsa a un usuario\n" +
				"• `/mod mute <usuario> <duración> <razón>` - Mutea a un usuario\n" +
				"• `/mod warn <usuario>` / `/mod unwarn <usuario>` - Advertencias\n" +
				"• `/mod warns [usuario]` - Lista las advertencias\n" +
					"• `/mod coins` / `/mod item` - Administra economía e inventario (admin)\n" +
					"• `/rename-ticket <nombre>` - Renombra un ticket\n" +
					"• `/utils logs` - Últimas líneas del log",
		)
	}()
	return nil
}
