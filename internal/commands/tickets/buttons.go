package tickets

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/tickets"
)

// buyChestHandler handles the chest-shop buy button.
func buyChestHandler(ctx *discord.CommandContext) error {
	balance, err := bundle.Economy.BuyChest(ctx.User().ID)
	if err != nil {
		if errors.Is(err, economy.ErrInsufficientFunds) {
			return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
				Title:       "❌ Monedas insuficientes",
				Color:       0xE74C3C,
				Description: fmt.Sprintf("Un %s cuesta **%d** monedas.\n\n> Usa `/work` y `/daily` para ganar más.", economy.ChestItemName, economy.ChestPrice),
			})
		}
		return ctx.ReplyEphemeral("❌ No se pudo completar la compra. Inténtalo de nuevo.")
	}

	return ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
		Title:       "✅ ¡Compra completada!",
		Color:       0x2ECC71,
		Description: fmt.Sprintf("Compraste un %s por **%d** monedas.\n\n> 🪙 Saldo restante: **%d**\n> Usa `/open` para abrirlo.", economy.ChestItemName, economy.ChestPrice, balance),
	})
}

// ticketCloseHandler handles the close button inside a ticket channel.
func ticketCloseHandler(ctx *discord.CommandContext) error {
	if !ctx.Client.Roles.IsStaff(ctx.Member()) {
		return ctx.ReplyEphemeral("❌ Solo el staff puede cerrar tickets.")
	}

	rec, err := bundle.Tickets.Close(ctx.Interaction.ChannelID)
	if err != nil {
		if errors.Is(err, tickets.ErrTicketNotFound) {
			return ctx.ReplyEphemeral("❌ Este canal no es un ticket.")
		}
		return ctx.ReplyEphemeral("❌ No se pudo cerrar el ticket.")
	}

	if err := bundle.Adapter.SetTicketWritable(ctx.Interaction.ChannelID, rec.UserID, false); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo bloquear el ticket %s: %v", ctx.Interaction.ChannelID, err), "Tickets")
	}

	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "🔒 Ticket cerrado",
				Color:       0xE74C3C,
				Description: fmt.Sprintf("Cerrado por %s.\n\n> El usuario ya no puede escribir en este canal.", ctx.User().Mention()),
				Timestamp:   time.Now().Format(time.RFC3339),
			}},
			Components: []discordgo.MessageComponent{discord.ClosedTicketButtons()},
		},
	})
}

// ticketReopenHandler handles the reopen button of a closed ticket.
func ticketReopenHandler(ctx *discord.CommandContext) error {
	if !ctx.Client.Roles.IsStaff(ctx.Member()) {
		return ctx.ReplyEphemeral("❌ Solo el staff puede reabrir tickets.")
	}

	rec, err := bundle.Tickets.Reopen(ctx.Interaction.ChannelID)
	if err != nil {
		if errors.Is(err, tickets.ErrTicketNotFound) {
			return ctx.ReplyEphemeral("❌ Este canal no es un ticket.")
		}
		return ctx.ReplyEphemeral("❌ No se pudo reabrir el ticket.")
	}

	if err := bundle.Adapter.SetTicketWritable(ctx.Interaction.ChannelID, rec.UserID, true); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo desbloquear el ticket %s: %v", ctx.Interaction.ChannelID, err), "Tickets")
	}

	return ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "🔓 Ticket reabierto",
				Color:       0x2ECC71,
				Description: fmt.Sprintf("Reabierto por %s.\n\n> <@%s> puede volver a escribir en este canal.", ctx.User().Mention(), rec.UserID),
				Timestamp:   time.Now().Format(time.RFC3339),
			}},
			Components: []discordgo.MessageComponent{discord.TicketButtons()},
		},
	})
}

// ticketDeleteHandler handles the delete button: drops the record and
// removes the channel after a short warning.
func ticketDeleteHandler(ctx *discord.CommandContext) error {
	if !ctx.Client.Roles.IsStaff(ctx.Member()) {
		return ctx.ReplyEphemeral("❌ Solo el staff puede eliminar tickets.")
	}

	channelID := ctx.Interaction.ChannelID
	if err := bundle.Tickets.Delete(channelID); err != nil {
		if errors.Is(err, tickets.ErrTicketNotFound) {
			return ctx.ReplyEphemeral("❌ Este canal no es un ticket.")
		}
		return ctx.ReplyEphemeral("❌ No se pudo eliminar el ticket.")
	}

	if err := ctx.Reply("🗑️ Ticket eliminado. Este canal desaparecerá en 5 segundos..."); err != nil {
		return err
	}

	go func() {
		time.Sleep(5 * time.Second)
		if _, err := ctx.Session.ChannelDelete(channelID); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo borrar el canal del ticket %s: %v", channelID, err), "Tickets")
		}
	}()
	return nil
}
