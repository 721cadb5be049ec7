// Package events provides event handlers for message events
package events

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient, b *services.Bundle) {
	client.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		onMessageCreate(s, m, client, b)
	})
	client.Session.AddHandler(onMessageDelete)
}

// onMessageCreate is called when a new message is created
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate, client *discord.ExtendedClient, b *services.Bundle) {
	// Ignorar mensajes de bots
	if m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		return
	}

	// Anti-spam: mensajes consecutivos del mismo autor. El staff corta la
	// racha pero no recibe sanción.
	if b.Spam.Observe(m.Author.ID) {
		if !client.Roles.IsStaffID(s, m.GuildID, m.Author.ID) {
			warns, balance := b.Economy.SpamPenalty(m.Author.ID)
			embed := &discordgo.MessageEmbed{
				Title:       "🚫 Anti-Spam",
				Color:       0xFF0000,
				Description: fmt.Sprintf("Too many consecutive messages!\n> Lost **%d** 🪙 and received a warning.", economy.SpamFine),
				Fields: []*discordgo.MessageEmbedField{
					{Name: "⚠️ Warns", Value: fmt.Sprintf("%d", warns), Inline: true},
					{Name: "🪙 Balance", Value: fmt.Sprintf("%d", balance), Inline: true},
				},
			}
			if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
				logger.Debug(fmt.Sprintf("No se pudo avisar la sanción de spam: %v", err), "Message")
			}
			return
		}
	} else {
		// Moneda pasiva: +1 por mensaje que no dispara la sanción.
		b.Economy.Credit(m.Author.ID, 1)
	}

	// Responder a menciones del bot
	for _, mention := range m.Mentions {
		if mention.ID == s.State.User.ID {
			embed := &discordgo.MessageEmbed{
				Title:       "👋 ¡Hola!",
				Description: "Usa comandos **slash (/)** para interactuar conmigo.\nEscribe `/help` para ver todos los comandos disponibles.",
				Color:       0x3498db,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "🎉 Sorteos", Value: "`/giveaway start` - Inicia un sorteo", Inline: true},
					{Name: "💰 Economía", Value: "`/work` `/daily` `/coins`", Inline: true},
					{Name: "❓ Ayuda", Value: "`/help` - Ver todos los comandos", Inline: true},
				},
			}
			_, err := s.ChannelMessageSendEmbed(m.ChannelID, embed)
			if err != nil {
				logger.Error(fmt.Sprintf("Error enviando respuesta: %v", err), "Message")
			}
			break
		}
	}

	// Respuestas automáticas
	content := strings.ToLower(m.Content)

	if strings.Contains(content, "hola bot") || strings.Contains(content, "hola vortexbot") {
		_, err := s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("¡Hola <@%s>! 👋 ¿En qué puedo ayudarte?", m.Author.ID))
		if err != nil {
			logger.Error(fmt.Sprintf("Error enviando saludo: %v", err), "Message")
		}
	}

	if strings.Contains(content, "gracias bot") || strings.Contains(content, "gracias vortexbot") {
		_, err := s.ChannelMessageSend(m.ChannelID, "¡De nada! 😊 Siempre es un placer ayudar.")
		if err != nil {
			logger.Error(fmt.Sprintf("Error enviando agradecimiento: %v", err), "Message")
		}
	}
}

// onMessageDelete is called when a message is deleted
func onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	logger.Debug(fmt.Sprintf("🗑️ Mensaje eliminado: ID %s en canal %s",
		m.ID, m.ChannelID), "Message")
}
