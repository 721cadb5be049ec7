// Package events provides event handlers for member events
package events

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient, b *services.Bundle) {
	client.Session.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
		onGuildMemberAdd(s, m, b)
	})
	client.Session.AddHandler(onGuildMemberRemove)
	client.Session.AddHandler(onGuildMemberUpdate)
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd, b *services.Bundle) {
	logger.Info(fmt.Sprintf("👋 Nuevo miembro: %s#%s en servidor %s",
		m.User.Username, m.User.Discriminator, m.GuildID), "Member")

	attributeInvite(s, m.GuildID, m.User.ID, b)

	// Obtener información del servidor
	guild, err := s.Guild(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("Error obteniendo servidor: %v", err), "Member")
		return
	}

	// Enviar mensaje de bienvenida al canal del sistema
	if guild.SystemChannelID != "" {
		welcomeEmbed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("✨ Welcome to %s!", guild.Name),
			Description: fmt.Sprintf("Hey <@%s>, welcome aboard! 🎉\nYou are our **#%d** member!\n\n> Check the rules and enjoy your stay!", m.User.ID, guild.MemberCount),
			Color:       0x5865F2,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: m.User.AvatarURL("512"),
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text:    guild.Name,
				IconURL: guild.IconURL("64"),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		_, err := s.ChannelMessageSendEmbed(guild.SystemChannelID, welcomeEmbed)
		if err != nil {
			logger.Error(fmt.Sprintf("Error enviando mensaje de bienvenida: %v", err), "Member")
		}
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Adiós: %s#%s salió del servidor %s",
		m.User.Username, m.User.Discriminator, m.GuildID), "Member")

	// Enviar mensaje de despedida
	guild, err := s.Guild(m.GuildID)
	if err == nil && guild.SystemChannelID != "" {
		farewellEmbed := &discordgo.MessageEmbed{
			Title: fmt.Sprintf("👋 Goodbye, %s", m.User.Username),
			Description: fmt.Sprintf("**%s** has left.\nWe now have **%d** members.\n\n> We hope to see you again!",
				m.User.Username, guild.MemberCount),
			Color: 0xFF4444,
			Thumbnail: &discordgo.MessageEmbedThumbnail{
				URL: m.User.AvatarURL("512"),
			},
			Timestamp: time.Now().Format(time.RFC3339),
		}

		_, sendErr := s.ChannelMessageSendEmbed(guild.SystemChannelID, farewellEmbed)
		if sendErr != nil {
			logger.Error(fmt.Sprintf("Error enviando mensaje de despedida: %v", sendErr), "Member")
		}
	}
}

// onGuildMemberUpdate is called when a member is updated (roles, nickname, etc.)
func onGuildMemberUpdate(s *discordgo.Session, m *discordgo.GuildMemberUpdate) {
	// Solo loguear si hay cambios significativos
	if m.BeforeUpdate != nil {
		oldNick := m.BeforeUpdate.Nick
		newNick := m.Nick

		if oldNick != newNick {
			logger.Debug(fmt.Sprintf("✏️ %s cambió nickname: '%s' → '%s'",
				m.User.Username, oldNick, newNick), "Member")
		}

		if len(m.BeforeUpdate.Roles) != len(m.Roles) {
			logger.Debug(fmt.Sprintf("🎭 Roles actualizados para %s", m.User.Username), "Member")
		}
	}
}
