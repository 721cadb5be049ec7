// Package events - self-updating channel panels (staff list, chest shop)
package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/discord"
	"github.com/VortexStudios/VortexBotGo/pkg/economy"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

// refreshPanels actualiza los paneles persistentes del servidor. Corre al
// arrancar y cada hora.
func refreshPanels(s *discordgo.Session, client *discord.ExtendedClient, b *services.Bundle) {
	cfg := client.GetConfig()
	if cfg.StaffChannelID != "" {
		updateStaffList(s, client, b)
	}
	if cfg.ChestShopChannelID != "" {
		updateChestShop(s, client, b)
	}
}

// buildStaffEmbed lists every configured staff role with its members.
func buildStaffEmbed(s *discordgo.Session, guildID string, roleIDs []string) (*discordgo.MessageEmbed, error) {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return nil, err
		}
	}

	members, err := s.GuildMembers(guildID, "", 1000)
	if err != nil {
		return nil, err
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		var role *discordgo.Role
		for _, r := range guild.Roles {
			if r.ID == roleID {
				role = r
				break
			}
		}
		if role == nil {
			continue
		}

		var mentions []string
		for _, m := range members {
			for _, r := range m.Roles {
				if r == roleID {
					mentions = append(mentions, "<@"+m.User.ID+">")
					break
				}
			}
		}
		value := "_None_"
		if len(mentions) > 0 {
			value = strings.Join(mentions, "  ")
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("▸ %s (%d)", role.Name, len(mentions)),
			Value: fmt.Sprintf("<@&%s>\n%s", role.ID, value),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "👥 Staff List",
		Description: fmt.Sprintf("**%s** Staff Team", guild.Name),
		Fields:      fields,
		Color:       0x5865F2,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Last updated: " + time.Now().Format("2006-01-02 15:04:05")},
	}, nil
}

// updateStaffList edits the persisted staff panel or posts a fresh one.
func updateStaffList(s *discordgo.Session, client *discord.ExtendedClient, b *services.Bundle) {
	cfg := client.GetConfig()
	embed, err := buildStaffEmbed(s, cfg.GuildID, cfg.StaffRoleIDs)
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo construir la lista de staff: %v", err), "Panels")
		return
	}

	var messageID string
	b.Store.View(func(st *models.State) { messageID = st.StaffMessageID })

	if messageID != "" {
		if _, err := s.ChannelMessageEditEmbed(cfg.StaffChannelID, messageID, embed); err == nil {
			return
		}
		// El mensaje guardado ya no existe, publicar de nuevo.
	}

	msg, err := s.ChannelMessageSendEmbed(cfg.StaffChannelID, embed)
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar la lista de staff: %v", err), "Panels")
		return
	}
	b.Store.Update(func(st *models.State) error {
		st.StaffMessageID = msg.ID
		return nil
	})
	logger.Info("Lista de staff publicada ("+msg.ID+")", "Panels")
}

// buildChestShopEmbed renders the mystery chest shop panel.
func buildChestShopEmbed() *discordgo.MessageEmbed {
	var tiers strings.Builder
	for _, r := range economy.ChestRewards() {
		fmt.Fprintf(&tiers, "**%s**\n> **[SAB]** %s\n> **[ETFB]** %s\n\n", r.Rarity, r.SABPrize, r.ETFBPrize)
	}
	return &discordgo.MessageEmbed{
		Title: "🎁 Mystery Chest Shop",
		Description: fmt.Sprintf(
			"Click the button below to purchase a **Mystery Chest** for **%d** 🪙!\n\n%s"+
				"> A random game (**SAB** or **ETFB**) is chosen when you open.\n"+
				"> Use `/open chest` after buying!",
			economy.ChestPrice, tiers.String(),
		),
		Color: 0xF1C40F,
	}
}

func chestShopComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: "buy_chest",
					Label:    fmt.Sprintf("🎁 Buy Mystery Chest — %d coins", economy.ChestPrice),
					Style:    discordgo.PrimaryButton,
				},
			},
		},
	}
}

// updateChestShop edits the persisted shop panel or posts a fresh one.
func updateChestShop(s *discordgo.Session, client *discord.ExtendedClient, b *services.Bundle) {
	cfg := client.GetConfig()
	embed := buildChestShopEmbed()
	components := chestShopComponents()

	var messageID string
	b.Store.View(func(st *models.State) { messageID = st.ChestShopMessageID })

	if messageID != "" {
		_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			ID:         messageID,
			Channel:    cfg.ChestShopChannelID,
			Embeds:     &[]*discordgo.MessageEmbed{embed},
			Components: &components,
		})
		if err == nil {
			return
		}
	}

	msg, err := s.ChannelMessageSendComplex(cfg.ChestShopChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar la tienda de cofres: %v", err), "Panels")
		return
	}
	b.Store.Update(func(st *models.State) error {
		st.ChestShopMessageID = msg.ID
		return nil
	})
	logger.Info("Tienda de cofres publicada ("+msg.ID+")", "Panels")
}
