// Package events - invite attribution
package events

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/internal/services"
	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

// inviteUses caches invite use counts per guild so a new member can be
// attributed to the invite whose counter moved.
var (
	inviteMu   sync.Mutex
	inviteUses = make(map[string]map[string]int) // guildID -> code -> uses
)

// cacheGuildInvites snapshots the current invite counters of a guild.
func cacheGuildInvites(s *discordgo.Session, guildID string) {
	invites, err := s.GuildInvites(guildID)
	if err != nil {
		logger.Debug(fmt.Sprintf("No se pudieron leer las invitaciones de %s: %v", guildID, err), "Invites")
		return
	}
	snapshot := make(map[string]int, len(invites))
	for _, inv := range invites {
		snapshot[inv.Code] = inv.Uses
	}
	inviteMu.Lock()
	inviteUses[guildID] = snapshot
	inviteMu.Unlock()
}

// attributeInvite finds which invite brought the new member and credits
// the inviter's stats.
func attributeInvite(s *discordgo.Session, guildID, newUserID string, b *services.Bundle) {
	invites, err := s.GuildInvites(guildID)
	if err != nil {
		return
	}

	inviteMu.Lock()
	prev := inviteUses[guildID]
	var inviterID string
	snapshot := make(map[string]int, len(invites))
	for _, inv := range invites {
		snapshot[inv.Code] = inv.Uses
		if prev != nil && inv.Uses > prev[inv.Code] && inv.Inviter != nil {
			inviterID = inv.Inviter.ID
		}
	}
	inviteUses[guildID] = snapshot
	inviteMu.Unlock()

	if inviterID == "" {
		return
	}

	b.Store.Update(func(st *models.State) error {
		stats, ok := st.Invites[inviterID]
		if !ok {
			stats = &models.InviteStats{}
			st.Invites[inviterID] = stats
		}
		stats.Count++
		stats.Users = append(stats.Users, newUserID)
		return nil
	})
	logger.Info(fmt.Sprintf("Invitación atribuida: %s invitó a %s", inviterID, newUserID), "Invites")
}
