package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/config"
)

// RoleChecker decide quién es admin y quién es staff. Se construye desde
// la configuración y se inyecta: los comandos y eventos nunca leen roles
// directamente.
type RoleChecker struct {
	adminRoleID  string
	staffRoleIDs []string
}

// NewRoleChecker builds a checker from the configured role IDs.
func NewRoleChecker(cfg *config.Config) *RoleChecker {
	return &RoleChecker{
		adminRoleID:  cfg.AdminRoleID,
		staffRoleIDs: cfg.StaffRoleIDs,
	}
}

// IsAdmin reports whether the member has the admin role or the
// Administrator permission.
func (rc *RoleChecker) IsAdmin(m *discordgo.Member) bool {
	if m == nil {
		return false
	}
	if m.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	for _, r := range m.Roles {
		if r == rc.adminRoleID && rc.adminRoleID != "" {
			return true
		}
	}
	return false
}

// IsStaff reports whether the member is admin or holds any staff role.
func (rc *RoleChecker) IsStaff(m *discordgo.Member) bool {
	if rc.IsAdmin(m) {
		return true
	}
	if m == nil {
		return false
	}
	for _, r := range m.Roles {
		for _, staff := range rc.staffRoleIDs {
			if r == staff {
				return true
			}
		}
	}
	return false
}

// IsStaffID resolves the member by ID against the session state before
// checking. Used by the leaderboard exclusion and anti-spam exemption,
// which only have a user ID.
func (rc *RoleChecker) IsStaffID(s *discordgo.Session, guildID, userID string) bool {
	if guildID == "" {
		return false
	}
	m, err := s.State.Member(guildID, userID)
	if err != nil || m == nil {
		m, err = s.GuildMember(guildID, userID)
		if err != nil {
			return false
		}
	}
	return rc.IsStaff(m)
}
