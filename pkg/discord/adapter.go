package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/VortexStudios/VortexBotGo/pkg/config"
	"github.com/VortexStudios/VortexBotGo/pkg/giveaway"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

// reactionPageSize is the per-request cap of the reactions endpoint.
const reactionPageSize = 100

// SessionAdapter traduce entre el motor de sorteos y la sesión de
// Discord: lee participantes, publica y edita anuncios y crea canales de
// ticket. Todo el renderizado de embeds vive aquí.
type SessionAdapter struct {
	session *discordgo.Session
	cfg     *config.Config
}

// NewSessionAdapter builds the adapter over an open session.
func NewSessionAdapter(session *discordgo.Session, cfg *config.Config) *SessionAdapter {
	return &SessionAdapter{session: session, cfg: cfg}
}

// emojiDisplay is the entry emoji as it renders inside message content.
func (a *SessionAdapter) emojiDisplay() string {
	if a.cfg.GiveawayEmojiID != "" {
		return "<:" + a.cfg.GiveawayEmojiName + ":" + a.cfg.GiveawayEmojiID + ">"
	}
	return a.cfg.GiveawayEmojiName
}

// FetchEntrants pagina la lista de reacciones del anuncio y devuelve los
// IDs de los participantes, sin bots.
func (a *SessionAdapter) FetchEntrants(channelID, messageID, signal string) ([]string, error) {
	var ids []string
	after := ""
	for {
		users, err := a.session.MessageReactions(channelID, messageID, signal, reactionPageSize, "", after)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			if u.Bot {
				continue
			}
			ids = append(ids, u.ID)
		}
		if len(users) < reactionPageSize {
			return ids, nil
		}
		after = users[len(users)-1].ID
	}
}

// liveEmbed renders the announcement while the giveaway is running.
func (a *SessionAdapter) liveEmbed(rec *models.GiveawayRecord) *discordgo.MessageEmbed {
	emoji := a.emojiDisplay()
	ts := rec.EndsAt / 1000
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s  G I V E A W A Y  %s", emoji, emoji),
		Description: fmt.Sprintf(
			"## %s %s %s\n\n> React with %s to enter!\n\n"+
				"**⏰ Ends:** <t:%d:R> *(<t:%d:f>)*\n"+
				"**🏆 Winners:** %d\n"+
				"**⏱️ Duration:** %s\n"+
				"**🎟️ Hosted by:** <@%s>",
			emoji, rec.Prize, emoji, emoji, ts, ts, rec.Winners,
			giveaway.FormatDuration(rec.Duration()), rec.HostID,
		),
		Color:  0xF1C40F,
		Footer: &discordgo.MessageEmbedFooter{Text: "🎉 Good luck! • Ends"},
	}
}

// endedEmbed renders the announcement once the giveaway concluded.
func (a *SessionAdapter) endedEmbed(rec *models.GiveawayRecord) *discordgo.MessageEmbed {
	winners := models.NoEntriesText
	if len(rec.WinnerMentions) > 0 {
		winners = strings.Join(rec.WinnerMentions, ", ")
	}
	return &discordgo.MessageEmbed{
		Title: a.emojiDisplay() + "  GIVEAWAY ENDED",
		Description: fmt.Sprintf(
			"## 🎁 %s\n\n**🏆 Winner(s):** %s\n**🎟️ Hosted by:** <@%s>\n**👥 Entries:** %d\n**🏅 Winners:** %d",
			rec.Prize, winners, rec.HostID, rec.TotalEntries, rec.Winners,
		),
		Color:  0x2ECC71,
		Footer: &discordgo.MessageEmbedFooter{Text: "Giveaway ended"},
	}
}

// PostAnnouncement publishes the live embed and seeds the entry reaction.
func (a *SessionAdapter) PostAnnouncement(rec *models.GiveawayRecord) (string, error) {
	msg, err := a.session.ChannelMessageSendEmbed(rec.ChannelID, a.liveEmbed(rec))
	if err != nil {
		return "", err
	}
	if err := a.session.MessageReactionAdd(rec.ChannelID, msg.ID, a.cfg.EntrySignal()); err != nil {
		return msg.ID, err
	}
	return msg.ID, nil
}

// EditAnnouncement rewrites the announcement into its ended form.
func (a *SessionAdapter) EditAnnouncement(rec *models.GiveawayRecord) error {
	_, err := a.session.ChannelMessageEditEmbed(rec.ChannelID, rec.MessageID, a.endedEmbed(rec))
	return err
}

// AnnounceOutcome posts the congratulation (or no-entries notice) in the
// giveaway channel.
func (a *SessionAdapter) AnnounceOutcome(rec *models.GiveawayRecord, newWinners []string, reroll bool) error {
	if len(newWinners) == 0 {
		_, err := a.session.ChannelMessageSend(rec.ChannelID, fmt.Sprintf("❌ No valid entries for **%s**.", rec.Prize))
		return err
	}

	mentions := make([]string, 0, len(newWinners))
	for _, id := range newWinners {
		mentions = append(mentions, "<@"+id+">")
	}
	head := a.emojiDisplay()
	if reroll {
		head = "🔄 **Reroll!**"
	}
	note := " Use `/inv` to view your prize, then `/claim` to open a claim ticket!"
	if rec.Kind == models.PrizeCoins {
		note = " Coins added to your balance!"
	}
	_, err := a.session.ChannelMessageSend(rec.ChannelID, fmt.Sprintf(
		"%s Congratulations %s! You won **%s**!%s",
		head, strings.Join(mentions, ", "), rec.Prize, note,
	))
	return err
}

// TicketButtons is the action row attached to a freshly created ticket.
func TicketButtons() discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{CustomID: "ticket_close", Label: "🔒 Close", Style: discordgo.DangerButton},
			discordgo.Button{CustomID: "ticket_delete", Label: "🗑️ Delete", Style: discordgo.SecondaryButton},
		},
	}
}

// ClosedTicketButtons replaces the row once the ticket is closed.
func ClosedTicketButtons() discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{CustomID: "ticket_reopen", Label: "🔓 Reopen", Style: discordgo.SuccessButton},
			discordgo.Button{CustomID: "ticket_delete", Label: "🗑️ Delete", Style: discordgo.DangerButton},
		},
	}
}

// sanitizeChannelName keeps only what Discord accepts in channel names.
func sanitizeChannelName(username string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(username) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if len(name) > 12 {
		name = name[:12]
	}
	return name
}

// CreateTicketChannel abre el canal privado de un ticket: oculto para
// todos, visible para el usuario y los administradores. Devuelve el ID
// del canal.
func (a *SessionAdapter) CreateTicketChannel(userID, reason string) (string, error) {
	user, err := a.session.User(userID)
	if err != nil {
		return "", err
	}

	guildID := a.cfg.GuildID
	suffix := fmt.Sprintf("%d", time.Now().UnixMilli()%10000)
	name := fmt.Sprintf("claim-%s-%s", sanitizeChannelName(user.Username), suffix)

	allow := int64(discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory)
	overwrites := []*discordgo.PermissionOverwrite{
		{ID: guildID, Type: discordgo.PermissionOverwriteTypeRole, Deny: discordgo.PermissionViewChannel},
		{ID: userID, Type: discordgo.PermissionOverwriteTypeMember, Allow: allow},
	}
	if a.cfg.AdminRoleID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID: a.cfg.AdminRoleID, Type: discordgo.PermissionOverwriteTypeRole, Allow: allow,
		})
	}

	ch, err := a.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             a.cfg.TicketCategoryID,
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		return "", err
	}

	if reason == "" {
		reason = "Prize Claim"
	}
	_, err = a.session.ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s> — Ticket created! Staff will be with you shortly.", userID),
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "🎫 Claim Ticket",
			Color:       0x5865F2,
			Description: fmt.Sprintf("**User:** <@%s>\n**Reason:**\n%s\n\n> Staff will deliver your prizes here.", userID, reason),
		}},
		Components: []discordgo.MessageComponent{TicketButtons()},
	})
	if err != nil {
		return ch.ID, err
	}
	return ch.ID, nil
}

// SetTicketWritable toggles the ticket owner's ability to send messages,
// used by the close and reopen buttons.
func (a *SessionAdapter) SetTicketWritable(channelID, userID string, writable bool) error {
	allow := int64(discordgo.PermissionViewChannel | discordgo.PermissionReadMessageHistory)
	var deny int64
	if writable {
		allow |= discordgo.PermissionSendMessages
	} else {
		deny = discordgo.PermissionSendMessages
	}
	return a.session.ChannelPermissionSet(channelID, userID, discordgo.PermissionOverwriteTypeMember, allow, deny)
}
