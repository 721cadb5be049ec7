package models

import "time"

// PrizeKind indica qué se entrega al concluir un sorteo
type PrizeKind string

const (
	PrizeCoins PrizeKind = "coins"
	PrizeItem  PrizeKind = "item"
)

// NoEntriesText is persisted as the winner field when a giveaway
// concludes without a single valid entry.
const NoEntriesText = "No valid entries"

// GiveawayRecord representa un sorteo, identificado por el ID del mensaje
// de anuncio. Después de crearse, solo EndGiveaway/Reroll mutan los campos
// finales (Ended, WinnerMentions, TotalEntries).
type GiveawayRecord struct {
	MessageID      string    `bson:"_id" json:"messageId"`
	ChannelID      string    `bson:"channelId" json:"channelId"`
	Prize          string    `bson:"prize" json:"prize"`
	Kind           PrizeKind `bson:"kind" json:"kind"`
	CoinsAmount    int64     `bson:"coinsAmount" json:"coinsAmount"`
	HostID         string    `bson:"hostId" json:"hostId"`
	Winners        int       `bson:"winners" json:"winners"`
	StartedAt      int64     `bson:"startedAt" json:"startedAt"` // unix ms
	EndsAt         int64     `bson:"endsAt" json:"endsAt"`       // unix ms
	Ended          bool      `bson:"ended" json:"ended"`
	WinnerMentions []string  `bson:"winnerMentions,omitempty" json:"winnerMentions,omitempty"`
	TotalEntries   int       `bson:"totalEntries" json:"totalEntries"`
}

// EndsAtTime returns the absolute expiry instant.
func (g *GiveawayRecord) EndsAtTime() time.Time {
	return time.UnixMilli(g.EndsAt)
}

// Duration returns the originally announced entry window length.
func (g *GiveawayRecord) Duration() time.Duration {
	return time.Duration(g.EndsAt-g.StartedAt) * time.Millisecond
}
