package models

// TicketRecord representa un ticket de reclamo, identificado por el ID del
// canal privado que se creó para él. Se elimina cuando se borra el canal.
type TicketRecord struct {
	UserID    string `bson:"userId" json:"userId"`
	Reason    string `bson:"reason" json:"reason"`
	Open      bool   `bson:"open" json:"open"`
	CreatedAt int64  `bson:"createdAt" json:"createdAt"` // unix ms
}

// InviteStats acumula atribución de invitaciones por usuario. Fuera del
// núcleo del bot, pero forma parte del documento persistido.
type InviteStats struct {
	Count int      `bson:"count" json:"count"`
	Users []string `bson:"users" json:"users"`
}
