// Package models define los registros persistidos del bot: sorteos,
// cuentas de usuario, tickets y el documento raíz que los contiene.
package models

// StateVersion is the current schema revision of the persisted document.
const StateVersion = 1

// State es el documento único que respalda al bot completo. Se carga una
// vez al inicio, se muta en memoria y se vuelca al almacenamiento duradero
// en cada mutación.
type State struct {
	Version            int                        `json:"version"`
	Giveaways          map[string]*GiveawayRecord `json:"giveaways"`
	Users              map[string]*UserAccount    `json:"users"`
	Tickets            map[string]*TicketRecord   `json:"tickets"`
	Invites            map[string]*InviteStats    `json:"invites"`
	StaffMessageID     string                     `json:"staffMessageId,omitempty"`
	ChestShopMessageID string                     `json:"chestShopMessageId,omitempty"`
}

// NewState returns an empty, fully-initialized state document.
func NewState() *State {
	return &State{
		Version:   StateVersion,
		Giveaways: make(map[string]*GiveawayRecord),
		Users:     make(map[string]*UserAccount),
		Tickets:   make(map[string]*TicketRecord),
		Invites:   make(map[string]*InviteStats),
	}
}

// Normalize defaults missing top-level maps and repairs every user record.
// Runs exactly once at load time so the rest of the process can assume a
// fully-typed structure.
func (s *State) Normalize() {
	if s.Version == 0 {
		s.Version = StateVersion
	}
	if s.Giveaways == nil {
		s.Giveaways = make(map[string]*GiveawayRecord)
	}
	if s.Users == nil {
		s.Users = make(map[string]*UserAccount)
	}
	if s.Tickets == nil {
		s.Tickets = make(map[string]*TicketRecord)
	}
	if s.Invites == nil {
		s.Invites = make(map[string]*InviteStats)
	}
	for _, u := range s.Users {
		u.Normalize()
	}
}

// User devuelve la cuenta del usuario, creándola si no existe.
func (s *State) User(id string) *UserAccount {
	u, ok := s.Users[id]
	if !ok {
		u = &UserAccount{
			StaffWarns: []StaffWarn{},
			Inventory:  []InventoryItem{},
		}
		s.Users[id] = u
	}
	return u
}
