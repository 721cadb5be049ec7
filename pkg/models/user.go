package models

// InventoryItem es una entrada del inventario de un usuario.
// Unopened marca cofres sin abrir: no son reclamables hasta abrirse.
type InventoryItem struct {
	Item     string `bson:"item" json:"item"`
	Source   string `bson:"from" json:"from"`
	Date     string `bson:"date" json:"date"`
	Unopened bool   `bson:"unopened,omitempty" json:"unopened,omitempty"`
}

// Claimable reports whether the item can be included in a claim ticket.
func (i InventoryItem) Claimable() bool {
	return !i.Unopened
}

// StaffWarn es una advertencia formal a un miembro del staff
type StaffWarn struct {
	ID     string `bson:"id" json:"id"`
	Reason string `bson:"reason" json:"reason"`
	By     string `bson:"by" json:"by"`
	Date   string `bson:"date" json:"date"`
}

// UserAccount representa la economía de un usuario: monedas, advertencias,
// inventario y cooldowns. Se crea de forma perezosa en la primera referencia
// y nunca se elimina.
type UserAccount struct {
	Coins      int64           `bson:"coins" json:"coins"`
	Warns      int             `bson:"warns" json:"warns"`
	StaffWarns []StaffWarn     `bson:"staffWarns" json:"staffWarns"`
	LastWork   int64           `bson:"lastWork" json:"lastWork"`   // unix ms
	LastDaily  int64           `bson:"lastDaily" json:"lastDaily"` // unix ms
	Inventory  []InventoryItem `bson:"inventory" json:"inventory"`
}

// Normalize repairs records loaded from older document revisions:
// missing slices become empty and negative counters are clamped.
func (u *UserAccount) Normalize() {
	if u.StaffWarns == nil {
		u.StaffWarns = []StaffWarn{}
	}
	if u.Inventory == nil {
		u.Inventory = []InventoryItem{}
	}
	if u.Coins < 0 {
		u.Coins = 0
	}
	if u.Warns < 0 {
		u.Warns = 0
	}
}

// ClaimableItems returns the subset of the inventory that a claim
// would drain. Unopened containers stay behind.
func (u *UserAccount) ClaimableItems() []InventoryItem {
	items := make([]InventoryItem, 0, len(u.Inventory))
	for _, it := range u.Inventory {
		if it.Claimable() {
			items = append(items, it)
		}
	}
	return items
}
