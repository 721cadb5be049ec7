// Package economy implementa la moneda del servidor: saldos, cooldowns de
// work/daily, apuestas, transferencias, inventario y advertencias. Todas
// las mutaciones pasan por el store, que las serializa y persiste.
package economy

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/VortexStudios/VortexBotGo/pkg/models"
	"github.com/VortexStudios/VortexBotGo/pkg/store"
)

const (
	// WorkCooldown separa dos cobros de trabajo consecutivos.
	WorkCooldown = time.Hour
	// DailyCooldown separa dos recompensas diarias.
	DailyCooldown = 24 * time.Hour
	// MinGamble es la apuesta mínima aceptada.
	MinGamble = 10
	// SpamFine son las monedas descontadas por una sanción de spam.
	SpamFine = 50
)

var (
	// ErrInsufficientFunds indica saldo insuficiente para la operación.
	ErrInsufficientFunds = errors.New("monedas insuficientes")
	// ErrSelfTransfer indica una transferencia a uno mismo.
	ErrSelfTransfer = errors.New("no puedes transferirte a ti mismo")
)

// CooldownError indica una operación repetida antes de tiempo.
type CooldownError struct {
	Op        string
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s en cooldown, faltan %s", e.Op, e.Remaining.Round(time.Second))
}

// ValidationError rechaza una cantidad o argumento inválido.
type ValidationError struct{ Reason string }

func (e *ValidationError) Error() string { return e.Reason }

// Service opera sobre las cuentas de usuario.
type Service struct {
	store *store.Service
	rng   *rand.Rand
	now   func() time.Time
}

// NewService builds the economy service. rng and now default to a
// time-seeded generator and the system clock.
func NewService(st *store.Service, rng *rand.Rand, now func() time.Time) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &Service{store: st, rng: rng, now: now}
}

// Account returns a copy of the user's account, creating it if absent.
func (s *Service) Account(userID string) models.UserAccount {
	var acct models.UserAccount
	_ = s.store.Update(func(st *models.State) error {
		acct = *st.User(userID)
		return nil
	})
	return acct
}

// Credit suma monedas al usuario. Los montos negativos restan con piso
// en cero.
func (s *Service) Credit(userID string, amount int64) int64 {
	var balance int64
	_ = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		u.Coins += amount
		if u.Coins < 0 {
			u.Coins = 0
		}
		balance = u.Coins
		return nil
	})
	return balance
}

// Debit quita monedas; falla sin mutar si el saldo no alcanza.
func (s *Service) Debit(userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, &ValidationError{Reason: "la cantidad debe ser mayor que cero"}
	}
	var balance int64
	err := s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		if u.Coins < amount {
			return ErrInsufficientFunds
		}
		u.Coins -= amount
		balance = u.Coins
		return nil
	})
	return balance, err
}

// Transfer moves coins between two users atomically.
func (s *Service) Transfer(fromID, toID string, amount int64) error {
	if fromID == toID {
		return ErrSelfTransfer
	}
	if amount < 1 {
		return &ValidationError{Reason: "la cantidad mínima es 1"}
	}
	return s.store.Update(func(st *models.State) error {
		from := st.User(fromID)
		if from.Coins < amount {
			return ErrInsufficientFunds
		}
		from.Coins -= amount
		st.User(toID).Coins += amount
		return nil
	})
}

// Work pays out 10-109 coins once per hour.
func (s *Service) Work(userID string) (earned, balance int64, err error) {
	err = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		now := s.now()
		if rem := WorkCooldown - now.Sub(time.UnixMilli(u.LastWork)); rem > 0 {
			return &CooldownError{Op: "work", Remaining: rem}
		}
		earned = int64(s.rng.Intn(100)) + 10
		u.Coins += earned
		u.LastWork = now.UnixMilli()
		balance = u.Coins
		return nil
	})
	return earned, balance, err
}

// Daily pays out 10-20 coins once per day.
func (s *Service) Daily(userID string) (earned, balance int64, err error) {
	err = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		now := s.now()
		if rem := DailyCooldown - now.Sub(time.UnixMilli(u.LastDaily)); rem > 0 {
			return &CooldownError{Op: "daily", Remaining: rem}
		}
		earned = int64(s.rng.Intn(11)) + 10
		u.Coins += earned
		u.LastDaily = now.UnixMilli()
		balance = u.Coins
		return nil
	})
	return earned, balance, err
}

// Gamble bets amount at even odds. Returns whether the user won and the
// resulting balance.
func (s *Service) Gamble(userID string, amount int64) (won bool, balance int64, err error) {
	if amount < MinGamble {
		return false, 0, &ValidationError{Reason: fmt.Sprintf("la apuesta mínima es %d", MinGamble)}
	}
	err = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		if u.Coins < amount {
			return ErrInsufficientFunds
		}
		won = s.rng.Intn(2) == 0
		if won {
			u.Coins += amount
		} else {
			u.Coins -= amount
		}
		balance = u.Coins
		return nil
	})
	return won, balance, err
}

// Entry es una fila del leaderboard.
type Entry struct {
	UserID string
	Coins  int64
}

// Leaderboard returns the top limit accounts by balance, skipping users
// for which exclude returns true (staff stays off the board).
func (s *Service) Leaderboard(limit int, exclude func(userID string) bool) []Entry {
	var rows []Entry
	s.store.View(func(st *models.State) {
		for id, u := range st.Users {
			if exclude != nil && exclude(id) {
				continue
			}
			rows = append(rows, Entry{UserID: id, Coins: u.Coins})
		}
	})
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Coins != rows[j].Coins {
			return rows[i].Coins > rows[j].Coins
		}
		return rows[i].UserID < rows[j].UserID
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// AddItem appends an inventory entry to the user.
func (s *Service) AddItem(userID string, item models.InventoryItem) {
	_ = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		u.Inventory = append(u.Inventory, item)
		return nil
	})
}

// ClearInventory vacía el inventario del usuario y devuelve cuántas
// entradas había.
func (s *Service) ClearInventory(userID string) int {
	var removed int
	_ = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		removed = len(u.Inventory)
		u.Inventory = []models.InventoryItem{}
		return nil
	})
	return removed
}

// Inventory returns a copy of the user's inventory.
func (s *Service) Inventory(userID string) []models.InventoryItem {
	var items []models.InventoryItem
	s.store.View(func(st *models.State) {
		if u, ok := st.Users[userID]; ok {
			items = append(items, u.Inventory...)
		}
	})
	return items
}

// Warn incrementa el contador de advertencias y devuelve el total.
func (s *Service) Warn(userID string) int {
	var total int
	_ = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		u.Warns++
		total = u.Warns
		return nil
	})
	return total
}

// Unwarn descuenta una advertencia, con piso en cero.
func (s *Service) Unwarn(userID string) int {
	var total int
	_ = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		if u.Warns > 0 {
			u.Warns--
		}
		total = u.Warns
		return nil
	})
	return total
}

// SpamPenalty aplica la sanción por spam: +1 advertencia y multa de
// monedas con piso en cero.
func (s *Service) SpamPenalty(userID string) (warns int, balance int64) {
	_ = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		u.Warns++
		u.Coins -= SpamFine
		if u.Coins < 0 {
			u.Coins = 0
		}
		warns = u.Warns
		balance = u.Coins
		return nil
	})
	return warns, balance
}

// StaffWarn registra una advertencia formal contra un miembro del staff
// y devuelve su ID para referencia posterior.
func (s *Service) StaffWarn(targetID, byID, reason string) models.StaffWarn {
	warn := models.StaffWarn{
		ID:     uuid.NewString(),
		Reason: reason,
		By:     byID,
		Date:   s.now().Format(time.RFC3339),
	}
	_ = s.store.Update(func(st *models.State) error {
		u := st.User(targetID)
		u.StaffWarns = append(u.StaffWarns, warn)
		return nil
	})
	return warn
}

// RemoveStaffWarn deletes a staff warn by ID. Returns false when the
// user has no warn with that ID.
func (s *Service) RemoveStaffWarn(targetID, warnID string) bool {
	removed := false
	_ = s.store.Update(func(st *models.State) error {
		u := st.User(targetID)
		for i, w := range u.StaffWarns {
			if w.ID == warnID {
				u.StaffWarns = append(u.StaffWarns[:i], u.StaffWarns[i+1:]...)
				removed = true
				break
			}
		}
		return nil
	})
	return removed
}
