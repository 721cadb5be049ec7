// Package tickets gestiona los canales de ticket y el puente de reclamo
// entre el inventario de un usuario y un ticket nuevo.
package tickets

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
	"github.com/VortexStudios/VortexBotGo/pkg/store"
)

var (
	// ErrEmptyInventory indica un claim sin nada reclamable.
	ErrEmptyInventory = errors.New("el inventario está vacío")
	// ErrTicketCreation indica que el canal del ticket no pudo crearse.
	// El inventario queda intacto.
	ErrTicketCreation = errors.New("no se pudo crear el ticket")
	// ErrTicketNotFound indica que el canal no tiene ticket registrado.
	ErrTicketNotFound = errors.New("este canal no es un ticket")
)

// ChannelCreator abre el canal privado de un ticket en la plataforma y
// devuelve su ID.
type ChannelCreator interface {
	CreateTicketChannel(userID, reason string) (channelID string, err error)
}

// Bridge crea tickets y ejecuta el claim en dos fases: primero el canal,
// después el drenado del inventario. Un fallo en la primera fase deja el
// inventario intacto.
type Bridge struct {
	store   *store.Service
	creator ChannelCreator
	now     func() time.Time
}

// NewBridge builds the bridge. now defaults to the system clock.
func NewBridge(st *store.Service, creator ChannelCreator, now func() time.Time) *Bridge {
	if now == nil {
		now = time.Now
	}
	return &Bridge{store: st, creator: creator, now: now}
}

// ClaimResult describe un claim completado.
type ClaimResult struct {
	ChannelID string
	Items     []models.InventoryItem
}

// Claim opens a ticket listing every claimable item of the user and then
// drains those items from the inventory. Unopened chests stay behind.
// Ticket creation happens before any mutation: if it fails, nothing is
// lost and the user can retry.
func (b *Bridge) Claim(userID string) (*ClaimResult, error) {
	var items []models.InventoryItem
	b.store.View(func(s *models.State) {
		if u, ok := s.Users[userID]; ok {
			items = u.ClaimableItems()
		}
	})
	if len(items) == 0 {
		return nil, ErrEmptyInventory
	}

	lines := make([]string, 0, len(items))
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, it.Item))
	}
	reason := "Claiming prizes:\n" + strings.Join(lines, "\n")

	channelID, err := b.creator.CreateTicketChannel(userID, reason)
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo crear el ticket de claim de %s: %v", userID, err), "Tickets")
		return nil, ErrTicketCreation
	}

	err = b.store.Update(func(s *models.State) error {
		s.Tickets[channelID] = &models.TicketRecord{
			UserID:    userID,
			Reason:    reason,
			Open:      true,
			CreatedAt: b.now().UnixMilli(),
		}
		// Drena solo el snapshot listado en el ticket. Los premios
		// asentados mientras se creaba el canal quedan para el próximo
		// claim; las mutaciones serializadas del store garantizan que
		// los primeros len(items) reclamables son los del snapshot.
		u := s.User(userID)
		remaining := len(items)
		kept := u.Inventory[:0]
		for _, it := range u.Inventory {
			if it.Claimable() && remaining > 0 {
				remaining--
				continue
			}
			kept = append(kept, it)
		}
		u.Inventory = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Info(fmt.Sprintf("Claim de %s: %d premios al ticket %s", userID, len(items), channelID), "Tickets")
	return &ClaimResult{ChannelID: channelID, Items: items}, nil
}

// OpenTicket creates a plain support ticket without touching inventory.
func (b *Bridge) OpenTicket(userID, reason string) (string, error) {
	channelID, err := b.creator.CreateTicketChannel(userID, reason)
	if err != nil {
		return "", ErrTicketCreation
	}
	err = b.store.Update(func(s *models.State) error {
		s.Tickets[channelID] = &models.TicketRecord{
			UserID:    userID,
			Reason:    reason,
			Open:      true,
			CreatedAt: b.now().UnixMilli(),
		}
		return nil
	})
	return channelID, err
}

// Get returns the ticket registered for channelID, if any.
func (b *Bridge) Get(channelID string) (*models.TicketRecord, error) {
	var rec *models.TicketRecord
	b.store.View(func(s *models.State) {
		rec = s.Tickets[channelID]
	})
	if rec == nil {
		return nil, ErrTicketNotFound
	}
	return rec, nil
}

// Close marks the ticket closed.
func (b *Bridge) Close(channelID string) (*models.TicketRecord, error) {
	return b.setOpen(channelID, false)
}

// Reopen marks the ticket open again.
func (b *Bridge) Reopen(channelID string) (*models.TicketRecord, error) {
	return b.setOpen(channelID, true)
}

func (b *Bridge) setOpen(channelID string, open bool) (*models.TicketRecord, error) {
	var rec *models.TicketRecord
	err := b.store.Update(func(s *models.State) error {
		t, ok := s.Tickets[channelID]
		if !ok {
			return ErrTicketNotFound
		}
		t.Open = open
		rec = t
		return nil
	})
	return rec, err
}

// Delete drops the ticket record, once the channel itself is gone.
func (b *Bridge) Delete(channelID string) error {
	return b.store.Update(func(s *models.State) error {
		if _, ok := s.Tickets[channelID]; !ok {
			return ErrTicketNotFound
		}
		delete(s.Tickets, channelID)
		return nil
	})
}
