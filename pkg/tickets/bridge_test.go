package tickets

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/VortexStudios/VortexBotGo/pkg/models"
	"github.com/VortexStudios/VortexBotGo/pkg/store"
)

type nullBackend struct{}

func (nullBackend) Load() (*models.State, error) { return models.NewState(), nil }
func (nullBackend) Save(*models.State) error     { return nil }
func (nullBackend) Close() error                 { return nil }

type fakeCreator struct {
	nextID   string
	fail     bool
	calls    int
	reasons  []string
	onCreate func()
}

func (f *fakeCreator) CreateTicketChannel(userID, reason string) (string, error) {
	f.calls++
	f.reasons = append(f.reasons, reason)
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.fail {
		return "", errors.New("canal no disponible")
	}
	return f.nextID, nil
}

func testBridge(fail bool) (*Bridge, *store.Service, *fakeCreator) {
	st := store.Open(nullBackend{})
	creator := &fakeCreator{nextID: "chan-1", fail: fail}
	now := time.Unix(1700000000, 0)
	return NewBridge(st, creator, func() time.Time { return now }), st, creator
}

func seedInventory(st *store.Service, userID string, items ...models.InventoryItem) {
	_ = st.Update(func(s *models.State) error {
		u := s.User(userID)
		u.Inventory = append(u.Inventory, items...)
		return nil
	})
}

// TestClaimEmptyInventory verifies nothing claimable short-circuits
// before any channel is created
func TestClaimEmptyInventory(t *testing.T) {
	b, st, creator := testBridge(false)

	if _, err := b.Claim("u1"); !errors.Is(err, ErrEmptyInventory) {
		t.Fatalf("Claim = %v, want ErrEmptyInventory", err)
	}

	// An inventory holding only unopened chests is still empty for claims.
	seedInventory(st, "u1", models.InventoryItem{Item: "🎁 Mystery Chest", Source: "Shop", Unopened: true})
	if _, err := b.Claim("u1"); !errors.Is(err, ErrEmptyInventory) {
		t.Fatalf("chest-only Claim = %v, want ErrEmptyInventory", err)
	}
	if creator.calls != 0 {
		t.Errorf("channel created for an empty claim: %d calls", creator.calls)
	}
}

// TestClaimChannelFailureKeepsInventory verifies the ticket-first order:
// a failed channel leaves everything intact for a retry
func TestClaimChannelFailureKeepsInventory(t *testing.T) {
	b, st, _ := testBridge(true)
	seedInventory(st, "u1", models.InventoryItem{Item: "Nitro", Source: "Giveaway"})

	if _, err := b.Claim("u1"); !errors.Is(err, ErrTicketCreation) {
		t.Fatalf("Claim = %v, want ErrTicketCreation", err)
	}

	st.View(func(s *models.State) {
		if len(s.Users["u1"].Inventory) != 1 {
			t.Error("inventory drained despite channel failure")
		}
		if len(s.Tickets) != 0 {
			t.Error("ticket registered despite channel failure")
		}
	})
}

// TestClaimDrainsClaimables verifies the success path: ticket registered,
// prizes drained, chests kept
func TestClaimDrainsClaimables(t *testing.T) {
	b, st, creator := testBridge(false)
	seedInventory(st, "u1",
		models.InventoryItem{Item: "Nitro", Source: "Giveaway"},
		models.InventoryItem{Item: "🎁 Mystery Chest", Source: "Shop", Unopened: true},
		models.InventoryItem{Item: "5 Secrets [SAB]", Source: "Mystery Chest"},
	)

	res, err := b.Claim("u1")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if res.ChannelID != "chan-1" {
		t.Errorf("ChannelID = %q", res.ChannelID)
	}
	if len(res.Items) != 2 {
		t.Fatalf("Items = %+v, want the 2 claimables", res.Items)
	}

	// The channel reason lists every claimed prize.
	if r := creator.reasons[0]; !strings.Contains(r, "Nitro") || !strings.Contains(r, "5 Secrets [SAB]") {
		t.Errorf("reason = %q", r)
	}

	st.View(func(s *models.State) {
		inv := s.Users["u1"].Inventory
		if len(inv) != 1 || !inv[0].Unopened {
			t.Errorf("inventory after claim = %+v, want only the chest", inv)
		}
		rec := s.Tickets["chan-1"]
		if rec == nil || !rec.Open || rec.UserID != "u1" {
			t.Errorf("ticket = %+v", rec)
		}
	})
}

// TestClaimKeepsPrizesSettledDuringCreation verifies only the snapshot
// listed in the ticket is drained: a prize landing while the channel is
// being created survives for the next claim
func TestClaimKeepsPrizesSettledDuringCreation(t *testing.T) {
	b, st, creator := testBridge(false)
	seedInventory(st, "u1", models.InventoryItem{Item: "Nitro", Source: "Giveaway"})

	creator.onCreate = func() {
		seedInventory(st, "u1", models.InventoryItem{Item: "500 monedas [GAME]", Source: "Giveaway"})
	}

	res, err := b.Claim("u1")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].Item != "Nitro" {
		t.Fatalf("Items = %+v, want only the snapshotted Nitro", res.Items)
	}

	st.View(func(s *models.State) {
		inv := s.Users["u1"].Inventory
		if len(inv) != 1 || inv[0].Item != "500 monedas [GAME]" {
			t.Errorf("inventory after claim = %+v, want the late prize kept", inv)
		}
	})
}

// TestOpenTicket verifies plain tickets never touch the inventory
func TestOpenTicket(t *testing.T) {
	b, st, _ := testBridge(false)
	seedInventory(st, "u1", models.InventoryItem{Item: "Nitro", Source: "Giveaway"})

	channelID, err := b.OpenTicket("u1", "necesito ayuda")
	if err != nil {
		t.Fatalf("OpenTicket: %v", err)
	}
	if channelID != "chan-1" {
		t.Errorf("channelID = %q", channelID)
	}

	st.View(func(s *models.State) {
		if len(s.Users["u1"].Inventory) != 1 {
			t.Error("support ticket drained the inventory")
		}
		rec := s.Tickets["chan-1"]
		if rec == nil || rec.Reason != "necesito ayuda" || !rec.Open {
			t.Errorf("ticket = %+v", rec)
		}
	})
}

// TestOpenTicketCreationFailure verifies the error maps to
// ErrTicketCreation with nothing registered
func TestOpenTicketCreationFailure(t *testing.T) {
	b, st, _ := testBridge(true)

	if _, err := b.OpenTicket("u1", "hola"); !errors.Is(err, ErrTicketCreation) {
		t.Fatalf("OpenTicket = %v, want ErrTicketCreation", err)
	}
	st.View(func(s *models.State) {
		if len(s.Tickets) != 0 {
			t.Error("ticket registered despite channel failure")
		}
	})
}

// TestTicketLifecycle verifies Get, Close, Reopen and Delete
func TestTicketLifecycle(t *testing.T) {
	b, _, _ := testBridge(false)

	if _, err := b.Get("chan-1"); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("Get before open = %v, want ErrTicketNotFound", err)
	}

	if _, err := b.OpenTicket("u1", "hola"); err != nil {
		t.Fatalf("OpenTicket: %v", err)
	}

	rec, err := b.Close("chan-1")
	if err != nil || rec.Open {
		t.Fatalf("Close = %+v, %v", rec, err)
	}
	rec, err = b.Reopen("chan-1")
	if err != nil || !rec.Open {
		t.Fatalf("Reopen = %+v, %v", rec, err)
	}

	if err := b.Delete("chan-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := b.Get("chan-1"); !errors.Is(err, ErrTicketNotFound) {
		t.Errorf("Get after delete = %v, want ErrTicketNotFound", err)
	}
	if err := b.Delete("chan-1"); !errors.Is(err, ErrTicketNotFound) {
		t.Errorf("second Delete = %v, want ErrTicketNotFound", err)
	}
	if _, err := b.Close("chan-1"); !errors.Is(err, ErrTicketNotFound) {
		t.Errorf("Close unknown = %v, want ErrTicketNotFound", err)
	}
}
