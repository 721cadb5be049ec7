package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

type recordingBackend struct {
	state   *models.State
	loadErr error
	saves   int
}

func (b *recordingBackend) Load() (*models.State, error) { return b.state, b.loadErr }
func (b *recordingBackend) Save(s *models.State) error {
	b.saves++
	b.state = s
	return nil
}
func (b *recordingBackend) Close() error { return nil }

// TestOpenFailsSoft verifies a broken backend still yields a usable store
func TestOpenFailsSoft(t *testing.T) {
	s := Open(&recordingBackend{loadErr: errors.New("disco roto")})
	s.View(func(st *models.State) {
		if st == nil || st.Giveaways == nil || st.Users == nil {
			t.Fatal("state not initialized after load failure")
		}
	})
}

// TestOpenNormalizesPartialState verifies missing maps are repaired at load
func TestOpenNormalizesPartialState(t *testing.T) {
	s := Open(&recordingBackend{state: &models.State{}})
	s.View(func(st *models.State) {
		if st.Giveaways == nil || st.Users == nil || st.Tickets == nil || st.Invites == nil {
			t.Fatal("maps not normalized")
		}
		if st.Version != models.StateVersion {
			t.Errorf("Version = %d, want %d", st.Version, models.StateVersion)
		}
	})
}

// TestUpdatePersistsEachMutation verifies every successful Update saves
func TestUpdatePersistsEachMutation(t *testing.T) {
	backend := &recordingBackend{}
	s := Open(backend)

	err := s.Update(func(st *models.State) error {
		st.User("u1").Coins = 100
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if backend.saves != 1 {
		t.Errorf("saves = %d, want 1", backend.saves)
	}
}

// TestUpdateErrorSkipsSave verifies a failed mutation does not persist
func TestUpdateErrorSkipsSave(t *testing.T) {
	backend := &recordingBackend{}
	s := Open(backend)
	boom := errors.New("boom")

	if err := s.Update(func(*models.State) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Update = %v, want boom", err)
	}
	if backend.saves != 0 {
		t.Errorf("saves = %d, want 0", backend.saves)
	}
}

// TestFileBackendMissingFile verifies a missing file starts fresh
func TestFileBackendMissingFile(t *testing.T) {
	f := NewFileBackend(filepath.Join(t.TempDir(), "database.json"))
	state, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state == nil || len(state.Users) != 0 {
		t.Fatalf("state = %+v, want fresh", state)
	}
}

// TestFileBackendCorruptFile verifies malformed JSON is reported
func TestFileBackendCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	writeFile(t, path, "{ not json")

	f := NewFileBackend(path)
	if _, err := f.Load(); err == nil {
		t.Fatal("Load should fail on corrupt document")
	}
}

// TestFileBackendRoundTrip verifies Save then Load preserves the document
func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	f := NewFileBackend(path)

	state := models.NewState()
	state.User("u1").Coins = 250
	state.User("u1").Inventory = append(state.User("u1").Inventory, models.InventoryItem{
		Item: "Nitro", Source: "Giveaway", Date: "2026-01-01T00:00:00Z",
	})
	state.Giveaways["msg-1"] = &models.GiveawayRecord{
		MessageID: "msg-1", ChannelID: "chan", Prize: "Nitro",
		Kind: models.PrizeItem, HostID: "host", Winners: 1,
		StartedAt: 1000, EndsAt: 2000, Ended: true,
		WinnerMentions: []string{"<@u1>"}, TotalEntries: 3,
	}

	if err := f.Save(state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := loaded.Users["u1"]; got == nil || got.Coins != 250 || len(got.Inventory) != 1 {
		t.Errorf("user round trip = %+v", got)
	}
	rec := loaded.Giveaways["msg-1"]
	if rec == nil || rec.Prize != "Nitro" || !rec.Ended || rec.TotalEntries != 3 {
		t.Errorf("giveaway round trip = %+v", rec)
	}
}

// TestFileBackendOverwrites verifies a second Save replaces the document
func TestFileBackendOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	f := NewFileBackend(path)

	first := models.NewState()
	first.User("u1").Coins = 1
	if err := f.Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := models.NewState()
	second.User("u2").Coins = 2
	if err := f.Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := f.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Users["u1"] != nil {
		t.Error("old document leaked through")
	}
	if got := loaded.Users["u2"]; got == nil || got.Coins != 2 {
		t.Errorf("u2 = %+v, want coins 2", got)
	}
}
