package giveaway

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/VortexStudios/VortexBotGo/pkg/models"
	"github.com/VortexStudios/VortexBotGo/pkg/store"
)

// memBackend keeps the state document in memory and counts saves.
type memBackend struct {
	state *models.State
	saves int
}

func (m *memBackend) Load() (*models.State, error) { return m.state, nil }
func (m *memBackend) Save(s *models.State) error {
	m.saves++
	return nil
}
func (m *memBackend) Close() error { return nil }

// fixedClock reports a settable instant and never fires timers.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }
func (c *fixedClock) After(time.Duration) <-chan time.Time {
	return make(chan time.Time)
}

// fakeEntries serves a fixed entrant list.
type fakeEntries struct {
	ids []string
	err error
}

func (f *fakeEntries) FetchEntrants(channelID, messageID, signal string) ([]string, error) {
	return f.ids, f.err
}

// fakeAnnouncer records announcement calls.
type fakeAnnouncer struct {
	nextID   string
	posted   int
	edited   int
	outcomes [][]string
	rerolls  int
}

func (f *fakeAnnouncer) PostAnnouncement(rec *models.GiveawayRecord) (string, error) {
	f.posted++
	return f.nextID, nil
}

func (f *fakeAnnouncer) EditAnnouncement(rec *models.GiveawayRecord) error {
	f.edited++
	return nil
}

func (f *fakeAnnouncer) AnnounceOutcome(rec *models.GiveawayRecord, newWinners []string, reroll bool) error {
	f.outcomes = append(f.outcomes, newWinners)
	if reroll {
		f.rerolls++
	}
	return nil
}

func newTestEngine(entrants []string) (*Engine, *store.Service, *fakeAnnouncer, *fixedClock) {
	st := store.Open(&memBackend{})
	ann := &fakeAnnouncer{nextID: "msg-1"}
	clock := &fixedClock{now: time.Unix(1700000000, 0)}
	e := NewEngine(Options{
		Store:     st,
		Entries:   &fakeEntries{ids: entrants},
		Announcer: ann,
		Clock:     clock,
		Rand:      rand.New(rand.NewSource(1)),
	})
	return e, st, ann, clock
}

func startOne(t *testing.T, e *Engine, p StartParams) *models.GiveawayRecord {
	t.Helper()
	rec, err := e.StartGiveaway(p)
	if err != nil {
		t.Fatalf("StartGiveaway: %v", err)
	}
	return rec
}

// TestStartGiveawayValidation verifies malformed params are rejected
// without side effects
func TestStartGiveawayValidation(t *testing.T) {
	e, st, ann, _ := newTestEngine(nil)

	cases := []StartParams{
		{Prize: "", Winners: 1, Duration: time.Minute},
		{Prize: "x", Winners: 0, Duration: time.Minute},
		{Prize: "x", Winners: MaxWinners + 1, Duration: time.Minute},
		{Prize: "x", Winners: 1, Duration: 0},
		{Prize: "x", Winners: 1, Duration: -time.Minute},
		{Prize: "x", Kind: models.PrizeCoins, CoinsAmount: 0, Winners: 1, Duration: time.Minute},
	}
	for i, p := range cases {
		if _, err := e.StartGiveaway(p); err == nil {
			t.Errorf("case %d: StartGiveaway should fail", i)
		} else if !IsValidation(err) {
			t.Errorf("case %d: want validation error, got %v", i, err)
		}
	}

	if ann.posted != 0 {
		t.Errorf("announcements posted on invalid input: %d", ann.posted)
	}
	st.View(func(s *models.State) {
		if len(s.Giveaways) != 0 {
			t.Errorf("records stored on invalid input: %d", len(s.Giveaways))
		}
	})
}

// TestStartGiveawayPersistsRecord verifies the stored record and its deadline
func TestStartGiveawayPersistsRecord(t *testing.T) {
	e, st, ann, clock := newTestEngine(nil)

	rec := startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "Nitro",
		Kind: models.PrizeItem, Winners: 2, Duration: 10 * time.Minute,
	})

	if rec.MessageID != "msg-1" {
		t.Errorf("MessageID = %q, want msg-1", rec.MessageID)
	}
	if ann.posted != 1 {
		t.Errorf("posted = %d, want 1", ann.posted)
	}
	wantEnd := clock.now.Add(10 * time.Minute).UnixMilli()
	if rec.EndsAt != wantEnd {
		t.Errorf("EndsAt = %d, want %d", rec.EndsAt, wantEnd)
	}

	st.View(func(s *models.State) {
		stored := s.Giveaways["msg-1"]
		if stored == nil {
			t.Fatal("record not stored")
		}
		if stored.Ended {
			t.Error("new record must not be ended")
		}
		if stored.Prize != "Nitro" || stored.Winners != 2 {
			t.Errorf("stored = %+v", stored)
		}
	})
}

// TestEndGiveawaySettlesItemPrize verifies winners get the item and the
// record freezes
func TestEndGiveawaySettlesItemPrize(t *testing.T) {
	e, st, ann, _ := newTestEngine([]string{"u1", "u2", "u3"})

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "Nitro",
		Kind: models.PrizeItem, Winners: 3, Duration: time.Minute,
	})

	if err := e.EndGiveaway("msg-1", false); err != nil {
		t.Fatalf("EndGiveaway: %v", err)
	}

	st.View(func(s *models.State) {
		rec := s.Giveaways["msg-1"]
		if !rec.Ended {
			t.Error("record not marked ended")
		}
		if rec.TotalEntries != 3 {
			t.Errorf("TotalEntries = %d, want 3", rec.TotalEntries)
		}
		if len(rec.WinnerMentions) != 3 {
			t.Errorf("WinnerMentions = %v, want 3 winners", rec.WinnerMentions)
		}
		for _, id := range []string{"u1", "u2", "u3"} {
			u := s.Users[id]
			if u == nil || len(u.Inventory) != 1 {
				t.Fatalf("user %s inventory not settled: %+v", id, u)
			}
			if u.Inventory[0].Item != "Nitro" || u.Inventory[0].Source != "Giveaway" {
				t.Errorf("user %s item = %+v", id, u.Inventory[0])
			}
		}
	})
	if ann.edited != 1 || len(ann.outcomes) != 1 {
		t.Errorf("edited = %d, outcomes = %d", ann.edited, len(ann.outcomes))
	}
}

// TestEndGiveawaySettlesCoinsPrize verifies coin prizes credit balances
func TestEndGiveawaySettlesCoinsPrize(t *testing.T) {
	e, st, _, _ := newTestEngine([]string{"u1"})

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "500 monedas",
		Kind: models.PrizeCoins, CoinsAmount: 500, Winners: 1, Duration: time.Minute,
	})

	if err := e.EndGiveaway("msg-1", false); err != nil {
		t.Fatalf("EndGiveaway: %v", err)
	}

	st.View(func(s *models.State) {
		u := s.Users["u1"]
		if u == nil || u.Coins != 500 {
			t.Fatalf("winner balance = %+v, want 500", u)
		}
		if len(u.Inventory) != 0 {
			t.Errorf("coin prize must not add inventory items: %v", u.Inventory)
		}
	})
}

// TestEndGiveawayIdempotent verifies a second end is rejected and never
// settles twice
func TestEndGiveawayIdempotent(t *testing.T) {
	e, st, _, _ := newTestEngine([]string{"u1"})

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "500 monedas",
		Kind: models.PrizeCoins, CoinsAmount: 500, Winners: 1, Duration: time.Minute,
	})

	if err := e.EndGiveaway("msg-1", false); err != nil {
		t.Fatalf("first EndGiveaway: %v", err)
	}
	if err := e.EndGiveaway("msg-1", false); !errors.Is(err, ErrAlreadyEnded) {
		t.Fatalf("second EndGiveaway = %v, want ErrAlreadyEnded", err)
	}

	st.View(func(s *models.State) {
		if got := s.Users["u1"].Coins; got != 500 {
			t.Errorf("balance = %d, double settlement detected", got)
		}
	})
}

// TestEndGiveawayForceRedraws verifies force concludes an ended giveaway again
func TestEndGiveawayForceRedraws(t *testing.T) {
	e, st, _, _ := newTestEngine([]string{"u1"})

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "500 monedas",
		Kind: models.PrizeCoins, CoinsAmount: 500, Winners: 1, Duration: time.Minute,
	})

	if err := e.EndGiveaway("msg-1", false); err != nil {
		t.Fatalf("EndGiveaway: %v", err)
	}
	if err := e.EndGiveaway("msg-1", true); err != nil {
		t.Fatalf("forced EndGiveaway: %v", err)
	}

	st.View(func(s *models.State) {
		if got := s.Users["u1"].Coins; got != 1000 {
			t.Errorf("balance after forced redraw = %d, want 1000", got)
		}
	})
}

// TestEndGiveawayNoEntries verifies a giveaway with zero entrants ends
// cleanly with no winners
func TestEndGiveawayNoEntries(t *testing.T) {
	e, st, ann, _ := newTestEngine(nil)

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "Nitro",
		Kind: models.PrizeItem, Winners: 1, Duration: time.Minute,
	})

	if err := e.EndGiveaway("msg-1", false); err != nil {
		t.Fatalf("EndGiveaway: %v", err)
	}

	st.View(func(s *models.State) {
		rec := s.Giveaways["msg-1"]
		if !rec.Ended {
			t.Error("record not marked ended")
		}
		if len(rec.WinnerMentions) != 1 || rec.WinnerMentions[0] != models.NoEntriesText {
			t.Errorf("WinnerMentions = %v, want the %q sentinel", rec.WinnerMentions, models.NoEntriesText)
		}
		if rec.TotalEntries != 0 {
			t.Errorf("TotalEntries = %d, want 0", rec.TotalEntries)
		}
	})
	if len(ann.outcomes) != 1 || len(ann.outcomes[0]) != 0 {
		t.Errorf("outcomes = %v, want one empty outcome", ann.outcomes)
	}
}

// TestEndGiveawayDedupesEntrants verifies repeated IDs from pagination
// count once
func TestEndGiveawayDedupesEntrants(t *testing.T) {
	e, st, _, _ := newTestEngine([]string{"u1", "u1", "u2", "u1"})

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "Nitro",
		Kind: models.PrizeItem, Winners: 5, Duration: time.Minute,
	})

	if err := e.EndGiveaway("msg-1", false); err != nil {
		t.Fatalf("EndGiveaway: %v", err)
	}

	st.View(func(s *models.State) {
		rec := s.Giveaways["msg-1"]
		if rec.TotalEntries != 2 {
			t.Errorf("TotalEntries = %d, want 2", rec.TotalEntries)
		}
		if len(s.Users["u1"].Inventory) != 1 {
			t.Errorf("duplicated entrant settled %d times", len(s.Users["u1"].Inventory))
		}
	})
}

// TestEndGiveawayUnknownID verifies an unknown message ID is rejected
func TestEndGiveawayUnknownID(t *testing.T) {
	e, _, _, _ := newTestEngine(nil)
	if err := e.EndGiveaway("nope", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// TestRerollRequiresEnded verifies rerolls only run on concluded giveaways
func TestRerollRequiresEnded(t *testing.T) {
	e, _, _, _ := newTestEngine([]string{"u1"})

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "Nitro",
		Kind: models.PrizeItem, Winners: 1, Duration: time.Minute,
	})

	if _, err := e.Reroll("msg-1"); !errors.Is(err, ErrNotEnded) {
		t.Errorf("err = %v, want ErrNotEnded", err)
	}
}

// TestRerollReplacesWinners verifies a reroll redraws the giveaway's own
// winner count and the fresh draw replaces the persisted list
func TestRerollReplacesWinners(t *testing.T) {
	e, st, ann, _ := newTestEngine([]string{"u1", "u2", "u3"})

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "Nitro",
		Kind: models.PrizeItem, Winners: 1, Duration: time.Minute,
	})
	if err := e.EndGiveaway("msg-1", false); err != nil {
		t.Fatalf("EndGiveaway: %v", err)
	}

	winners, err := e.Reroll("msg-1")
	if err != nil {
		t.Fatalf("Reroll: %v", err)
	}
	if len(winners) != 1 {
		t.Fatalf("reroll winners = %v, want 1", winners)
	}
	if ann.rerolls != 1 {
		t.Errorf("reroll announcements = %d, want 1", ann.rerolls)
	}

	st.View(func(s *models.State) {
		rec := s.Giveaways["msg-1"]
		if len(rec.WinnerMentions) != 1 {
			t.Errorf("WinnerMentions = %v, want only the fresh draw", rec.WinnerMentions)
		}
		if rec.WinnerMentions[0] != "<@"+winners[0]+">" {
			t.Errorf("WinnerMentions = %v, want mention of %s", rec.WinnerMentions, winners[0])
		}
		if !rec.Ended {
			t.Error("reroll must keep the record ended")
		}
	})
}

// TestRerollSettlesAgain verifies a reroll re-runs settlement without
// reversing the prizes the first conclusion delivered
func TestRerollSettlesAgain(t *testing.T) {
	e, st, _, _ := newTestEngine([]string{"u1"})

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "500 monedas",
		Kind: models.PrizeCoins, CoinsAmount: 500, Winners: 1, Duration: time.Minute,
	})
	if err := e.EndGiveaway("msg-1", false); err != nil {
		t.Fatalf("EndGiveaway: %v", err)
	}
	if _, err := e.Reroll("msg-1"); err != nil {
		t.Fatalf("Reroll: %v", err)
	}

	st.View(func(s *models.State) {
		if got := s.Users["u1"].Coins; got != 1000 {
			t.Errorf("balance after reroll = %d, want 1000", got)
		}
	})
}

// TestRecoverOnStartup verifies expired giveaways conclude on boot and
// ended ones are never settled again
func TestRecoverOnStartup(t *testing.T) {
	seed := models.NewState()
	now := time.Unix(1700000000, 0)
	seed.Giveaways["expired"] = &models.GiveawayRecord{
		MessageID: "expired", ChannelID: "chan", Prize: "Nitro",
		Kind: models.PrizeItem, HostID: "host", Winners: 1,
		StartedAt: now.Add(-2 * time.Hour).UnixMilli(),
		EndsAt:    now.Add(-time.Hour).UnixMilli(),
	}
	seed.Giveaways["done"] = &models.GiveawayRecord{
		MessageID: "done", ChannelID: "chan", Prize: "Old",
		Kind: models.PrizeCoins, CoinsAmount: 100, HostID: "host", Winners: 1,
		StartedAt: now.Add(-3 * time.Hour).UnixMilli(),
		EndsAt:    now.Add(-2 * time.Hour).UnixMilli(),
		Ended:     true, WinnerMentions: []string{"<@u9>"}, TotalEntries: 1,
	}
	seed.Giveaways["future"] = &models.GiveawayRecord{
		MessageID: "future", ChannelID: "chan", Prize: "Later",
		Kind: models.PrizeItem, HostID: "host", Winners: 1,
		StartedAt: now.UnixMilli(),
		EndsAt:    now.Add(time.Hour).UnixMilli(),
	}

	st := store.Open(&memBackend{state: seed})
	ann := &fakeAnnouncer{nextID: "unused"}
	e := NewEngine(Options{
		Store:     st,
		Entries:   &fakeEntries{ids: []string{"u1"}},
		Announcer: ann,
		Clock:     &fixedClock{now: now},
		Rand:      rand.New(rand.NewSource(1)),
	})

	e.RecoverOnStartup()

	st.View(func(s *models.State) {
		if !s.Giveaways["expired"].Ended {
			t.Error("expired giveaway not concluded on recovery")
		}
		if s.Giveaways["future"].Ended {
			t.Error("future giveaway concluded prematurely")
		}
		if u := s.Users["u9"]; u != nil && u.Coins != 0 {
			t.Error("already-ended giveaway settled again on recovery")
		}
		if len(s.Users["u1"].Inventory) != 1 {
			t.Errorf("expired giveaway settled %d times, want 1", len(s.Users["u1"].Inventory))
		}
	})
}

// TestActiveListsOnlyRunning verifies Active excludes ended records
func TestActiveListsOnlyRunning(t *testing.T) {
	e, _, _, _ := newTestEngine([]string{"u1"})

	startOne(t, e, StartParams{
		ChannelID: "chan", HostID: "host", Prize: "Nitro",
		Kind: models.PrizeItem, Winners: 1, Duration: time.Minute,
	})

	if got := len(e.Active()); got != 1 {
		t.Fatalf("Active = %d, want 1", got)
	}
	if err := e.EndGiveaway("msg-1", false); err != nil {
		t.Fatalf("EndGiveaway: %v", err)
	}
	if got := len(e.Active()); got != 0 {
		t.Errorf("Active after end = %d, want 0", got)
	}
}
