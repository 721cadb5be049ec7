package economy

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/VortexStudios/VortexBotGo/pkg/models"
	"github.com/VortexStudios/VortexBotGo/pkg/store"
)

type nullBackend struct{}

func (nullBackend) Load() (*models.State, error) { return models.NewState(), nil }
func (nullBackend) Save(*models.State) error     { return nil }
func (nullBackend) Close() error                 { return nil }

// testService builds a service over a fresh in-memory store with a seeded
// generator and a movable clock.
func testService(seed int64) (*Service, *time.Time) {
	now := time.Unix(1700000000, 0)
	svc := NewService(store.Open(nullBackend{}), rand.New(rand.NewSource(seed)), func() time.Time { return now })
	return svc, &now
}

// TestWorkPayoutAndCooldown verifies the payout range and the hourly gate
func TestWorkPayoutAndCooldown(t *testing.T) {
	svc, now := testService(1)

	earned, balance, err := svc.Work("u1")
	if err != nil {
		t.Fatalf("Work: %v", err)
	}
	if earned < 10 || earned > 109 {
		t.Errorf("earned = %d, want 10..109", earned)
	}
	if balance != earned {
		t.Errorf("balance = %d, want %d", balance, earned)
	}

	_, _, err = svc.Work("u1")
	var cd *CooldownError
	if !errors.As(err, &cd) {
		t.Fatalf("second Work = %v, want CooldownError", err)
	}
	if cd.Remaining <= 0 || cd.Remaining > WorkCooldown {
		t.Errorf("Remaining = %v", cd.Remaining)
	}

	*now = now.Add(WorkCooldown)
	if _, _, err := svc.Work("u1"); err != nil {
		t.Fatalf("Work after cooldown: %v", err)
	}
}

// TestWorkPayoutRange samples many payouts against the documented bounds
func TestWorkPayoutRange(t *testing.T) {
	svc, now := testService(42)
	for i := 0; i < 200; i++ {
		earned, _, err := svc.Work("u1")
		if err != nil {
			t.Fatalf("Work: %v", err)
		}
		if earned < 10 || earned > 109 {
			t.Fatalf("earned = %d, want 10..109", earned)
		}
		*now = now.Add(WorkCooldown)
	}
}

// TestDailyPayoutAndCooldown verifies the daily range and 24h gate
func TestDailyPayoutAndCooldown(t *testing.T) {
	svc, now := testService(2)

	earned, _, err := svc.Daily("u1")
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if earned < 10 || earned > 20 {
		t.Errorf("earned = %d, want 10..20", earned)
	}

	var cd *CooldownError
	if _, _, err := svc.Daily("u1"); !errors.As(err, &cd) {
		t.Fatalf("second Daily = %v, want CooldownError", err)
	}

	*now = now.Add(DailyCooldown)
	if _, _, err := svc.Daily("u1"); err != nil {
		t.Fatalf("Daily after cooldown: %v", err)
	}
}

// TestGamble verifies the minimum bet, funds check and balance movement
func TestGamble(t *testing.T) {
	svc, _ := testService(3)

	var ve *ValidationError
	if _, _, err := svc.Gamble("u1", MinGamble-1); !errors.As(err, &ve) {
		t.Fatalf("below-minimum bet = %v, want ValidationError", err)
	}
	if _, _, err := svc.Gamble("u1", 100); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("broke gamble = %v, want ErrInsufficientFunds", err)
	}

	svc.Credit("u1", 100)
	won, balance, err := svc.Gamble("u1", 40)
	if err != nil {
		t.Fatalf("Gamble: %v", err)
	}
	want := int64(60)
	if won {
		want = 140
	}
	if balance != want {
		t.Errorf("balance = %d, want %d (won=%v)", balance, want, won)
	}
}

// TestTransfer verifies self-transfer, minimum, funds and atomic movement
func TestTransfer(t *testing.T) {
	svc, _ := testService(4)
	svc.Credit("a", 100)

	if err := svc.Transfer("a", "a", 10); !errors.Is(err, ErrSelfTransfer) {
		t.Errorf("self transfer = %v, want ErrSelfTransfer", err)
	}
	var ve *ValidationError
	if err := svc.Transfer("a", "b", 0); !errors.As(err, &ve) {
		t.Errorf("zero transfer = %v, want ValidationError", err)
	}
	if err := svc.Transfer("a", "b", 500); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("oversize transfer = %v, want ErrInsufficientFunds", err)
	}
	if got := svc.Account("b").Coins; got != 0 {
		t.Fatalf("failed transfer credited recipient: %d", got)
	}

	if err := svc.Transfer("a", "b", 30); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if got := svc.Account("a").Coins; got != 70 {
		t.Errorf("sender = %d, want 70", got)
	}
	if got := svc.Account("b").Coins; got != 30 {
		t.Errorf("recipient = %d, want 30", got)
	}
}

// TestCreditFloorsAtZero verifies negative credits never go below zero
func TestCreditFloorsAtZero(t *testing.T) {
	svc, _ := testService(5)
	svc.Credit("u1", 20)
	if got := svc.Credit("u1", -100); got != 0 {
		t.Errorf("balance = %d, want 0", got)
	}
}

// TestDebit verifies amount validation and the funds check
func TestDebit(t *testing.T) {
	svc, _ := testService(6)
	svc.Credit("u1", 50)

	var ve *ValidationError
	if _, err := svc.Debit("u1", 0); !errors.As(err, &ve) {
		t.Errorf("zero debit = %v, want ValidationError", err)
	}
	if _, err := svc.Debit("u1", 60); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("oversize debit = %v, want ErrInsufficientFunds", err)
	}
	balance, err := svc.Debit("u1", 20)
	if err != nil || balance != 30 {
		t.Errorf("Debit = %d, %v, want 30, nil", balance, err)
	}
}

// TestLeaderboard verifies ordering, the limit and the exclude filter
func TestLeaderboard(t *testing.T) {
	svc, _ := testService(7)
	svc.Credit("rich", 300)
	svc.Credit("mid", 200)
	svc.Credit("poor", 100)
	svc.Credit("staff", 999)

	rows := svc.Leaderboard(2, func(id string) bool { return id == "staff" })
	if len(rows) != 2 {
		t.Fatalf("rows = %v, want 2", rows)
	}
	if rows[0].UserID != "rich" || rows[1].UserID != "mid" {
		t.Errorf("order = %v, want [rich mid]", rows)
	}
	for _, r := range rows {
		if r.UserID == "staff" {
			t.Error("excluded user on the board")
		}
	}
}

// TestWarnUnwarn verifies the counter and its zero floor
func TestWarnUnwarn(t *testing.T) {
	svc, _ := testService(8)

	if got := svc.Warn("u1"); got != 1 {
		t.Errorf("Warn = %d, want 1", got)
	}
	if got := svc.Warn("u1"); got != 2 {
		t.Errorf("Warn = %d, want 2", got)
	}
	if got := svc.Unwarn("u1"); got != 1 {
		t.Errorf("Unwarn = %d, want 1", got)
	}
	svc.Unwarn("u1")
	if got := svc.Unwarn("u1"); got != 0 {
		t.Errorf("Unwarn below zero = %d, want 0", got)
	}
}

// TestSpamPenalty verifies the warn increment and the fine floor
func TestSpamPenalty(t *testing.T) {
	svc, _ := testService(9)
	svc.Credit("u1", 30)

	warns, balance := svc.SpamPenalty("u1")
	if warns != 1 {
		t.Errorf("warns = %d, want 1", warns)
	}
	if balance != 0 {
		t.Errorf("balance = %d, want 0 (fine floors at zero)", balance)
	}

	svc.Credit("u1", 200)
	_, balance = svc.SpamPenalty("u1")
	if balance != 200-SpamFine {
		t.Errorf("balance = %d, want %d", balance, 200-SpamFine)
	}
}

// TestStaffWarnLifecycle verifies recording and removal by ID
func TestStaffWarnLifecycle(t *testing.T) {
	svc, _ := testService(10)

	warn := svc.StaffWarn("target", "admin", "llegó tarde")
	if warn.ID == "" || warn.By != "admin" || warn.Reason != "llegó tarde" {
		t.Fatalf("warn = %+v", warn)
	}

	acct := svc.Account("target")
	if len(acct.StaffWarns) != 1 || acct.StaffWarns[0].ID != warn.ID {
		t.Fatalf("StaffWarns = %+v", acct.StaffWarns)
	}

	if svc.RemoveStaffWarn("target", "no-such-id") {
		t.Error("RemoveStaffWarn succeeded on unknown ID")
	}
	if !svc.RemoveStaffWarn("target", warn.ID) {
		t.Error("RemoveStaffWarn failed on existing ID")
	}
	if got := svc.Account("target").StaffWarns; len(got) != 0 {
		t.Errorf("StaffWarns after removal = %+v", got)
	}
}

// TestInventoryCopies verifies Inventory returns data without exposing
// internal slices
func TestInventoryCopies(t *testing.T) {
	svc, _ := testService(11)
	svc.AddItem("u1", models.InventoryItem{Item: "Nitro", Source: "Giveaway"})

	items := svc.Inventory("u1")
	if len(items) != 1 || items[0].Item != "Nitro" {
		t.Fatalf("Inventory = %+v", items)
	}
	items[0].Item = "mutado"
	if got := svc.Inventory("u1")[0].Item; got != "Nitro" {
		t.Errorf("caller mutation leaked into the store: %q", got)
	}
}
