package economy

import (
	"errors"
	"testing"
)

// TestBuyChestRequiresFunds verifies the price check leaves the account
// untouched
func TestBuyChestRequiresFunds(t *testing.T) {
	svc, _ := testService(20)
	svc.Credit("u1", ChestPrice-1)

	if _, err := svc.BuyChest("u1"); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("BuyChest = %v, want ErrInsufficientFunds", err)
	}
	acct := svc.Account("u1")
	if acct.Coins != ChestPrice-1 || len(acct.Inventory) != 0 {
		t.Errorf("failed purchase mutated the account: %+v", acct)
	}
}

// TestBuyChestAddsUnopened verifies the debit and the unopened entry
func TestBuyChestAddsUnopened(t *testing.T) {
	svc, _ := testService(21)
	svc.Credit("u1", ChestPrice+50)

	balance, err := svc.BuyChest("u1")
	if err != nil {
		t.Fatalf("BuyChest: %v", err)
	}
	if balance != 50 {
		t.Errorf("balance = %d, want 50", balance)
	}

	acct := svc.Account("u1")
	if len(acct.Inventory) != 1 {
		t.Fatalf("inventory = %+v", acct.Inventory)
	}
	it := acct.Inventory[0]
	if it.Item != ChestItemName || it.Source != "Shop" || !it.Unopened {
		t.Errorf("chest entry = %+v", it)
	}
}

// TestOpenChestWithoutChest verifies the empty case
func TestOpenChestWithoutChest(t *testing.T) {
	svc, _ := testService(22)
	if _, err := svc.OpenChest("u1"); !errors.Is(err, ErrNoChest) {
		t.Errorf("OpenChest = %v, want ErrNoChest", err)
	}
}

// TestOpenChestConsumesAndRewards verifies the chest is swapped for a
// prize from the table
func TestOpenChestConsumesAndRewards(t *testing.T) {
	svc, _ := testService(23)
	svc.Credit("u1", ChestPrice)
	if _, err := svc.BuyChest("u1"); err != nil {
		t.Fatalf("BuyChest: %v", err)
	}

	res, err := svc.OpenChest("u1")
	if err != nil {
		t.Fatalf("OpenChest: %v", err)
	}
	if res.Game != "SAB" && res.Game != "ETFB" {
		t.Errorf("Game = %q", res.Game)
	}

	// The resolved prize must come from the published table row.
	found := false
	for _, row := range ChestRewards() {
		if row.Rarity != res.Reward.Rarity {
			continue
		}
		found = true
		want := row.SABPrize
		if res.Game == "ETFB" {
			want = row.ETFBPrize
		}
		if res.Prize != want {
			t.Errorf("Prize = %q, want %q for %s", res.Prize, want, res.Game)
		}
	}
	if !found {
		t.Errorf("reward rarity %q not in table", res.Reward.Rarity)
	}
	if res.Item != res.Prize+" ["+res.Game+"]" {
		t.Errorf("Item = %q", res.Item)
	}

	acct := svc.Account("u1")
	if len(acct.Inventory) != 1 {
		t.Fatalf("inventory = %+v, chest not consumed", acct.Inventory)
	}
	it := acct.Inventory[0]
	if it.Item != res.Item || it.Source != "Mystery Chest" || it.Unopened {
		t.Errorf("prize entry = %+v", it)
	}
}

// TestOpenChestConsumesOnlyOne verifies one open consumes exactly one of
// several chests
func TestOpenChestConsumesOnlyOne(t *testing.T) {
	svc, _ := testService(24)
	svc.Credit("u1", 3*ChestPrice)
	for i := 0; i < 3; i++ {
		if _, err := svc.BuyChest("u1"); err != nil {
			t.Fatalf("BuyChest: %v", err)
		}
	}

	if _, err := svc.OpenChest("u1"); err != nil {
		t.Fatalf("OpenChest: %v", err)
	}

	unopened := 0
	for _, it := range svc.Account("u1").Inventory {
		if it.Unopened {
			unopened++
		}
	}
	if unopened != 2 {
		t.Errorf("unopened = %d, want 2", unopened)
	}
}

// TestRollChestCoversTable verifies every rarity is drawable and the
// jackpot stays rare
func TestRollChestCoversTable(t *testing.T) {
	svc, _ := testService(25)

	hits := make(map[string]int)
	for i := 0; i < 5000; i++ {
		hits[svc.rollChest().Rarity]++
	}
	if len(hits) < 2 {
		t.Errorf("only %d rarities drawn in 5000 rolls: %v", len(hits), hits)
	}
	if common, uncommon := hits["🟡 Common"], hits["🔵 Uncommon"]; common <= uncommon {
		t.Errorf("common (%d) should outnumber uncommon (%d)", common, uncommon)
	}
	if jackpot := hits["🌟 JACKPOT!!"]; jackpot > 100 {
		t.Errorf("jackpot hit %d times in 5000 rolls, weighting broken", jackpot)
	}
}
