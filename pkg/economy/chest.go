package economy

import (
	"errors"
	"time"

	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

const (
	// ChestPrice is the shop price of a mystery chest.
	ChestPrice = 250
	// ChestItemName is the inventory entry for an unopened chest.
	ChestItemName = "🎁 Mystery Chest"
)

// ErrNoChest indica que el usuario no tiene ningún cofre sin abrir.
var ErrNoChest = errors.New("no tienes ningún Mystery Chest")

// ChestReward is one row of the weighted prize table. Each rarity holds
// a prize per game; the game is picked at open time.
type ChestReward struct {
	Weight    int
	Rarity    string
	Color     int
	SABPrize  string
	ETFBPrize string
}

// chestRewards es la tabla de premios. Los pesos dejan el jackpot en
// ~1 de 801 aperturas.
var chestRewards = []ChestReward{
	{Weight: 500, Rarity: "🟡 Common", Color: 0x95A5A6, SABPrize: "5 Secrets", ETFBPrize: "25OC/S"},
	{Weight: 300, Rarity: "🔵 Uncommon", Color: 0x3498DB, SABPrize: "5 Good Secrets", ETFBPrize: "75OC/S"},
	{Weight: 1, Rarity: "🌟 JACKPOT!!", Color: 0xFFD700, SABPrize: "50 Secrets", ETFBPrize: "4 Celestials"},
}

// ChestRewards returns the prize table, for the shop embed.
func ChestRewards() []ChestReward {
	out := make([]ChestReward, len(chestRewards))
	copy(out, chestRewards)
	return out
}

// OpenResult describe una apertura de cofre.
type OpenResult struct {
	Reward ChestReward
	Game   string // "SAB" o "ETFB"
	Prize  string // premio resuelto, sin el sufijo de juego
	Item   string // entrada agregada al inventario, "premio [JUEGO]"
}

// rollChest draws a reward row proportionally to its weight.
func (s *Service) rollChest() ChestReward {
	total := 0
	for _, r := range chestRewards {
		total += r.Weight
	}
	n := s.rng.Intn(total)
	for _, r := range chestRewards {
		n -= r.Weight
		if n < 0 {
			return r
		}
	}
	return chestRewards[0]
}

// BuyChest cobra el precio del cofre y deja un cofre sin abrir en el
// inventario. Los cofres sin abrir no entran en los claims.
func (s *Service) BuyChest(userID string) (balance int64, err error) {
	err = s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		if u.Coins < ChestPrice {
			return ErrInsufficientFunds
		}
		u.Coins -= ChestPrice
		u.Inventory = append(u.Inventory, models.InventoryItem{
			Item:     ChestItemName,
			Source:   "Shop",
			Date:     s.now().Format(time.RFC3339),
			Unopened: true,
		})
		balance = u.Coins
		return nil
	})
	return balance, err
}

// OpenChest consume un cofre sin abrir, tira la tabla de premios, elige
// el juego al azar y guarda el premio resuelto en el inventario. Todo
// ocurre en una sola mutación: un crash nunca deja el cofre consumido
// sin premio entregado.
func (s *Service) OpenChest(userID string) (OpenResult, error) {
	var res OpenResult
	err := s.store.Update(func(st *models.State) error {
		u := st.User(userID)
		idx := -1
		for i, it := range u.Inventory {
			if it.Unopened {
				idx = i
				break
			}
		}
		if idx == -1 {
			return ErrNoChest
		}
		u.Inventory = append(u.Inventory[:idx], u.Inventory[idx+1:]...)

		res.Reward = s.rollChest()
		if s.rng.Intn(2) == 0 {
			res.Game = "SAB"
			res.Prize = res.Reward.SABPrize
		} else {
			res.Game = "ETFB"
			res.Prize = res.Reward.ETFBPrize
		}
		res.Item = res.Prize + " [" + res.Game + "]"
		u.Inventory = append(u.Inventory, models.InventoryItem{
			Item:   res.Item,
			Source: "Mystery Chest",
			Date:   s.now().Format(time.RFC3339),
		})
		return nil
	})
	return res, err
}
