package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestGame(t *testing.T) (*Service, *Game) {
	t.Helper()
	svc := NewService(rand.New(rand.NewSource(3)))
	g, err := svc.NewGame("Hero")
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return svc, g
}

func TestNewGameStartingKit(t *testing.T) {
	_, g := newTestGame(t)

	if g.Player.Gold != StartingGold {
		t.Fatalf("gold=%d, want %d", g.Player.Gold, StartingGold)
	}
	if g.Inventory.Len() != 4 {
		t.Fatalf("kit size=%d, want 4", g.Inventory.Len())
	}
	if got := len(g.Inventory.ByKind(ItemPotion)); got != 2 {
		t.Fatalf("starting potions=%d, want 2", got)
	}
	quests := g.Log.Quests()
	if len(quests) != 1 || quests[0].ID != "goblin_slayer" {
		t.Fatalf("starting quests=%v, want goblin_slayer only", quests)
	}
}

func TestExploreMatchesPlayerLevel(t *testing.T) {
	svc, g := newTestGame(t)

	en, err := svc.Explore(g)
	if err != nil {
		t.Fatalf("explore: %v", err)
	}
	tpl, err := svc.Bestiary().Get(en.Enemy().Key)
	if err != nil {
		t.Fatalf("unknown enemy %q", en.Enemy().Key)
	}
	if !tpl.InRange(g.Player.Level) {
		t.Fatalf("explore rolled %q outside level %d", tpl.Key, g.Player.Level)
	}
}

func TestApplyVictoryFlow(t *testing.T) {
	svc, g := newTestGame(t)

	// Five goblin kills complete the starter quest and level the player.
	var completed []*Quest
	for i := 0; i < 5; i++ {
		res, err := svc.ApplyVictory(g, "goblin", &Rewards{XP: 20, Gold: 10})
		if err != nil {
			t.Fatalf("kill %d: %v", i+1, err)
		}
		completed = append(completed, res.QuestsCompleted...)
	}

	if len(completed) != 1 || completed[0].ID != "goblin_slayer" {
		t.Fatalf("completed=%v, want goblin_slayer", completed)
	}
	if g.Player.Level != 2 {
		t.Fatalf("level=%d, want 2 after 100 XP", g.Player.Level)
	}
	if g.Player.Gold != StartingGold+50 {
		t.Fatalf("gold=%d, want %d", g.Player.Gold, StartingGold+50)
	}
}

func TestApplyVictoryLootIntoBag(t *testing.T) {
	svc, g := newTestGame(t)

	res, err := svc.ApplyVictory(g, "slime", &Rewards{XP: 10, Gold: 5, Loot: []string{"minor_potion"}})
	if err != nil {
		t.Fatalf("apply victory: %v", err)
	}
	if len(res.Granted) != 1 || res.Granted[0].Key != "minor_potion" {
		t.Fatalf("granted=%v, want minor_potion", res.Granted)
	}
	if g.Inventory.Len() != 5 {
		t.Fatalf("bag=%d, want 5", g.Inventory.Len())
	}
}

func TestApplyVictoryWithoutRewards(t *testing.T) {
	svc, g := newTestGame(t)
	if _, err := svc.ApplyVictory(g, "slime", nil); err == nil {
		t.Fatalf("nil rewards should be rejected")
	}
}

func TestRest(t *testing.T) {
	svc, g := newTestGame(t)

	if err := svc.Rest(g); !errors.Is(err, ErrFullHealth) {
		t.Fatalf("rest at full HP: %v, want ErrFullHealth", err)
	}

	g.Player.ApplyDamage(40)
	if err := svc.Rest(g); err != nil {
		t.Fatalf("rest: %v", err)
	}
	if g.Player.HP != g.Player.MaxHP {
		t.Fatalf("HP=%d, want full", g.Player.HP)
	}
	if g.Player.Gold != StartingGold-RestCost {
		t.Fatalf("gold=%d, want %d", g.Player.Gold, StartingGold-RestCost)
	}

	g.Player.Gold = RestCost - 1
	g.Player.ApplyDamage(10)
	if err := svc.Rest(g); !errors.Is(err, ErrNotEnoughGold) {
		t.Fatalf("broke rest: %v, want ErrNotEnoughGold", err)
	}
	if g.Player.Gold != RestCost-1 {
		t.Fatalf("failed rest took gold: %d", g.Player.Gold)
	}
}

func TestBuy(t *testing.T) {
	svc, g := newTestGame(t)

	it, err := svc.Buy(g, "minor_potion")
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if it.Key != "minor_potion" || g.Player.Gold != StartingGold-15 {
		t.Fatalf("bought %v, gold=%d", it, g.Player.Gold)
	}

	if _, err := svc.Buy(g, "iron_armor"); !errors.Is(err, ErrNotEnoughGold) {
		t.Fatalf("buy beyond purse: %v, want ErrNotEnoughGold", err)
	}

	fillBag(t, g.Inventory, svc.Catalog())
	goldBefore := g.Player.Gold
	if _, err := svc.Buy(g, "minor_potion"); !errors.Is(err, ErrInventoryFull) {
		t.Fatalf("buy into full bag: %v, want ErrInventoryFull", err)
	}
	if g.Player.Gold != goldBefore {
		t.Fatalf("failed buy took gold: %d", g.Player.Gold)
	}
}

func TestShopStock(t *testing.T) {
	svc, _ := newTestGame(t)
	stock, err := svc.ShopStock()
	if err != nil {
		t.Fatalf("shop stock: %v", err)
	}
	if len(stock) != 5 {
		t.Fatalf("stock=%d items, want 5", len(stock))
	}
}

func TestTurnInQuestUnlocksNext(t *testing.T) {
	svc, g := newTestGame(t)
	g.Log.UpdateProgress("goblin", 5)

	// Bank enough XP that the turn-in reward crosses level 3.
	g.Player.GainXP(99)
	g.Player.GainXP(100) // level 2, threshold 150
	res, unlocked, err := svc.TurnInQuest(g, "goblin_slayer")
	if err != nil {
		t.Fatalf("turn in: %v", err)
	}
	if res.LevelsGained < 1 || g.Player.Level < 3 {
		t.Fatalf("levels=%d player level=%d, want level 3", res.LevelsGained, g.Player.Level)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "orc_hunter" {
		t.Fatalf("unlocked=%v, want orc_hunter", unlocked)
	}
}
