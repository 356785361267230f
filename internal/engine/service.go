package engine

import "errors"

// RestCost is the flat inn price for a full heal.
const RestCost = 20

var startingKit = []string{"rusty_sword", "leather_armor", "minor_potion", "minor_potion"}

var shopStock = []string{"minor_potion", "health_potion", "greater_potion", "iron_sword", "iron_armor"}

// Service owns the static tables and the random source. The tables are
// built once and never mutated; per-session state lives on Game.
type Service struct {
	catalog  *Catalog
	bestiary *Bestiary
	book     *QuestBook
	rng      RNG
}

func NewService(rng RNG) *Service {
	if rng == nil {
		rng = NewRNG(0)
	}
	return &Service{
		catalog:  NewCatalog(),
		bestiary: NewBestiary(),
		book:     NewQuestBook(),
		rng:      rng,
	}
}

func (s *Service) Catalog() *Catalog     { return s.catalog }
func (s *Service) Bestiary() *Bestiary   { return s.bestiary }
func (s *Service) QuestBook() *QuestBook { return s.book }

// Game is one play session: the player, their bag and their quest log.
type Game struct {
	Player    *Player
	Inventory *Inventory
	Log       *QuestLog
}

// NewGame starts a session with the starting kit and whatever quests a
// level-1 hero qualifies for.
func (s *Service) NewGame(name string) (*Game, error) {
	p := NewPlayer(name)
	inv := NewInventory()
	for _, key := range startingKit {
		item, err := s.catalog.Get(key)
		if err != nil {
			return nil, err
		}
		inv.Add(item)
	}
	log := NewQuestLog()
	log.Sync(s.book, p.Level)
	return &Game{Player: p, Inventory: inv, Log: log}, nil
}

// Explore rolls a wilderness encounter scaled to the player's level.
func (s *Service) Explore(g *Game) (*Encounter, error) {
	enemy, err := s.bestiary.Random(g.Player.Level, s.rng)
	if err != nil {
		return nil, err
	}
	return NewEncounter(g.Player, enemy, g.Inventory, s.rng), nil
}

// VictoryResult is everything that changed when combat rewards landed.
type VictoryResult struct {
	Rewards         Rewards
	LevelsGained    int
	Granted         []*Item
	Dropped         []*Item
	QuestsCompleted []*Quest
	QuestsUnlocked  []*Quest
}

// ApplyVictory folds encounter rewards into the session: XP (with level
// cascades), gold, loot into the bag, one kill of progress on matching
// quests, then new quest unlocks for any levels gained. Kept apart from
// the resolver so combat itself only ever touches HP.
func (s *Service) ApplyVictory(g *Game, enemyKey string, rewards *Rewards) (*VictoryResult, error) {
	if rewards == nil {
		return nil, errors.New("apply victory: encounter was not won")
	}
	res := &VictoryResult{Rewards: *rewards}
	res.LevelsGained = g.Player.GainXP(rewards.XP)
	g.Player.GainGold(rewards.Gold)
	for _, key := range rewards.Loot {
		item, err := s.catalog.Get(key)
		if err != nil {
			return nil, err
		}
		if g.Inventory.Add(item) {
			res.Granted = append(res.Granted, item)
		} else {
			res.Dropped = append(res.Dropped, item)
		}
	}
	res.QuestsCompleted = g.Log.UpdateProgress(enemyKey, 1)
	res.QuestsUnlocked = g.Log.Sync(s.book, g.Player.Level)
	return res, nil
}

// Rest restores full HP for a flat fee. Rejected at full health or when
// the purse is short; gold is only taken when the rest happens.
func (s *Service) Rest(g *Game) error {
	if g.Player.HP == g.Player.MaxHP {
		return ErrFullHealth
	}
	if !g.Player.SpendGold(RestCost) {
		return ErrNotEnoughGold
	}
	g.Player.HP = g.Player.MaxHP
	return nil
}

// ShopStock resolves the fixed shop inventory against the catalog.
func (s *Service) ShopStock() ([]*Item, error) {
	out := make([]*Item, 0, len(shopStock))
	for _, key := range shopStock {
		item, err := s.catalog.Get(key)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Buy purchases one shop item at catalog price. The bag is checked before
// the purse so a failed purchase never moves gold.
func (s *Service) Buy(g *Game, key string) (*Item, error) {
	item, err := s.catalog.Get(key)
	if err != nil {
		return nil, err
	}
	if g.Inventory.Full() {
		return nil, ErrInventoryFull
	}
	if !g.Player.SpendGold(item.Price) {
		return nil, ErrNotEnoughGold
	}
	g.Inventory.Add(item)
	return item, nil
}

// TurnInQuest hands in a completed quest and unlocks anything the reward
// XP leveled the player into.
func (s *Service) TurnInQuest(g *Game, id string) (*TurnInResult, []*Quest, error) {
	res, err := g.Log.TurnIn(id, g.Player, g.Inventory, s.catalog)
	if err != nil {
		return nil, nil, err
	}
	unlocked := g.Log.Sync(s.book, g.Player.Level)
	return res, unlocked, nil
}
