package engine

import "sort"

// levelScaleStep is the per-level stat multiplier increment applied when
// spawning an enemy: scale = 1 + (modifier-1) * levelScaleStep.
const levelScaleStep = 0.2

// LootEntry pairs a catalog key with an independent drop probability.
type LootEntry struct {
	ItemKey string
	Chance  float64
}

// EnemyTemplate is the authored base form of an enemy. MinLevel/MaxLevel
// bound the player levels it may be rolled for; MaxLevel 0 means no cap.
type EnemyTemplate struct {
	Key        string
	Name       string
	HP         int
	Attack     int
	Defense    int
	XPReward   int
	GoldReward int
	MinLevel   int
	MaxLevel   int
	Loot       []LootEntry
}

func (t EnemyTemplate) InRange(level int) bool {
	if level < t.MinLevel {
		return false
	}
	return t.MaxLevel == 0 || level <= t.MaxLevel
}

// Enemy is a transient combat instance built from a template. It lives for
// exactly one encounter.
type Enemy struct {
	Stats
	Key        string
	XPReward   int
	GoldReward int
	Loot       []LootEntry
}

// Bestiary is the read-only enemy template table. The level ranges are
// authored to cover every level from 1 up, so Random never legitimately
// comes up empty.
type Bestiary struct {
	templates map[string]EnemyTemplate
}

func NewBestiary() *Bestiary {
	defs := []EnemyTemplate{
		{Key: "slime", Name: "Slime", HP: 20, Attack: 3, Defense: 1, XPReward: 10, GoldReward: 5, MinLevel: 1, MaxLevel: 2,
			Loot: []LootEntry{{"minor_potion", 0.2}}},
		{Key: "goblin", Name: "Goblin", HP: 30, Attack: 5, Defense: 2, XPReward: 20, GoldReward: 10, MinLevel: 1, MaxLevel: 4,
			Loot: []LootEntry{{"minor_potion", 0.3}}},
		{Key: "skeleton", Name: "Skeleton", HP: 40, Attack: 8, Defense: 3, XPReward: 25, GoldReward: 15, MinLevel: 3, MaxLevel: 7,
			Loot: []LootEntry{{"rusty_sword", 0.15}, {"minor_potion", 0.25}}},
		{Key: "orc", Name: "Orc Warrior", HP: 60, Attack: 12, Defense: 5, XPReward: 40, GoldReward: 25, MinLevel: 3, MaxLevel: 7,
			Loot: []LootEntry{{"health_potion", 0.4}, {"iron_sword", 0.1}}},
		{Key: "troll", Name: "Cave Troll", HP: 100, Attack: 18, Defense: 8, XPReward: 70, GoldReward: 50, MinLevel: 5, MaxLevel: 10,
			Loot: []LootEntry{{"greater_potion", 0.5}, {"iron_armor", 0.15}}},
		{Key: "vampire", Name: "Vampire", HP: 120, Attack: 22, Defense: 10, XPReward: 100, GoldReward: 80, MinLevel: 5,
			Loot: []LootEntry{{"health_potion", 0.7}, {"steel_armor", 0.15}}},
		{Key: "dark_knight", Name: "Dark Knight", HP: 150, Attack: 25, Defense: 15, XPReward: 120, GoldReward: 100, MinLevel: 8,
			Loot: []LootEntry{{"steel_sword", 0.3}, {"steel_armor", 0.2}, {"greater_potion", 0.6}}},
		{Key: "dragon", Name: "Ancient Dragon", HP: 300, Attack: 40, Defense: 25, XPReward: 500, GoldReward: 500, MinLevel: 11,
			Loot: []LootEntry{{"legendary_blade", 0.5}, {"dragon_armor", 0.5}, {"mega_potion", 0.8}}},
	}

	templates := make(map[string]EnemyTemplate, len(defs))
	for _, d := range defs {
		templates[d.Key] = d
	}
	return &Bestiary{templates: templates}
}

func (b *Bestiary) Get(key string) (EnemyTemplate, error) {
	tpl, ok := b.templates[key]
	if !ok {
		return EnemyTemplate{}, NotFoundError{Table: "bestiary", Key: key}
	}
	return tpl, nil
}

// Templates returns every template in stable key order.
func (b *Bestiary) Templates() []EnemyTemplate {
	out := make([]EnemyTemplate, 0, len(b.templates))
	for _, tpl := range b.templates {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Spawn builds a combat-ready enemy. HP/ATK/DEF scale with the level
// modifier and truncate to integers; rewards and loot stay as authored.
func (b *Bestiary) Spawn(key string, levelModifier int) (*Enemy, error) {
	tpl, err := b.Get(key)
	if err != nil {
		return nil, err
	}
	if levelModifier < 1 {
		levelModifier = 1
	}
	scale := 1 + float64(levelModifier-1)*levelScaleStep

	loot := make([]LootEntry, len(tpl.Loot))
	copy(loot, tpl.Loot)

	hp := int(float64(tpl.HP) * scale)
	return &Enemy{
		Stats: Stats{
			Name:    tpl.Name,
			HP:      hp,
			MaxHP:   hp,
			Attack:  int(float64(tpl.Attack) * scale),
			Defense: int(float64(tpl.Defense) * scale),
		},
		Key:        tpl.Key,
		XPReward:   tpl.XPReward,
		GoldReward: tpl.GoldReward,
		Loot:       loot,
	}, nil
}

// Random spawns a uniformly picked enemy whose level range contains the
// player level, scaled to that level. An empty pool is a table bug.
func (b *Bestiary) Random(playerLevel int, rng RNG) (*Enemy, error) {
	var pool []string
	for _, tpl := range b.Templates() {
		if tpl.InRange(playerLevel) {
			pool = append(pool, tpl.Key)
		}
	}
	if len(pool) == 0 {
		return nil, NoTemplateError{Level: playerLevel}
	}
	return b.Spawn(pool[rng.Intn(len(pool))], playerLevel)
}
