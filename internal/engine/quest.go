package engine

// QuestReward is the bundle granted on turn-in.
type QuestReward struct {
	XP    int
	Gold  int
	Items []string
}

// QuestDef is an authored quest: defeat TargetCount enemies of TargetKey.
// It unlocks once the player reaches RequiredLevel.
type QuestDef struct {
	ID            string
	Title         string
	Description   string
	TargetKey     string
	TargetCount   int
	RequiredLevel int
	Reward        QuestReward
}

// Quest is the mutable per-session state of a definition.
type Quest struct {
	QuestDef
	Progress  int
	Completed bool
	TurnedIn  bool
}

// QuestBook is the read-only quest definition table, in unlock order.
type QuestBook struct {
	defs []QuestDef
}

func NewQuestBook() *QuestBook {
	return &QuestBook{defs: []QuestDef{
		{
			ID:            "goblin_slayer",
			Title:         "Goblin Slayer",
			Description:   "The village is being terrorized by goblins. Defeat them!",
			TargetKey:     "goblin",
			TargetCount:   5,
			RequiredLevel: 1,
			Reward:        QuestReward{XP: 100, Gold: 50, Items: []string{"health_potion"}},
		},
		{
			ID:            "orc_hunter",
			Title:         "Orc Hunter",
			Description:   "A band of orcs threatens the kingdom. Hunt them down!",
			TargetKey:     "orc",
			TargetCount:   3,
			RequiredLevel: 3,
			Reward:        QuestReward{XP: 200, Gold: 100, Items: []string{"iron_sword", "health_potion"}},
		},
		{
			ID:            "dragon_slayer",
			Title:         "Dragon Slayer",
			Description:   "An ancient dragon has awakened. Only the bravest can face it!",
			TargetKey:     "dragon",
			TargetCount:   1,
			RequiredLevel: 10,
			Reward:        QuestReward{XP: 1000, Gold: 1000, Items: []string{"legendary_blade", "dragon_armor"}},
		},
	}}
}

// Defs returns the definitions in unlock order.
func (b *QuestBook) Defs() []QuestDef {
	out := make([]QuestDef, len(b.defs))
	copy(out, b.defs)
	return out
}

// QuestLog holds the quests unlocked so far, keyed by id. It owns the
// Quest instances exclusively.
type QuestLog struct {
	quests map[string]*Quest
	order  []string
}

func NewQuestLog() *QuestLog {
	return &QuestLog{quests: map[string]*Quest{}}
}

// Sync unlocks every book quest the player level now qualifies for and
// returns the newly unlocked ones. Idempotent.
func (l *QuestLog) Sync(book *QuestBook, playerLevel int) []*Quest {
	var unlocked []*Quest
	for _, def := range book.Defs() {
		if playerLevel < def.RequiredLevel {
			continue
		}
		if _, ok := l.quests[def.ID]; ok {
			continue
		}
		q := &Quest{QuestDef: def}
		l.quests[def.ID] = q
		l.order = append(l.order, def.ID)
		unlocked = append(unlocked, q)
	}
	return unlocked
}

func (l *QuestLog) Get(id string) (*Quest, error) {
	q, ok := l.quests[id]
	if !ok {
		return nil, NotFoundError{Table: "quest log", Key: id}
	}
	return q, nil
}

// Quests returns every unlocked quest in unlock order.
func (l *QuestLog) Quests() []*Quest {
	out := make([]*Quest, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.quests[id])
	}
	return out
}

// Completed returns the unlocked quests whose objective is done.
func (l *QuestLog) Completed() []*Quest {
	var out []*Quest
	for _, q := range l.Quests() {
		if q.Completed {
			out = append(out, q)
		}
	}
	return out
}

// UpdateProgress advances every open quest hunting targetKey, clamped at
// the target count. Returns the quests that just completed.
func (l *QuestLog) UpdateProgress(targetKey string, amount int) []*Quest {
	if amount < 0 {
		amount = 0
	}
	var done []*Quest
	for _, q := range l.Quests() {
		if q.Completed || q.TargetKey != targetKey {
			continue
		}
		q.Progress += amount
		if q.Progress >= q.TargetCount {
			q.Progress = q.TargetCount
			q.Completed = true
			done = append(done, q)
		}
	}
	return done
}

// TurnInResult reports what a turn-in granted. Reward items that did not
// fit in the bag end up in Dropped.
type TurnInResult struct {
	Quest        *Quest
	XPAwarded    int
	LevelsGained int
	Gold         int
	Granted      []*Item
	Dropped      []*Item
}

// TurnIn grants the reward bundle exactly once. XP lands first and may
// cascade level-ups before the items are handed over.
func (l *QuestLog) TurnIn(id string, p *Player, inv *Inventory, catalog *Catalog) (*TurnInResult, error) {
	q, err := l.Get(id)
	if err != nil {
		return nil, err
	}
	if !q.Completed {
		return nil, ErrQuestNotComplete
	}
	if q.TurnedIn {
		return nil, ErrQuestTurnedIn
	}

	res := &TurnInResult{Quest: q, XPAwarded: q.Reward.XP, Gold: q.Reward.Gold}
	res.LevelsGained = p.GainXP(q.Reward.XP)
	p.GainGold(q.Reward.Gold)
	for _, key := range q.Reward.Items {
		item, err := catalog.Get(key)
		if err != nil {
			return nil, err
		}
		if inv.Add(item) {
			res.Granted = append(res.Granted, item)
		} else {
			res.Dropped = append(res.Dropped, item)
		}
	}
	q.TurnedIn = true
	return res, nil
}
