package engine

// Outcome is the terminal state of an encounter.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeFled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "ongoing"
	}
}

const (
	fleeChance = 0.5

	minDamageFactor = 0.8
	maxDamageFactor = 1.2
)

// Rewards is what a victory pays out. The resolver computes it but never
// applies it; reward application is the caller's explicit step.
type Rewards struct {
	XP   int
	Gold int
	Loot []string
}

// TurnReport describes one full round: the player's action and, when it
// happens, the enemy's answer.
type TurnReport struct {
	PlayerDamage  int // dealt to the enemy
	EnemyDamage   int // dealt to the player
	Healed        int
	Potion        *Item
	FleeAttempted bool
	FleeSucceeded bool
	Outcome       Outcome
}

// Encounter runs one fight to a terminal state. The player acts first each
// round; the enemy answers unless it died or the player escaped. The only
// state the encounter mutates is HP on the two combatants and the potion
// entries it consumes.
type Encounter struct {
	player  *Player
	enemy   *Enemy
	inv     *Inventory
	rng     RNG
	outcome Outcome
	rewards *Rewards
}

func NewEncounter(p *Player, e *Enemy, inv *Inventory, rng RNG) *Encounter {
	return &Encounter{player: p, enemy: e, inv: inv, rng: rng}
}

func (en *Encounter) Player() *Player  { return en.player }
func (en *Encounter) Enemy() *Enemy    { return en.enemy }
func (en *Encounter) Outcome() Outcome { return en.outcome }
func (en *Encounter) Over() bool       { return en.outcome != OutcomeNone }

// Rewards is non-nil only after a victory.
func (en *Encounter) Rewards() *Rewards { return en.rewards }

// damageRoll is the shared damage formula: the variance factor scales the
// attack, truncates, then defense comes off, floored at 1 so no hit ever
// whiffs entirely.
func damageRoll(attack, defense int, factor float64) int {
	dmg := int(float64(attack)*factor) - defense
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

func (en *Encounter) variance() float64 {
	return minDamageFactor + en.rng.Float64()*(maxDamageFactor-minDamageFactor)
}

// Attack resolves a player attack and, if the enemy survives, its answer.
func (en *Encounter) Attack() (TurnReport, error) {
	if en.Over() {
		return TurnReport{}, ErrEncounterOver
	}
	var rep TurnReport
	rep.PlayerDamage = en.enemy.ApplyDamage(damageRoll(en.player.Attack, en.enemy.Defense, en.variance()))
	if !en.enemy.Alive() {
		en.outcome = OutcomeVictory
		en.rewards = &Rewards{
			XP:   en.enemy.XPReward,
			Gold: en.enemy.GoldReward,
			Loot: rollLoot(en.rng, en.enemy.Loot),
		}
		rep.Outcome = en.outcome
		return rep, nil
	}
	en.enemyTurn(&rep)
	return rep, nil
}

// UsePotion drinks a carried potion. Committing to the potion action
// spends the round either way: a rejected drink (wrong item, not carried)
// heals nothing, but the enemy still answers. Callers get the report
// alongside the error so they can show the enemy's hit.
func (en *Encounter) UsePotion(potion *Item) (TurnReport, error) {
	if en.Over() {
		return TurnReport{}, ErrEncounterOver
	}
	var rep TurnReport
	healed, err := en.inv.UsePotion(potion, en.player)
	if err == nil {
		rep.Healed = healed
		rep.Potion = potion
	}
	en.enemyTurn(&rep)
	return rep, err
}

// Pass forfeits the player's action, as when a potion pick is backed out
// of. The enemy takes its turn as usual.
func (en *Encounter) Pass() (TurnReport, error) {
	if en.Over() {
		return TurnReport{}, ErrEncounterOver
	}
	var rep TurnReport
	en.enemyTurn(&rep)
	return rep, nil
}

// Flee attempts to run. Success ends the encounter before the enemy can
// act; failure hands it the turn as usual.
func (en *Encounter) Flee() (TurnReport, error) {
	if en.Over() {
		return TurnReport{}, ErrEncounterOver
	}
	rep := TurnReport{FleeAttempted: true}
	if en.rng.Float64() < fleeChance {
		rep.FleeSucceeded = true
		en.outcome = OutcomeFled
		rep.Outcome = en.outcome
		return rep, nil
	}
	en.enemyTurn(&rep)
	return rep, nil
}

func (en *Encounter) enemyTurn(rep *TurnReport) {
	rep.EnemyDamage = en.player.ApplyDamage(damageRoll(en.enemy.Attack, en.player.Defense, en.variance()))
	if !en.player.Alive() {
		en.outcome = OutcomeDefeat
	}
	rep.Outcome = en.outcome
}

// rollLoot makes one independent draw per table entry.
func rollLoot(rng RNG, table []LootEntry) []string {
	var drops []string
	for _, entry := range table {
		if rng.Float64() < entry.Chance {
			drops = append(drops, entry.ItemKey)
		}
	}
	return drops
}

// Action is a player decision for one combat round.
type Action int

const (
	ActionAttack Action = iota
	ActionPotion
	ActionFlee
)

// Strategy picks the player's next action. Used by non-interactive
// resolution (simulations, tests); the TUI drives the step API directly.
type Strategy func(en *Encounter) Action

// AlwaysAttack is the baseline strategy: swing every round.
func AlwaysAttack(*Encounter) Action { return ActionAttack }

// Result is the summary of a fully resolved encounter.
type Result struct {
	Outcome Outcome
	Rewards *Rewards // nil unless Outcome is victory
	Rounds  int
}

// Resolve drives an encounter to a terminal state with the given strategy.
// A potion action with an empty potion pouch falls back to attacking so a
// thirsty strategy never wastes rounds forfeiting.
func Resolve(p *Player, e *Enemy, inv *Inventory, rng RNG, pick Strategy) (Result, error) {
	en := NewEncounter(p, e, inv, rng)
	rounds := 0
	for !en.Over() {
		rounds++
		action := pick(en)
		if action == ActionPotion {
			potions := inv.ByKind(ItemPotion)
			if len(potions) == 0 {
				action = ActionAttack
			} else {
				if _, err := en.UsePotion(potions[0]); err != nil {
					return Result{}, err
				}
				continue
			}
		}
		var err error
		switch action {
		case ActionFlee:
			_, err = en.Flee()
		default:
			_, err = en.Attack()
		}
		if err != nil {
			return Result{}, err
		}
	}
	return Result{Outcome: en.Outcome(), Rewards: en.Rewards(), Rounds: rounds}, nil
}
