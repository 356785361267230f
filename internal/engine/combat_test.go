package engine

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// fixedRNG pins every draw. Float64 of 0.5 puts the damage variance at
// exactly 1.0.
type fixedRNG struct {
	f float64
}

func (r fixedRNG) Float64() float64 { return r.f }
func (r fixedRNG) Intn(n int) int   { return 0 }

func mustSpawn(t *testing.T, key string, level int) *Enemy {
	t.Helper()
	e, err := NewBestiary().Spawn(key, level)
	if err != nil {
		t.Fatalf("spawn %s: %v", key, err)
	}
	return e
}

func TestDamageRoll(t *testing.T) {
	if got := damageRoll(10, 5, 1.0); got != 5 {
		t.Fatalf("damageRoll(10,5,1.0)=%d, want 5", got)
	}
	// Factor below the defense still lands the floor hit.
	if got := damageRoll(10, 5, 0.1); got != 1 {
		t.Fatalf("damageRoll(10,5,0.1)=%d, want 1", got)
	}
}

func TestSlimeVictoryInThreeRounds(t *testing.T) {
	p := NewPlayer("Hero")
	enemy := mustSpawn(t, "slime", 1)
	en := NewEncounter(p, enemy, NewInventory(), fixedRNG{f: 0.5})

	rounds := 0
	for !en.Over() {
		rounds++
		if rounds > 3 {
			t.Fatalf("slime not dead after 3 rounds (HP %d)", enemy.HP)
		}
		if _, err := en.Attack(); err != nil {
			t.Fatalf("attack round %d: %v", rounds, err)
		}
	}

	if en.Outcome() != OutcomeVictory {
		t.Fatalf("outcome=%v, want victory", en.Outcome())
	}
	if enemy.HP != 0 {
		t.Fatalf("enemy HP=%d, want 0", enemy.HP)
	}
	r := en.Rewards()
	if r == nil || r.XP != 10 || r.Gold != 5 {
		t.Fatalf("rewards=%+v, want 10 XP / 5 gold", r)
	}
	if _, err := en.Attack(); !errors.Is(err, ErrEncounterOver) {
		t.Fatalf("attack after victory: %v, want ErrEncounterOver", err)
	}
}

func TestDefeatEndsEncounterImmediately(t *testing.T) {
	p := NewPlayer("Hero")
	p.HP = 1
	enemy := &Enemy{Stats: Stats{Name: "Brute", HP: 500, MaxHP: 500, Attack: 50, Defense: 0}, Key: "brute"}
	en := NewEncounter(p, enemy, NewInventory(), fixedRNG{f: 0.5})

	rep, err := en.Attack()
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	if rep.Outcome != OutcomeDefeat || en.Outcome() != OutcomeDefeat {
		t.Fatalf("outcome=%v, want defeat", en.Outcome())
	}
	if p.HP != 0 {
		t.Fatalf("player HP=%d, want 0", p.HP)
	}
	if en.Rewards() != nil {
		t.Fatalf("defeat must not pay rewards")
	}
}

func TestFleeSuccessSkipsEnemyTurn(t *testing.T) {
	p := NewPlayer("Hero")
	en := NewEncounter(p, mustSpawn(t, "goblin", 1), NewInventory(), fixedRNG{f: 0.1})

	rep, err := en.Flee()
	if err != nil {
		t.Fatalf("flee: %v", err)
	}
	if !rep.FleeSucceeded || en.Outcome() != OutcomeFled {
		t.Fatalf("rep=%+v outcome=%v, want successful flee", rep, en.Outcome())
	}
	if rep.EnemyDamage != 0 || p.HP != p.MaxHP {
		t.Fatalf("enemy acted on a successful flee (HP %d)", p.HP)
	}
}

func TestFleeFailureGivesEnemyTurn(t *testing.T) {
	p := NewPlayer("Hero")
	en := NewEncounter(p, mustSpawn(t, "goblin", 1), NewInventory(), fixedRNG{f: 0.9})

	rep, err := en.Flee()
	if err != nil {
		t.Fatalf("flee: %v", err)
	}
	if rep.FleeSucceeded || en.Over() {
		t.Fatalf("flee should have failed and combat continued")
	}
	if rep.EnemyDamage < 1 {
		t.Fatalf("enemy dealt %d, want >= 1", rep.EnemyDamage)
	}
}

func TestFleeRateNearOneHalf(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const trials = 10_000
	successes := 0
	for i := 0; i < trials; i++ {
		p := NewPlayer("Hero")
		en := NewEncounter(p, mustSpawn(t, "slime", 1), NewInventory(), rng)
		rep, err := en.Flee()
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		if rep.FleeSucceeded {
			successes++
		}
	}

	rate := float64(successes) / trials
	if math.Abs(rate-0.5) > 0.02 {
		t.Fatalf("flee rate=%.4f, want 0.5 +/- 0.02", rate)
	}
}

func TestPotionTurnStillGivesEnemyTurn(t *testing.T) {
	p := NewPlayer("Hero")
	p.ApplyDamage(50)
	catalog := NewCatalog()
	potion, err := catalog.Get("minor_potion")
	if err != nil {
		t.Fatalf("get potion: %v", err)
	}
	inv := NewInventory()
	inv.Add(potion)
	en := NewEncounter(p, mustSpawn(t, "goblin", 1), inv, fixedRNG{f: 0.5})

	rep, err := en.UsePotion(potion)
	if err != nil {
		t.Fatalf("use potion: %v", err)
	}
	if rep.Healed != 30 {
		t.Fatalf("healed=%d, want 30", rep.Healed)
	}
	if rep.EnemyDamage < 1 {
		t.Fatalf("enemy did not take its turn after the potion")
	}
	if len(inv.ByKind(ItemPotion)) != 0 {
		t.Fatalf("potion not consumed")
	}
}

func TestRejectedPotionStillForfeitsTurn(t *testing.T) {
	p := NewPlayer("Hero")
	catalog := NewCatalog()
	potion, err := catalog.Get("minor_potion")
	if err != nil {
		t.Fatalf("get potion: %v", err)
	}
	en := NewEncounter(p, mustSpawn(t, "goblin", 1), NewInventory(), fixedRNG{f: 0.5})

	rep, err := en.UsePotion(potion)
	if !errors.Is(err, ErrNotCarried) {
		t.Fatalf("use potion: %v, want ErrNotCarried", err)
	}
	if rep.Healed != 0 || rep.Potion != nil {
		t.Fatalf("rejected potion healed: %+v", rep)
	}
	// The action was committed, so the round still belongs to the enemy.
	if rep.EnemyDamage < 1 || p.HP == p.MaxHP {
		t.Fatalf("enemy turn skipped on a rejected potion (HP %d)", p.HP)
	}
	if en.Over() {
		t.Fatalf("encounter ended on a rejected potion")
	}
}

func TestPassGivesEnemyTurn(t *testing.T) {
	p := NewPlayer("Hero")
	en := NewEncounter(p, mustSpawn(t, "goblin", 1), NewInventory(), fixedRNG{f: 0.5})

	rep, err := en.Pass()
	if err != nil {
		t.Fatalf("pass: %v", err)
	}
	if rep.EnemyDamage < 1 || p.HP == p.MaxHP {
		t.Fatalf("enemy turn skipped on a pass (HP %d)", p.HP)
	}
	if en.Over() {
		t.Fatalf("encounter ended on a pass")
	}

	en.outcome = OutcomeFled
	if _, err := en.Pass(); !errors.Is(err, ErrEncounterOver) {
		t.Fatalf("pass after flee: %v, want ErrEncounterOver", err)
	}
}

func TestResolveAlwaysAttack(t *testing.T) {
	p := NewPlayer("Hero")
	res, err := Resolve(p, mustSpawn(t, "slime", 1), NewInventory(), rand.New(rand.NewSource(7)), AlwaysAttack)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Outcome != OutcomeVictory {
		t.Fatalf("outcome=%v, want victory", res.Outcome)
	}
	if res.Rewards == nil || res.Rewards.XP != 10 {
		t.Fatalf("rewards=%+v, want slime rewards", res.Rewards)
	}
	if res.Rounds < 1 {
		t.Fatalf("rounds=%d, want >= 1", res.Rounds)
	}
}
