package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSpawnAtBaseLevel(t *testing.T) {
	e := mustSpawn(t, "goblin", 1)

	if e.HP != 30 || e.MaxHP != 30 || e.Attack != 5 || e.Defense != 2 {
		t.Fatalf("stats=%d/%d/%d, want 30/5/2", e.HP, e.Attack, e.Defense)
	}
	if e.XPReward != 20 || e.GoldReward != 10 {
		t.Fatalf("rewards=%d/%d, want 20/10", e.XPReward, e.GoldReward)
	}
}

func TestSpawnScalesStatsNotRewards(t *testing.T) {
	// Level 3 modifier: scale 1.4, truncated per stat.
	e := mustSpawn(t, "goblin", 3)

	if e.HP != 42 || e.Attack != 7 || e.Defense != 2 {
		t.Fatalf("scaled stats=%d/%d/%d, want 42/7/2", e.HP, e.Attack, e.Defense)
	}
	if e.XPReward != 20 || e.GoldReward != 10 {
		t.Fatalf("rewards scaled: %d/%d, want 20/10 unscaled", e.XPReward, e.GoldReward)
	}
}

func TestSpawnCopiesLoot(t *testing.T) {
	b := NewBestiary()
	e, err := b.Spawn("slime", 1)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	e.Loot[0].Chance = 1.0

	tpl, err := b.Get("slime")
	if err != nil {
		t.Fatalf("get template: %v", err)
	}
	if tpl.Loot[0].Chance != 0.2 {
		t.Fatalf("spawn aliased the template loot table")
	}
}

func TestSpawnUnknownKey(t *testing.T) {
	_, err := NewBestiary().Spawn("mimic", 1)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err=%v, want NotFoundError", err)
	}
	if nf.Table != "bestiary" || nf.Key != "mimic" {
		t.Fatalf("NotFoundError=%+v", nf)
	}
}

func TestRandomCoversEveryLevel(t *testing.T) {
	b := NewBestiary()
	rng := rand.New(rand.NewSource(11))

	for level := 1; level <= 15; level++ {
		e, err := b.Random(level, rng)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		tpl, err := b.Get(e.Key)
		if err != nil {
			t.Fatalf("level %d: spawned unknown key %q", level, e.Key)
		}
		if !tpl.InRange(level) {
			t.Fatalf("level %d: %q is out of its range [%d, %d]", level, e.Key, tpl.MinLevel, tpl.MaxLevel)
		}
	}
}

func TestRandomEmptyPoolIsFatal(t *testing.T) {
	b := &Bestiary{templates: map[string]EnemyTemplate{
		"ghost": {Key: "ghost", Name: "Ghost", HP: 10, Attack: 1, Defense: 0, MinLevel: 5, MaxLevel: 5},
	}}

	_, err := b.Random(1, rand.New(rand.NewSource(1)))
	var nt NoTemplateError
	if !errors.As(err, &nt) {
		t.Fatalf("err=%v, want NoTemplateError", err)
	}
	if nt.Level != 1 {
		t.Fatalf("NoTemplateError level=%d, want 1", nt.Level)
	}
}
