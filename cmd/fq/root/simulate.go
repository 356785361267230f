package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"fantasyquest/internal/config"
	"fantasyquest/internal/engine"
	"fantasyquest/internal/ui"
)

// levelPlayer raises a fresh hero to the requested level through the
// normal XP path.
func levelPlayer(p *engine.Player, level int) {
	for p.Level < level {
		p.GainXP(p.XPToNext - p.XP)
	}
}

func newSimulateCmd() *cobra.Command {
	var battles int
	var level int
	var enemyKey string
	var seed int64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run automated battles and report the odds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = cfg.Seed
			}
			rng := engine.NewRNG(seed)
			catalog := engine.NewCatalog()
			bestiary := engine.NewBestiary()

			potion, err := catalog.Get("minor_potion")
			if err != nil {
				return err
			}

			// Drink when below a third of max HP, otherwise keep swinging.
			strategy := func(en *engine.Encounter) engine.Action {
				p := en.Player()
				if p.HP*3 < p.MaxHP {
					return engine.ActionPotion
				}
				return engine.ActionAttack
			}

			outcomes := map[engine.Outcome]int{}
			totalRounds := 0
			for i := 0; i < battles; i++ {
				p := engine.NewPlayer("Sim")
				levelPlayer(p, level)
				inv := engine.NewInventory()
				inv.Add(potion)
				inv.Add(potion)

				var enemy *engine.Enemy
				if enemyKey != "" {
					enemy, err = bestiary.Spawn(enemyKey, level)
				} else {
					enemy, err = bestiary.Random(level, rng)
				}
				if err != nil {
					return err
				}

				res, err := engine.Resolve(p, enemy, inv, rng, strategy)
				if err != nil {
					return err
				}
				outcomes[res.Outcome]++
				totalRounds += res.Rounds
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSword, "Battle Simulation"))
			fmt.Fprintln(out, ui.LabelValue("Battles", battles))
			fmt.Fprintln(out, ui.LabelValue("Player level", level))
			if enemyKey != "" {
				fmt.Fprintln(out, ui.LabelValue("Enemy", enemyKey))
			}
			fmt.Fprintln(out, "")
			for _, o := range []engine.Outcome{engine.OutcomeVictory, engine.OutcomeDefeat, engine.OutcomeFled} {
				n := outcomes[o]
				fmt.Fprintf(out, "- %s: %d (%.1f%%)\n", ui.OutcomeText(o), n, float64(n)*100/float64(battles))
			}
			if battles > 0 {
				fmt.Fprintf(out, "- %s %.1f\n", ui.Key.Render("avg rounds:"), float64(totalRounds)/float64(battles))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&battles, "battles", "b", 100, "Number of battles to run")
	cmd.Flags().IntVarP(&level, "level", "l", 1, "Player level to simulate at")
	cmd.Flags().StringVarP(&enemyKey, "enemy", "e", "", "Pin a specific enemy (default: random per level)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "RNG seed (0: FQ_SEED, then the clock)")

	return cmd
}
