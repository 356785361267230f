package root

import (
	"github.com/spf13/cobra"

	"fantasyquest/internal/config"
	"fantasyquest/internal/engine"
	"fantasyquest/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a new adventure",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if name == "" {
				name = cfg.HeroName
			}

			svc := engine.NewService(engine.NewRNG(cfg.Seed))
			game, err := svc.NewGame(name)
			if err != nil {
				return err
			}
			return tui.RunGame(svc, game, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Hero name (defaults to FQ_HERO)")

	return cmd
}
