package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"fantasyquest/internal/engine"
	"fantasyquest/internal/ui"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List every item in the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := engine.NewCatalog()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBox, "Item Catalog"))
			for _, kind := range []engine.ItemKind{engine.ItemWeapon, engine.ItemArmor, engine.ItemPotion} {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.KindIcon(kind)+" "+string(kind)+"s"))
				for _, key := range catalog.Keys() {
					it, err := catalog.Get(key)
					if err != nil {
						return err
					}
					if it.Kind != kind {
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
						it.String(),
						ui.Gold.Render(fmt.Sprintf("%d gold", it.Price)),
						ui.Muted.Render("— "+it.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
