package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fantasyquest/internal/engine"
	"fantasyquest/internal/ui"
)

func newBestiaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bestiary",
		Short: "List every enemy and where it roams",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSkull, "Bestiary"))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			for _, tpl := range engine.NewBestiary().Templates() {
				levels := fmt.Sprintf("levels %d+", tpl.MinLevel)
				if tpl.MaxLevel > 0 {
					levels = fmt.Sprintf("levels %d-%d", tpl.MinLevel, tpl.MaxLevel)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render(tpl.Name), ui.Muted.Render("("+levels+")"))
				fmt.Fprintf(cmd.OutOrStdout(), "  HP %d · ATK %d · DEF %d · %d XP · %d gold\n",
					tpl.HP, tpl.Attack, tpl.Defense, tpl.XPReward, tpl.GoldReward)
				if len(tpl.Loot) > 0 {
					var drops []string
					for _, entry := range tpl.Loot {
						drops = append(drops, fmt.Sprintf("%s (%.0f%%)", entry.ItemKey, entry.Chance*100))
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", ui.Muted.Render("drops:"), strings.Join(drops, ", "))
				}
			}
			return nil
		},
	}

	return cmd
}
