package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"fantasyquest/internal/engine"
	"fantasyquest/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List the quest chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconScroll, "Quest Chain"))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			for _, def := range engine.NewQuestBook().Defs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Key.Render(def.Title), ui.Muted.Render(fmt.Sprintf("(unlocks at level %d)", def.RequiredLevel)))
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", def.Description)
				fmt.Fprintf(cmd.OutOrStdout(), "  Objective: defeat %d × %s\n", def.TargetCount, def.TargetKey)
				fmt.Fprintf(cmd.OutOrStdout(), "  Reward: %d XP, %d gold", def.Reward.XP, def.Reward.Gold)
				for _, key := range def.Reward.Items {
					fmt.Fprintf(cmd.OutOrStdout(), ", %s", key)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "")
			}
			return nil
		},
	}

	return cmd
}
