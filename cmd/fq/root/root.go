package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fantasyquest/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "fq",
	Short:         "Fantasy Quest — a text adventure in your terminal",
	Long:          "Fantasy Quest is a menu-driven single-player RPG: explore, fight, level up, gear up and clear the quest chain.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newPlayCmd(),
		newCatalogCmd(),
		newBestiaryCmd(),
		newQuestsCmd(),
		newSimulateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
