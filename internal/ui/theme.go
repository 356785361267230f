package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fantasyquest/internal/engine"
)

// Fantasy Quest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMap     = "🗺️"
	IconSparkle = "✨"
	IconSword   = "⚔️"
	IconShield  = "🛡️"
	IconPotion  = "🧪"
	IconSkull   = "💀"
	IconRun     = "🏃"
	IconGold    = "💰"
	IconCamp    = "🏕️"
	IconShop    = "🏪"
	IconScroll  = "📜"
	IconBox     = "📦"
	IconTrophy  = "🏆"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func OutcomeText(o engine.Outcome) string {
	switch o {
	case engine.OutcomeVictory:
		return Good.Render("victory")
	case engine.OutcomeDefeat:
		return Bad.Render("defeat")
	case engine.OutcomeFled:
		return Warn.Render("fled")
	default:
		return Muted.Render("ongoing")
	}
}

func KindIcon(kind engine.ItemKind) string {
	switch kind {
	case engine.ItemWeapon:
		return IconSword
	case engine.ItemArmor:
		return IconShield
	case engine.ItemPotion:
		return IconPotion
	default:
		return IconBox
	}
}
