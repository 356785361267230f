package tui

import (
	"fmt"
	"strings"

	"fantasyquest/internal/engine"
	"fantasyquest/internal/ui"
)

func (m gameModel) View() string {
	var body string
	switch m.scr {
	case screenExploring:
		body = m.viewExploring()
	case screenCombat, screenPotion:
		body = m.viewCombat()
	case screenVictory:
		body = m.viewVictory()
	case screenInventory:
		body = m.viewInventory()
	case screenEquipment:
		body = m.viewEquipment()
	case screenQuests:
		body = m.viewQuests()
	case screenShop:
		body = m.viewShop()
	case screenDead:
		body = m.viewDead()
	default:
		body = m.viewMenu()
	}
	return m.renderHeader() + "\n\n" + body + "\n\n" + m.renderFooter()
}

func (m gameModel) renderHeader() string {
	p := m.game.Player
	hp := fmt.Sprintf("HP %d/%d %s", p.HP, p.MaxHP, progressBar(p.HP, p.MaxHP, 20))
	xp := fmt.Sprintf("XP %d/%d %s", p.XP, p.XPToNext, progressBar(p.XP, p.XPToNext, 20))
	return fmt.Sprintf("%s  %s  %s  %s  %s %d",
		ui.Heading(ui.IconSparkle, "Fantasy Quest"),
		ui.Key.Render(fmt.Sprintf("%s (Lv %d)", p.Name, p.Level)),
		hp, xp,
		ui.Gold.Render(ui.IconGold), p.Gold)
}

func (m gameModel) renderFooter() string {
	help := "↑/↓ move · enter select · esc back · ctrl+c quit"
	return m.lastLog + "\n" + ui.Muted.Render(help)
}

func (m gameModel) viewMenu() string {
	lines := []string{ui.H2.Render("What will you do?"), ""}
	for i, entry := range menuEntries {
		lines = append(lines, cursorLine(i == m.cursor, entry))
	}
	return strings.Join(lines, "\n")
}

func (m gameModel) viewExploring() string {
	return m.spin.View() + " Venturing into the wilderness..."
}

func (m gameModel) viewCombat() string {
	e := m.enc.Enemy()
	p := m.game.Player

	var b strings.Builder
	b.WriteString(ui.H2.Render(ui.IconSword+"  "+e.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s  %d/%d\n", progressBar(e.HP, e.MaxHP, 26), e.HP, e.MaxHP))
	b.WriteString("\n")
	b.WriteString(ui.Key.Render(p.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s  %d/%d\n", progressBar(p.HP, p.MaxHP, 26), p.HP, p.MaxHP))
	b.WriteString("\n")

	for _, line := range m.battleLog {
		b.WriteString(ui.Muted.Render(line) + "\n")
	}
	b.WriteString("\n")

	if m.scr == screenPotion {
		b.WriteString(ui.H2.Render("Which potion?") + "\n")
		potions := m.game.Inventory.ByKind(engine.ItemPotion)
		for i, it := range potions {
			b.WriteString(cursorLine(i == m.cursor, ui.KindIcon(it.Kind)+" "+it.String()) + "\n")
		}
		b.WriteString(cursorLine(m.cursor == len(potions), "Cancel") + "\n")
		return b.String()
	}

	for i, entry := range combatEntries {
		b.WriteString(cursorLine(i == m.cursor, entry) + "\n")
	}
	return b.String()
}

func (m gameModel) viewVictory() string {
	res := m.victory
	lines := []string{
		ui.Good.Render(ui.IconTrophy + " Victory!"),
		"",
		fmt.Sprintf("Gained %d XP and %d gold.", res.Rewards.XP, res.Rewards.Gold),
	}
	if res.LevelsGained > 0 {
		lines = append(lines, ui.BadgeLevelUp+fmt.Sprintf(" — now level %d, fully restored.", m.game.Player.Level))
	}
	for _, it := range res.Granted {
		lines = append(lines, ui.IconBox+" Loot: "+it.String())
	}
	for _, it := range res.Dropped {
		lines = append(lines, ui.Warn.Render(it.Name+" left behind (bag full)"))
	}
	for _, q := range res.QuestsCompleted {
		lines = append(lines, ui.IconScroll+" Quest objective complete: "+q.Title)
	}
	for _, q := range res.QuestsUnlocked {
		lines = append(lines, ui.IconScroll+" New quest available: "+q.Title)
	}
	lines = append(lines, "", ui.Muted.Render("Press enter to continue."))
	return strings.Join(lines, "\n")
}

func (m gameModel) viewInventory() string {
	inv := m.game.Inventory
	lines := []string{ui.H2.Render(fmt.Sprintf("%s Inventory (%d/%d)", ui.IconBox, inv.Len(), inv.Capacity())), ""}
	lines = append(lines, equippedLines(inv)...)
	lines = append(lines, "")
	if inv.Len() == 0 {
		lines = append(lines, ui.Muted.Render("(empty)"))
	}
	for _, it := range inv.Items() {
		lines = append(lines, "  "+ui.KindIcon(it.Kind)+" "+it.String()+" "+ui.Muted.Render("— "+it.Description))
	}
	return strings.Join(lines, "\n")
}

func (m gameModel) viewEquipment() string {
	inv := m.game.Inventory
	lines := []string{ui.H2.Render(ui.IconShield + "  Equipment"), ""}
	lines = append(lines, equippedLines(inv)...)
	lines = append(lines, "", ui.Muted.Render("Select a weapon or armor to equip it, a potion to drink it."), "")
	if inv.Len() == 0 {
		lines = append(lines, ui.Muted.Render("(bag is empty)"))
	}
	for i, it := range inv.Items() {
		lines = append(lines, cursorLine(i == m.cursor, ui.KindIcon(it.Kind)+" "+it.String()))
	}
	return strings.Join(lines, "\n")
}

func equippedLines(inv *engine.Inventory) []string {
	weapon, armor := "none", "none"
	if w := inv.Weapon(); w != nil {
		weapon = w.String()
	}
	if a := inv.Armor(); a != nil {
		armor = a.String()
	}
	return []string{
		ui.LabelValue("Weapon", weapon),
		ui.LabelValue("Armor", armor),
	}
}

func (m gameModel) viewQuests() string {
	quests := m.game.Log.Quests()
	lines := []string{ui.H2.Render(ui.IconScroll + " Quest Log"), ""}
	if len(quests) == 0 {
		lines = append(lines, ui.Muted.Render("No quests yet."))
	}
	for i, q := range quests {
		status := fmt.Sprintf("%d/%d", q.Progress, q.TargetCount)
		switch {
		case q.TurnedIn:
			status = ui.Muted.Render("turned in")
		case q.Completed:
			status = ui.Good.Render("ready to turn in")
		}
		lines = append(lines, cursorLine(i == m.cursor, fmt.Sprintf("%s — %s", q.Title, status)))
		lines = append(lines, "      "+ui.Muted.Render(q.Description))
	}
	lines = append(lines, "", ui.Muted.Render("Select a completed quest to turn it in."))
	return strings.Join(lines, "\n")
}

func (m gameModel) viewShop() string {
	lines := []string{ui.H2.Render(ui.IconShop + " Shop"), ""}
	stock, err := m.svc.ShopStock()
	if err != nil {
		return ui.Bad.Render(err.Error())
	}
	for i, it := range stock {
		price := ui.Gold.Render(fmt.Sprintf("%d gold", it.Price))
		lines = append(lines, cursorLine(i == m.cursor, fmt.Sprintf("%s %s — %s", ui.KindIcon(it.Kind), it.String(), price)))
	}
	lines = append(lines, "", ui.LabelValue("Your gold", m.game.Player.Gold))
	return strings.Join(lines, "\n")
}

func (m gameModel) viewDead() string {
	return strings.Join([]string{
		ui.Bad.Render(ui.IconSkull + " You have fallen..."),
		"",
		fmt.Sprintf("%s reached level %d before the end.", m.game.Player.Name, m.game.Player.Level),
		"",
		ui.Muted.Render("Press enter to leave this world."),
	}, "\n")
}

func cursorLine(selected bool, text string) string {
	if selected {
		return ui.SelectedRow.Render("> " + text)
	}
	return "  " + text
}

func progressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
