package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"fantasyquest/internal/engine"
	"fantasyquest/internal/ui"
)

type screen int

const (
	screenMenu screen = iota
	screenExploring
	screenCombat
	screenPotion
	screenVictory
	screenInventory
	screenEquipment
	screenQuests
	screenShop
	screenDead
)

var menuEntries = []string{
	ui.IconMap + "  Explore",
	ui.IconBox + " View Inventory",
	ui.IconShield + "  Manage Equipment",
	ui.IconScroll + " Quest Log",
	ui.IconCamp + "  Rest (" + fmt.Sprint(engine.RestCost) + " gold)",
	ui.IconShop + " Visit Shop",
	"Quit",
}

var combatEntries = []string{
	ui.IconSword + "  Attack",
	ui.IconPotion + " Use Potion",
	ui.IconRun + " Try to Flee",
}

type gameModel struct {
	svc  *engine.Service
	game *engine.Game

	scr    screen
	cursor int
	spin   spinner.Model

	enc       *engine.Encounter
	battleLog []string
	victory   *engine.VictoryResult

	lastLog string

	width  int
	height int
}

type encounterMsg struct {
	enc *engine.Encounter
	err error
}

func newGameModel(svc *engine.Service, game *engine.Game) gameModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return gameModel{
		svc:     svc,
		game:    game,
		spin:    sp,
		lastLog: "Your adventure begins at the edge of a dark forest.",
	}
}

func (m gameModel) Init() tea.Cmd {
	return nil
}

func (m gameModel) exploreCmd() tea.Cmd {
	svc, game := m.svc, m.game
	return tea.Tick(700*time.Millisecond, func(time.Time) tea.Msg {
		enc, err := svc.Explore(game)
		return encounterMsg{enc: enc, err: err}
	})
}

func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if m.scr != screenExploring {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case encounterMsg:
		if msg.err != nil {
			// No matching enemy template is a table bug, not a game state.
			m.scr = screenMenu
			m.lastLog = ui.Bad.Render(ui.IconError + " " + msg.err.Error())
			return m, nil
		}
		m.enc = msg.enc
		m.battleLog = []string{fmt.Sprintf("A wild %s appears!", msg.enc.Enemy().Name)}
		m.scr = screenCombat
		m.cursor = 0
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m gameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.cursorMax() {
			m.cursor++
		}
		return m, nil
	}

	switch m.scr {
	case screenMenu:
		return m.keyMenu(key)
	case screenCombat:
		return m.keyCombat(key)
	case screenPotion:
		return m.keyPotion(key)
	case screenVictory:
		if key == "enter" || key == "q" || key == "esc" {
			m.victory = nil
			m.enc = nil
			m.scr = screenMenu
			m.cursor = 0
		}
		return m, nil
	case screenEquipment:
		return m.keyEquipment(key)
	case screenQuests:
		return m.keyQuests(key)
	case screenShop:
		return m.keyShop(key)
	case screenInventory:
		if key == "enter" || key == "esc" || key == "q" {
			m.scr = screenMenu
			m.cursor = 0
		}
		return m, nil
	case screenDead:
		if key == "q" || key == "enter" {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m gameModel) cursorMax() int {
	switch m.scr {
	case screenMenu:
		return len(menuEntries) - 1
	case screenCombat:
		return len(combatEntries) - 1
	case screenPotion:
		return len(m.game.Inventory.ByKind(engine.ItemPotion)) // extra row: cancel
	case screenEquipment:
		return m.game.Inventory.Len() - 1
	case screenQuests:
		return len(m.game.Log.Quests()) - 1
	case screenShop:
		stock, err := m.svc.ShopStock()
		if err != nil {
			return 0
		}
		return len(stock) - 1
	default:
		return 0
	}
}

func (m gameModel) keyMenu(key string) (tea.Model, tea.Cmd) {
	if key == "q" {
		return m, tea.Quit
	}
	if key != "enter" {
		return m, nil
	}
	switch m.cursor {
	case 0: // explore
		m.scr = screenExploring
		m.lastLog = "You venture into the wilderness..."
		return m, tea.Batch(m.spin.Tick, m.exploreCmd())
	case 1:
		m.scr = screenInventory
	case 2:
		m.scr = screenEquipment
	case 3:
		m.scr = screenQuests
	case 4:
		m.rest()
		return m, nil
	case 5:
		m.scr = screenShop
	case 6:
		return m, tea.Quit
	}
	m.cursor = 0
	return m, nil
}

func (m *gameModel) rest() {
	err := m.svc.Rest(m.game)
	switch {
	case errors.Is(err, engine.ErrFullHealth):
		m.lastLog = "You're already at full health!"
	case errors.Is(err, engine.ErrNotEnoughGold):
		m.lastLog = fmt.Sprintf("Not enough gold! The inn charges %d.", engine.RestCost)
	case err != nil:
		m.lastLog = ui.Bad.Render(err.Error())
	default:
		m.lastLog = ui.IconCamp + "  You rest and recover to full health."
	}
}

func (m gameModel) keyCombat(key string) (tea.Model, tea.Cmd) {
	if key != "enter" {
		return m, nil
	}
	switch m.cursor {
	case 0:
		rep, err := m.enc.Attack()
		if err != nil {
			m.lastLog = ui.Bad.Render(err.Error())
			return m, nil
		}
		m.logTurn(rep)
		return m.afterTurn()
	case 1:
		if len(m.game.Inventory.ByKind(engine.ItemPotion)) == 0 {
			// Fumbling for a potion you don't have still spends the round.
			rep, err := m.enc.Pass()
			if err != nil {
				m.lastLog = ui.Bad.Render(err.Error())
				return m, nil
			}
			m.battleLog = append(m.battleLog, "You don't have any potions!")
			m.logEnemyHit(rep)
			return m.afterTurn()
		}
		m.scr = screenPotion
		m.cursor = 0
		return m, nil
	case 2:
		rep, err := m.enc.Flee()
		if err != nil {
			m.lastLog = ui.Bad.Render(err.Error())
			return m, nil
		}
		if rep.FleeSucceeded {
			m.battleLog = append(m.battleLog, "You fled from battle!")
		} else {
			m.battleLog = append(m.battleLog, "Couldn't escape!")
			m.logEnemyHit(rep)
		}
		return m.afterTurn()
	}
	return m, nil
}

func (m gameModel) keyPotion(key string) (tea.Model, tea.Cmd) {
	if key == "esc" {
		return m.cancelPotion()
	}
	if key != "enter" {
		return m, nil
	}
	potions := m.game.Inventory.ByKind(engine.ItemPotion)
	if m.cursor >= len(potions) { // cancel row
		return m.cancelPotion()
	}
	rep, err := m.enc.UsePotion(potions[m.cursor])
	m.scr = screenCombat
	m.cursor = 0
	if err != nil {
		m.battleLog = append(m.battleLog, ui.Bad.Render(err.Error()))
	} else {
		m.battleLog = append(m.battleLog, fmt.Sprintf("%s restored %d HP.", rep.Potion.Name, rep.Healed))
	}
	m.logEnemyHit(rep)
	return m.afterTurn()
}

// cancelPotion backs out of the picker. The potion action was already
// committed, so the round goes to the enemy.
func (m gameModel) cancelPotion() (tea.Model, tea.Cmd) {
	rep, err := m.enc.Pass()
	if err != nil {
		m.lastLog = ui.Bad.Render(err.Error())
		return m, nil
	}
	m.scr = screenCombat
	m.cursor = 1
	m.battleLog = append(m.battleLog, "You close your pack.")
	m.logEnemyHit(rep)
	return m.afterTurn()
}

func (m *gameModel) logTurn(rep engine.TurnReport) {
	m.battleLog = append(m.battleLog, fmt.Sprintf("You hit the %s for %d damage.", m.enc.Enemy().Name, rep.PlayerDamage))
	m.logEnemyHit(rep)
}

func (m *gameModel) logEnemyHit(rep engine.TurnReport) {
	if rep.EnemyDamage > 0 {
		m.battleLog = append(m.battleLog, fmt.Sprintf("The %s hits you for %d damage.", m.enc.Enemy().Name, rep.EnemyDamage))
	}
}

func (m gameModel) afterTurn() (tea.Model, tea.Cmd) {
	if len(m.battleLog) > 8 {
		m.battleLog = m.battleLog[len(m.battleLog)-8:]
	}
	switch m.enc.Outcome() {
	case engine.OutcomeVictory:
		res, err := m.svc.ApplyVictory(m.game, m.enc.Enemy().Key, m.enc.Rewards())
		if err != nil {
			m.lastLog = ui.Bad.Render(err.Error())
			m.scr = screenMenu
			return m, nil
		}
		m.victory = res
		m.scr = screenVictory
		m.cursor = 0
	case engine.OutcomeDefeat:
		m.scr = screenDead
	case engine.OutcomeFled:
		m.enc = nil
		m.scr = screenMenu
		m.cursor = 0
		m.lastLog = ui.IconRun + " You escaped with your life."
	}
	return m, nil
}

func (m gameModel) keyEquipment(key string) (tea.Model, tea.Cmd) {
	if key == "esc" || key == "q" {
		m.scr = screenMenu
		m.cursor = 0
		return m, nil
	}
	if key != "enter" {
		return m, nil
	}
	items := m.game.Inventory.Items()
	if m.cursor >= len(items) {
		return m, nil
	}
	it := items[m.cursor]
	var err error
	switch it.Kind {
	case engine.ItemWeapon:
		err = m.game.Inventory.EquipWeapon(it, m.game.Player)
		if err == nil {
			m.lastLog = fmt.Sprintf("Equipped %s! ATK +%d", it.Name, it.Power)
		}
	case engine.ItemArmor:
		err = m.game.Inventory.EquipArmor(it, m.game.Player)
		if err == nil {
			m.lastLog = fmt.Sprintf("Equipped %s! DEF +%d", it.Name, it.Power)
		}
	case engine.ItemPotion:
		var healed int
		healed, err = m.game.Inventory.UsePotion(it, m.game.Player)
		if err == nil {
			m.lastLog = fmt.Sprintf("%s restored %d HP.", it.Name, healed)
		}
	}
	if err != nil {
		m.lastLog = ui.Bad.Render(err.Error())
	}
	if m.cursor > 0 {
		m.cursor--
	}
	return m, nil
}

func (m gameModel) keyQuests(key string) (tea.Model, tea.Cmd) {
	if key == "esc" || key == "q" {
		m.scr = screenMenu
		m.cursor = 0
		return m, nil
	}
	if key != "enter" {
		return m, nil
	}
	quests := m.game.Log.Quests()
	if m.cursor >= len(quests) {
		return m, nil
	}
	q := quests[m.cursor]
	res, unlocked, err := m.svc.TurnInQuest(m.game, q.ID)
	switch {
	case errors.Is(err, engine.ErrQuestNotComplete):
		m.lastLog = "Quest objectives not complete!"
	case errors.Is(err, engine.ErrQuestTurnedIn):
		m.lastLog = "Quest already turned in!"
	case err != nil:
		m.lastLog = ui.Bad.Render(err.Error())
	default:
		parts := []string{fmt.Sprintf("Quest complete: %s! +%d XP, +%d gold", q.Title, res.XPAwarded, res.Gold)}
		if res.LevelsGained > 0 {
			parts = append(parts, ui.BadgeLevelUp)
		}
		for _, u := range unlocked {
			parts = append(parts, fmt.Sprintf("New quest: %s", u.Title))
		}
		m.lastLog = strings.Join(parts, "  ")
	}
	return m, nil
}

func (m gameModel) keyShop(key string) (tea.Model, tea.Cmd) {
	if key == "esc" || key == "q" {
		m.scr = screenMenu
		m.cursor = 0
		return m, nil
	}
	if key != "enter" {
		return m, nil
	}
	stock, err := m.svc.ShopStock()
	if err != nil || m.cursor >= len(stock) {
		return m, nil
	}
	it, err := m.svc.Buy(m.game, stock[m.cursor].Key)
	switch {
	case errors.Is(err, engine.ErrNotEnoughGold):
		m.lastLog = "Not enough gold!"
	case errors.Is(err, engine.ErrInventoryFull):
		m.lastLog = "Your bag is full!"
	case err != nil:
		m.lastLog = ui.Bad.Render(err.Error())
	default:
		m.lastLog = fmt.Sprintf("Bought %s for %d gold.", it.Name, it.Price)
	}
	return m, nil
}
