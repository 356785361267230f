package engine

import (
	"errors"
	"fmt"
)

// Recoverable state errors. Mutating operations return these instead of
// changing anything; the caller decides the user-facing message.
var (
	ErrInventoryFull    = errors.New("inventory is full")
	ErrNotCarried       = errors.New("item is not in the backpack")
	ErrNotEnoughGold    = errors.New("not enough gold")
	ErrFullHealth       = errors.New("already at full health")
	ErrQuestNotComplete = errors.New("quest objectives are not complete")
	ErrQuestTurnedIn    = errors.New("quest already turned in")
	ErrEncounterOver    = errors.New("encounter already resolved")
)

// NotFoundError indicates a missing key in one of the static tables.
// That is a configuration bug, not a runtime condition to recover from.
type NotFoundError struct {
	Table string
	Key   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s: no entry for key %q", e.Table, e.Key)
}

// NoTemplateError is returned when no enemy template covers a player
// level. The bestiary is authored for full level coverage, so hitting this
// means the tables are broken.
type NoTemplateError struct {
	Level int
}

func (e NoTemplateError) Error() string {
	return fmt.Sprintf("bestiary: no enemy template covers level %d", e.Level)
}

// KindError is returned when an item of the wrong kind is passed to a
// kind-specific operation (equipping a potion, drinking a sword).
type KindError struct {
	Key  string
	Want ItemKind
	Got  ItemKind
}

func (e KindError) Error() string {
	return fmt.Sprintf("item %q is a %s, not a %s", e.Key, e.Got, e.Want)
}
