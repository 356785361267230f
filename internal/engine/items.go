package engine

import (
	"fmt"
	"sort"
)

type ItemKind string

const (
	ItemWeapon ItemKind = "weapon"
	ItemArmor  ItemKind = "armor"
	ItemPotion ItemKind = "potion"
)

// HealFull marks a potion that restores HP to the maximum, whatever it is.
const HealFull = -1

// Item is an immutable template. Power holds the kind-specific magnitude:
// ATK bonus for weapons, DEF bonus for armor, heal amount for potions.
// Inventories hold pointers into the catalog and never copy or mutate.
type Item struct {
	Key         string
	Name        string
	Description string
	Price       int
	Kind        ItemKind
	Power       int
}

func (it *Item) String() string {
	switch it.Kind {
	case ItemWeapon:
		return fmt.Sprintf("%s (+%d ATK)", it.Name, it.Power)
	case ItemArmor:
		return fmt.Sprintf("%s (+%d DEF)", it.Name, it.Power)
	case ItemPotion:
		if it.Power == HealFull {
			return fmt.Sprintf("%s (full heal)", it.Name)
		}
		return fmt.Sprintf("%s (heals %d HP)", it.Name, it.Power)
	default:
		return it.Name
	}
}

// Catalog is the read-only item table, built once at startup.
type Catalog struct {
	items map[string]*Item
}

func NewCatalog() *Catalog {
	defs := []Item{
		{Key: "rusty_sword", Name: "Rusty Sword", Description: "An old, weathered blade", Price: 20, Kind: ItemWeapon, Power: 5},
		{Key: "iron_sword", Name: "Iron Sword", Description: "A sturdy iron blade", Price: 50, Kind: ItemWeapon, Power: 10},
		{Key: "steel_sword", Name: "Steel Sword", Description: "A well-crafted steel sword", Price: 100, Kind: ItemWeapon, Power: 15},
		{Key: "legendary_blade", Name: "Legendary Blade", Description: "A sword of ancient power", Price: 500, Kind: ItemWeapon, Power: 30},

		{Key: "leather_armor", Name: "Leather Armor", Description: "Basic leather protection", Price: 30, Kind: ItemArmor, Power: 5},
		{Key: "iron_armor", Name: "Iron Armor", Description: "Heavy iron plating", Price: 75, Kind: ItemArmor, Power: 10},
		{Key: "steel_armor", Name: "Steel Armor", Description: "Reinforced steel armor", Price: 150, Kind: ItemArmor, Power: 15},
		{Key: "dragon_armor", Name: "Dragon Armor", Description: "Armor forged from dragon scales", Price: 600, Kind: ItemArmor, Power: 35},

		{Key: "minor_potion", Name: "Minor Health Potion", Description: "Restores a small amount of HP", Price: 15, Kind: ItemPotion, Power: 30},
		{Key: "health_potion", Name: "Health Potion", Description: "Restores moderate HP", Price: 30, Kind: ItemPotion, Power: 50},
		{Key: "greater_potion", Name: "Greater Health Potion", Description: "Restores significant HP", Price: 60, Kind: ItemPotion, Power: 100},
		{Key: "mega_potion", Name: "Mega Health Potion", Description: "Fully restores HP", Price: 120, Kind: ItemPotion, Power: HealFull},
	}

	items := make(map[string]*Item, len(defs))
	for i := range defs {
		items[defs[i].Key] = &defs[i]
	}
	return &Catalog{items: items}
}

func (c *Catalog) Get(key string) (*Item, error) {
	it, ok := c.items[key]
	if !ok {
		return nil, NotFoundError{Table: "catalog", Key: key}
	}
	return it, nil
}

// Keys returns every item key in stable order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
