package engine

// DefaultCapacity is how many items a backpack holds. Equipped gear sits
// in its own slots and does not count against it.
const DefaultCapacity = 20

// Inventory is a bounded bag of catalog items plus one weapon slot and one
// armor slot. Equipping moves an item out of the bag; the displaced piece
// takes the slot the new one freed, so a swap never overflows.
type Inventory struct {
	capacity int
	items    []*Item
	weapon   *Item
	armor    *Item
}

func NewInventory() *Inventory {
	return &Inventory{capacity: DefaultCapacity}
}

func (inv *Inventory) Len() int      { return len(inv.items) }
func (inv *Inventory) Capacity() int { return inv.capacity }
func (inv *Inventory) Full() bool    { return len(inv.items) >= inv.capacity }

func (inv *Inventory) Weapon() *Item { return inv.weapon }
func (inv *Inventory) Armor() *Item  { return inv.armor }

// Items returns the bag contents in acquisition order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// ByKind filters the bag, keeping acquisition order.
func (inv *Inventory) ByKind(kind ItemKind) []*Item {
	var out []*Item
	for _, it := range inv.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

// Add appends an item and reports success. A full bag is left unchanged.
func (inv *Inventory) Add(item *Item) bool {
	if inv.Full() {
		return false
	}
	inv.items = append(inv.items, item)
	return true
}

// Remove drops the first matching entry and reports whether it was found.
func (inv *Inventory) Remove(item *Item) bool {
	for i, it := range inv.items {
		if it == item {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

func (inv *Inventory) contains(item *Item) bool {
	for _, it := range inv.items {
		if it == item {
			return true
		}
	}
	return false
}

// EquipWeapon moves the weapon from the bag into the weapon slot and
// recomputes the player's ATK. Any previously equipped weapon returns to
// the bag, taking the slot the new weapon freed.
func (inv *Inventory) EquipWeapon(item *Item, p *Player) error {
	if item.Kind != ItemWeapon {
		return KindError{Key: item.Key, Want: ItemWeapon, Got: item.Kind}
	}
	if !inv.contains(item) {
		return ErrNotCarried
	}
	inv.Remove(item)
	if inv.weapon != nil {
		p.Attack -= inv.weapon.Power
		inv.items = append(inv.items, inv.weapon)
	}
	inv.weapon = item
	p.Attack += item.Power
	return nil
}

// EquipArmor is the DEF counterpart of EquipWeapon.
func (inv *Inventory) EquipArmor(item *Item, p *Player) error {
	if item.Kind != ItemArmor {
		return KindError{Key: item.Key, Want: ItemArmor, Got: item.Kind}
	}
	if !inv.contains(item) {
		return ErrNotCarried
	}
	inv.Remove(item)
	if inv.armor != nil {
		p.Defense -= inv.armor.Power
		inv.items = append(inv.items, inv.armor)
	}
	inv.armor = item
	p.Defense += item.Power
	return nil
}

// UnequipWeapon returns the equipped weapon to the bag. Unlike a swap this
// needs a free slot; a full bag rejects the move and the weapon stays
// equipped.
func (inv *Inventory) UnequipWeapon(p *Player) error {
	if inv.weapon == nil {
		return ErrNotCarried
	}
	if inv.Full() {
		return ErrInventoryFull
	}
	p.Attack -= inv.weapon.Power
	inv.items = append(inv.items, inv.weapon)
	inv.weapon = nil
	return nil
}

// UnequipArmor mirrors UnequipWeapon for the armor slot.
func (inv *Inventory) UnequipArmor(p *Player) error {
	if inv.armor == nil {
		return ErrNotCarried
	}
	if inv.Full() {
		return ErrInventoryFull
	}
	p.Defense -= inv.armor.Power
	inv.items = append(inv.items, inv.armor)
	inv.armor = nil
	return nil
}

// UsePotion consumes a potion from the bag and heals the player. Returns
// the HP actually restored.
func (inv *Inventory) UsePotion(item *Item, p *Player) (int, error) {
	if item == nil || item.Kind != ItemPotion {
		key, kind := "", ItemKind("nothing")
		if item != nil {
			key, kind = item.Key, item.Kind
		}
		return 0, KindError{Key: key, Want: ItemPotion, Got: kind}
	}
	if !inv.contains(item) {
		return 0, ErrNotCarried
	}
	inv.Remove(item)
	if item.Power == HealFull {
		healed := p.MaxHP - p.HP
		p.HP = p.MaxHP
		return healed, nil
	}
	return p.Heal(item.Power), nil
}
