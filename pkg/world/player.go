package world

import (
	"fmt"
	"slices"
	"strings"
)

// Player tracks where the player is and what they carry.
type Player struct {
	currentRoomName string
	inventory       []*Item
}

// NewPlayer creates a player standing in the named room with an empty inventory.
func NewPlayer(startRoom string) (*Player, error) {
	p := &Player{}
	if err := p.SetCurrentRoomName(startRoom); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) CurrentRoomName() string {
	return p.currentRoomName
}

// SetCurrentRoomName moves the player. Blank names are rejected.
func (p *Player) SetCurrentRoomName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: current room name cannot be empty", ErrInvalidArgument)
	}
	p.currentRoomName = name
	return nil
}

// TakeItem appends an item to the inventory.
func (p *Player) TakeItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: cannot add a nil item to inventory", ErrInvalidArgument)
	}
	p.inventory = append(p.inventory, item)
	return nil
}

// RemoveItem drops the first inventory item matching name case-insensitively.
func (p *Player) RemoveItem(name string) (*Item, bool) {
	item, ok := p.FindItem(name)
	if !ok {
		return nil, false
	}
	i := slices.Index(p.inventory, item)
	p.inventory = slices.Delete(p.inventory, i, i+1)
	return item, true
}

// FindItem does a case-insensitive inventory lookup.
func (p *Player) FindItem(name string) (*Item, bool) {
	return findByName(p.inventory, name)
}

func (p *Player) HasItem(name string) bool {
	_, ok := p.FindItem(name)
	return ok
}

// Inventory returns a copy of the inventory in insertion order.
func (p *Player) Inventory() []*Item {
	return slices.Clone(p.inventory)
}

func (p *Player) InventoryNames() []string {
	return itemNames(p.inventory)
}

func (p *Player) ClearInventory() {
	p.inventory = nil
}
