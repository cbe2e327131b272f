package world

import (
	"fmt"
	"strings"
)

// Item is a named object that lives either in a room or in the player's inventory.
// Items are built once by the loader and only ever moved afterwards.
type Item struct {
	Name        string     // Unique across the world, case-sensitive key
	Description string     // Shown by examine
	Usability   *Usability // nil when the item cannot be used on anything
}

// NewItem creates an item. The name is trimmed and must not be blank.
func NewItem(name, description string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", ErrInvalidArgument)
	}
	return &Item{
		Name:        name,
		Description: description,
	}, nil
}

// Usability describes what happens when an item is used on a named target.
// Every directive is optional; unset directives are skipped.
type Usability struct {
	Target                   string            `json:"target" yaml:"target"`
	EffectDescription        string            `json:"effectDescription,omitempty" yaml:"effectDescription,omitempty"`
	RemovesTarget            string            `json:"removesTarget,omitempty" yaml:"removesTarget,omitempty"`                       // Item removed from the current room
	AddsTarget               string            `json:"addsTarget,omitempty" yaml:"addsTarget,omitempty"`                             // Item added to the current room
	ChangesRoomDescriptionTo string            `json:"changesRoomDescriptionTo,omitempty" yaml:"changesRoomDescriptionTo,omitempty"` // Replacement room description
	AddsItemToInventory      string            `json:"addsItemToInventory,omitempty" yaml:"addsItemToInventory,omitempty"`           // Item granted to the player
	ConsumesItem             bool              `json:"consumesItem,omitempty" yaml:"consumesItem,omitempty"`                         // Used item leaves the inventory
	ModifiesExit             *ExitModification `json:"modifiesExit,omitempty" yaml:"modifiesExit,omitempty"`
}

// ExitModification targets one exit of the current room.
type ExitModification struct {
	Direction         string `json:"direction" yaml:"direction"`
	ClearRequiresItem bool   `json:"clearRequiresItem" yaml:"clearRequiresItem"`
}
