package scenario

import "github.com/jwebster45206/text-adventure/pkg/world"

// Scenario is the raw world configuration record, as decoded from a JSON or
// YAML world file. It is validated and turned into a *world.World by a Loader.
type Scenario struct {
	PlayerStart string     `json:"playerStart" yaml:"playerStart" validate:"required"` // Name of the starting room
	Items       []ItemSpec `json:"items,omitempty" yaml:"items,omitempty"`              // Canonical item set
	Rooms       []RoomSpec `json:"rooms" yaml:"rooms" validate:"required,min=1,dive"`
}

// ItemSpec declares one canonical item.
type ItemSpec struct {
	Name        string           `json:"name" yaml:"name"` // Blank names are skipped
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Usability   *world.Usability `json:"usability,omitempty" yaml:"usability,omitempty"`
}

// RoomSpec declares one room and its relationships.
type RoomSpec struct {
	Name        string              `json:"name" yaml:"name" validate:"required"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Exits       map[string]string   `json:"exits,omitempty" yaml:"exits,omitempty"`                      // Direction → room name
	ExitData    map[string]ExitSpec `json:"exitData,omitempty" yaml:"exitData,omitempty" validate:"dive"` // Direction → exit with conditions, wins over Exits
	Items       []string            `json:"items,omitempty" yaml:"items,omitempty"`                      // Names from the canonical item set
}

// ExitSpec is the richer exit form with an optional condition.
type ExitSpec struct {
	TargetRoom string          `json:"targetRoom" yaml:"targetRoom" validate:"required"`
	Conditions *ConditionsSpec `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// ConditionsSpec gates an exit on the player's inventory.
type ConditionsSpec struct {
	RequiresItem RequiresItem `json:"requiresItem,omitempty" yaml:"requiresItem,omitempty"` // A single name or a list of names
	FailMessage  string       `json:"failMessage,omitempty" yaml:"failMessage,omitempty"`
}

// Condition converts the conditions block into a world condition.
func (c *ConditionsSpec) Condition() *world.Condition {
	if c == nil {
		return nil
	}
	return &world.Condition{
		Requirement: c.RequiresItem.Requirement(),
		FailMessage: c.FailMessage,
	}
}
