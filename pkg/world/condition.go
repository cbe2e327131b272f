package world

// RequirementKind classifies what an exit condition asks of the player's inventory.
type RequirementKind int

const (
	NoRequirement RequirementKind = iota
	RequiresOne
	RequiresAll
)

func (k RequirementKind) String() string {
	switch k {
	case RequiresOne:
		return "requires_one"
	case RequiresAll:
		return "requires_all"
	default:
		return "none"
	}
}

// Requirement is the item clause of a Condition. The zero value requires nothing.
type Requirement struct {
	kind  RequirementKind
	items []string
}

// RequireOne requires a single item. A blank name requires nothing.
func RequireOne(name string) Requirement {
	if name == "" {
		return Requirement{}
	}
	return Requirement{kind: RequiresOne, items: []string{name}}
}

// RequireAll requires every named item. An empty list requires nothing.
func RequireAll(names ...string) Requirement {
	if len(names) == 0 {
		return Requirement{}
	}
	items := make([]string, len(names))
	copy(items, names)
	return Requirement{kind: RequiresAll, items: items}
}

func (r Requirement) Kind() RequirementKind {
	return r.kind
}

// Items returns a copy of the required item names.
func (r Requirement) Items() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

func (r Requirement) IsZero() bool {
	return r.kind == NoRequirement
}

// Condition gates an exit on the player's inventory.
type Condition struct {
	Requirement Requirement
	FailMessage string // Shown once when the requirement is unmet
}

// ClearRequirement makes the condition permanently pass.
func (c *Condition) ClearRequirement() {
	c.Requirement = Requirement{}
}

// Exit is a directed connection to another room.
type Exit struct {
	TargetRoom string
	Condition  *Condition // nil means always traversable
}
