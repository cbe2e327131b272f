package scenario

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jwebster45206/text-adventure/pkg/world"
	"gopkg.in/yaml.v3"
)

// RequiresItem holds the requiresItem field, which may be written either as a
// single item name or as a list of item names that must all be held.
type RequiresItem struct {
	names []string
	list  bool
}

// NewRequiresOne builds a single-name requirement.
func NewRequiresOne(name string) RequiresItem {
	return RequiresItem{names: []string{name}}
}

// NewRequiresAll builds a list requirement.
func NewRequiresAll(names ...string) RequiresItem {
	return RequiresItem{names: names, list: true}
}

// Names returns the trimmed, non-blank item names.
func (r RequiresItem) Names() []string {
	var out []string
	for _, n := range r.names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Requirement classifies the field into a world.Requirement.
func (r RequiresItem) Requirement() world.Requirement {
	names := r.Names()
	if r.list {
		return world.RequireAll(names...)
	}
	if len(names) == 0 {
		return world.Requirement{}
	}
	return world.RequireOne(names[0])
}

// UnmarshalJSON accepts a string, a list of strings, or null.
func (r *RequiresItem) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*r = NewRequiresOne(str)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("requiresItem must be a string or a list of strings: %s", string(data))
	}
	if list == nil {
		*r = RequiresItem{}
		return nil
	}
	*r = NewRequiresAll(list...)
	return nil
}

// MarshalJSON writes the field back in the form it was read.
func (r RequiresItem) MarshalJSON() ([]byte, error) {
	if r.list {
		return json.Marshal(r.names)
	}
	if len(r.names) == 0 {
		return []byte("null"), nil
	}
	return json.Marshal(r.names[0])
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (r *RequiresItem) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*r = RequiresItem{}
			return nil
		}
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}
		*r = NewRequiresOne(str)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("requiresItem list must contain strings (line %d): %w", node.Line, err)
		}
		*r = NewRequiresAll(list...)
		return nil
	default:
		return fmt.Errorf("requiresItem must be a string or a list of strings (line %d)", node.Line)
	}
}
