package world

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jwebster45206/text-adventure/pkg/textfilter"
)

// Room is a location in the world. Its description, item list and exit
// conditions may change during play; its name never does.
type Room struct {
	Name        string
	Description string
	exits       map[string]*Exit // Direction → Exit, keys normalized
	items       []*Item
}

// NewRoom creates a room with no exits and no items.
func NewRoom(name, description string) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: room name cannot be empty", ErrInvalidArgument)
	}
	return &Room{
		Name:        name,
		Description: description,
		exits:       make(map[string]*Exit),
	}, nil
}

// SetDescription replaces the room description.
func (r *Room) SetDescription(description string) {
	r.Description = description
}

// AddExit registers an exit, overwriting any existing exit for the same direction.
func (r *Room) AddExit(direction, targetRoom string, cond *Condition) error {
	dir := textfilter.Normalize(direction)
	if dir == "" {
		return fmt.Errorf("%w: exit direction cannot be empty in room %q", ErrInvalidArgument, r.Name)
	}
	r.exits[dir] = &Exit{
		TargetRoom: strings.TrimSpace(targetRoom),
		Condition:  cond,
	}
	return nil
}

// Exit looks up the exit for a direction. The direction is normalized first.
func (r *Room) Exit(direction string) (*Exit, bool) {
	e, ok := r.exits[textfilter.Normalize(direction)]
	return e, ok
}

// Directions returns the exit directions in sorted order.
func (r *Room) Directions() []string {
	dirs := make([]string, 0, len(r.exits))
	for d := range r.exits {
		dirs = append(dirs, d)
	}
	slices.Sort(dirs)
	return dirs
}

func (r *Room) AddItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: cannot add a nil item to room %q", ErrInvalidArgument, r.Name)
	}
	r.items = append(r.items, item)
	return nil
}

// RemoveItem removes the given item instance. Returns false if it was not present.
func (r *Room) RemoveItem(item *Item) bool {
	for i, it := range r.items {
		if it == item {
			r.items = slices.Delete(r.items, i, i+1)
			return true
		}
	}
	return false
}

// RemoveItemByName removes the first item whose name matches case-insensitively.
func (r *Room) RemoveItemByName(name string) (*Item, bool) {
	item, ok := r.FindItemByName(name)
	if !ok {
		return nil, false
	}
	r.RemoveItem(item)
	return item, true
}

// FindItemByName does a case-insensitive lookup in the room's item list.
func (r *Room) FindItemByName(name string) (*Item, bool) {
	return findByName(r.items, name)
}

// Items returns a copy of the room's item list in insertion order.
func (r *Room) Items() []*Item {
	return slices.Clone(r.items)
}

// ItemNames returns the names of the items currently in the room.
func (r *Room) ItemNames() []string {
	return itemNames(r.items)
}

func (r *Room) ClearItems() {
	r.items = nil
}

func findByName(items []*Item, name string) (*Item, bool) {
	name = strings.TrimSpace(name)
	for _, it := range items {
		if textfilter.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return nil, false
}

func itemNames(items []*Item) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
