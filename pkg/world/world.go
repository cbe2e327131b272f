package world

import "fmt"

// World owns every room and the canonical item set. Rooms and items are kept
// in registration order so listings and saves are deterministic.
type World struct {
	rooms     map[string]*Room
	roomOrder []string
	items     map[string]*Item
	itemOrder []string
	startRoom string
}

func New() *World {
	return &World{
		rooms: make(map[string]*Room),
		items: make(map[string]*Item),
	}
}

// AddItem registers a canonical item.
func (w *World) AddItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: cannot register a nil item", ErrInvalidArgument)
	}
	if _, exists := w.items[item.Name]; exists {
		return fmt.Errorf("%w: item %q", ErrDuplicateName, item.Name)
	}
	w.items[item.Name] = item
	w.itemOrder = append(w.itemOrder, item.Name)
	return nil
}

// AddRoom registers a room.
func (w *World) AddRoom(room *Room) error {
	if room == nil {
		return fmt.Errorf("%w: cannot register a nil room", ErrInvalidArgument)
	}
	if _, exists := w.rooms[room.Name]; exists {
		return fmt.Errorf("%w: room %q", ErrDuplicateName, room.Name)
	}
	w.rooms[room.Name] = room
	w.roomOrder = append(w.roomOrder, room.Name)
	return nil
}

// Item looks up a canonical item by its exact name.
func (w *World) Item(name string) (*Item, bool) {
	it, ok := w.items[name]
	return it, ok
}

// Room looks up a room by its exact name.
func (w *World) Room(name string) (*Room, bool) {
	r, ok := w.rooms[name]
	return r, ok
}

func (w *World) HasRoom(name string) bool {
	_, ok := w.rooms[name]
	return ok
}

// Rooms returns every room in registration order.
func (w *World) Rooms() []*Room {
	out := make([]*Room, 0, len(w.roomOrder))
	for _, name := range w.roomOrder {
		out = append(out, w.rooms[name])
	}
	return out
}

// Items returns every canonical item in registration order.
func (w *World) Items() []*Item {
	out := make([]*Item, 0, len(w.itemOrder))
	for _, name := range w.itemOrder {
		out = append(out, w.items[name])
	}
	return out
}

// StartRoom is the room new players begin in.
func (w *World) StartRoom() string {
	return w.startRoom
}

// SetStartRoom sets the start room. The room must already be registered.
func (w *World) SetStartRoom(name string) error {
	if !w.HasRoom(name) {
		return fmt.Errorf("%w: start room %q is not a registered room", ErrInvalidArgument, name)
	}
	w.startRoom = name
	return nil
}
