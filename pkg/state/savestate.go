package state

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jwebster45206/text-adventure/pkg/world"
)

// SaveState is a serializable projection of the mutable parts of a game.
// It holds names only; applying it resolves them against the live world.
type SaveState struct {
	PlayerLocation  string              `json:"playerLocation"`
	PlayerInventory []string            `json:"playerInventory"`
	RoomItemStates  map[string][]string `json:"roomItemStates"` // Room name → item names
}

// Capture builds a SaveState from the live world and player.
func Capture(w *world.World, p *world.Player) *SaveState {
	ss := &SaveState{
		PlayerLocation:  p.CurrentRoomName(),
		PlayerInventory: p.InventoryNames(),
		RoomItemStates:  make(map[string][]string),
	}
	for _, room := range w.Rooms() {
		ss.RoomItemStates[room.Name] = room.ItemNames()
	}
	return ss
}

// Clone returns a deep copy.
func (ss *SaveState) Clone() *SaveState {
	if ss == nil {
		return nil
	}
	out := &SaveState{
		PlayerLocation:  ss.PlayerLocation,
		PlayerInventory: slices.Clone(ss.PlayerInventory),
	}
	if ss.RoomItemStates != nil {
		out.RoomItemStates = make(map[string][]string, len(ss.RoomItemStates))
		for room, items := range ss.RoomItemStates {
			out.RoomItemStates[room] = slices.Clone(items)
		}
	}
	return out
}

// Apply re-applies a SaveState onto a live world and player. Only canonical
// items and existing rooms are ever referenced; unknown names are skipped and
// reported in the returned warnings.
func Apply(ss *SaveState, w *world.World, p *world.Player) []string {
	var warnings []string
	warnf := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if ss.PlayerLocation != "" && w.HasRoom(ss.PlayerLocation) {
		// cannot fail, the name is non-empty
		_ = p.SetCurrentRoomName(ss.PlayerLocation)
	} else {
		warnf("Saved location %q is not a room; location unchanged", ss.PlayerLocation)
	}

	p.ClearInventory()
	if ss.PlayerInventory == nil {
		warnf("Saved inventory is missing; inventory cleared")
	}
	for _, name := range ss.PlayerInventory {
		item, found := w.Item(name)
		if !found {
			warnf("Unknown item %q in saved inventory; skipping", name)
			continue
		}
		_ = p.TakeItem(item)
	}

	if ss.RoomItemStates == nil {
		warnf("Saved room item states are missing; room contents unchanged")
		return warnings
	}
	for _, room := range w.Rooms() {
		room.ClearItems()
		for _, name := range ss.RoomItemStates[room.Name] {
			item, found := w.Item(name)
			if !found {
				warnf("Unknown item %q in saved state for room %q; skipping", name, room.Name)
				continue
			}
			_ = room.AddItem(item)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(ss.RoomItemStates)) {
		if !w.HasRoom(name) {
			warnf("Saved state mentions unknown room %q; skipping", name)
		}
	}
	return warnings
}
