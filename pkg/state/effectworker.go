package state

import (
	"fmt"
	"log/slog"

	"github.com/jwebster45206/text-adventure/pkg/world"
)

// EffectWorker applies the mutation directives of one successful use.
// Directives run in a fixed order, each skipped when unset:
//
//  1. remove the target item from the room
//  2. add an item to the room
//  3. replace the room description
//  4. grant an item to the player
//  5. consume the used item
//  6. clear an exit requirement
//
// Later directives see the state left by earlier ones.
type EffectWorker struct {
	game      *Game
	room      *world.Room
	item      *world.Item
	usability *world.Usability
	logger    *slog.Logger
	notes     []string
}

// NewEffectWorker creates a worker for using item in room.
func NewEffectWorker(g *Game, room *world.Room, item *world.Item) *EffectWorker {
	return &EffectWorker{
		game:      g,
		room:      room,
		item:      item,
		usability: item.Usability,
		logger:    g.logger.With("item", item.Name, "room", room.Name),
	}
}

// Apply runs every directive and returns any extra lines for the player.
func (ew *EffectWorker) Apply() []string {
	if ew.usability == nil {
		return nil
	}
	ew.handleRemovesTarget()
	ew.handleAddsTarget()
	ew.handleChangesRoomDescription()
	ew.handleAddsItemToInventory()
	ew.handleConsumesItem()
	ew.handleModifiesExit()
	return ew.notes
}

func (ew *EffectWorker) handleRemovesTarget() {
	name := ew.usability.RemovesTarget
	if name == "" {
		return
	}
	if _, removed := ew.room.RemoveItemByName(name); !removed {
		ew.logger.Debug("Item to remove not in room", "target", name)
	}
}

func (ew *EffectWorker) handleAddsTarget() {
	name := ew.usability.AddsTarget
	if name == "" {
		return
	}
	item, found := ew.game.World.Item(name)
	if !found {
		ew.logger.Warn("Item to add is not a known item", "target", name)
		return
	}
	if err := ew.room.AddItem(item); err != nil {
		ew.logger.Error("Failed to add item to room", "target", name, "error", err)
	}
}

func (ew *EffectWorker) handleChangesRoomDescription() {
	if ew.usability.ChangesRoomDescriptionTo == "" {
		return
	}
	ew.room.SetDescription(ew.usability.ChangesRoomDescriptionTo)
}

func (ew *EffectWorker) handleAddsItemToInventory() {
	name := ew.usability.AddsItemToInventory
	if name == "" {
		return
	}
	item, found := ew.game.World.Item(name)
	if !found {
		ew.logger.Warn("Item to grant is not a known item", "grant", name)
		return
	}
	if err := ew.game.Player.TakeItem(item); err != nil {
		ew.logger.Error("Failed to grant item", "grant", name, "error", err)
	}
}

func (ew *EffectWorker) handleConsumesItem() {
	if !ew.usability.ConsumesItem {
		return
	}
	ew.game.Player.RemoveItem(ew.item.Name)
}

func (ew *EffectWorker) handleModifiesExit() {
	mod := ew.usability.ModifiesExit
	if mod == nil || !mod.ClearRequiresItem {
		return
	}
	exit, found := ew.room.Exit(mod.Direction)
	if !found || exit.Condition == nil || exit.Condition.Requirement.IsZero() {
		ew.logger.Debug("No exit requirement to clear", "direction", mod.Direction)
		return
	}
	exit.Condition.ClearRequirement()
	ew.logger.Info("Exit requirement cleared", "direction", mod.Direction)
	ew.notes = append(ew.notes, fmt.Sprintf("The exit to the %s is now open.", mod.Direction))
}
