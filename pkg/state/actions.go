package state

import (
	"context"
	"errors"
	"strings"

	"github.com/jwebster45206/text-adventure/pkg/world"
)

func (g *Game) currentRoomOrFailure() (*world.Room, *CommandResult) {
	room, found := g.CurrentRoom()
	if !found {
		g.logger.Error("Player is in an unknown room", "room", g.Player.CurrentRoomName())
		return nil, failure("Error: you are nowhere. This world is broken.")
	}
	return room, nil
}

func (g *Game) handleGo(args []string) *CommandResult {
	if len(args) == 0 {
		return failure("Go where?")
	}
	direction := strings.Join(args, " ")

	room, res := g.currentRoomOrFailure()
	if res != nil {
		return res
	}
	exit, found := room.Exit(direction)
	if !found {
		return failure("You can't go %s from here.", direction)
	}
	if passed, msg := g.checkConditions(exit.Condition); !passed {
		return failure("%s", msg)
	}

	target, found := g.World.Room(exit.TargetRoom)
	if !found {
		g.logger.Error("Exit targets unknown room",
			"room", room.Name,
			"direction", direction,
			"target", exit.TargetRoom)
		return failure("Error: Invalid exit destination.")
	}
	if err := g.Player.SetCurrentRoomName(target.Name); err != nil {
		g.logger.Error("Failed to move player", "error", err)
		return failure("Error: Invalid exit destination.")
	}

	g.logger.Info("Location changed", "from", room.Name, "to", target.Name, "direction", direction)
	return success("You move %s to %s.\n\n%s", direction, target.Name, DescribeRoom(target))
}

func (g *Game) handleTake(args []string) *CommandResult {
	if len(args) == 0 {
		return failure("Take what?")
	}
	name := strings.Join(args, " ")

	room, res := g.currentRoomOrFailure()
	if res != nil {
		return res
	}
	item, found := room.FindItemByName(name)
	if !found {
		return failure("There is no '%s' here.", name)
	}
	if err := g.Player.TakeItem(item); err != nil {
		return failure("You can't take that.")
	}
	room.RemoveItem(item)
	return success("You take the %s.", item.Name)
}

func (g *Game) handleDrop(args []string) *CommandResult {
	if len(args) == 0 {
		return failure("Drop what?")
	}
	name := strings.Join(args, " ")

	room, res := g.currentRoomOrFailure()
	if res != nil {
		return res
	}
	item, found := g.Player.FindItem(name)
	if !found {
		return failure("You don't have a '%s'.", name)
	}
	if err := room.AddItem(item); err != nil {
		return failure("You can't drop that here.")
	}
	g.Player.RemoveItem(item.Name)
	return success("You drop the %s.", item.Name)
}

func (g *Game) handleInventory() *CommandResult {
	names := g.Player.InventoryNames()
	if len(names) == 0 {
		return success("Your inventory is empty.")
	}
	return success("You are carrying: %s", strings.Join(names, ", "))
}

func (g *Game) handleExamine(args []string) *CommandResult {
	if len(args) == 0 {
		return failure("Examine what?")
	}
	name := strings.Join(args, " ")

	if item, found := g.Player.FindItem(name); found {
		return success("%s", item.Description)
	}
	room, res := g.currentRoomOrFailure()
	if res != nil {
		return res
	}
	if item, found := room.FindItemByName(name); found {
		return success("%s", item.Description)
	}
	return failure("There is no '%s' to examine.", name)
}

func (g *Game) handleLook() *CommandResult {
	room, res := g.currentRoomOrFailure()
	if res != nil {
		return res
	}
	return success("%s", DescribeRoom(room))
}

func (g *Game) handleSave(ctx context.Context) *CommandResult {
	if err := g.Save(ctx); err != nil {
		if errors.Is(err, ErrNoSaveStore) {
			return failure("Saving is not available.")
		}
		return failure("Failed to save game: %v", err)
	}
	return success("Game saved.")
}

func (g *Game) handleLoad(ctx context.Context) *CommandResult {
	found, _, err := g.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoSaveStore) {
			return failure("Loading is not available.")
		}
		return failure("Failed to load game: %v", err)
	}
	if !found {
		return failure("No saved game found.")
	}
	room, res := g.currentRoomOrFailure()
	if res != nil {
		return res
	}
	return success("Game loaded successfully!\n\n%s", DescribeRoom(room))
}

// Look renders the player's current room.
func (g *Game) Look() string {
	return g.handleLook().Message
}

// DescribeRoom renders a room: name, description, visible items, and sorted exits.
func DescribeRoom(room *world.Room) string {
	var b strings.Builder
	b.WriteString(room.Name)
	if room.Description != "" {
		b.WriteString("\n" + room.Description)
	}
	if names := room.ItemNames(); len(names) > 0 {
		b.WriteString("\nYou see: " + strings.Join(names, ", "))
	}
	if dirs := room.Directions(); len(dirs) > 0 {
		b.WriteString("\nExits: " + strings.Join(dirs, " "))
	}
	return b.String()
}
