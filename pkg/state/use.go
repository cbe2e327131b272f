package state

import (
	"strings"

	"github.com/jwebster45206/text-adventure/pkg/textfilter"
)

const useUsage = "Usage: use <item> on <target>"

// splitUseArgs splits "rusty key on door" at the first "on", in any case,
// that has at least one token on each side.
func splitUseArgs(args []string) (item, target string, found bool) {
	for i := 1; i < len(args)-1; i++ {
		if textfilter.EqualFold(args[i], "on") {
			return strings.Join(args[:i], " "), strings.Join(args[i+1:], " "), true
		}
	}
	return "", "", false
}

// handleUse validates ownership, target match, and target presence before
// anything is mutated, then hands off to the effect worker.
func (g *Game) handleUse(args []string) *CommandResult {
	itemName, targetName, found := splitUseArgs(args)
	if !found {
		return failure(useUsage)
	}

	item, found := g.Player.FindItem(itemName)
	if !found {
		return failure("You don't have a '%s'.", itemName)
	}
	usability := item.Usability
	if usability == nil || !textfilter.EqualFold(targetName, usability.Target) {
		return failure("You can't use the %s on that.", item.Name)
	}

	room, res := g.currentRoomOrFailure()
	if res != nil {
		return res
	}
	if _, found := room.FindItemByName(targetName); !found {
		return failure("There is no '%s' here.", targetName)
	}

	lines := make([]string, 0, 2)
	if usability.EffectDescription != "" {
		lines = append(lines, usability.EffectDescription)
	}
	lines = append(lines, NewEffectWorker(g, room, item).Apply()...)

	g.logger.Info("Item used", "item", item.Name, "target", usability.Target, "room", room.Name)
	return success("%s", strings.Join(lines, "\n"))
}
