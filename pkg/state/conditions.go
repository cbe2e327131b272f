package state

import "github.com/jwebster45206/text-adventure/pkg/world"

// defaultFailMessage is shown when a blocking condition has no message of its own.
const defaultFailMessage = "Something prevents you from going that way."

// checkConditions reports whether the player may pass an exit. On failure it
// returns the condition's fail message, once, however many items are missing.
func (g *Game) checkConditions(cond *world.Condition) (bool, string) {
	if cond == nil {
		return true, ""
	}

	switch cond.Requirement.Kind() {
	case world.RequiresOne, world.RequiresAll:
		for _, name := range cond.Requirement.Items() {
			if !g.Player.HasItem(name) {
				g.logger.Debug("Exit condition unmet", "missing_item", name)
				return false, failMessage(cond)
			}
		}
	}
	return true, ""
}

func failMessage(cond *world.Condition) string {
	if cond.FailMessage == "" {
		return defaultFailMessage
	}
	return cond.FailMessage
}
