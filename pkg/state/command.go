package state

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/text-adventure/pkg/textfilter"
)

type CommandType string

const (
	CmdGo        CommandType = "go"
	CmdTake      CommandType = "take"
	CmdDrop      CommandType = "drop"
	CmdInventory CommandType = "inventory"
	CmdExamine   CommandType = "examine"
	CmdUse       CommandType = "use"
	CmdLook      CommandType = "look"
	CmdSave      CommandType = "save"
	CmdLoad      CommandType = "load"
	CmdHelp      CommandType = "help"
	CmdQuit      CommandType = "quit"
	CmdNone      CommandType = "" // Not a recognized verb
)

// HelpHint lists the verbs the engine understands.
const HelpHint = "Try one of these: go, look, take, drop, inventory (inv), examine (x), use, save, load, quit"

var knownCommands = map[string]CommandType{
	"go":        CmdGo,
	"take":      CmdTake,
	"drop":      CmdDrop,
	"inventory": CmdInventory,
	"inv":       CmdInventory,
	"examine":   CmdExamine,
	"x":         CmdExamine,
	"use":       CmdUse,
	"look":      CmdLook,
	"save":      CmdSave,
	"load":      CmdLoad,
	"help":      CmdHelp,
	"quit":      CmdQuit,
	"exit":      CmdQuit,
}

// parseCommand maps the first token to a verb and returns the remaining tokens.
func parseCommand(tokens []string) (CommandType, []string) {
	if len(tokens) == 0 {
		return CmdNone, nil
	}
	cmd, ok := knownCommands[textfilter.Normalize(tokens[0])]
	if !ok {
		return CmdNone, tokens[1:]
	}
	return cmd, tokens[1:]
}

// CommandResult is the player-facing outcome of one command.
// A failed command has made no state changes.
type CommandResult struct {
	OK      bool   // False when the command was rejected
	Message string // Text to show the player
	Quit    bool   // True when the player asked to leave
}

func success(format string, args ...any) *CommandResult {
	return &CommandResult{OK: true, Message: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) *CommandResult {
	return &CommandResult{OK: false, Message: fmt.Sprintf(format, args...)}
}

// Execute normalizes a raw input line and runs it.
func (g *Game) Execute(ctx context.Context, input string) *CommandResult {
	return g.ExecuteTokens(ctx, textfilter.Tokenize(input))
}

// ExecuteTokens runs an already tokenized command to completion.
// Failures never return an error; they are reported in the result.
func (g *Game) ExecuteTokens(ctx context.Context, tokens []string) *CommandResult {
	if len(tokens) == 0 {
		return &CommandResult{OK: true}
	}
	cmd, args := parseCommand(tokens)
	g.logger.Debug("Executing command", "verb", tokens[0], "args", strings.Join(args, " "))

	switch cmd {
	case CmdGo:
		return g.handleGo(args)
	case CmdTake:
		return g.handleTake(args)
	case CmdDrop:
		return g.handleDrop(args)
	case CmdInventory:
		return g.handleInventory()
	case CmdExamine:
		return g.handleExamine(args)
	case CmdUse:
		return g.handleUse(args)
	case CmdLook:
		return g.handleLook()
	case CmdSave:
		return g.handleSave(ctx)
	case CmdLoad:
		return g.handleLoad(ctx)
	case CmdHelp:
		return success("%s", HelpHint)
	case CmdQuit:
		return &CommandResult{OK: true, Message: "Goodbye.", Quit: true}
	default:
		return failure("Sorry, I don't understand the command '%s'.\n%s", tokens[0], HelpHint)
	}
}
