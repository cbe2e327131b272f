package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/text-adventure/pkg/scenario"
	"github.com/jwebster45206/text-adventure/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.json|world.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	v := &WorldValidator{}

	summary, err := v.validateFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
	for _, warning := range v.warnings {
		fmt.Println(warning)
	}

	fmt.Println("World file is valid!")
	fmt.Println(summary)
}

// WorldValidator checks a world file more strictly than the game does at
// startup: unknown fields are rejected and unreachable content is reported.
type WorldValidator struct {
	warnings []string
}

func (v *WorldValidator) validateFile(filename string) (string, error) {
	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return "", fmt.Errorf("world file must have a .json, .yaml or .yml extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ext)
	if !isValidWorldFilename(nameWithoutExt) {
		return "", fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g., haunted_manor.json, not haunted-manor.json or HauntedManor.json)", baseName)
	}

	v.warnings = nil

	s, err := scenario.DecodeFile(filename, true)
	if err != nil {
		return "", fmt.Errorf("file %s failed strict decoding: %w", filename, err)
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	w, err := scenario.NewLoader(quiet).Build(s)
	if err != nil {
		return "", err
	}

	v.validateWorld(w)

	return fmt.Sprintf("%d rooms, %d items, start room %q", len(w.Rooms()), len(w.Items()), w.StartRoom()), nil
}

func (v *WorldValidator) validateWorld(w *world.World) {
	reachable := reachableRooms(w)
	for _, room := range w.Rooms() {
		if !reachable[room.Name] {
			v.addWarning(fmt.Sprintf("room '%s' cannot be reached from '%s'", room.Name, w.StartRoom()))
		}
	}

	obtainable := make(map[string]bool)
	for _, room := range w.Rooms() {
		for _, name := range room.ItemNames() {
			obtainable[name] = true
		}
	}
	for _, item := range w.Items() {
		if u := item.Usability; u != nil {
			if u.AddsTarget != "" {
				obtainable[u.AddsTarget] = true
			}
			if u.AddsItemToInventory != "" {
				obtainable[u.AddsItemToInventory] = true
			}
		}
	}
	for _, item := range w.Items() {
		if !obtainable[item.Name] {
			v.addWarning(fmt.Sprintf("item '%s' is never placed in a room or granted", item.Name))
		}
		if u := item.Usability; u != nil && u.ModifiesExit != nil {
			v.validateExitModifier(w, item)
		}
	}
}

// validateExitModifier checks that some room has the exit a usable item
// would unlock.
func (v *WorldValidator) validateExitModifier(w *world.World, item *world.Item) {
	dir := item.Usability.ModifiesExit.Direction
	for _, room := range w.Rooms() {
		if _, ok := room.Exit(dir); ok {
			return
		}
	}
	v.addWarning(fmt.Sprintf("item '%s' modifies exit '%s' but no room has that exit", item.Name, dir))
}

func (v *WorldValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, "  warning: "+msg)
}

// reachableRooms walks exits from the start room, ignoring conditions.
func reachableRooms(w *world.World) map[string]bool {
	seen := map[string]bool{w.StartRoom(): true}
	queue := []string{w.StartRoom()}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		room, ok := w.Room(name)
		if !ok {
			continue
		}
		for _, dir := range room.Directions() {
			exit, _ := room.Exit(dir)
			if !seen[exit.TargetRoom] {
				seen[exit.TargetRoom] = true
				queue = append(queue, exit.TargetRoom)
			}
		}
	}
	return seen
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidWorldFilename(name string) bool {
	// Allow 'x.' prefix for experimental worlds
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
