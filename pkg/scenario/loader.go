package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jwebster45206/text-adventure/pkg/textfilter"
	"github.com/jwebster45206/text-adventure/pkg/world"
)

// Loader validates a Scenario and builds the world graph from it.
// It either returns a complete world or a *LoadError; nothing partial escapes.
type Loader struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:   logger,
		validate: validator.New(),
	}
}

// LoadFile decodes and builds a world file.
func (l *Loader) LoadFile(path string) (*world.World, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: world file path cannot be empty", world.ErrInvalidArgument)
	}
	l.logger.Debug("Loading world", "path", path, "format", FormatForPath(path))

	s, err := DecodeFile(path, false)
	if err != nil {
		return nil, err
	}
	w, err := l.Build(s)
	if err != nil {
		return nil, err
	}
	l.logger.Info("World loaded",
		"path", path,
		"rooms", len(w.Rooms()),
		"items", len(w.Items()),
		"start", w.StartRoom())
	return w, nil
}

// Build turns a decoded Scenario into a validated world. Items are built
// first, then rooms, then the relationships between them.
func (l *Loader) Build(s *Scenario) (*world.World, error) {
	if s == nil {
		return nil, newLoadError(ErrMissingField, "validate", "world data is empty", nil)
	}
	if err := l.checkRequired(s); err != nil {
		return nil, err
	}

	w := world.New()
	if err := l.buildItems(w, s.Items); err != nil {
		return nil, err
	}
	if err := l.buildRooms(w, s.Rooms); err != nil {
		return nil, err
	}
	for _, rs := range s.Rooms {
		room, _ := w.Room(strings.TrimSpace(rs.Name))
		if err := l.wireExits(w, room, rs); err != nil {
			return nil, err
		}
		if err := l.placeItems(w, room, rs.Items); err != nil {
			return nil, err
		}
	}

	start := strings.TrimSpace(s.PlayerStart)
	if err := w.SetStartRoom(start); err != nil {
		return nil, newLoadError(ErrInvalidStart, "start", fmt.Sprintf("playerStart %q does not match any room", start), nil)
	}
	return w, nil
}

func (l *Loader) checkRequired(s *Scenario) error {
	err := l.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return newLoadError(ErrSyntax, "validate", "", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "min":
			fields = append(fields, fmt.Sprintf("%s needs at least %s entry", fe.Namespace(), fe.Param()))
		default:
			fields = append(fields, fe.Namespace())
		}
	}
	return newLoadError(ErrMissingField, "validate", strings.Join(fields, ", "), nil)
}

func (l *Loader) buildItems(w *world.World, specs []ItemSpec) error {
	for i, spec := range specs {
		if strings.TrimSpace(spec.Name) == "" {
			l.logger.Warn("Skipping item with blank name", "index", i)
			continue
		}
		item, err := world.NewItem(spec.Name, spec.Description)
		if err != nil {
			return newLoadError(ErrMissingField, "items", fmt.Sprintf("item #%d", i), err)
		}
		if spec.Usability != nil {
			u := *spec.Usability
			if u.ModifiesExit != nil {
				mod := *u.ModifiesExit
				mod.Direction = textfilter.Normalize(mod.Direction)
				u.ModifiesExit = &mod
			}
			item.Usability = &u
		}
		if err := w.AddItem(item); err != nil {
			return newLoadError(ErrDuplicateName, "items", fmt.Sprintf("item %q", item.Name), nil)
		}
	}

	// usability directives may only point at declared items
	for _, item := range w.Items() {
		u := item.Usability
		if u == nil {
			continue
		}
		refs := []struct{ field, name string }{
			{"addsTarget", u.AddsTarget},
			{"addsItemToInventory", u.AddsItemToInventory},
		}
		for _, ref := range refs {
			if ref.name == "" {
				continue
			}
			if _, ok := w.Item(ref.name); !ok {
				return newLoadError(ErrUnresolvedItem, "items",
					fmt.Sprintf("item %q usability %s references undeclared item %q", item.Name, ref.field, ref.name), nil)
			}
		}
	}
	return nil
}

func (l *Loader) buildRooms(w *world.World, specs []RoomSpec) error {
	for _, spec := range specs {
		room, err := world.NewRoom(spec.Name, spec.Description)
		if err != nil {
			return newLoadError(ErrMissingField, "rooms", "room name", err)
		}
		if err := w.AddRoom(room); err != nil {
			return newLoadError(ErrDuplicateName, "rooms", fmt.Sprintf("room %q", room.Name), nil)
		}
	}
	return nil
}

func (l *Loader) wireExits(w *world.World, room *world.Room, spec RoomSpec) error {
	type pending struct {
		target string
		cond   *world.Condition
	}
	exits := make(map[string]pending)

	// Keys that differ only in case or spacing would otherwise race in map order.
	plain := make(map[string]bool, len(spec.Exits))
	for dir, target := range spec.Exits {
		key := textfilter.Normalize(dir)
		if key != "" && plain[key] {
			return duplicateExit(room, key)
		}
		plain[key] = true
		exits[key] = pending{target: strings.TrimSpace(target)}
	}
	// exitData wins over the plain form for the same direction
	rich := make(map[string]bool, len(spec.ExitData))
	for dir, ed := range spec.ExitData {
		key := textfilter.Normalize(dir)
		if key != "" && rich[key] {
			return duplicateExit(room, key)
		}
		rich[key] = true
		exits[key] = pending{
			target: strings.TrimSpace(ed.TargetRoom),
			cond:   ed.Conditions.Condition(),
		}
	}

	dirs := make([]string, 0, len(exits))
	for dir := range exits {
		dirs = append(dirs, dir)
	}
	slices.Sort(dirs)

	for _, dir := range dirs {
		p := exits[dir]
		if dir == "" {
			return newLoadError(ErrMissingField, "exits", fmt.Sprintf("room %q has an exit with a blank direction", room.Name), nil)
		}
		if !w.HasRoom(p.target) {
			return newLoadError(ErrDanglingExit, "exits",
				fmt.Sprintf("room %q exit %q targets unknown room %q", room.Name, dir, p.target), nil)
		}
		if err := room.AddExit(dir, p.target, p.cond); err != nil {
			return newLoadError(ErrMissingField, "exits", fmt.Sprintf("room %q", room.Name), err)
		}
	}
	return nil
}

func duplicateExit(room *world.Room, dir string) error {
	return newLoadError(ErrDuplicateName, "exits",
		fmt.Sprintf("room %q has more than one %q exit", room.Name, dir), nil)
}

func (l *Loader) placeItems(w *world.World, room *world.Room, names []string) error {
	for _, name := range names {
		name = strings.TrimSpace(name)
		item, ok := w.Item(name)
		if !ok {
			return newLoadError(ErrUnresolvedItem, "room items",
				fmt.Sprintf("room %q lists undeclared item %q", room.Name, name), nil)
		}
		if err := room.AddItem(item); err != nil {
			return newLoadError(ErrUnresolvedItem, "room items", fmt.Sprintf("room %q", room.Name), err)
		}
	}
	return nil
}
