package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/text-adventure/pkg/world"
)

// ErrNoSaveStore is returned by Save and Load when the game has no store.
var ErrNoSaveStore = errors.New("no save store configured")

// SaveStore persists a single SaveState. LoadGame returns nil, nil when
// nothing has been saved yet.
type SaveStore interface {
	SaveGame(ctx context.Context, ss *SaveState) error
	LoadGame(ctx context.Context) (*SaveState, error)
}

// Game is the context every command runs against: the world, the player in
// it, and where saves go. It is single-owner and not safe for concurrent use.
type Game struct {
	ID     uuid.UUID // Unique per session, attached to log records
	World  *world.World
	Player *world.Player
	store  SaveStore
	logger *slog.Logger
}

// NewGame places a new player in the world's start room. store may be nil,
// in which case save and load report that saving is unavailable.
func NewGame(w *world.World, store SaveStore, logger *slog.Logger) (*Game, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: world cannot be nil", world.ErrInvalidArgument)
	}
	player, err := world.NewPlayer(w.StartRoom())
	if err != nil {
		return nil, fmt.Errorf("failed to place player: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.New()
	return &Game{
		ID:     id,
		World:  w,
		Player: player,
		store:  store,
		logger: logger.With("session_id", id.String()),
	}, nil
}

// CurrentRoom returns the room the player is standing in.
func (g *Game) CurrentRoom() (*world.Room, bool) {
	return g.World.Room(g.Player.CurrentRoomName())
}

// Save captures the current state and writes it to the store.
func (g *Game) Save(ctx context.Context) error {
	if g.store == nil {
		return ErrNoSaveStore
	}
	ss := Capture(g.World, g.Player)
	if err := g.store.SaveGame(ctx, ss); err != nil {
		g.logger.Error("Failed to save game", "error", err)
		return err
	}
	g.logger.Info("Game saved",
		"location", ss.PlayerLocation,
		"inventory", len(ss.PlayerInventory))
	return nil
}

// Load reads the saved state and applies it. found is false when nothing has
// been saved; in that case, and on error, the game is left untouched.
func (g *Game) Load(ctx context.Context) (found bool, warnings []string, err error) {
	if g.store == nil {
		return false, nil, ErrNoSaveStore
	}
	ss, err := g.store.LoadGame(ctx)
	if err != nil {
		g.logger.Error("Failed to load game", "error", err)
		return false, nil, err
	}
	if ss == nil {
		return false, nil, nil
	}

	warnings = Apply(ss, g.World, g.Player)
	for _, w := range warnings {
		g.logger.Warn(w)
	}
	g.logger.Info("Game loaded", "location", g.Player.CurrentRoomName(), "warnings", len(warnings))
	return true, warnings, nil
}
