package storage

import (
	"context"

	"github.com/jwebster45206/text-adventure/pkg/state"
)

// Storage defines the save-game backends. Every Storage is a state.SaveStore.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// SaveGame overwrites the saved game.
	SaveGame(ctx context.Context, ss *state.SaveState) error
	// LoadGame returns nil, nil when no game has been saved.
	LoadGame(ctx context.Context) (*state.SaveState, error)
	// DeleteGame removes the saved game. Deleting a missing save is not an error.
	DeleteGame(ctx context.Context) error
}

var _ state.SaveStore = (Storage)(nil)
