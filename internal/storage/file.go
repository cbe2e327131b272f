package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/text-adventure/pkg/state"
	"github.com/jwebster45206/text-adventure/pkg/storage"
	"github.com/jwebster45206/text-adventure/pkg/world"
)

// FileStore keeps the saved game as a JSON file at a fixed path.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// Ensure FileStore implements Storage interface
var _ storage.Storage = (*FileStore)(nil)

// NewFileStore creates a file store. The path must not be blank.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: save path cannot be empty", world.ErrInvalidArgument)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		path:   path,
		logger: logger,
	}, nil
}

// Path returns the save file location.
func (f *FileStore) Path() string {
	return f.path
}

// Ping checks that the save directory exists.
func (f *FileStore) Ping(ctx context.Context) error {
	dir := filepath.Dir(f.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("save directory %s is not a directory", dir)
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}

// SaveGame writes to a temporary file first so a failed write never
// clobbers the previous save.
func (f *FileStore) SaveGame(ctx context.Context, ss *state.SaveState) error {
	data, err := json.MarshalIndent(ss, "", "  ")
	if err != nil {
		f.logger.Error("Failed to marshal save state", "error", err)
		return fmt.Errorf("failed to marshal save state: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name()) // no-op after a successful rename
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		f.logger.Error("Failed to save game", "path", f.path, "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	f.logger.Debug("Save file written", "path", f.path, "bytes", len(data))
	return nil
}

func (f *FileStore) LoadGame(ctx context.Context) (*state.SaveState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.logger.Debug("No save file", "path", f.path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	var ss *state.SaveState
	if err := json.Unmarshal(data, &ss); err != nil {
		f.logger.Error("Failed to unmarshal save file", "path", f.path, "error", err)
		return nil, fmt.Errorf("failed to unmarshal save file: %w", err)
	}
	if ss == nil {
		// A JSON null holds no game.
		f.logger.Warn("Save file is empty", "path", f.path)
		return nil, nil
	}
	return ss, nil
}

func (f *FileStore) DeleteGame(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}
