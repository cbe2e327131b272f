package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/jwebster45206/text-adventure/pkg/state"
)

// MockStorage is an in-memory Storage for tests.
type MockStorage struct {
	mu        sync.RWMutex
	saved     *state.SaveState
	saveError error
	loadError error
	saves     int
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

// SetSaveError configures the mock to fail on save
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// SetLoadError configures the mock to fail on load
func (m *MockStorage) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadError = err
}

// Saves returns how many times SaveGame succeeded
func (m *MockStorage) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func (m *MockStorage) Ping(ctx context.Context) error {
	return nil
}

func (m *MockStorage) Close() error {
	return nil
}

// SaveGame stores a copy so later mutations of ss are not observed
func (m *MockStorage) SaveGame(ctx context.Context, ss *state.SaveState) error {
	if ss == nil {
		return errors.New("save state cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.saved = ss.Clone()
	m.saves++
	return nil
}

func (m *MockStorage) LoadGame(ctx context.Context) (*state.SaveState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.loadError != nil {
		return nil, m.loadError
	}
	return m.saved.Clone(), nil
}

func (m *MockStorage) DeleteGame(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = nil
	return nil
}
