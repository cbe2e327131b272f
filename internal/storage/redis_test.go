package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/text-adventure/pkg/state"
	"github.com/jwebster45206/text-adventure/pkg/world"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	store, err := NewRedisStore("redis://"+mr.Addr(), "savegame", testLogger())
	if err != nil {
		mr.Close()
		t.Fatalf("Failed to create redis store: %v", err)
	}

	return store, mr
}

func sampleSave() *state.SaveState {
	return &state.SaveState{
		PlayerLocation:  "Cellar",
		PlayerInventory: []string{"lamp", "rusty key"},
		RoomItemStates: map[string][]string{
			"Hall":   {},
			"Cellar": {"crate"},
		},
	}
}

func TestRedisStore_SaveAndLoad(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Ping(ctx))

	require.NoError(t, store.SaveGame(ctx, sampleSave()))
	assert.True(t, mr.Exists("savegame"))
	assert.Equal(t, time.Duration(0), mr.TTL("savegame"), "saves should not expire")

	loaded, err := store.LoadGame(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sampleSave(), loaded)
}

func TestRedisStore_SaveOverwrites(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveGame(ctx, sampleSave()))

	second := sampleSave()
	second.PlayerLocation = "Hall"
	require.NoError(t, store.SaveGame(ctx, second))

	loaded, err := store.LoadGame(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hall", loaded.PlayerLocation)
}

func TestRedisStore_LoadMissing(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	loaded, err := store.LoadGame(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_LoadCorrupt(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	require.NoError(t, mr.Set("savegame", "{not json"))

	_, err := store.LoadGame(context.Background())
	assert.Error(t, err)
}

func TestRedisStore_LoadNull(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	require.NoError(t, mr.Set("savegame", "null"))

	ss, err := store.LoadGame(context.Background())
	require.NoError(t, err)
	assert.Nil(t, ss)
}

func TestRedisStore_NilLogger(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := NewRedisStore("redis://"+mr.Addr(), "savegame", nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, mr.Set("savegame", "{not json"))
	assert.NotPanics(t, func() {
		_, err = store.LoadGame(context.Background())
	})
	assert.Error(t, err)
}

func TestRedisStore_Delete(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.SaveGame(ctx, sampleSave()))
	require.NoError(t, store.DeleteGame(ctx))
	assert.False(t, mr.Exists("savegame"))

	// Deleting again is fine
	assert.NoError(t, store.DeleteGame(ctx))
}

func TestRedisStore_WaitForConnection(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	err := store.WaitForConnection(context.Background(), 3, 10*time.Millisecond)
	assert.NoError(t, err)
}

func TestRedisStore_WaitForConnectionGivesUp(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer store.Close()
	mr.Close()

	err := store.WaitForConnection(context.Background(), 2, 10*time.Millisecond)
	assert.Error(t, err)
}

func TestNewRedisStore_Errors(t *testing.T) {
	_, err := NewRedisStore("redis://localhost:6379/0", "  ", testLogger())
	assert.ErrorIs(t, err, world.ErrInvalidArgument)

	_, err = NewRedisStore("not a url", "savegame", testLogger())
	assert.Error(t, err)
}

func TestRedisStore_WithGame(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	w, hall := newLampWorld(t)
	g, err := state.NewGame(w, store, testLogger())
	require.NoError(t, err)

	ctx := context.Background()
	res := g.Execute(ctx, "take lamp")
	require.True(t, res.OK)
	res = g.Execute(ctx, "save")
	require.Equal(t, "Game saved.", res.Message)

	res = g.Execute(ctx, "drop lamp")
	require.True(t, res.OK)
	res = g.Execute(ctx, "load")
	require.True(t, res.OK)
	assert.True(t, g.Player.HasItem("lamp"))
	assert.Empty(t, hall.Items())
}

func TestRedisStore_NullSaveLeavesGameUntouched(t *testing.T) {
	store, mr := setupTestRedis(t)
	defer mr.Close()
	defer store.Close()

	w, hall := newLampWorld(t)
	g, err := state.NewGame(w, store, testLogger())
	require.NoError(t, err)

	ctx := context.Background()
	require.True(t, g.Execute(ctx, "take lamp").OK)
	require.NoError(t, mr.Set("savegame", "null"))

	res := g.Execute(ctx, "load")
	assert.False(t, res.OK)
	assert.Equal(t, "No saved game found.", res.Message)
	assert.True(t, g.Player.HasItem("lamp"))
	assert.Empty(t, hall.Items())
}

// newLampWorld builds a one-room world with a lamp on the floor.
func newLampWorld(t *testing.T) (*world.World, *world.Room) {
	t.Helper()
	w := world.New()
	hall, err := world.NewRoom("Hall", "A draughty hall.")
	require.NoError(t, err)
	require.NoError(t, w.AddRoom(hall))
	require.NoError(t, w.SetStartRoom("Hall"))
	lamp, err := world.NewItem("lamp", "A brass lamp.")
	require.NoError(t, err)
	require.NoError(t, w.AddItem(lamp))
	require.NoError(t, hall.AddItem(lamp))
	return w, hall
}
