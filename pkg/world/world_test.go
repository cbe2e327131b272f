package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name, desc string) *Item {
	t.Helper()
	it, err := NewItem(name, desc)
	require.NoError(t, err)
	return it
}

func mustRoom(t *testing.T, name, desc string) *Room {
	t.Helper()
	r, err := NewRoom(name, desc)
	require.NoError(t, err)
	return r
}

func TestNewItem_RejectsBlankName(t *testing.T) {
	_, err := NewItem("   ", "nothing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	it, err := NewItem("  lamp ", "A brass lamp.")
	require.NoError(t, err)
	assert.Equal(t, "lamp", it.Name)
}

func TestRoom_Items(t *testing.T) {
	room := mustRoom(t, "Hall", "A long hall.")
	key := mustItem(t, "Rusty Key", "Old and orange.")
	rock := mustItem(t, "rock", "Just a rock.")

	require.NoError(t, room.AddItem(key))
	require.NoError(t, room.AddItem(rock))
	assert.Equal(t, []string{"Rusty Key", "rock"}, room.ItemNames())

	found, ok := room.FindItemByName("rusty key")
	require.True(t, ok)
	assert.Same(t, key, found)

	_, ok = room.FindItemByName("sword")
	assert.False(t, ok)

	removed, ok := room.RemoveItemByName("ROCK")
	require.True(t, ok)
	assert.Same(t, rock, removed)
	assert.Equal(t, []string{"Rusty Key"}, room.ItemNames())

	// removing something absent is a no-op
	assert.False(t, room.RemoveItem(rock))
	_, ok = room.RemoveItemByName("rock")
	assert.False(t, ok)

	err := room.AddItem(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRoom_ItemsReturnsCopy(t *testing.T) {
	room := mustRoom(t, "Hall", "")
	require.NoError(t, room.AddItem(mustItem(t, "rock", "")))

	items := room.Items()
	items[0] = nil
	assert.Equal(t, []string{"rock"}, room.ItemNames())
}

func TestRoom_AddExit(t *testing.T) {
	room := mustRoom(t, "Hall", "")

	require.NoError(t, room.AddExit("  North ", "Vault", nil))
	require.NoError(t, room.AddExit("east", "Kitchen", nil))

	exit, ok := room.Exit("NORTH")
	require.True(t, ok)
	assert.Equal(t, "Vault", exit.TargetRoom)
	assert.Nil(t, exit.Condition)

	// overwriting keeps a single exit per direction
	cond := &Condition{Requirement: RequireOne("key"), FailMessage: "Locked."}
	require.NoError(t, room.AddExit("north", "Cellar", cond))
	exit, ok = room.Exit("north")
	require.True(t, ok)
	assert.Equal(t, "Cellar", exit.TargetRoom)
	assert.Same(t, cond, exit.Condition)

	assert.Equal(t, []string{"east", "north"}, room.Directions())

	err := room.AddExit("  ", "Vault", nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestPlayer(t *testing.T) {
	_, err := NewPlayer("")
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	p, err := NewPlayer("Hall")
	require.NoError(t, err)
	assert.Equal(t, "Hall", p.CurrentRoomName())

	err = p.SetCurrentRoomName("   ")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "Hall", p.CurrentRoomName(), "failed move must not change location")

	torch := mustItem(t, "Torch", "")
	key := mustItem(t, "key", "")
	require.NoError(t, p.TakeItem(torch))
	require.NoError(t, p.TakeItem(key))
	assert.Equal(t, []string{"Torch", "key"}, p.InventoryNames())
	assert.True(t, p.HasItem("torch"))

	removed, ok := p.RemoveItem("TORCH")
	require.True(t, ok)
	assert.Same(t, torch, removed)
	assert.Equal(t, []string{"key"}, p.InventoryNames())

	_, ok = p.RemoveItem("torch")
	assert.False(t, ok)

	assert.True(t, errors.Is(p.TakeItem(nil), ErrInvalidArgument))

	p.ClearInventory()
	assert.Empty(t, p.InventoryNames())
}

func TestRequirement(t *testing.T) {
	assert.True(t, Requirement{}.IsZero())
	assert.True(t, RequireOne("").IsZero())
	assert.True(t, RequireAll().IsZero())

	one := RequireOne("key")
	assert.Equal(t, RequiresOne, one.Kind())
	assert.Equal(t, []string{"key"}, one.Items())

	names := []string{"key", "lamp"}
	all := RequireAll(names...)
	names[0] = "mutated"
	assert.Equal(t, RequiresAll, all.Kind())
	assert.Equal(t, []string{"key", "lamp"}, all.Items())

	cond := &Condition{Requirement: all, FailMessage: "Nope."}
	cond.ClearRequirement()
	assert.True(t, cond.Requirement.IsZero())
	assert.Equal(t, "Nope.", cond.FailMessage)
}

func TestWorld_Registration(t *testing.T) {
	w := New()
	require.NoError(t, w.AddItem(mustItem(t, "key", "")))
	require.NoError(t, w.AddItem(mustItem(t, "lamp", "")))

	err := w.AddItem(mustItem(t, "key", "again"))
	assert.True(t, errors.Is(err, ErrDuplicateName))

	require.NoError(t, w.AddRoom(mustRoom(t, "Hall", "")))
	require.NoError(t, w.AddRoom(mustRoom(t, "Vault", "")))
	err = w.AddRoom(mustRoom(t, "Hall", ""))
	assert.True(t, errors.Is(err, ErrDuplicateName))

	_, ok := w.Item("Key")
	assert.False(t, ok, "canonical item lookup is case-sensitive")

	var names []string
	for _, r := range w.Rooms() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Hall", "Vault"}, names)
	assert.Len(t, w.Items(), 2)

	assert.Error(t, w.SetStartRoom("Attic"))
	require.NoError(t, w.SetStartRoom("Vault"))
	assert.Equal(t, "Vault", w.StartRoom())
}
