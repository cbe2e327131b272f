package main

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedUI(t *testing.T) GameUI {
	t.Helper()
	m := NewGameUI(context.Background(), newTestGame(t, nil), "default.json")
	model, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(GameUI)
}

func send(t *testing.T, m GameUI, input string) (GameUI, tea.Cmd) {
	t.Helper()
	m.textarea.SetValue(input)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(GameUI), cmd
}

func TestGameUI_InitialTranscript(t *testing.T) {
	m := sizedUI(t)

	require.True(t, m.ready)
	require.Len(t, m.transcript, 1)
	assert.Contains(t, m.transcript[0].text, "Beach")
	assert.Contains(t, m.View(), Title)
}

func TestGameUI_Submit(t *testing.T) {
	m := sizedUI(t)

	m, cmd := send(t, m, "go east")
	assert.Nil(t, cmd)
	assert.Empty(t, m.textarea.Value())
	require.Len(t, m.transcript, 3)
	assert.Equal(t, entry{kind: entryPlayer, text: "go east"}, m.transcript[1])
	assert.Equal(t, entryNarration, m.transcript[2].kind)
	assert.Equal(t, "Boathouse", m.game.Player.CurrentRoomName())

	m, _ = send(t, m, "fly")
	require.Len(t, m.transcript, 5)
	assert.Equal(t, entryFailure, m.transcript[4].kind)
}

func TestGameUI_BlankInputIgnored(t *testing.T) {
	m := sizedUI(t)

	m, cmd := send(t, m, "   ")
	assert.Nil(t, cmd)
	assert.Len(t, m.transcript, 1)
}

func TestGameUI_QuitCommand(t *testing.T) {
	m := sizedUI(t)

	m, cmd := send(t, m, "quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Goodbye.", m.transcript[len(m.transcript)-1].text)
}

func TestGameUI_QuitModal(t *testing.T) {
	m := sizedUI(t)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = model.(GameUI)
	require.True(t, m.showQuitModal)
	assert.Contains(t, m.View(), "Quit Game?")

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = model.(GameUI)
	assert.False(t, m.showQuitModal)

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(GameUI)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestGameUI_TranscriptText(t *testing.T) {
	m := sizedUI(t)
	m, _ = send(t, m, "take driftwood")

	text := m.transcriptText()
	assert.Contains(t, text, "> take driftwood\n\nYou take the driftwood.\n")
	assert.NotContains(t, text, "\x1b[", "copied transcript must be unstyled")
}

func TestGameUI_Metadata(t *testing.T) {
	m := sizedUI(t)
	m, _ = send(t, m, "take driftwood")

	meta := m.writeMetadata()
	assert.Contains(t, meta, "• driftwood")
	assert.Contains(t, meta, "Exits: east, north")
}
