package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/text-adventure/pkg/state"
	"github.com/jwebster45206/text-adventure/pkg/textfilter"
)

const (
	Title           = "TEXT ADVENTURE"
	PlaceHolderText = "What do you do?"
)

type entryKind int

const (
	entryNarration entryKind = iota
	entryPlayer
	entryFailure
)

type entry struct {
	kind entryKind
	text string
}

// GameUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	ctx          context.Context
	game         *state.Game
	worldFile    string
	transcript   []entry
	chatViewport viewport.Model
	metaViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	status       string

	// Quit confirmation state
	showQuitModal bool
}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	roomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewGameUI(ctx context.Context, g *state.Game, worldFile string) GameUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render("> ")
	ta.CharLimit = 200
	ta.SetWidth(50)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return GameUI{
		ctx:          ctx,
		game:         g,
		worldFile:    worldFile,
		transcript:   []entry{{kind: entryNarration, text: g.Look()}},
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
	}
}

// layout returns the chat and metadata panel widths for the window.
func (m GameUI) layout() (chatWidth, metaWidth int) {
	chatWidth = int(float64(m.width)*0.75) - 4
	metaWidth = m.width - chatWidth - 6
	return chatWidth, metaWidth
}

func (m GameUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("GAME STATE") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(m.game.ID.String()[:8] + "...\n\n")

	content.WriteString("World:\n")
	content.WriteString(m.worldFile + "\n\n")

	content.WriteString("Location:\n")
	if room, ok := m.game.CurrentRoom(); ok {
		content.WriteString(roomStyle.Render(textfilter.Title(room.Name)) + "\n")
		if dirs := room.Directions(); len(dirs) > 0 {
			content.WriteString("Exits: " + strings.Join(dirs, ", ") + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString("Inventory:\n")
	if names := m.game.Player.InventoryNames(); len(names) > 0 {
		for _, name := range names {
			content.WriteString(fmt.Sprintf("• %s\n", name))
		}
	} else {
		content.WriteString("Empty\n")
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• Enter: Send\n")
	content.WriteString("• help: Verbs\n")
	content.WriteString("• Ctrl+Y: Copy transcript\n")
	content.WriteString("• Ctrl+C: Quit\n")

	return content.String()
}

// writeChatContent renders the transcript for the current viewport width.
func (m *GameUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // Account for left(3) + right(3) padding
	if chatWidth < 10 {
		chatWidth = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render(Title) + "\n\n")
	content.WriteString("Type commands below to explore. Try 'help' if you get stuck.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", chatWidth)) + "\n\n")

	for _, e := range m.transcript {
		switch e.kind {
		case entryPlayer:
			content.WriteString(userStyle.Render("> ") + wordwrap.String(e.text, chatWidth-2) + "\n\n")
		case entryFailure:
			content.WriteString(errorStyle.Render(wordwrap.String(e.text, chatWidth)) + "\n\n")
		default:
			content.WriteString(formatNarration(e.text, chatWidth) + "\n\n")
		}
	}

	if m.status != "" {
		content.WriteString(statusStyle.Render(m.status) + "\n")
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

// formatNarration wraps engine output and highlights item and exit listings.
func formatNarration(text string, width int) string {
	lines := strings.Split(wordwrap.String(text, width), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "You see:") || strings.HasPrefix(line, "Exits:") {
			lines[i] = narratorStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// transcriptText is the plain transcript, as copied to the clipboard.
func (m GameUI) transcriptText() string {
	var b strings.Builder
	for _, e := range m.transcript {
		if e.kind == entryPlayer {
			b.WriteString("> ")
		}
		b.WriteString(e.text)
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func (m GameUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		return m, vpCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth, metaWidth := m.layout()
		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyCtrlY:
			if err := clipboard.WriteAll(m.transcriptText()); err != nil {
				m.status = "Could not copy transcript: " + err.Error()
			} else {
				m.status = "Transcript copied to clipboard."
			}
			m.writeChatContent()
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

// submit runs the typed command through the engine.
func (m GameUI) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	m.textarea.Reset()
	if input == "" {
		return m, nil
	}
	m.status = ""

	res := m.game.Execute(m.ctx, input)
	m.transcript = append(m.transcript, entry{kind: entryPlayer, text: input})
	if res.Message != "" {
		kind := entryNarration
		if !res.OK {
			kind = entryFailure
		}
		m.transcript = append(m.transcript, entry{kind: kind, text: res.Message})
	}

	m.writeChatContent()
	m.metaViewport.SetContent(m.writeMetadata())

	if res.Quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m GameUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Unsaved progress will be lost. Type 'save' first to keep it.")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth, metaWidth := m.layout()

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 0))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}
