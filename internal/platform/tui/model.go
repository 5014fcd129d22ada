package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkamenev/torsnake/internal/audio"
	"github.com/mkamenev/torsnake/internal/core"
	"github.com/mkamenev/torsnake/internal/game"
	"github.com/mkamenev/torsnake/internal/scores"
)

// mode is the UI screen the model is showing.
type mode int

const (
	modeGame      mode = iota
	modeNameEntry      // Game over: asking for a leaderboard name
	modeBoard          // Showing the top-5 leaderboard
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *scores.Store // May be nil: play without persistence
	sound  audio.Player
	keys   *KeyMapper
	swipe  SwipeTracker

	// gen is the current tick-schedule generation; see TickMsg.
	gen int

	mode       mode
	nameInput  textinput.Model
	board      []scores.Entry
	boardKeys  BoardKeyMap
	boardHelp  help.Model
	finalScore int
	won        bool

	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the given game.
func NewModel(g *game.Game, store *scores.Store, sound audio.Player, width, height int) Model {
	if sound == nil {
		sound = audio.NullPlayer{}
	}

	ti := textinput.New()
	ti.Placeholder = scores.DefaultName
	ti.CharLimit = scores.MaxNameLen
	ti.Width = scores.MaxNameLen + 2

	return Model{
		game:      g,
		screen:    core.NewScreen(width, height),
		store:     store,
		sound:     sound,
		keys:      NewKeyMapper(),
		nameInput: ti,
		boardKeys: DefaultBoardKeyMap(),
		boardHelp: help.New(),
		width:     width,
		height:    height,
	}
}

// Init starts the session. The game itself stays in NotStarted until the
// player presses Enter, so no tick is scheduled yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey dispatches keyboard input by UI mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeNameEntry:
		return m.handleNameEntryKey(msg)
	case modeBoard:
		return m.handleBoardKey(msg)
	default:
		return m.handleGameKey(msg)
	}
}

// handleGameKey processes input while the grid is on screen.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := m.keys.Map(msg)

	if d, ok := intent.Direction(); ok {
		m.game.RequestDirection(d)
		return m, nil
	}

	switch intent {
	case IntentQuit:
		m.quitting = true
		return m, tea.Quit

	case IntentStart:
		if m.game.Start() {
			m.sound.Play(audio.CueStart)
			m.gen++
			return m, tickCmd(m.game.Speed(), m.gen)
		}

	case IntentPause:
		if m.game.TogglePause() {
			// Either direction invalidates the old schedule.
			m.gen++
			if m.game.Phase() == game.PhaseRunning {
				return m, tickCmd(m.game.Speed(), m.gen)
			}
		}

	case IntentEnd:
		if m.game.End() {
			m.sound.Play(audio.CueGameOver)
			m.gen++
			return m.enterNameEntry()
		}
	}

	return m, nil
}

// handleMouse turns swipes into direction requests.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeGame {
		return m, nil
	}
	if d, ok := m.swipe.Update(msg, time.Now()); ok {
		m.game.RequestDirection(d)
	}
	return m, nil
}

// handleTick runs one simulation step, unless the message is stale.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil // Cancelled schedule
	}
	if m.game.Phase() != game.PhaseRunning {
		return m, nil
	}

	res := m.game.Tick()
	for _, ev := range res.Events {
		switch ev {
		case game.EventAte:
			m.sound.Play(audio.CueEat)
		case game.EventLevelUp:
			m.sound.Play(audio.CueLevelUp)
		case game.EventGameOver, game.EventWon:
			m.sound.Play(audio.CueGameOver)
		}
	}

	if m.game.Phase().Terminal() {
		m.gen++
		return m.enterNameEntry()
	}

	// Reschedule at the current speed; level-ups take effect here.
	return m, tickCmd(m.game.Speed(), m.gen)
}

// enterNameEntry switches to the name prompt for the finished game.
func (m Model) enterNameEntry() (tea.Model, tea.Cmd) {
	m.finalScore = m.game.Score()
	m.won = m.game.Phase() == game.PhaseWon
	m.mode = modeNameEntry
	m.nameInput.SetValue("")
	m.nameInput.Focus()
	return m, textinput.Blink
}

// handleNameEntryKey processes the name prompt.
func (m Model) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		if m.store != nil {
			m.board = m.store.Submit(m.nameInput.Value(), m.finalScore)
		}
		m.mode = modeBoard
		return m, nil

	case "esc":
		// Skip saving, still show the board.
		if m.store != nil {
			m.board = m.store.Load()
		}
		m.mode = modeBoard
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleBoardKey processes the leaderboard screen.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.boardKeys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.boardKeys.Restart):
		m.gen++
		m.game.Reset()
		m.mode = modeGame
		return m, nil
	}
	return m, nil
}

// View renders the current UI mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeNameEntry:
		return m.viewNameEntry()
	case modeBoard:
		return m.viewBoard()
	default:
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	}
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// viewNameEntry renders the game-over name prompt.
func (m Model) viewNameEntry() string {
	title := "GAME OVER"
	if m.won {
		title = "BOARD CLEARED!"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		"",
		fmt.Sprintf("Score: %d", m.finalScore),
		"",
		"Enter your name:",
		m.nameInput.View(),
		"",
		hintStyle.Render("enter save · esc skip"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		panelStyle.Render(body))
}

// viewBoard renders the top-5 leaderboard.
func (m Model) viewBoard() string {
	board := renderBoard(m.board, m.width)

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("HIGH SCORES"),
		"",
		board,
		"",
		m.boardHelp.View(m.boardKeys),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, store *scores.Store, sound audio.Player, width, height int) error {
	model := NewModel(g, store, sound, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Swipe controls
	)

	_, err := p.Run()
	return err
}
