package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jewels/internal/core"
	"github.com/vovakirdan/tui-jewels/internal/registry"
	"github.com/vovakirdan/tui-jewels/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game. It is used on its
// own by the play command and inside SessionModel for menus and SSH.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	player     string
	gen        uint64
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	embedded   bool // back returns to a menu instead of quitting
	quitting   bool
	backToMenu bool
	scoreSaved bool // the current round is in the store
}

// Option customizes a GameModel.
type Option func(*GameModel)

// WithLogger sets the logger for round and event logging.
func WithLogger(l *log.Logger) Option {
	return func(m *GameModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer sets the player name stored with each round.
func WithPlayer(name string) Option {
	return func(m *GameModel) {
		m.player = name
	}
}

// withMenu makes Back leave the game instead of quitting the program.
func withMenu() Option {
	return func(m *GameModel) {
		m.embedded = true
	}
}

// NewGameModel creates a model for the given game. A zero seed is replaced
// with the current time.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     log.New(io.Discard),
		gen:        nextGen(),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the round and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("round started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

// handleKey records the key for the next tick and handles the keys the
// platform owns: quit, back and screenshots.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRound()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.saveRound()
		m.backToMenu = true
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleResize keeps the round and only reports the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Each redeal follows from the last seed so a seeded session replays.
		m.config.Seed++
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Debug("round started", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Debug("event",
			"game", m.game.ID(),
			"kind", ev.Kind,
			"gained", ev.Gained,
			"chain", ev.Chain,
			"score", result.State.Score,
		)
	}

	if m.gameState.GameOver {
		m.saveRound()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveRound stores the current round once, if it scored.
func (m *GameModel) saveRound() {
	if m.scoreSaved {
		return
	}
	state := m.game.State()
	if state.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	round := storage.RoundResult{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  state.Score,
	}
	if sr, ok := m.game.(registry.StatsReporter); ok {
		stats := sr.Stats()
		round.Moves = stats.Moves
		round.BestChain = stats.BestChain
	}

	if _, err := m.store.SaveRound(round); err != nil {
		m.logger.Error("could not save round", "game", round.GameID, "error", err)
		return
	}
	m.logger.Info("round saved",
		"game", round.GameID,
		"player", round.Player,
		"score", round.Score,
		"moves", round.Moves,
		"best_chain", round.BestChain,
	)
}

// saveScreenshot writes the current screen as plain text under
// ~/.jewels/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".jewels", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to leave the game.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// ScoreSaved reports whether the current round has been stored.
func (m GameModel) ScoreSaved() bool {
	return m.scoreSaved
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewGameModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
