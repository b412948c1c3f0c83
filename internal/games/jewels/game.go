// Package jewels is the match-3 arcade game: a cursor-driven front end to
// the match3 engine with paced cascades, pause and round handling.
package jewels

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-jewels/internal/config"
	"github.com/vovakirdan/tui-jewels/internal/core"
	"github.com/vovakirdan/tui-jewels/internal/match3"
	"github.com/vovakirdan/tui-jewels/internal/registry"
)

// Variant identifies a registered board variant.
type Variant struct {
	ID     string
	Title  string
	Preset config.BoardPreset // empty: use the configured board as is
}

// Registered variants.
var (
	Classic = Variant{ID: "jewels", Title: "Jewels"}
	Small   = Variant{ID: "jewels_small", Title: "Jewels (Small 6x6)", Preset: config.PresetSmall}
	Large   = Variant{ID: "jewels_large", Title: "Jewels (Large 10x10)", Preset: config.PresetLarge}
)

// Variants lists the registered variants in menu order.
func Variants() []Variant {
	return []Variant{Classic, Small, Large}
}

// VariantForPreset maps a board preset to its registered variant.
func VariantForPreset(p config.BoardPreset) Variant {
	switch p {
	case config.PresetSmall:
		return Small
	case config.PresetLarge:
		return Large
	default:
		return Classic
	}
}

var (
	cfgMu      sync.RWMutex
	currentCfg = config.DefaultJewelsConfig()
)

// SetConfig sets the configuration used by games created afterwards.
// Invalid configurations are ignored.
func SetConfig(cfg config.JewelsConfig) {
	if cfg.Validate() != nil {
		return
	}
	cfgMu.Lock()
	currentCfg = cfg
	cfgMu.Unlock()
}

// Config returns the configuration new games start with.
func Config() config.JewelsConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return currentCfg
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			return NewVariant(v)
		})
	}
}

// Game implements registry.Game.
type Game struct {
	variant Variant
	cfg     config.JewelsConfig
	rng     *rand.Rand
	engine  *match3.Engine
	view    *boardView
	tick    uint64

	screenW  int
	screenH  int
	tickRate int

	cursor      int
	wait        int // ticks left before the next engine step
	stepTicks   int
	revertTicks int

	lastGain  int   // points of the most recent remove step
	lastChain int   // chain of the most recent remove step
	burst     []int // cells emptied by the most recent remove step

	paused    bool
	roundOver bool
	tooSmall  bool

	events []core.Event
}

// New creates the classic variant.
func New() *Game {
	return NewVariant(Classic)
}

// NewVariant creates a game for the given variant. The configuration is
// read when the game is Reset.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset deals a new board and clears all round state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = Config()
	if g.variant.Preset != "" {
		config.ApplyJewelsPreset(&g.cfg, g.variant.Preset)
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.stepTicks = core.MsToTicks(g.cfg.Timing.StepDelayMS, g.tickRate)
	g.revertTicks = core.MsToTicks(g.cfg.Timing.RevertDelayMS, g.tickRate)

	g.view = newBoardView()
	opts := match3.Options{
		Size:        g.cfg.Board.Size,
		Colors:      g.cfg.Board.Colors,
		StableStart: g.cfg.Board.StableStart,
	}
	engine, err := match3.New(opts, g.rng, g.view)
	if err != nil {
		engine, err = match3.New(match3.DefaultOptions(), g.rng, g.view)
		if err != nil {
			panic(fmt.Sprintf("jewels: default board: %v", err))
		}
	}
	g.engine = engine

	g.startRound()
	g.checkScreenSize()
}

// startRound clears per-round presentation state.
func (g *Game) startRound() {
	n := g.engine.Size()
	g.cursor = (n/2)*n + n/2 - 1
	g.wait = 0
	g.lastGain = 0
	g.lastChain = 0
	g.burst = nil
	g.paused = false
	g.roundOver = false
}

// Resize updates the screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize flags screens that cannot fit the board and HUD.
func (g *Game) checkScreenSize() {
	minW, minH := minScreen(g.engine.Size())
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.roundOver {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if in.Has(core.ActionRestart) && !g.roundOver {
		g.restart()
		return g.result()
	}
	if g.roundOver {
		// The platform resets the game on Restart once the round is over.
		return g.result()
	}

	g.moveCursor(in)

	picked := false
	if in.Clicked {
		if i, ok := g.tileAt(in.Click.X, in.Click.Y); ok {
			g.cursor = i
			picked = g.pick(i)
		}
	}
	if !picked && in.Has(core.ActionSelect) {
		picked = g.pick(g.cursor)
	}

	if !picked {
		g.pace()
	}
	return g.result()
}

// restart ends a round that has points, so the platform can save the
// score; a pointless round is simply redealt. Outstanding steps are run
// first so the round ends on a settled board with every point counted.
func (g *Game) restart() {
	for _, step := range g.engine.Settle() {
		g.record(step)
	}
	g.burst = nil
	if g.engine.Score() > 0 {
		g.roundOver = true
		g.events = append(g.events, core.Event{Kind: core.EventRoundOver})
		return
	}
	g.engine.Restart()
	g.startRound()
	g.events = append(g.events, core.Event{Kind: core.EventRestart})
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := g.engine.Size()
	row, col := g.cursor/n, g.cursor%n
	switch {
	case in.Has(core.ActionUp):
		row = core.Wrap(row-1, n)
	case in.Has(core.ActionDown):
		row = core.Wrap(row+1, n)
	case in.Has(core.ActionLeft):
		col = core.Wrap(col-1, n)
	case in.Has(core.ActionRight):
		col = core.Wrap(col+1, n)
	}
	g.cursor = row*n + col
}

// pick forwards a tile to the engine. It reports whether a swap happened,
// which starts the pacing clock.
func (g *Game) pick(i int) bool {
	res := g.engine.Pick(i)
	switch res.Outcome {
	case match3.OutcomeMatched:
		g.events = append(g.events, core.Event{Kind: core.EventSwap, Cells: [2]int{res.First, res.Second}})
		g.wait = g.stepTicks
		return true
	case match3.OutcomeNoMatch:
		g.events = append(g.events, core.Event{Kind: core.EventNoMatch, Cells: [2]int{res.First, res.Second}})
		g.wait = g.revertTicks
		return true
	}
	return false
}

// pace runs at most one engine step per tick, spaced by the configured
// delays.
func (g *Game) pace() {
	if !g.engine.Busy() {
		return
	}
	if g.wait > 0 {
		g.wait--
		if g.wait > 0 {
			return
		}
	}

	step, ok := g.engine.Advance()
	if !ok {
		return
	}
	g.record(step)
	g.wait = g.stepTicks
}

// record turns an engine step into an event and updates the HUD state.
func (g *Game) record(step match3.Step) {
	ev := core.Event{Chain: step.Chain}
	switch step.Kind {
	case match3.StepRevert:
		ev.Kind = core.EventRevert
		ev.Cells = step.Swapped
	case match3.StepRemove:
		ev.Kind = core.EventRemove
		ev.Gained = step.Gained
		g.lastGain = step.Gained
		g.lastChain = step.Chain
		g.burst = step.Removed
	case match3.StepRefill:
		ev.Kind = core.EventRefill
		g.burst = nil
	}
	g.events = append(g.events, ev)
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.roundOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Stats implements registry.StatsReporter.
func (g *Game) Stats() core.RoundStats {
	return core.RoundStats{
		Moves:     g.engine.Moves(),
		BestChain: g.engine.BestChain(),
	}
}

// Controls returns the key help line.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Pick | Mouse: Click | P: Pause | R: End round | Q: Quit"
}

var _ registry.StatsReporter = (*Game)(nil)
