package jewels

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-jewels/internal/config"
	"github.com/vovakirdan/tui-jewels/internal/core"
	"github.com/vovakirdan/tui-jewels/internal/match3"
	"github.com/vovakirdan/tui-jewels/internal/registry"
)

// useConfig installs cfg for the duration of the test.
func useConfig(t *testing.T, cfg config.JewelsConfig) {
	t.Helper()
	prev := Config()
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(prev) })
}

func instantConfig() config.JewelsConfig {
	cfg := config.DefaultJewelsConfig()
	cfg.Timing.StepDelayMS = 0
	cfg.Timing.RevertDelayMS = 0
	return cfg
}

func newTestGame(t *testing.T, v Variant, seed int64) *Game {
	t.Helper()
	g := NewVariant(v)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed})
	return g
}

func actionFrame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func clickFrame(g *Game, i int) core.InputFrame {
	n := g.engine.Size()
	r := g.boardRect()
	f := core.NewInputFrame()
	f.SetClick(r.X+1+(i%n)*tileWidth+1, r.Y+1+i/n)
	return f
}

// settle steps until the engine is idle.
func settle(t *testing.T, g *Game) []core.Event {
	t.Helper()
	var events []core.Event
	for range 10000 {
		if !g.engine.Busy() {
			return events
		}
		events = append(events, g.Step(core.NewInputFrame()).Events...)
	}
	t.Fatal("engine never settled")
	return nil
}

// findSwap returns an adjacent pair of different colors whose swap does (or
// does not) create a run, scanning the board from the top-left.
func findSwap(t *testing.T, g *Game, wantMatch bool) (int, int, bool) {
	t.Helper()
	n := g.engine.Size()
	grid, err := match3.GridFrom(n, g.engine.Cells())
	if err != nil {
		t.Fatal(err)
	}
	for i := range n * n {
		for _, j := range []int{i + 1, i + n} {
			if !grid.Adjacent(i, j) || grid.At(i) == grid.At(j) {
				continue
			}
			trial := grid.Clone()
			trial.Swap(i, j)
			if hasRun(trial) == wantMatch {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func hasRun(g *match3.Grid) bool {
	return len(match3.FindMatches(g)) > 0
}

// gameWithSwap returns a game whose board offers a swap of the wanted kind.
func gameWithSwap(t *testing.T, wantMatch bool) (*Game, int, int) {
	t.Helper()
	g, _, a, b := seededGameWithSwap(t, wantMatch)
	return g, a, b
}

// seededGameWithSwap is gameWithSwap that also reports the seed, so a test
// can deal the same board twice.
func seededGameWithSwap(t *testing.T, wantMatch bool) (*Game, int64, int, int) {
	t.Helper()
	for seed := int64(1); seed < 100; seed++ {
		g := newTestGame(t, Classic, seed)
		if a, b, ok := findSwap(t, g, wantMatch); ok {
			return g, seed, a, b
		}
	}
	t.Fatal("no suitable board found")
	return nil, 0, 0, 0
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants() {
		if !registry.Exists(v.ID) {
			t.Fatalf("%s not registered", v.ID)
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%s): %v", v.ID, err)
		}
		if g.ID() != v.ID || g.Title() != v.Title {
			t.Errorf("%s: got %s/%q", v.ID, g.ID(), g.Title())
		}
		if _, ok := g.(registry.StatsReporter); !ok {
			t.Errorf("%s should report stats", v.ID)
		}
	}
}

func TestVariantBoardSizes(t *testing.T) {
	useConfig(t, config.DefaultJewelsConfig())

	tests := []struct {
		variant Variant
		size    int
		colors  int
	}{
		{Classic, 8, 5},
		{Small, 6, 4},
		{Large, 10, 6},
	}

	for _, tc := range tests {
		t.Run(tc.variant.ID, func(t *testing.T) {
			g := newTestGame(t, tc.variant, 7)
			snap := g.Snapshot()

			if snap.Size != tc.size {
				t.Errorf("size = %d, expected %d", snap.Size, tc.size)
			}
			if len(g.engine.Palette()) != tc.colors {
				t.Errorf("colors = %d, expected %d", len(g.engine.Palette()), tc.colors)
			}
			grid, err := match3.ParseGrid(tc.size, snap.Board)
			if err != nil {
				t.Fatalf("ParseGrid: %v", err)
			}
			if hasRun(grid) || grid.HasEmpty() {
				t.Errorf("initial board should be full and stable:\n%s", snap.Board)
			}
			if snap.State != StatePlaying || snap.Score != 0 || snap.Selected != -1 {
				t.Errorf("unexpected initial snapshot: %+v", snap)
			}
		})
	}
}

func TestConfiguredBoardUsedByClassic(t *testing.T) {
	cfg := config.DefaultJewelsConfig()
	cfg.Board.Size = 9
	cfg.Board.Colors = 7
	useConfig(t, cfg)

	if g := newTestGame(t, Classic, 1); g.engine.Size() != 9 || len(g.engine.Palette()) != 7 {
		t.Errorf("classic should follow the config, got %d/%d", g.engine.Size(), len(g.engine.Palette()))
	}
	if g := newTestGame(t, Small, 1); g.engine.Size() != 6 {
		t.Errorf("small preset should override the board size, got %d", g.engine.Size())
	}
}

func TestSetConfigIgnoresInvalid(t *testing.T) {
	useConfig(t, config.DefaultJewelsConfig())

	bad := config.DefaultJewelsConfig()
	bad.Board.Colors = 1
	SetConfig(bad)

	if Config().Board.Colors != 5 {
		t.Errorf("invalid config should be ignored, colors = %d", Config().Board.Colors)
	}
}

func TestDeterminism(t *testing.T) {
	useConfig(t, instantConfig())

	inputs := []core.InputFrame{
		actionFrame(core.ActionSelect),
		actionFrame(core.ActionRight),
		actionFrame(core.ActionSelect),
		{},
		actionFrame(core.ActionDown),
		actionFrame(core.ActionSelect),
		actionFrame(core.ActionUp),
		actionFrame(core.ActionSelect),
		{}, {}, {}, {},
	}

	run := func() []Snapshot {
		g := newTestGame(t, Classic, 12345)
		var snaps []Snapshot
		for range 5 {
			for _, in := range inputs {
				g.Step(in)
				snaps = append(snaps, g.Snapshot())
			}
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("snapshots diverged at %d:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestCursorMovementWraps(t *testing.T) {
	g := newTestGame(t, Classic, 1)
	g.cursor = 0

	g.Step(actionFrame(core.ActionLeft))
	if g.cursor != 7 {
		t.Errorf("left from column 0 should wrap to 7, got %d", g.cursor)
	}
	g.Step(actionFrame(core.ActionUp))
	if g.cursor != 63 {
		t.Errorf("up from row 0 should wrap to row 7, got %d", g.cursor)
	}
	g.Step(actionFrame(core.ActionDown))
	g.Step(actionFrame(core.ActionRight))
	if g.cursor != 0 {
		t.Errorf("expected back at 0, got %d", g.cursor)
	}
}

func TestSelectWithKeyboard(t *testing.T) {
	g := newTestGame(t, Classic, 1)
	g.cursor = 9

	g.Step(actionFrame(core.ActionSelect))
	if snap := g.Snapshot(); snap.Selected != 9 {
		t.Fatalf("selected = %d, expected 9", snap.Selected)
	}

	// Picking a tile that is not adjacent drops the selection.
	g.cursor = 27
	g.Step(actionFrame(core.ActionSelect))
	if snap := g.Snapshot(); snap.Selected != -1 || snap.Moves != 0 {
		t.Errorf("selection should be discarded: %+v", snap)
	}
}

func TestMatchingSwapScores(t *testing.T) {
	useConfig(t, instantConfig())
	g, a, b := gameWithSwap(t, true)

	g.Step(clickFrame(g, a))
	res := g.Step(clickFrame(g, b))
	if !hasEvent(res.Events, core.EventSwap) {
		t.Fatalf("expected a swap event, got %+v", res.Events)
	}
	if g.Snapshot().State != StateResolving {
		t.Errorf("state = %s, expected resolving", g.Snapshot().State)
	}

	events := settle(t, g)
	if !hasEvent(events, core.EventRemove) || !hasEvent(events, core.EventRefill) {
		t.Errorf("expected remove and refill events, got %+v", events)
	}

	snap := g.Snapshot()
	if snap.Score < 3 {
		t.Errorf("score = %d, expected at least 3", snap.Score)
	}
	if snap.Moves != 1 || snap.BestChain < 1 {
		t.Errorf("stats = %d moves / chain %d", snap.Moves, snap.BestChain)
	}
	if stats := g.Stats(); stats.Moves != 1 || stats.BestChain != snap.BestChain {
		t.Errorf("Stats() = %+v", stats)
	}

	grid, _ := match3.ParseGrid(snap.Size, snap.Board)
	if grid.HasEmpty() || hasRun(grid) {
		t.Errorf("board should be settled:\n%s", snap.Board)
	}
}

func TestNonMatchingSwapReverts(t *testing.T) {
	useConfig(t, instantConfig())
	g, a, b := gameWithSwap(t, false)
	before := g.Snapshot().Board

	g.Step(clickFrame(g, a))
	res := g.Step(clickFrame(g, b))
	if !hasEvent(res.Events, core.EventNoMatch) {
		t.Fatalf("expected no_match event, got %+v", res.Events)
	}
	if g.Snapshot().Board == before {
		t.Error("the swap should be visible until the revert")
	}

	events := settle(t, g)
	if !hasEvent(events, core.EventRevert) {
		t.Errorf("expected a revert event, got %+v", events)
	}

	snap := g.Snapshot()
	if snap.Board != before {
		t.Errorf("board not restored:\n%s\nexpected\n%s", snap.Board, before)
	}
	if snap.Score != 0 || snap.Moves != 0 {
		t.Errorf("a reverted swap must not count: %+v", snap)
	}
}

func TestCascadePacing(t *testing.T) {
	cfg := config.DefaultJewelsConfig()
	cfg.Timing.StepDelayMS = 100 // 3 ticks at 30 ticks/s
	useConfig(t, cfg)
	g, a, b := gameWithSwap(t, true)

	g.Step(clickFrame(g, a))
	g.Step(clickFrame(g, b))

	for i := 1; i <= 2; i++ {
		if res := g.Step(core.NewInputFrame()); len(res.Events) != 0 {
			t.Fatalf("tick %d: step happened too early: %+v", i, res.Events)
		}
	}
	res := g.Step(core.NewInputFrame())
	if !hasEvent(res.Events, core.EventRemove) {
		t.Fatalf("expected the remove step on the third tick, got %+v", res.Events)
	}
	if len(g.burst) == 0 {
		t.Error("removed cells should be remembered for the burst glyph")
	}
}

func TestInputBlockedWhileResolving(t *testing.T) {
	cfg := config.DefaultJewelsConfig()
	cfg.Timing.RevertDelayMS = 1000
	useConfig(t, cfg)
	g, a, b := gameWithSwap(t, false)

	g.Step(clickFrame(g, a))
	g.Step(clickFrame(g, b))

	g.Step(clickFrame(g, 0))
	if snap := g.Snapshot(); snap.Selected != -1 || snap.State != StateResolving {
		t.Errorf("picks during a revert must be ignored: %+v", snap)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, Classic, 1)

	g.Step(actionFrame(core.ActionPause))
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("game should be paused")
	}

	g.cursor = 0
	g.Step(actionFrame(core.ActionSelect, core.ActionRight))
	if snap := g.Snapshot(); snap.Selected != -1 || snap.Cursor != 0 {
		t.Errorf("input while paused must be ignored: %+v", snap)
	}

	g.Step(actionFrame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRestartWithoutPointsRedeals(t *testing.T) {
	g := newTestGame(t, Classic, 1)
	before := g.Snapshot().Board

	res := g.Step(actionFrame(core.ActionRestart))
	if !hasEvent(res.Events, core.EventRestart) {
		t.Fatalf("expected restart event, got %+v", res.Events)
	}
	if g.State().GameOver {
		t.Error("a round without points should not end")
	}
	if g.Snapshot().Board == before {
		t.Error("restart should deal a new board")
	}
}

func TestRestartWithPointsEndsRound(t *testing.T) {
	useConfig(t, instantConfig())
	g, a, b := gameWithSwap(t, true)
	g.Step(clickFrame(g, a))
	g.Step(clickFrame(g, b))
	settle(t, g)
	score := g.State().Score

	res := g.Step(actionFrame(core.ActionRestart))
	if !hasEvent(res.Events, core.EventRoundOver) {
		t.Fatalf("expected round_over event, got %+v", res.Events)
	}
	state := g.State()
	if !state.GameOver || state.Score != score {
		t.Errorf("state = %+v, expected game over with score %d", state, score)
	}

	// Further input is ignored until the platform resets the game.
	g.Step(actionFrame(core.ActionRestart))
	g.Step(actionFrame(core.ActionPause))
	if !g.State().GameOver || g.State().Paused {
		t.Errorf("round over state changed: %+v", g.State())
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 2})
	if g.State().GameOver || g.State().Score != 0 || g.Stats().Moves != 0 {
		t.Errorf("Reset should start a fresh round: %+v", g.State())
	}
}

func TestRestartMidCascadeSettlesFirst(t *testing.T) {
	useConfig(t, instantConfig())
	g, seed, a, b := seededGameWithSwap(t, true)
	twin := newTestGame(t, Classic, seed)
	for _, game := range []*Game{g, twin} {
		game.Step(clickFrame(game, a))
		game.Step(clickFrame(game, b))
	}
	settle(t, twin)
	want := twin.State().Score

	res := g.Step(core.NewInputFrame())
	if !hasEvent(res.Events, core.EventRemove) || !g.engine.Busy() {
		t.Fatalf("expected a remove step with the refill pending, got %+v", res.Events)
	}

	res = g.Step(actionFrame(core.ActionRestart))
	if !hasEvent(res.Events, core.EventRefill) || !hasEvent(res.Events, core.EventRoundOver) {
		t.Fatalf("expected refill then round_over, got %+v", res.Events)
	}
	if g.engine.Busy() {
		t.Error("engine still busy after restart")
	}
	state := g.State()
	if !state.GameOver || state.Score != want {
		t.Errorf("state = %+v, expected game over with score %d", state, want)
	}
	if g.Stats().BestChain != twin.Stats().BestChain {
		t.Errorf("best chain = %d, expected %d", g.Stats().BestChain, twin.Stats().BestChain)
	}
	grid, err := match3.GridFrom(g.engine.Size(), g.engine.Cells())
	if err != nil {
		t.Fatal(err)
	}
	if grid.HasEmpty() {
		t.Errorf("round ended with empty cells:\n%s", grid)
	}
}

func TestRestartDuringRevertRedeals(t *testing.T) {
	useConfig(t, instantConfig())
	g, a, b := gameWithSwap(t, false)
	g.Step(clickFrame(g, a))
	g.Step(clickFrame(g, b))

	res := g.Step(actionFrame(core.ActionRestart))
	if !hasEvent(res.Events, core.EventRevert) || !hasEvent(res.Events, core.EventRestart) {
		t.Fatalf("expected revert then restart, got %+v", res.Events)
	}
	if g.State().GameOver || g.engine.Busy() {
		t.Errorf("pointless round should be redealt: %+v", g.State())
	}
}

func TestInvalidBoardFallsBackToDefault(t *testing.T) {
	cfg := config.DefaultJewelsConfig()
	cfg.Board.Size = 2
	cfgMu.Lock()
	prev := currentCfg
	currentCfg = cfg
	cfgMu.Unlock()
	t.Cleanup(func() { SetConfig(prev) })

	g := newTestGame(t, Classic, 1)
	if got, want := g.engine.Size(), match3.DefaultOptions().Size; got != want {
		t.Errorf("board size = %d, expected default %d", got, want)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := NewVariant(Classic)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 30, Seed: 1})
	board := g.Snapshot().Board

	if !g.State().Paused || g.Snapshot().State != StatePausedSmall {
		t.Fatal("small screen should pause the game")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message:\n%s", screen)
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("resize to a large screen should resume")
	}
	if g.Snapshot().Board != board {
		t.Error("resize must not redeal the board")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, Classic, 3)
	g.cursor = 0
	g.Step(actionFrame(core.ActionSelect))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Jewels", "Score: 0", "Moves: 0", "Best chain: 0", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	r := g.boardRect()
	if got := screen.Get(r.X+1, r.Y+1); got != '{' {
		t.Errorf("selected tile under the cursor should be marked with '{', got %q", got)
	}

	glyph := screen.GetCell(r.X+2, r.Y+1)
	st := tileStyles[g.engine.At(0)]
	if glyph.Rune != st.glyph || glyph.Color != st.color || !glyph.Bold {
		t.Errorf("tile 0 drawn as %+v, expected bold %q", glyph, st.glyph)
	}
}

func TestRenderPauseOverlay(t *testing.T) {
	g := newTestGame(t, Classic, 3)
	g.Step(actionFrame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Errorf("expected pause overlay:\n%s", screen)
	}
}

func TestTileAt(t *testing.T) {
	g := newTestGame(t, Classic, 1)
	r := g.boardRect()

	for _, i := range []int{0, 7, 8, 35, 63} {
		f := clickFrame(g, i)
		got, ok := g.tileAt(f.Click.X, f.Click.Y)
		if !ok || got != i {
			t.Errorf("tileAt(center of %d) = %d, %v", i, got, ok)
		}
	}

	if _, ok := g.tileAt(r.X, r.Y); ok {
		t.Error("the frame is not a tile")
	}
	if _, ok := g.tileAt(0, 0); ok {
		t.Error("the HUD is not a tile")
	}
}
