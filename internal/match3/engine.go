package match3

import "fmt"

// Options configures an Engine.
type Options struct {
	Size   int // board dimension N
	Colors int // palette size, 3..MaxColors

	// StableStart fills new boards without any run of three. When false the
	// board is filled uniformly at random and may start with runs, which are
	// only cleared once a swap triggers a cascade.
	StableStart bool
}

// DefaultOptions returns the reference configuration: 8x8, five colors.
func DefaultOptions() Options {
	return Options{
		Size:        8,
		Colors:      len(DefaultPalette),
		StableStart: true,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.Size < 3 {
		return fmt.Errorf("match3: size %d: %w", o.Size, ErrInvalidSize)
	}
	if o.Colors < 3 || o.Colors > MaxColors {
		return fmt.Errorf("match3: %d colors: %w", o.Colors, ErrInvalidPalette)
	}
	return nil
}

// Outcome describes what a pick did.
type Outcome int

const (
	OutcomeIgnored   Outcome = iota // out of range or empty cell; selection untouched
	OutcomeBusy                     // a revert or cascade is still outstanding
	OutcomeSelected                 // first tile picked, now pending
	OutcomeDiscarded                // second pick was the same tile or not adjacent
	OutcomeMatched                  // swap stands, cascade armed
	OutcomeNoMatch                  // swap made no run, revert armed
)

// String returns a lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeBusy:
		return "busy"
	case OutcomeSelected:
		return "selected"
	case OutcomeDiscarded:
		return "discarded"
	case OutcomeMatched:
		return "matched"
	case OutcomeNoMatch:
		return "no_match"
	default:
		return "unknown"
	}
}

// PickResult reports the effect of a single pick.
type PickResult struct {
	Outcome Outcome
	First   int   // pending tile (or the tile just selected); -1 if none
	Second  int   // tile picked second; -1 if none
	Matches []int // runs found after a standing swap
}

// Swapped reports whether the pick exchanged two tiles.
func (r PickResult) Swapped() bool {
	return r.Outcome == OutcomeMatched || r.Outcome == OutcomeNoMatch
}

type swapPair struct {
	a, b int
}

// Engine is one game session: board, score, selection and whatever revert or
// cascade is still outstanding. All methods run synchronously on the caller's
// goroutine; an Engine must not be shared between goroutines without
// external locking.
//
// A swap never resolves on its own. After Pick returns OutcomeMatched or
// OutcomeNoMatch the engine is Busy, every further pick is ignored, and the
// caller drives the follow-up with Advance at whatever pace it likes.
type Engine struct {
	opts    Options
	palette Palette
	src     Source
	obs     Observer

	grid      *Grid
	score     int
	moves     int
	bestChain int
	selected  int

	revert   *swapPair
	resolver *Resolver
}

// New creates a session with a freshly filled board and renders it.
// A nil observer is replaced by NopObserver.
func New(opts Options, src Source, obs Observer) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("match3: %w", ErrNilSource)
	}
	palette, err := PaletteOf(opts.Colors)
	if err != nil {
		return nil, err
	}
	if obs == nil {
		obs = NopObserver{}
	}

	e := &Engine{
		opts:     opts,
		palette:  palette,
		src:      src,
		obs:      obs,
		selected: -1,
	}
	e.newBoard()
	return e, nil
}

// NewWithGrid creates a session around an existing board. The grid is used
// as is (not copied) and must not contain Empty cells. Restart fills a new
// board with a stable start.
func NewWithGrid(g *Grid, p Palette, src Source, obs Observer) (*Engine, error) {
	if g == nil || g.Size() < 3 {
		return nil, fmt.Errorf("match3: grid: %w", ErrInvalidSize)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("match3: %w", ErrNilSource)
	}
	for i, c := range g.cells {
		if !p.Contains(c) {
			return nil, fmt.Errorf("match3: cell %d: %v: %w", i, c, ErrInvalidColor)
		}
	}
	if obs == nil {
		obs = NopObserver{}
	}

	pal := make(Palette, len(p))
	copy(pal, p)
	e := &Engine{
		opts:     Options{Size: g.Size(), Colors: len(p), StableStart: true},
		palette:  pal,
		src:      src,
		obs:      obs,
		grid:     g,
		selected: -1,
	}
	e.obs.Render(g.Cells())
	return e, nil
}

// newBoard replaces the grid and renders it.
func (e *Engine) newBoard() {
	g := NewGrid(e.opts.Size)
	if e.opts.StableStart {
		g.FillStable(e.palette, e.src)
	} else {
		g.Fill(e.palette, e.src)
	}
	e.grid = g
	e.obs.Render(g.Cells())
}

// Pick is the single input into the swap handler.
//
// With no tile pending the picked tile becomes pending. With a tile pending
// the selection is cleared first; then an adjacent pick swaps the two tiles,
// anything else is discarded. Out-of-range picks and picks on empty cells
// are ignored and leave the selection as it was.
func (e *Engine) Pick(i int) PickResult {
	if e.Busy() {
		return PickResult{Outcome: OutcomeBusy, First: e.selected, Second: -1}
	}
	if !e.grid.InBounds(i) || e.grid.At(i) == Empty {
		return PickResult{Outcome: OutcomeIgnored, First: e.selected, Second: -1}
	}

	if e.selected < 0 {
		e.selected = i
		e.obs.SelectionChanged(i)
		return PickResult{Outcome: OutcomeSelected, First: i, Second: -1}
	}

	first := e.selected
	e.selected = -1
	e.obs.SelectionChanged(-1)

	if !e.grid.Adjacent(first, i) {
		return PickResult{Outcome: OutcomeDiscarded, First: first, Second: i}
	}

	e.grid.Swap(first, i)
	e.obs.Render(e.grid.Cells())

	if !hasMatch(e.grid) {
		e.revert = &swapPair{a: first, b: i}
		return PickResult{Outcome: OutcomeNoMatch, First: first, Second: i}
	}

	matches := FindMatches(e.grid)
	e.moves++
	e.resolver = newResolver(e.grid, e.palette, e.src, matches)
	return PickResult{Outcome: OutcomeMatched, First: first, Second: i, Matches: matches}
}

// Busy reports whether a revert or cascade step is outstanding.
func (e *Engine) Busy() bool {
	return e.revert != nil || e.resolver != nil
}

// Advance performs the next outstanding step: the revert of a swap that made
// no match, or the next remove or refill of a cascade. It returns false when
// nothing is outstanding.
func (e *Engine) Advance() (Step, bool) {
	if e.revert != nil {
		a, b := e.revert.a, e.revert.b
		e.revert = nil
		e.grid.Swap(a, b)
		step := Step{
			Kind:    StepRevert,
			Cells:   e.grid.Cells(),
			Swapped: [2]int{a, b},
			Score:   e.score,
			Final:   true,
		}
		e.obs.Render(step.Cells)
		return step, true
	}

	if e.resolver == nil {
		return Step{}, false
	}
	step, ok := e.resolver.Next()
	if !ok {
		e.resolver = nil
		return Step{}, false
	}
	if !e.resolver.Pending() {
		e.resolver = nil
		step.Final = true
	}

	if step.Kind == StepRemove {
		e.score += step.Gained
		if step.Chain > e.bestChain {
			e.bestChain = step.Chain
		}
	}
	step.Score = e.score

	e.obs.Render(step.Cells)
	if step.Gained > 0 {
		e.obs.ScoreChanged(e.score)
	}
	return step, true
}

// Settle runs every outstanding step and returns them in order.
func (e *Engine) Settle() []Step {
	var steps []Step
	for {
		step, ok := e.Advance()
		if !ok {
			return steps
		}
		steps = append(steps, step)
	}
}

// Restart cancels any outstanding revert or cascade, clears the selection,
// deals a new board and zeroes the score and round statistics.
func (e *Engine) Restart() {
	e.revert = nil
	e.resolver = nil
	if e.selected >= 0 {
		e.selected = -1
		e.obs.SelectionChanged(-1)
	}
	e.score = 0
	e.moves = 0
	e.bestChain = 0
	e.newBoard()
	e.obs.ScoreChanged(0)
}

// Cells returns a copy of the board.
func (e *Engine) Cells() []Color {
	return e.grid.Cells()
}

// At returns the color at index i.
func (e *Engine) At(i int) Color {
	return e.grid.At(i)
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.grid.Size()
}

// Palette returns a copy of the colors new tiles are drawn from.
func (e *Engine) Palette() Palette {
	p := make(Palette, len(e.palette))
	copy(p, e.palette)
	return p
}

// Score returns the number of tiles cleared this round.
func (e *Engine) Score() int {
	return e.score
}

// Moves returns the number of swaps that stood this round.
func (e *Engine) Moves() int {
	return e.moves
}

// BestChain returns the longest cascade of this round, in remove steps.
func (e *Engine) BestChain() int {
	return e.bestChain
}

// Selected returns the pending tile, if any.
func (e *Engine) Selected() (int, bool) {
	return e.selected, e.selected >= 0
}
