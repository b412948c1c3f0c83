package match3

import "iter"

// MaxCascade caps the number of remove/refill cycles a single Resolver runs.
// Random refills make termination likely, not guaranteed; a source that keeps
// recreating the same run would otherwise loop forever. When the cap is hit
// the grid is left refilled, possibly with runs still on it.
const MaxCascade = 1000

// StepKind identifies a discrete board mutation.
type StepKind int

const (
	StepSwap StepKind = iota
	StepRevert
	StepRemove
	StepRefill
)

// String returns a lowercase name for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepSwap:
		return "swap"
	case StepRevert:
		return "revert"
	case StepRemove:
		return "remove"
	case StepRefill:
		return "refill"
	default:
		return "unknown"
	}
}

// Step is an observable snapshot taken after one mutation of the board.
type Step struct {
	Kind    StepKind
	Cells   []Color // board after the step
	Swapped [2]int  // positions exchanged (swap and revert steps)
	Removed []int   // cleared indices (remove steps)
	Gained  int     // points earned by this step
	Chain   int     // 1-based cascade cycle (remove and refill steps)
	Score   int     // session score after the step; 0 outside an Engine
	Final   bool    // nothing is outstanding after this step
}

// RemoveMatches empties every listed cell and returns how many tiles were
// removed. Indices that are out of bounds or already Empty are skipped.
func RemoveMatches(g *Grid, matches []int) int {
	removed := 0
	for _, i := range matches {
		if g.InBounds(i) && g.cells[i] != Empty {
			g.cells[i] = Empty
			removed++
		}
	}
	return removed
}

// Refill applies gravity and spawns new tiles.
//
// Cells are visited from the last index to the first. An Empty cell takes the
// color of the nearest non-empty cell above it in the same column, which
// becomes Empty in turn; when nothing is left above, a new color is drawn from
// the palette. No cell is Empty afterwards.
func Refill(g *Grid, p Palette, src Source) {
	n := g.n
	for i := len(g.cells) - 1; i >= 0; i-- {
		if g.cells[i] != Empty {
			continue
		}
		for j := i - n; j >= 0; j -= n {
			if g.cells[j] != Empty {
				g.cells[i] = g.cells[j]
				g.cells[j] = Empty
				break
			}
		}
		if g.cells[i] == Empty {
			g.cells[i] = p.Random(src)
		}
	}
}

// Resolver runs the cascade one step at a time: remove the current matches,
// refill, look for new matches, and repeat until a refill leaves the board
// without runs.
type Resolver struct {
	grid    *Grid
	palette Palette
	src     Source

	matches []int // armed for the next remove step
	refill  bool  // next step is a refill
	chain   int
}

// NewResolver prepares a cascade for the grid's current matches.
// The grid is mutated in place as steps are taken.
func NewResolver(g *Grid, p Palette, src Source) *Resolver {
	return newResolver(g, p, src, FindMatches(g))
}

func newResolver(g *Grid, p Palette, src Source, matches []int) *Resolver {
	return &Resolver{
		grid:    g,
		palette: p,
		src:     src,
		matches: matches,
	}
}

// Pending reports whether another step is outstanding.
func (r *Resolver) Pending() bool {
	return r.refill || len(r.matches) > 0
}

// Chain returns the number of remove steps taken so far.
func (r *Resolver) Chain() int {
	return r.chain
}

// Next performs exactly one step and returns its snapshot.
// It returns false once the board is stable.
func (r *Resolver) Next() (Step, bool) {
	switch {
	case r.refill:
		Refill(r.grid, r.palette, r.src)
		r.refill = false
		if r.chain < MaxCascade {
			r.matches = FindMatches(r.grid)
		}
		return Step{
			Kind:  StepRefill,
			Cells: r.grid.Cells(),
			Chain: r.chain,
			Final: !r.Pending(),
		}, true

	case len(r.matches) > 0:
		r.chain++
		removed := r.matches
		r.matches = nil
		gained := RemoveMatches(r.grid, removed)
		r.refill = true
		return Step{
			Kind:    StepRemove,
			Cells:   r.grid.Cells(),
			Removed: removed,
			Gained:  gained,
			Chain:   r.chain,
		}, true
	}
	return Step{}, false
}

// All returns the remaining steps as a lazy sequence. Breaking out of the
// range loop leaves the rest of the cascade unapplied.
func (r *Resolver) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			step, ok := r.Next()
			if !ok || !yield(step) {
				return
			}
		}
	}
}

// Cascade resolves every run on g, yielding a snapshot after each remove and
// each refill. Matches are looked up when iteration starts.
func Cascade(g *Grid, p Palette, src Source) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		NewResolver(g, p, src).All()(yield)
	}
}
