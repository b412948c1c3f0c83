// Package match3 implements the board logic of a match-3 tile game: the grid
// model, swap validation, run detection and the remove/gravity/refill cascade.
//
// The package has no dependencies beyond the standard library and keeps no
// global state. Randomness is injected through Source so that every outcome
// can be reproduced in tests.
package match3

import (
	"fmt"
	"strings"
)

// Grid is a square board of N*N cells stored in row-major order:
// index = row*N + col.
type Grid struct {
	n     int
	cells []Color
}

// NewGrid creates an n*n grid with every cell Empty.
func NewGrid(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{
		n:     n,
		cells: make([]Color, n*n),
	}
}

// GridFrom builds an n*n grid from row-major cells.
// Cells may be Empty; any other value must be a valid color.
func GridFrom(n int, cells []Color) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("match3: size %d: %w", n, ErrInvalidSize)
	}
	if len(cells) != n*n {
		return nil, fmt.Errorf("match3: %d cells for size %d: %w", len(cells), n, ErrCellCount)
	}
	for i, c := range cells {
		if c != Empty && !c.Valid() {
			return nil, fmt.Errorf("match3: cell %d: %v: %w", i, c, ErrInvalidColor)
		}
	}
	g := NewGrid(n)
	copy(g.cells, cells)
	return g, nil
}

// ParseGrid builds a grid from color letters (R G B Y P O C, '.' for Empty).
// Whitespace is ignored, so boards can be written one row per line.
func ParseGrid(n int, s string) (*Grid, error) {
	cells := make([]Color, 0, n*n)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == ' ' || b == '\n' || b == '\t' || b == '\r' {
			continue
		}
		c, ok := colorFromLetter(b)
		if !ok {
			return nil, fmt.Errorf("match3: letter %q: %w", b, ErrInvalidColor)
		}
		cells = append(cells, c)
	}
	return GridFrom(n, cells)
}

// Size returns the board dimension N.
func (g *Grid) Size() int {
	return g.n
}

// Len returns the number of cells, N*N.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether i addresses a cell of this grid.
func (g *Grid) InBounds(i int) bool {
	return i >= 0 && i < len(g.cells)
}

// At returns the color at index i, or Empty when i is out of bounds.
func (g *Grid) At(i int) Color {
	if !g.InBounds(i) {
		return Empty
	}
	return g.cells[i]
}

// Set stores c at index i. Out-of-bounds writes are ignored.
func (g *Grid) Set(i int, c Color) {
	if g.InBounds(i) {
		g.cells[i] = c
	}
}

// Row returns the row of index i.
func (g *Grid) Row(i int) int {
	return i / g.n
}

// Col returns the column of index i.
func (g *Grid) Col(i int) int {
	return i % g.n
}

// Index converts a row and column to a linear index, or -1 if off the board.
func (g *Grid) Index(row, col int) int {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		return -1
	}
	return row*g.n + col
}

// Adjacent reports whether a and b are orthogonal neighbours on this grid.
func (g *Grid) Adjacent(a, b int) bool {
	return Adjacent(g.n, a, b)
}

// Swap exchanges the colors of cells i and j.
func (g *Grid) Swap(i, j int) {
	if !g.InBounds(i) || !g.InBounds(j) {
		return
	}
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Cells returns a copy of the cells in row-major order.
func (g *Grid) Cells() []Color {
	out := make([]Color, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, cells: g.Cells()}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// HasEmpty reports whether any cell is Empty.
func (g *Grid) HasEmpty() bool {
	for _, c := range g.cells {
		if c == Empty {
			return true
		}
	}
	return false
}

// Fill sets every cell to a uniformly random palette color.
// The result may already contain runs.
func (g *Grid) Fill(p Palette, src Source) {
	for i := range g.cells {
		g.cells[i] = p.Random(src)
	}
}

// FillStable fills the grid so that it contains no run of three. Each cell
// is drawn from the palette minus the colors that would complete a run with
// the two cells to its left or the two cells above it.
func (g *Grid) FillStable(p Palette, src Source) {
	allowed := make([]Color, 0, len(p))
	for i := range g.cells {
		row, col := g.Row(i), g.Col(i)
		allowed = allowed[:0]
		for _, c := range p {
			if col >= 2 && g.cells[i-1] == c && g.cells[i-2] == c {
				continue
			}
			if row >= 2 && g.cells[i-g.n] == c && g.cells[i-2*g.n] == c {
				continue
			}
			allowed = append(allowed, c)
		}
		if len(allowed) == 0 {
			// Only reachable with fewer than three colors.
			g.cells[i] = p.Random(src)
			continue
		}
		g.cells[i] = allowed[src.Intn(len(allowed))]
	}
}

// String renders the grid as rows of color letters.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.n)
	for i, c := range g.cells {
		if i > 0 && i%g.n == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte(c.Letter())
	}
	return sb.String()
}

// Adjacent reports whether linear positions a and b on an n*n board differ by
// exactly one row or exactly one column, but not both. Index 7 and 8 on an
// 8x8 board are not adjacent even though their linear distance is 1.
func Adjacent(n, a, b int) bool {
	if n <= 0 || a < 0 || b < 0 || a >= n*n || b >= n*n {
		return false
	}
	dr := abs(a/n - b/n)
	dc := abs(a%n - b%n)
	return dr+dc == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
