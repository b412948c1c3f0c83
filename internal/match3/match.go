package match3

// FindMatches returns the sorted, deduplicated indices of every cell that is
// part of a run of three or more identical non-empty colors along a row or a
// column.
//
// The scan slides a window of three over each row and each column. Longer
// runs are covered by the union of the overlapping windows, and a cell that
// belongs to both a row run and a column run appears once.
func FindMatches(g *Grid) []int {
	n := g.n
	if n < 3 {
		return nil
	}

	marked := make([]bool, len(g.cells))
	found := 0
	mark := func(i int) {
		if !marked[i] {
			marked[i] = true
			found++
		}
	}

	// Rows: windows start at columns 0..n-3
	for row := range n {
		for col := 0; col < n-2; col++ {
			i := row*n + col
			if g.tripleAt(i, 1) {
				mark(i)
				mark(i + 1)
				mark(i + 2)
			}
		}
	}

	// Columns: windows start at rows 0..n-3
	for col := range n {
		for row := 0; row < n-2; row++ {
			i := row*n + col
			if g.tripleAt(i, n) {
				mark(i)
				mark(i + n)
				mark(i + 2*n)
			}
		}
	}

	if found == 0 {
		return nil
	}
	matches := make([]int, 0, found)
	for i, m := range marked {
		if m {
			matches = append(matches, i)
		}
	}
	return matches
}

// hasMatch reports whether the grid contains any run of three. It stops at
// the first run, so a swap that matches nothing is rejected cheaply.
func hasMatch(g *Grid) bool {
	n := g.n
	for row := range n {
		for col := 0; col < n-2; col++ {
			if g.tripleAt(row*n+col, 1) {
				return true
			}
		}
	}
	for col := range n {
		for row := 0; row < n-2; row++ {
			if g.tripleAt(row*n+col, n) {
				return true
			}
		}
	}
	return false
}

// tripleAt reports whether cells i, i+stride and i+2*stride share one
// non-empty color. Callers keep the window inside a single row or column.
func (g *Grid) tripleAt(i, stride int) bool {
	c := g.cells[i]
	return c != Empty && g.cells[i+stride] == c && g.cells[i+2*stride] == c
}
