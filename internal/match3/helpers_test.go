package match3

// seqSource replays a fixed list of palette indices, wrapping around.
type seqSource struct {
	seq []int
	pos int
}

func (s *seqSource) Intn(n int) int {
	v := s.seq[s.pos%len(s.seq)]
	s.pos++
	return v % n
}

// constSource always returns the same index.
type constSource int

func (c constSource) Intn(n int) int {
	return int(c) % n
}

// patternCells returns n*n cells colored by (row+col)%3 from three colors,
// which never forms a run of three in any row or column.
func patternCells(n int, a, b, c Color) []Color {
	colors := [3]Color{a, b, c}
	cells := make([]Color, n*n)
	for i := range cells {
		cells[i] = colors[(i/n+i%n)%3]
	}
	return cells
}

// recorder captures observer notifications.
type recorder struct {
	renders    [][]Color
	scores     []int
	selections []int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		OnRender:    func(cells []Color) { r.renders = append(r.renders, cells) },
		OnScore:     func(score int) { r.scores = append(r.scores, score) },
		OnSelection: func(index int) { r.selections = append(r.selections, index) },
	}
}
