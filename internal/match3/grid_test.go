package match3

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjacentReferenceBoard(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		expected bool
	}{
		{"right neighbour", 0, 1, true},
		{"below", 0, 8, true},
		{"diagonal", 0, 9, false},
		{"row wrap", 7, 8, false},
		{"same tile", 5, 5, false},
		{"two columns apart", 0, 2, false},
		{"two rows apart", 0, 16, false},
		{"last row", 62, 63, true},
		{"out of range", 63, 64, false},
		{"negative", -1, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Adjacent(8, tc.a, tc.b))
		})
	}
}

func TestAdjacentSymmetric(t *testing.T) {
	const n = 8
	for a := 0; a < n*n; a++ {
		for b := 0; b < n*n; b++ {
			if Adjacent(n, a, b) != Adjacent(n, b, a) {
				t.Fatalf("Adjacent(%d, %d) != Adjacent(%d, %d)", a, b, b, a)
			}
		}
	}
}

func TestAdjacentNeighbourCount(t *testing.T) {
	const n = 8
	corners := map[int]bool{0: true, n - 1: true, n * (n - 1): true, n*n - 1: true}
	for a := 0; a < n*n; a++ {
		count := 0
		for b := 0; b < n*n; b++ {
			if Adjacent(n, a, b) {
				count++
			}
		}
		if corners[a] {
			assert.Equal(t, 2, count, "corner %d", a)
		} else {
			assert.GreaterOrEqual(t, count, 3, "cell %d", a)
			assert.LessOrEqual(t, count, 4, "cell %d", a)
		}
	}
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(3, `
		RRB
		GBR
		BBG`)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 9, g.Len())
	assert.Equal(t, []Color{Red, Red, Blue, Green, Blue, Red, Blue, Blue, Green}, g.Cells())
	assert.Equal(t, "RRB\nGBR\nBBG", g.String())
}

func TestParseGridErrors(t *testing.T) {
	_, err := ParseGrid(3, "RRB GBR")
	assert.ErrorIs(t, err, ErrCellCount)

	_, err = ParseGrid(3, "RRB GBR BBX")
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = GridFrom(0, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = GridFrom(1, []Color{Color(42)})
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestGridIndexing(t *testing.T) {
	g := NewGrid(8)

	assert.Equal(t, 2, g.Row(19))
	assert.Equal(t, 3, g.Col(19))
	assert.Equal(t, 19, g.Index(2, 3))
	assert.Equal(t, -1, g.Index(8, 0))
	assert.Equal(t, -1, g.Index(0, -1))

	assert.True(t, g.InBounds(63))
	assert.False(t, g.InBounds(64))
	assert.Equal(t, Empty, g.At(100))

	g.Set(100, Red) // ignored
	g.Set(5, Red)
	assert.Equal(t, Red, g.At(5))
}

func TestSwapTwiceRestores(t *testing.T) {
	g, err := GridFrom(8, patternCells(8, Red, Green, Blue))
	require.NoError(t, err)
	original := g.Clone()

	g.Swap(0, 1)
	require.Empty(t, FindMatches(g), "precondition: swap must not create a run")
	assert.False(t, g.Equal(original))

	g.Swap(0, 1)
	assert.True(t, g.Equal(original))
}

func TestCellsIsACopy(t *testing.T) {
	g, err := ParseGrid(3, "RGB GBR BRG")
	require.NoError(t, err)

	cells := g.Cells()
	cells[0] = Purple
	assert.Equal(t, Red, g.At(0))

	clone := g.Clone()
	clone.Set(0, Purple)
	assert.Equal(t, Red, g.At(0))
}

func TestFillUsesPalette(t *testing.T) {
	g := NewGrid(8)
	g.Fill(DefaultPalette, rand.New(rand.NewSource(1)))

	assert.False(t, g.HasEmpty())
	for i := range g.Len() {
		assert.True(t, DefaultPalette.Contains(g.At(i)), "cell %d = %v", i, g.At(i))
	}
}

func TestFillStableHasNoRuns(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := NewGrid(8)
		g.FillStable(DefaultPalette, rand.New(rand.NewSource(seed)))

		require.False(t, g.HasEmpty(), "seed %d", seed)
		require.Empty(t, FindMatches(g), "seed %d:\n%s", seed, g)
	}
}

func TestFillStableWithThreeColors(t *testing.T) {
	p, err := PaletteOf(3)
	require.NoError(t, err)

	for seed := int64(1); seed <= 20; seed++ {
		g := NewGrid(10)
		g.FillStable(p, rand.New(rand.NewSource(seed)))
		require.False(t, hasMatch(g), "seed %d:\n%s", seed, g)
	}
}

func TestPaletteOf(t *testing.T) {
	p, err := PaletteOf(5)
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette, p)

	_, err = PaletteOf(0)
	assert.ErrorIs(t, err, ErrInvalidPalette)

	_, err = PaletteOf(MaxColors + 1)
	assert.ErrorIs(t, err, ErrInvalidPalette)
}

func TestColorNames(t *testing.T) {
	assert.Equal(t, "red", Red.String())
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, byte('.'), Empty.Letter())
	assert.Equal(t, byte('P'), Purple.Letter())
	assert.False(t, Empty.Valid())
	assert.True(t, Cyan.Valid())
}
