package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchesRow(t *testing.T) {
	cells := patternCells(8, Green, Yellow, Purple)
	cells[0], cells[1], cells[2] = Red, Red, Red
	cells[3] = Blue
	g, err := GridFrom(8, cells)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, FindMatches(g))
	assert.True(t, hasMatch(g))
}

func TestFindMatchesColumn(t *testing.T) {
	cells := patternCells(8, Green, Yellow, Purple)
	cells[5], cells[13], cells[21] = Red, Red, Red
	g, err := GridFrom(8, cells)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 13, 21}, FindMatches(g))
}

func TestFindMatchesNone(t *testing.T) {
	g, err := GridFrom(8, patternCells(8, Red, Green, Blue))
	require.NoError(t, err)

	assert.Empty(t, FindMatches(g))
	assert.False(t, hasMatch(g))
}

func TestFindMatchesLongRun(t *testing.T) {
	cells := patternCells(5, Blue, Yellow, Purple)
	copy(cells, []Color{Red, Red, Red, Red, Green})
	g, err := GridFrom(5, cells)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, FindMatches(g))
}

func TestFindMatchesFullRow(t *testing.T) {
	cells := patternCells(5, Blue, Yellow, Purple)
	copy(cells[20:], []Color{Red, Red, Red, Red, Red})
	g, err := GridFrom(5, cells)
	require.NoError(t, err)

	assert.Equal(t, []int{20, 21, 22, 23, 24}, FindMatches(g))
}

func TestFindMatchesCrossIsDeduplicated(t *testing.T) {
	cells := patternCells(5, Blue, Yellow, Purple)
	for _, i := range []int{7, 11, 12, 13, 17} {
		cells[i] = Red
	}
	g, err := GridFrom(5, cells)
	require.NoError(t, err)

	assert.Equal(t, []int{7, 11, 12, 13, 17}, FindMatches(g))
}

func TestFindMatchesIgnoresEmpty(t *testing.T) {
	g, err := ParseGrid(3, `
		...
		RGB
		GBR`)
	require.NoError(t, err)

	assert.Empty(t, FindMatches(g))
}

func TestFindMatchesDoesNotWrapRows(t *testing.T) {
	// Cells 2,3,4 are linearly contiguous but span two rows.
	g, err := ParseGrid(3, `
		GBR
		RRB
		BGG`)
	require.NoError(t, err)

	assert.Empty(t, FindMatches(g))
}

func TestFindMatchesSmallGrid(t *testing.T) {
	g, err := ParseGrid(2, "RR RR")
	require.NoError(t, err)
	assert.Empty(t, FindMatches(g))
}
