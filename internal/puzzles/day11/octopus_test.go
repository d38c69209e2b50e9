package day11

import (
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

const sample = `5483143223
2745854711
5264556173
6141336146
6357385478
4167524645
2176841721
6882881134
4846848554
5283751526
`

func TestPart1(t *testing.T) {
	testlog.Start(t)
	got, err := Part1(sample)
	require.NoError(t, err)
	require.Equal(t, 1656, got)
}

func TestPart2(t *testing.T) {
	testlog.Start(t)
	got, err := Part2(sample)
	require.NoError(t, err)
	require.Equal(t, 195, got)
}

func TestSmallStep(t *testing.T) {
	testlog.Start(t)
	g, err := parse.DigitGrid("11111\n19991\n19191\n19991\n11111\n")
	require.NoError(t, err)
	require.Equal(t, 9, step(g))
	want, err := parse.DigitGrid("34543\n40004\n50005\n40004\n34543\n")
	require.NoError(t, err)
	require.Equal(t, want.Cells, g.Cells)
}
