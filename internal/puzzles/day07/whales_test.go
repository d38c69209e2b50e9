package day07

import (
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

const sample = "16,1,2,0,4,2,7,1,2,14\n"

func TestPart1(t *testing.T) {
	testlog.Start(t)
	got, err := Part1(sample)
	require.NoError(t, err)
	require.Equal(t, 37, got)
}

func TestPart2(t *testing.T) {
	testlog.Start(t)
	got, err := Part2(sample)
	require.NoError(t, err)
	require.Equal(t, 168, got)
}

func TestTriangular(t *testing.T) {
	testlog.Start(t)
	require.Equal(t, 0, triangular(0))
	require.Equal(t, 66, triangular(11))
}

func TestEmptyPositions(t *testing.T) {
	testlog.Start(t)
	_, err := Part1("\n")
	require.ErrorIs(t, err, parse.ErrEmpty)
}
