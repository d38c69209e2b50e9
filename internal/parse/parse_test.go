package parse

import (
	"errors"
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func TestSeparated(t *testing.T) {
	testlog.Start(t)
	got, err := Separated[int]("3,4, 3,1,2", ",")
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 3, 1, 2}, got)

	_, err = Separated[int]("3,x", ",")
	require.ErrorIs(t, err, ErrNotNumber)

	_, err = Separated[int]("", ",")
	require.ErrorIs(t, err, ErrEmpty)
}

func TestFields(t *testing.T) {
	testlog.Start(t)
	got, err := Fields[int64](" 22 13 17 11  0\n")
	require.NoError(t, err)
	require.Equal(t, []int64{22, 13, 17, 11, 0}, got)
}

func TestIntRange(t *testing.T) {
	testlog.Start(t)
	v, err := Int[uint8]("255")
	require.NoError(t, err)
	require.Equal(t, uint8(255), v)

	_, err = Int[uint8]("256")
	require.ErrorIs(t, err, ErrNotNumber)
	_, err = Int[uint]("-1")
	require.ErrorIs(t, err, ErrNotNumber)
	_, err = Int[int8]("-129")
	require.ErrorIs(t, err, ErrNotNumber)

	n, err := Int[int8]("-128")
	require.NoError(t, err)
	require.Equal(t, int8(-128), n)
}

func TestLines(t *testing.T) {
	testlog.Start(t)
	require.Equal(t, []string{"a", "b c"}, Lines("a\r\n\n  \nb c\n"))
	require.Empty(t, Lines("\n\n"))
}

func TestDigitGrid(t *testing.T) {
	testlog.Start(t)
	g, err := DigitGrid("123\n456\n")
	require.NoError(t, err)
	require.Equal(t, 3, g.Width)
	require.Equal(t, 2, g.Height)
	require.Equal(t, 6, g.At(2, 1))
	require.ElementsMatch(t, []int{g.Index(0, 0), g.Index(2, 0), g.Index(1, 1)}, g.Neighbors4(1, 0))
	require.Len(t, g.Neighbors8(1, 0), 5)
	require.Len(t, g.Neighbors8(1, 1), 5)

	clone := g.Clone()
	clone.Cells[0] = 9
	require.Equal(t, 1, g.At(0, 0))

	_, err = DigitGrid("12\n345")
	require.True(t, errors.Is(err, ErrRagged))
	_, err = DigitGrid("1a")
	require.ErrorIs(t, err, ErrNotDigit)
	_, err = DigitGrid("")
	require.ErrorIs(t, err, ErrEmpty)
}
