package day04

import (
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

const sample = `7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
`

func TestPart1(t *testing.T) {
	testlog.Start(t)
	got, err := Part1(sample)
	require.NoError(t, err)
	require.Equal(t, 4512, got)
}

func TestPart2(t *testing.T) {
	testlog.Start(t)
	got, err := Part2(sample)
	require.NoError(t, err)
	require.Equal(t, 1924, got)
}

func TestColumnWins(t *testing.T) {
	testlog.Start(t)
	b := &board{}
	for i := range b.squares {
		b.squares[i] = i
	}
	for _, n := range []int{2, 7, 12, 17} {
		_, ok := b.mark(n)
		require.False(t, ok)
	}
	score, ok := b.mark(22)
	require.True(t, ok)
	// 0..24 sums to 300; the marked column sums to 60.
	require.Equal(t, (300-60)*22, score)
}

func TestNoWinner(t *testing.T) {
	testlog.Start(t)
	in := "99\n\n1 2 3 4 5\n6 7 8 9 10\n11 12 13 14 15\n16 17 18 19 20\n21 22 23 24 25\n"
	_, err := Part1(in)
	require.ErrorIs(t, err, ErrNoWinner)
	_, err = Part2(in)
	require.ErrorIs(t, err, ErrNoWinner)
}

func TestBadBoards(t *testing.T) {
	testlog.Start(t)
	_, err := Part1("1,2\n\n1 2 3 4 5\n")
	require.ErrorIs(t, err, ErrBadBoard)
	_, err = Part1("1,2\n1 2 3 4\n1 2 3 4 5\n1 2 3 4 5\n1 2 3 4 5\n1 2 3 4 5\n")
	require.ErrorIs(t, err, ErrBadBoard)
}
