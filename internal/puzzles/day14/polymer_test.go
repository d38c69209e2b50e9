package day14

import (
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

const sample = `NNCB

CH -> B
HH -> N
CB -> H
NH -> C
HB -> C
HC -> B
HN -> C
NN -> C
BH -> H
NC -> B
NB -> B
BN -> B
BB -> N
BC -> B
CC -> N
CN -> C
`

func TestPart1(t *testing.T) {
	testlog.Start(t)
	got, err := Part1(sample)
	require.NoError(t, err)
	require.Equal(t, 1588, got)
}

func TestPart2(t *testing.T) {
	testlog.Start(t)
	got, err := Part2(sample)
	require.NoError(t, err)
	require.Equal(t, 2188189693529, got)
}

func TestExpand(t *testing.T) {
	testlog.Start(t)
	m, err := parseManual(sample)
	require.NoError(t, err)
	polymer := m.expand(m.template)
	require.Equal(t, "NCNBCHB", polymer)
	polymer = m.expand(polymer)
	require.Equal(t, "NBCCNBBBCBHCB", polymer)
}

func TestCountMatchesExpand(t *testing.T) {
	testlog.Start(t)
	m, err := parseManual(sample)
	require.NoError(t, err)
	polymer := m.template
	for steps := 0; steps <= 6; steps++ {
		want := make(histogram)
		for i := 0; i < len(polymer); i++ {
			want[polymer[i]]++
		}
		require.Equal(t, want, m.count(steps), "after %d steps", steps)
		polymer = m.expand(polymer)
	}
}

func TestBadManual(t *testing.T) {
	testlog.Start(t)
	_, err := Part1("N\n\nNN -> C\n")
	require.ErrorIs(t, err, ErrBadTemplate)
	_, err = Part1("NN\n\nNN => C\n")
	require.ErrorIs(t, err, ErrBadRule)
	_, err = Part1("NN\n\nNN -> C\nNN -> B\n")
	require.ErrorIs(t, err, ErrBadRule)
}
