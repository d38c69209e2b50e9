package day10

import (
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

const sample = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]
`

func TestPart1(t *testing.T) {
	testlog.Start(t)
	got, err := Part1(sample)
	require.NoError(t, err)
	require.Equal(t, 26397, got)
}

func TestPart2(t *testing.T) {
	testlog.Start(t)
	got, err := Part2(sample)
	require.NoError(t, err)
	require.Equal(t, 288957, got)
}

func TestCheck(t *testing.T) {
	testlog.Start(t)
	bad, missing, err := check("{([(<{}[<>[]}>{[]{[(<()>")
	require.NoError(t, err)
	require.Equal(t, byte('}'), bad)
	require.Nil(t, missing)

	bad, missing, err = check("<{([{{}}[<[[[<>{}]]]>[]]")
	require.NoError(t, err)
	require.Zero(t, bad)
	require.Equal(t, "])}>", string(missing))

	_, _, err = check("(x)")
	require.ErrorIs(t, err, ErrBadChar)
}

func TestNoIncomplete(t *testing.T) {
	testlog.Start(t)
	_, err := Part2("()\n(]\n")
	require.ErrorIs(t, err, ErrNoIncomplete)
}
