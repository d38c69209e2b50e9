// Package day10 scores corrupted and incomplete bracket chunks.
package day10

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

var (
	ErrBadChar      = errors.New("day10: not a bracket")
	ErrNoIncomplete = errors.New("day10: no incomplete lines")
)

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 10, Part: 1, Title: "Syntax Scoring", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 10, Part: 2, Title: "Syntax Scoring", Solve: puzzle.Adapt(Part2)})
}

var closers = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

var corruptScore = map[byte]int{')': 3, ']': 57, '}': 1197, '>': 25137}

var completeScore = map[byte]int{')': 1, ']': 2, '}': 3, '>': 4}

// check scans a line. If a closer does not match, it returns that closer.
// Otherwise it returns the closers still expected, innermost first.
func check(line string) (bad byte, missing []byte, err error) {
	var stack []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if want, ok := closers[c]; ok {
			stack = append(stack, want)
			continue
		}
		if _, ok := corruptScore[c]; !ok {
			return 0, nil, fmt.Errorf("%w: %q at column %d", ErrBadChar, c, i+1)
		}
		if len(stack) == 0 || stack[len(stack)-1] != c {
			return c, nil, nil
		}
		stack = stack[:len(stack)-1]
	}
	slices.Reverse(stack)
	return 0, stack, nil
}

// Part1 sums the scores of the first illegal character on each corrupted line.
func Part1(input string) (int, error) {
	total := 0
	for i, line := range parse.Lines(input) {
		bad, _, err := check(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += corruptScore[bad]
	}
	return total, nil
}

// Part2 returns the median completion score of the incomplete lines.
func Part2(input string) (int, error) {
	var scores []int
	for i, line := range parse.Lines(input) {
		bad, missing, err := check(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if bad != 0 || len(missing) == 0 {
			continue
		}
		score := 0
		for _, c := range missing {
			score = score*5 + completeScore[c]
		}
		scores = append(scores, score)
	}
	if len(scores) == 0 {
		return 0, ErrNoIncomplete
	}
	slices.Sort(scores)
	return scores[len(scores)/2], nil
}
