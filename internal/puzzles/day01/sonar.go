// Package day01 counts depth increases in a sonar sweep.
package day01

import (
	"fmt"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 1, Part: 1, Title: "Sonar Sweep", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 1, Part: 2, Title: "Sonar Sweep", Solve: puzzle.Adapt(Part2)})
}

// Part1 counts measurements larger than the previous one.
func Part1(input string) (int, error) {
	depths, err := parse.Fields[int](input)
	if err != nil {
		return 0, fmt.Errorf("parse depths: %w", err)
	}
	return increases(depths, 1), nil
}

// Part2 counts increases of three-measurement sliding window sums.
func Part2(input string) (int, error) {
	depths, err := parse.Fields[int](input)
	if err != nil {
		return 0, fmt.Errorf("parse depths: %w", err)
	}
	return increases(depths, 3), nil
}

// Consecutive windows share all but their end points, so comparing the end
// points is enough.
func increases(depths []int, window int) int {
	n := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}
