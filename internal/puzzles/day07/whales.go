// Package day07 aligns crab submarines at the cheapest position.
package day07

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 7, Part: 1, Title: "The Treachery of Whales", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 7, Part: 2, Title: "The Treachery of Whales", Solve: puzzle.Adapt(Part2)})
}

// cost is the fuel needed to move a distance.
type cost func(distance int) int

func linear(d int) int { return d }

func triangular(d int) int { return d * (d + 1) / 2 }

func cheapest(input string, fuel cost) (int, error) {
	crabs, err := parse.Separated[int](strings.TrimSpace(input), ",")
	if err != nil {
		return 0, fmt.Errorf("parse positions: %w", err)
	}
	lo, hi := slices.Min(crabs), slices.Max(crabs)
	best := math.MaxInt
	for target := lo; target <= hi; target++ {
		total := 0
		for _, c := range crabs {
			d := c - target
			if d < 0 {
				d = -d
			}
			total += fuel(d)
		}
		best = min(best, total)
	}
	return best, nil
}

// Part1 returns the least fuel when each step costs one.
func Part1(input string) (int, error) {
	return cheapest(input, linear)
}

// Part2 returns the least fuel when each further step costs one more.
func Part2(input string) (int, error) {
	return cheapest(input, triangular)
}
