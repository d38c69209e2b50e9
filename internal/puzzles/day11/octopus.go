// Package day11 simulates flashing dumbo octopuses.
package day11

import (
	"errors"
	"fmt"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

const (
	flashLevel = 9
	maxSteps   = 1 << 20
)

var ErrNeverSynchronized = errors.New("day11: octopuses never flash together")

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 11, Part: 1, Title: "Dumbo Octopus", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 11, Part: 2, Title: "Dumbo Octopus", Solve: puzzle.Adapt(Part2)})
}

// step advances the grid one step and returns the number of flashes.
func step(g parse.Grid) int {
	var queue []int
	for i := range g.Cells {
		g.Cells[i]++
		if g.Cells[i] > flashLevel {
			queue = append(queue, i)
		}
	}
	flashed := make([]bool, len(g.Cells))
	flashes := 0
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if flashed[i] {
			continue
		}
		flashed[i] = true
		flashes++
		for _, n := range g.Neighbors8(i%g.Width, i/g.Width) {
			g.Cells[n]++
			if g.Cells[n] > flashLevel && !flashed[n] {
				queue = append(queue, n)
			}
		}
	}
	for i, f := range flashed {
		if f {
			g.Cells[i] = 0
		}
	}
	return flashes
}

// Part1 counts flashes over 100 steps.
func Part1(input string) (int, error) {
	g, err := parse.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	total := 0
	for i := 0; i < 100; i++ {
		total += step(g)
	}
	return total, nil
}

// Part2 returns the first step on which every octopus flashes.
func Part2(input string) (int, error) {
	g, err := parse.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	for i := 1; i <= maxSteps; i++ {
		if step(g) == len(g.Cells) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w after %d steps", ErrNeverSynchronized, maxSteps)
}
