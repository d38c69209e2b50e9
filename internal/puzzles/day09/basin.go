// Package day09 finds low points and basins on a heightmap.
package day09

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

// ridge heights belong to no basin.
const ridge = 9

var (
	ErrFlat      = errors.New("day09: point has no lower neighbour and is not a low point")
	ErrFewBasins  = errors.New("day09: fewer than three basins")
)

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 9, Part: 1, Title: "Smoke Basin", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 9, Part: 2, Title: "Smoke Basin", Solve: puzzle.Adapt(Part2)})
}

func isLow(g parse.Grid, x, y int) bool {
	h := g.At(x, y)
	for _, n := range g.Neighbors4(x, y) {
		if g.Cells[n] <= h {
			return false
		}
	}
	return true
}

// Part1 sums the risk level, height plus one, of every low point.
func Part1(input string) (int, error) {
	g, err := parse.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	risk := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if isLow(g, x, y) {
				risk += g.At(x, y) + 1
			}
		}
	}
	return risk, nil
}

// Part2 multiplies the sizes of the three largest basins. Every point below
// the ridge height drains to its lowest strictly lower neighbour until it
// reaches a low point.
func Part2(input string) (int, error) {
	g, err := parse.DigitGrid(input)
	if err != nil {
		return 0, err
	}
	// sink[i] is the low point cell i drains to, or -1 if unknown.
	sink := make([]int, len(g.Cells))
	for i := range sink {
		sink[i] = -1
	}
	var drain func(i int) (int, error)
	drain = func(i int) (int, error) {
		if sink[i] >= 0 {
			return sink[i], nil
		}
		x, y := i%g.Width, i/g.Width
		if isLow(g, x, y) {
			sink[i] = i
			return i, nil
		}
		next := -1
		for _, n := range g.Neighbors4(x, y) {
			if g.Cells[n] < g.Cells[i] && (next < 0 || g.Cells[n] < g.Cells[next]) {
				next = n
			}
		}
		if next < 0 {
			return 0, fmt.Errorf("%w: %d,%d", ErrFlat, x, y)
		}
		s, err := drain(next)
		if err != nil {
			return 0, err
		}
		sink[i] = s
		return s, nil
	}

	sizes := make(map[int]int)
	for i, h := range g.Cells {
		if h >= ridge {
			continue
		}
		s, err := drain(i)
		if err != nil {
			return 0, err
		}
		sizes[s]++
	}
	if len(sizes) < 3 {
		return 0, fmt.Errorf("%w: found %d", ErrFewBasins, len(sizes))
	}
	all := make([]int, 0, len(sizes))
	for _, n := range sizes {
		all = append(all, n)
	}
	slices.Sort(all)
	slices.Reverse(all)
	return all[0] * all[1] * all[2], nil
}
