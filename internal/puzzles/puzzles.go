// Package puzzles wires every day's solvers into one registry.
package puzzles

import (
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day01"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day02"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day03"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day04"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day05"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day06"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day07"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day08"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day09"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day10"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day11"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day12"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day13"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day14"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day15"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles/day16"
)

var registrations = []func(*puzzle.Registry) error{
	day01.Register,
	day02.Register,
	day03.Register,
	day04.Register,
	day05.Register,
	day06.Register,
	day07.Register,
	day08.Register,
	day09.Register,
	day10.Register,
	day11.Register,
	day12.Register,
	day13.Register,
	day14.Register,
	day15.Register,
	day16.Register,
}

// Registry returns a registry holding both parts of every day.
func Registry() (*puzzle.Registry, error) {
	r := puzzle.NewRegistry()
	for _, register := range registrations {
		if err := register(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}
