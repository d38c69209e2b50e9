// Package day06 simulates a lanternfish population by timer buckets.
package day06

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

const (
	resetTimer = 6
	newTimer   = 8
)

var ErrBadTimer = errors.New("day06: timer out of range")

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 6, Part: 1, Title: "Lanternfish", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 6, Part: 2, Title: "Lanternfish", Solve: puzzle.Adapt(Part2)})
}

// school counts fish by timer value.
type school [newTimer + 1]int

func parseSchool(input string) (school, error) {
	var s school
	timers, err := parse.Separated[int](strings.TrimSpace(input), ",")
	if err != nil {
		return s, fmt.Errorf("parse timers: %w", err)
	}
	for _, t := range timers {
		if t < 0 || t > newTimer {
			return s, fmt.Errorf("%w: %d", ErrBadTimer, t)
		}
		s[t]++
	}
	return s, nil
}

func (s *school) step() {
	spawning := s[0]
	copy(s[:], s[1:])
	s[newTimer] = spawning
	s[resetTimer] += spawning
}

func (s *school) total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

func simulate(input string, days int) (int, error) {
	s, err := parseSchool(input)
	if err != nil {
		return 0, err
	}
	for i := 0; i < days; i++ {
		s.step()
	}
	return s.total(), nil
}

// Part1 returns the population after 80 days.
func Part1(input string) (int, error) {
	return simulate(input, 80)
}

// Part2 returns the population after 256 days.
func Part2(input string) (int, error) {
	return simulate(input, 256)
}
