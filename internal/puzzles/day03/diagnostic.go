// Package day03 decodes the submarine's binary diagnostic report.
package day03

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

var ErrNoRating = errors.New("day03: rating not unique")

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 3, Part: 1, Title: "Binary Diagnostic", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 3, Part: 2, Title: "Binary Diagnostic", Solve: puzzle.Adapt(Part2)})
}

type report struct {
	values []uint
	width  int
}

func parseReport(input string) (report, error) {
	var rep report
	for i, line := range parse.Lines(input) {
		if rep.width == 0 {
			rep.width = len(line)
		} else if len(line) != rep.width {
			return report{}, fmt.Errorf("line %d: different length %d than earlier lines %d", i+1, len(line), rep.width)
		}
		v, err := strconv.ParseUint(line, 2, 64)
		if err != nil {
			return report{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		rep.values = append(rep.values, uint(v))
	}
	if len(rep.values) == 0 {
		return report{}, parse.ErrEmpty
	}
	return rep, nil
}

func (r report) mask() uint {
	return 1<<r.width - 1
}

// mostCommon sets each bit that is 1 in at least half of values; ties go to 1.
func mostCommon(values []uint, width int) uint {
	half := (len(values) + 1) / 2
	var out uint
	for i := 0; i < width; i++ {
		bit := uint(1) << (width - i - 1)
		count := 0
		for _, v := range values {
			if v&bit != 0 {
				count++
			}
		}
		if count >= half {
			out |= bit
		}
	}
	return out
}

// Part1 returns the power consumption, gamma times epsilon.
func Part1(input string) (int, error) {
	rep, err := parseReport(input)
	if err != nil {
		return 0, err
	}
	gamma := mostCommon(rep.values, rep.width)
	epsilon := gamma ^ rep.mask()
	return int(gamma * epsilon), nil
}

// Part2 returns the life support rating, O2 generator times CO2 scrubber.
func Part2(input string) (int, error) {
	rep, err := parseReport(input)
	if err != nil {
		return 0, err
	}
	o2, err := rep.rating(func(common uint) uint { return common })
	if err != nil {
		return 0, fmt.Errorf("o2 generator: %w", err)
	}
	co2, err := rep.rating(func(common uint) uint { return common ^ rep.mask() })
	if err != nil {
		return 0, fmt.Errorf("co2 scrubber: %w", err)
	}
	return int(o2 * co2), nil
}

// rating filters candidates bit by bit, keeping those matching criteria at
// the current position, until one remains.
func (r report) rating(criteria func(common uint) uint) (uint, error) {
	candidates := append([]uint(nil), r.values...)
	for i := 0; i < r.width && len(candidates) > 1; i++ {
		want := criteria(mostCommon(candidates, r.width))
		bit := uint(1) << (r.width - i - 1)
		kept := candidates[:0]
		for _, v := range candidates {
			if (v^want)&bit == 0 {
				kept = append(kept, v)
			}
		}
		candidates = kept
	}
	if len(candidates) != 1 {
		return 0, fmt.Errorf("%w: %d candidates", ErrNoRating, len(candidates))
	}
	return candidates[0], nil
}
