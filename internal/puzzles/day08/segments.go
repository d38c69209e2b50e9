// Package day08 decodes scrambled seven-segment displays.
package day08

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

const (
	patternCount = 10
	outputCount  = 4
)

var (
	ErrBadEntry  = errors.New("day08: bad entry")
	ErrAmbiguous  = errors.New("day08: patterns do not decode")
)

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 8, Part: 1, Title: "Seven Segment Search", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 8, Part: 2, Title: "Seven Segment Search", Solve: puzzle.Adapt(Part2)})
}

// wires is a set of lit segments, bit 0 for 'a' through bit 6 for 'g'.
type wires uint8

func (w wires) count() int {
	return bits.OnesCount8(uint8(w))
}

func (w wires) shared(o wires) int {
	return (w & o).count()
}

func parseWires(s string) (wires, error) {
	var w wires
	for _, c := range s {
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("%w: segment %q", ErrBadEntry, c)
		}
		w |= 1 << (c - 'a')
	}
	return w, nil
}

type entry struct {
	patterns [patternCount]wires
	outputs  [outputCount]wires
}

func parseEntries(input string) ([]entry, error) {
	var out []entry
	for i, line := range parse.Lines(input) {
		words := strings.Fields(line)
		if len(words) != patternCount+1+outputCount || words[patternCount] != "|" {
			return nil, fmt.Errorf("%w: line %d: want 10 patterns, '|' and 4 outputs", ErrBadEntry, i+1)
		}
		var e entry
		for j := 0; j < patternCount; j++ {
			w, err := parseWires(words[j])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			e.patterns[j] = w
		}
		for j := 0; j < outputCount; j++ {
			w, err := parseWires(words[patternCount+1+j])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			e.outputs[j] = w
		}
		out = append(out, e)
	}
	return out, nil
}

// decode works out which pattern shows which digit. Digits 1, 4, 7 and 8
// have unique segment counts; the rest are told apart by overlap with 1 and 4.
func (e entry) decode() (map[wires]int, error) {
	var one, four wires
	for _, p := range e.patterns {
		switch p.count() {
		case 2:
			one = p
		case 4:
			four = p
		}
	}
	if one == 0 || four == 0 {
		return nil, fmt.Errorf("%w: missing 1 or 4", ErrAmbiguous)
	}
	digits := make(map[wires]int, patternCount)
	for _, p := range e.patterns {
		var d int
		switch p.count() {
		case 2:
			d = 1
		case 3:
			d = 7
		case 4:
			d = 4
		case 7:
			d = 8
		case 5:
			switch {
			case p.shared(one) == 2:
				d = 3
			case p.shared(four&^one) == 2:
				d = 5
			default:
				d = 2
			}
		case 6:
			switch {
			case p.shared(four) == 4:
				d = 9
			case p.shared(one) == 2:
				d = 0
			default:
				d = 6
			}
		default:
			return nil, fmt.Errorf("%w: %d segments lit", ErrAmbiguous, p.count())
		}
		digits[p] = d
	}
	if len(digits) != patternCount {
		return nil, fmt.Errorf("%w: duplicate patterns", ErrAmbiguous)
	}
	return digits, nil
}

// Part1 counts output digits that are 1, 4, 7 or 8.
func Part1(input string) (int, error) {
	entries, err := parseEntries(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		for _, o := range e.outputs {
			switch o.count() {
			case 2, 3, 4, 7:
				n++
			}
		}
	}
	return n, nil
}

// Part2 decodes every four-digit output value and sums them.
func Part2(input string) (int, error) {
	entries, err := parseEntries(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i, e := range entries {
		digits, err := e.decode()
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		value := 0
		for _, o := range e.outputs {
			d, ok := digits[o]
			if !ok {
				return 0, fmt.Errorf("%w: line %d: output is not one of the patterns", ErrAmbiguous, i+1)
			}
			value = value*10 + d
		}
		sum += value
	}
	return sum, nil
}
