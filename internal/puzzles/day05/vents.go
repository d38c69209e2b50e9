// Package day05 maps overlapping hydrothermal vent lines.
package day05

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

var ErrBadSegment = errors.New("day05: bad line segment")

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 5, Part: 1, Title: "Hydrothermal Venture", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 5, Part: 2, Title: "Hydrothermal Venture", Solve: puzzle.Adapt(Part2)})
}

type point struct {
	x, y int
}

type segment struct {
	a, b point
}

func (s segment) axisAligned() bool {
	return s.a.x == s.b.x || s.a.y == s.b.y
}

func parsePoint(s string) (point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return point{}, fmt.Errorf("%w: expected ','", ErrBadSegment)
	}
	x, err := parse.Int[int](xs)
	if err != nil {
		return point{}, fmt.Errorf("%w: %w", ErrBadSegment, err)
	}
	y, err := parse.Int[int](ys)
	if err != nil {
		return point{}, fmt.Errorf("%w: %w", ErrBadSegment, err)
	}
	if x < 0 || y < 0 {
		return point{}, fmt.Errorf("%w: negative coordinate", ErrBadSegment)
	}
	return point{x, y}, nil
}

func parseSegments(input string) ([]segment, error) {
	var out []segment
	for i, line := range parse.Lines(input) {
		from, to, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected ->", ErrBadSegment, i+1)
		}
		a, err := parsePoint(from)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		b, err := parsePoint(to)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		s := segment{a, b}
		if !s.axisAligned() && abs(a.x-b.x) != abs(a.y-b.y) {
			return nil, fmt.Errorf("%w: line %d: not horizontal, vertical or diagonal", ErrBadSegment, i+1)
		}
		out = append(out, s)
	}
	return out, nil
}

// floor counts vents per point.
type floor struct {
	width int
	vents []int
}

func newFloor(segments []segment) *floor {
	maxX, maxY := 0, 0
	for _, s := range segments {
		maxX = max(maxX, s.a.x, s.b.x)
		maxY = max(maxY, s.a.y, s.b.y)
	}
	return &floor{width: maxX + 1, vents: make([]int, (maxX+1)*(maxY+1))}
}

func (f *floor) add(s segment) {
	dx, dy := sign(s.b.x-s.a.x), sign(s.b.y-s.a.y)
	n := max(abs(s.b.x-s.a.x), abs(s.b.y-s.a.y))
	x, y := s.a.x, s.a.y
	for i := 0; i <= n; i++ {
		f.vents[y*f.width+x]++
		x += dx
		y += dy
	}
}

func (f *floor) dangerPoints() int {
	n := 0
	for _, v := range f.vents {
		if v >= 2 {
			n++
		}
	}
	return n
}

func solve(input string, diagonals bool) (int, error) {
	segments, err := parseSegments(input)
	if err != nil {
		return 0, err
	}
	f := newFloor(segments)
	for _, s := range segments {
		if diagonals || s.axisAligned() {
			f.add(s)
		}
	}
	return f.dangerPoints(), nil
}

// Part1 counts points covered by at least two horizontal or vertical lines.
func Part1(input string) (int, error) {
	return solve(input, false)
}

// Part2 is Part1 including 45 degree diagonals.
func Part2(input string) (int, error) {
	return solve(input, true)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
