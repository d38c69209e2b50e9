// Package day13 folds transparent paper covered in dots.
package day13

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

const foldPrefix = "fold along "

var (
	ErrBadDot  = errors.New("day13: bad dot")
	ErrBadFold  = errors.New("day13: bad fold")
	ErrNoFolds = errors.New("day13: no fold instructions")
)

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 13, Part: 1, Title: "Transparent Origami", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 13, Part: 2, Title: "Transparent Origami", Solve: puzzle.Adapt(Part2)})
}

type dot struct {
	x, y int
}

type fold struct {
	alongX bool
	at     int
}

// apply reflects d across the fold line. Dots on the line are kept as is.
func (f fold) apply(d dot) dot {
	if f.alongX && d.x > f.at {
		d.x = 2*f.at - d.x
	} else if !f.alongX && d.y > f.at {
		d.y = 2*f.at - d.y
	}
	return d
}

type paper map[dot]struct{}

func (p paper) fold(f fold) paper {
	out := make(paper, len(p))
	for d := range p {
		out[f.apply(d)] = struct{}{}
	}
	return out
}

func (p paper) render() string {
	if len(p) == 0 {
		return ""
	}
	minX, minY, maxX, maxY := math.MaxInt, math.MaxInt, math.MinInt, math.MinInt
	for d := range p {
		minX, maxX = min(minX, d.x), max(maxX, d.x)
		minY, maxY = min(minY, d.y), max(maxY, d.y)
	}
	// Keep the origin in frame.
	minX, minY = min(minX, 0), min(minY, 0)
	rows := make([]string, 0, maxY-minY+1)
	var b strings.Builder
	for y := minY; y <= maxY; y++ {
		b.Reset()
		for x := minX; x <= maxX; x++ {
			if _, ok := p[dot{x, y}]; ok {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func parseInstructions(input string) (paper, []fold, error) {
	p := make(paper)
	var folds []fold
	for i, line := range parse.Lines(input) {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, foldPrefix); ok {
			axis, at, ok := strings.Cut(rest, "=")
			if !ok || (axis != "x" && axis != "y") {
				return nil, nil, fmt.Errorf("%w: line %d: %q", ErrBadFold, i+1, line)
			}
			n, err := parse.Int[int](at)
			if err != nil || n < 0 {
				return nil, nil, fmt.Errorf("%w: line %d: %q", ErrBadFold, i+1, line)
			}
			folds = append(folds, fold{alongX: axis == "x", at: n})
			continue
		}
		if len(folds) > 0 {
			return nil, nil, fmt.Errorf("%w: line %d: dot after fold instructions", ErrBadDot, i+1)
		}
		coords, err := parse.Separated[int](line, ",")
		if err != nil || len(coords) != 2 || coords[0] < 0 || coords[1] < 0 {
			return nil, nil, fmt.Errorf("%w: line %d: %q", ErrBadDot, i+1, line)
		}
		p[dot{coords[0], coords[1]}] = struct{}{}
	}
	if len(folds) == 0 {
		return nil, nil, ErrNoFolds
	}
	return p, folds, nil
}

// Part1 counts visible dots after the first fold.
func Part1(input string) (int, error) {
	p, folds, err := parseInstructions(input)
	if err != nil {
		return 0, err
	}
	return len(p.fold(folds[0])), nil
}

// Part2 applies every fold and renders the dots, '#' for a dot and '.' for
// empty paper, one row per line.
func Part2(input string) (string, error) {
	p, folds, err := parseInstructions(input)
	if err != nil {
		return "", err
	}
	for _, f := range folds {
		p = p.fold(f)
	}
	return p.render(), nil
}
