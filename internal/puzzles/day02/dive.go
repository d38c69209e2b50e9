// Package day02 steers the submarine.
package day02

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

var ErrBadCommand = errors.New("day02: bad command")

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 2, Part: 1, Title: "Dive!", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 2, Part: 2, Title: "Dive!", Solve: puzzle.Adapt(Part2)})
}

type command struct {
	dir string
	n   int
}

func parseCommands(input string) ([]command, error) {
	var out []command
	for i, line := range parse.Lines(input) {
		words := strings.Fields(line)
		if len(words) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected exactly 2 words", ErrBadCommand, i+1)
		}
		n, err := parse.Int[int](words[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadCommand, i+1, err)
		}
		switch words[0] {
		case "forward", "down", "up":
		default:
			return nil, fmt.Errorf("%w: line %d: unknown command %q", ErrBadCommand, i+1, words[0])
		}
		out = append(out, command{dir: words[0], n: n})
	}
	return out, nil
}

// Part1 returns horizontal position times depth.
func Part1(input string) (int, error) {
	cmds, err := parseCommands(input)
	if err != nil {
		return 0, err
	}
	hpos, depth := 0, 0
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			hpos += c.n
		case "down":
			depth += c.n
		case "up":
			depth -= c.n
		}
	}
	return hpos * depth, nil
}

// Part2 is Part1 where up and down adjust aim instead of depth.
func Part2(input string) (int, error) {
	cmds, err := parseCommands(input)
	if err != nil {
		return 0, err
	}
	hpos, depth, aim := 0, 0, 0
	for _, c := range cmds {
		switch c.dir {
		case "forward":
			hpos += c.n
			depth += aim * c.n
		case "down":
			aim += c.n
		case "up":
			aim -= c.n
		}
	}
	return hpos * depth, nil
}
