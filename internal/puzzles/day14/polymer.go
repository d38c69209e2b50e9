// Package day14 grows polymers by pair insertion.
package day14

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

var (
	ErrBadTemplate = errors.New("day14: bad polymer template")
	ErrBadRule     = errors.New("day14: bad insertion rule")
)

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 14, Part: 1, Title: "Extended Polymerization", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 14, Part: 2, Title: "Extended Polymerization", Solve: puzzle.Adapt(Part2)})
}

type pair [2]byte

type manual struct {
	template string
	rules    map[pair]byte
}

func parseManual(input string) (manual, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return manual{}, parse.ErrEmpty
	}
	m := manual{template: strings.TrimSpace(lines[0]), rules: make(map[pair]byte)}
	if len(m.template) < 2 {
		return manual{}, fmt.Errorf("%w: %q", ErrBadTemplate, m.template)
	}
	for i, line := range lines[1:] {
		from, to, ok := strings.Cut(strings.TrimSpace(line), " -> ")
		if !ok || len(from) != 2 || len(to) != 1 {
			return manual{}, fmt.Errorf("%w: line %d: %q", ErrBadRule, i+2, line)
		}
		p := pair{from[0], from[1]}
		if _, dup := m.rules[p]; dup {
			return manual{}, fmt.Errorf("%w: line %d: duplicate rule for %s", ErrBadRule, i+2, from)
		}
		m.rules[p] = to[0]
	}
	return m, nil
}

// expand applies the rules once, building the whole new polymer.
func (m manual) expand(polymer string) string {
	var b strings.Builder
	b.Grow(2*len(polymer) - 1)
	for i := 0; i < len(polymer)-1; i++ {
		b.WriteByte(polymer[i])
		if c, ok := m.rules[pair{polymer[i], polymer[i+1]}]; ok {
			b.WriteByte(c)
		}
	}
	b.WriteByte(polymer[len(polymer)-1])
	return b.String()
}

type histogram map[byte]int

func (h histogram) add(o histogram) {
	for c, n := range o {
		h[c] += n
	}
}

// spread is the most common element count minus the least common.
func (h histogram) spread() int {
	lo, hi := math.MaxInt, 0
	for _, n := range h {
		lo, hi = min(lo, n), max(hi, n)
	}
	return hi - lo
}

type memoKey struct {
	p     pair
	steps int
}

// counter counts the elements inserted between the two elements of a pair
// over some number of steps. The ends of the pair are not counted.
type counter struct {
	rules map[pair]byte
	memo  map[memoKey]histogram
}

func (c *counter) between(p pair, steps int) histogram {
	if steps == 0 {
		return nil
	}
	k := memoKey{p, steps}
	if h, ok := c.memo[k]; ok {
		return h
	}
	h := make(histogram)
	if mid, ok := c.rules[p]; ok {
		h[mid]++
		h.add(c.between(pair{p[0], mid}, steps-1))
		h.add(c.between(pair{mid, p[1]}, steps-1))
	}
	c.memo[k] = h
	return h
}

func (m manual) count(steps int) histogram {
	c := &counter{rules: m.rules, memo: make(map[memoKey]histogram)}
	h := make(histogram)
	for i := 0; i < len(m.template); i++ {
		h[m.template[i]]++
	}
	for i := 0; i < len(m.template)-1; i++ {
		h.add(c.between(pair{m.template[i], m.template[i+1]}, steps))
	}
	return h
}

// Part1 expands the polymer for 10 steps and returns the spread of element
// counts.
func Part1(input string) (int, error) {
	m, err := parseManual(input)
	if err != nil {
		return 0, err
	}
	polymer := m.template
	for i := 0; i < 10; i++ {
		polymer = m.expand(polymer)
	}
	h := make(histogram)
	for i := 0; i < len(polymer); i++ {
		h[polymer[i]]++
	}
	return h.spread(), nil
}

// Part2 returns the spread after 40 steps, counting elements per pair
// instead of building the polymer.
func Part2(input string) (int, error) {
	m, err := parseManual(input)
	if err != nil {
		return 0, err
	}
	return m.count(40).spread(), nil
}
