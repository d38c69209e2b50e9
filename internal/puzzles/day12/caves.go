// Package day12 counts paths through a cave system.
package day12

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

const (
	startCave = "start"
	endCave   = "end"
)

var (
	ErrBadPassage = errors.New("day12: bad passage")
	ErrNoStartEnd = errors.New("day12: missing start or end cave")
	ErrBigLoop    = errors.New("day12: two big caves are connected")
)

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 12, Part: 1, Title: "Passage Pathing", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 12, Part: 2, Title: "Passage Pathing", Solve: puzzle.Adapt(Part2)})
}

// caveSystem is an undirected graph of caves. Node IDs index names.
type caveSystem struct {
	g     *simple.UndirectedGraph
	names []string
	ids   map[string]int64
}

func (c *caveSystem) node(name string) graph.Node {
	if id, ok := c.ids[name]; ok {
		return c.g.Node(id)
	}
	n := simple.Node(len(c.names))
	c.g.AddNode(n)
	c.ids[name] = n.ID()
	c.names = append(c.names, name)
	return n
}

func (c *caveSystem) small(id int64) bool {
	name := c.names[id]
	return name != "" && unicode.IsLower(rune(name[0]))
}

func parseCaves(input string) (*caveSystem, error) {
	c := &caveSystem{g: simple.NewUndirectedGraph(), ids: make(map[string]int64)}
	for i, line := range parse.Lines(input) {
		a, b, ok := strings.Cut(strings.TrimSpace(line), "-")
		if !ok || a == "" || b == "" {
			return nil, fmt.Errorf("%w: line %d: want a-b", ErrBadPassage, i+1)
		}
		if a == b {
			return nil, fmt.Errorf("%w: line %d: %s connects to itself", ErrBadPassage, i+1, a)
		}
		u, v := c.node(a), c.node(b)
		if !c.small(u.ID()) && !c.small(v.ID()) {
			// Paths could bounce between them forever.
			return nil, fmt.Errorf("%w: line %d: %s-%s", ErrBigLoop, i+1, a, b)
		}
		c.g.SetEdge(c.g.NewEdge(u, v))
	}
	if _, ok := c.ids[startCave]; !ok {
		return nil, ErrNoStartEnd
	}
	if _, ok := c.ids[endCave]; !ok {
		return nil, ErrNoStartEnd
	}
	return c, nil
}

// paths counts distinct paths from start to end. Small caves are visited at
// most once, except that one small cave other than start and end may be
// visited twice if spareVisit is set.
func (c *caveSystem) paths(spareVisit bool) int {
	start, end := c.ids[startCave], c.ids[endCave]
	visits := make([]int, len(c.names))
	var walk func(id int64, spare bool) int
	walk = func(id int64, spare bool) int {
		if id == end {
			return 1
		}
		visits[id]++
		defer func() { visits[id]-- }()
		n := 0
		to := c.g.From(id)
		for to.Next() {
			next := to.Node().ID()
			switch {
			case next == start:
			case !c.small(next) || visits[next] == 0:
				n += walk(next, spare)
			case spare && next != end:
				n += walk(next, false)
			}
		}
		return n
	}
	return walk(start, spareVisit)
}

// Part1 counts paths that visit each small cave at most once.
func Part1(input string) (int, error) {
	c, err := parseCaves(input)
	if err != nil {
		return 0, err
	}
	return c.paths(false), nil
}

// Part2 counts paths that may visit one small cave twice.
func Part2(input string) (int, error) {
	c, err := parseCaves(input)
	if err != nil {
		return 0, err
	}
	return c.paths(true), nil
}
