// Package day15 finds the lowest-risk path through a cave of chitons.
package day15

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

const (
	tiles   = 5
	maxRisk = 9
)

var ErrUnreachable = errors.New("day15: bottom right corner is unreachable")

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 15, Part: 1, Title: "Chiton", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 15, Part: 2, Title: "Chiton", Solve: puzzle.Adapt(Part2)})
}

// riskGraph is a weighted directed graph over grid cells. Node IDs are cell
// indexes; moving onto a cell costs that cell's risk.
type riskGraph struct {
	grid parse.Grid
}

var _ graph.Weighted = riskGraph{}

func (g riskGraph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(g.grid.Cells)) {
		return nil
	}
	return simple.Node(id)
}

func (g riskGraph) Nodes() graph.Nodes {
	nodes := make([]graph.Node, len(g.grid.Cells))
	for i := range nodes {
		nodes[i] = simple.Node(i)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g riskGraph) From(id int64) graph.Nodes {
	if g.Node(id) == nil {
		return graph.Empty
	}
	x, y := int(id)%g.grid.Width, int(id)/g.grid.Width
	adj := g.grid.Neighbors4(x, y)
	nodes := make([]graph.Node, len(adj))
	for i, n := range adj {
		nodes[i] = simple.Node(n)
	}
	return iterator.NewOrderedNodes(nodes)
}

func (g riskGraph) adjacent(xid, yid int64) bool {
	if g.Node(xid) == nil || g.Node(yid) == nil {
		return false
	}
	w := int64(g.grid.Width)
	dx, dy := xid%w-yid%w, xid/w-yid/w
	return dx*dx+dy*dy == 1
}

func (g riskGraph) HasEdgeBetween(xid, yid int64) bool {
	return g.adjacent(xid, yid)
}

func (g riskGraph) Edge(uid, vid int64) graph.Edge {
	return g.WeightedEdge(uid, vid)
}

func (g riskGraph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if !g.adjacent(uid, vid) {
		return nil
	}
	return simple.WeightedEdge{F: simple.Node(uid), T: simple.Node(vid), W: float64(g.grid.Cells[vid])}
}

func (g riskGraph) Weight(xid, yid int64) (float64, bool) {
	if xid == yid && g.Node(xid) != nil {
		return 0, true
	}
	if !g.adjacent(xid, yid) {
		return math.Inf(1), false
	}
	return float64(g.grid.Cells[yid]), true
}

// lowestRisk returns the least total risk from the top left to the bottom
// right corner. The starting cell's risk is not counted.
func lowestRisk(grid parse.Grid) (int, error) {
	g := riskGraph{grid: grid}
	shortest := path.DijkstraFrom(simple.Node(0), g)
	w := shortest.WeightTo(int64(len(grid.Cells) - 1))
	if math.IsInf(w, 1) {
		return 0, ErrUnreachable
	}
	return int(w), nil
}

// tile repeats grid n times in each direction. Each tile step right or down
// adds one to every risk, wrapping from 9 back to 1.
func tile(grid parse.Grid, n int) parse.Grid {
	out := parse.Grid{Width: grid.Width * n, Height: grid.Height * n}
	out.Cells = make([]int, out.Width*out.Height)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			risk := grid.At(x%grid.Width, y%grid.Height) + x/grid.Width + y/grid.Height
			for risk > maxRisk {
				risk -= maxRisk
			}
			out.Cells[out.Index(x, y)] = risk
		}
	}
	return out
}

// Part1 returns the lowest total risk across the map.
func Part1(input string) (int, error) {
	grid, err := parse.DigitGrid(input)
	if err != nil {
		return 0, fmt.Errorf("parse risk map: %w", err)
	}
	return lowestRisk(grid)
}

// Part2 returns the lowest total risk across the map tiled five times in
// each direction.
func Part2(input string) (int, error) {
	grid, err := parse.DigitGrid(input)
	if err != nil {
		return 0, fmt.Errorf("parse risk map: %w", err)
	}
	return lowestRisk(tile(grid, tiles))
}
