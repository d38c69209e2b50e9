package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrPuzzleExists  = errors.New("puzzle already registered")
	ErrInvalidPuzzle = errors.New("invalid puzzle")
	ErrUnknownPuzzle = errors.New("no such puzzle")
)

// Solver computes an answer from the raw puzzle input.
type Solver func(input string) (any, error)

// Adapt lifts a typed solver into a Solver.
func Adapt[T any](fn func(string) (T, error)) Solver {
	return func(input string) (any, error) {
		v, err := fn(input)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Puzzle is one part of one day.
type Puzzle struct {
	Day   int
	Part  int
	Title string
	Solve Solver
}

// Name is the dispatch key, e.g. "16_2".
func (p Puzzle) Name() string {
	return fmt.Sprintf("%d_%d", p.Day, p.Part)
}

// Registry stores puzzles by name.
type Registry struct {
	items map[string]Puzzle
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Puzzle)}
}

// Register adds p to the registry.
func (r *Registry) Register(p Puzzle) error {
	if p.Day < 1 || p.Day > 25 || (p.Part != 1 && p.Part != 2) {
		return fmt.Errorf("%w: day %d part %d", ErrInvalidPuzzle, p.Day, p.Part)
	}
	if p.Solve == nil {
		return fmt.Errorf("%w: %s has no solver", ErrInvalidPuzzle, p.Name())
	}
	if _, ok := r.items[p.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrPuzzleExists, p.Name())
	}
	r.items[p.Name()] = p
	return nil
}

// Resolve returns a puzzle by name.
func (r *Registry) Resolve(name string) (Puzzle, bool) {
	p, ok := r.items[strings.TrimSpace(name)]
	return p, ok
}

// List returns every puzzle ordered by day, then part.
func (r *Registry) List() []Puzzle {
	list := make([]Puzzle, 0, len(r.items))
	for _, p := range r.items {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Day != list[j].Day {
			return list[i].Day < list[j].Day
		}
		return list[i].Part < list[j].Part
	})
	return list
}

// ParseName splits a dispatch key such as "16_2" into day and part.
func ParseName(name string) (int, int, error) {
	dayRaw, partRaw, ok := strings.Cut(strings.TrimSpace(name), "_")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPuzzle, name)
	}
	day, err := strconv.Atoi(dayRaw)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPuzzle, name)
	}
	part, err := strconv.Atoi(partRaw)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPuzzle, name)
	}
	return day, part, nil
}
