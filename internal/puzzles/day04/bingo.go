// Package day04 plays bingo against a giant squid.
package day04

import (
	"errors"
	"fmt"

	"github.com/jayconrod/advent-of-code-2021/internal/parse"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

const size = 5

var (
	ErrBadBoard = errors.New("day04: bad board")
	ErrNoWinner = errors.New("day04: all numbers called and nobody won")
)

func Register(r *puzzle.Registry) error {
	if err := r.Register(puzzle.Puzzle{Day: 4, Part: 1, Title: "Giant Squid", Solve: puzzle.Adapt(Part1)}); err != nil {
		return err
	}
	return r.Register(puzzle.Puzzle{Day: 4, Part: 2, Title: "Giant Squid", Solve: puzzle.Adapt(Part2)})
}

type board struct {
	squares [size * size]int
	marked  [size * size]bool
}

// mark marks n and returns the board score if the board has now won.
func (b *board) mark(n int) (int, bool) {
	for i, v := range b.squares {
		if v == n {
			b.marked[i] = true
		}
	}
	if !b.won() {
		return 0, false
	}
	unmarked := 0
	for i, v := range b.squares {
		if !b.marked[i] {
			unmarked += v
		}
	}
	return unmarked * n, true
}

func (b *board) won() bool {
	for i := 0; i < size; i++ {
		row, col := true, true
		for j := 0; j < size; j++ {
			row = row && b.marked[i*size+j]
			col = col && b.marked[j*size+i]
		}
		if row || col {
			return true
		}
	}
	return false
}

type game struct {
	numbers []int
	boards  []*board
}

func parseGame(input string) (game, error) {
	lines := parse.Lines(input)
	if len(lines) == 0 {
		return game{}, parse.ErrEmpty
	}
	numbers, err := parse.Separated[int](lines[0], ",")
	if err != nil {
		return game{}, fmt.Errorf("numbers line: %w", err)
	}
	rows := lines[1:]
	if len(rows)%size != 0 {
		return game{}, fmt.Errorf("%w: incomplete board", ErrBadBoard)
	}
	g := game{numbers: numbers}
	for i := 0; i < len(rows); i += size {
		b := &board{}
		for r := 0; r < size; r++ {
			squares, err := parse.Fields[int](rows[i+r])
			if err != nil {
				return game{}, fmt.Errorf("%w: %w", ErrBadBoard, err)
			}
			if len(squares) != size {
				return game{}, fmt.Errorf("%w: bingo row must contain %d numbers", ErrBadBoard, size)
			}
			copy(b.squares[r*size:], squares)
		}
		g.boards = append(g.boards, b)
	}
	return g, nil
}

// Part1 returns the score of the first board to win.
func Part1(input string) (int, error) {
	g, err := parseGame(input)
	if err != nil {
		return 0, err
	}
	for _, n := range g.numbers {
		for _, b := range g.boards {
			if score, ok := b.mark(n); ok {
				return score, nil
			}
		}
	}
	return 0, ErrNoWinner
}

// Part2 returns the score of the board that wins last.
func Part2(input string) (int, error) {
	g, err := parseGame(input)
	if err != nil {
		return 0, err
	}
	lastMoves, lastScore := -1, 0
	for _, b := range g.boards {
		for i, n := range g.numbers {
			score, ok := b.mark(n)
			if !ok {
				continue
			}
			if i >= lastMoves {
				lastMoves, lastScore = i, score
			}
			break
		}
	}
	if lastMoves < 0 {
		return 0, ErrNoWinner
	}
	return lastScore, nil
}
