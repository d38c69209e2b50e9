// Package parse holds the text helpers shared by the puzzle solvers.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	ErrEmpty     = errors.New("parse: empty input")
	ErrNotNumber = errors.New("parse: not a number")
	ErrRagged    = errors.New("parse: ragged grid")
	ErrNotDigit  = errors.New("parse: not a digit")
)

// Int parses one base-10 integer into T, rejecting values T cannot hold.
func Int[T constraints.Integer](s string) (T, error) {
	var zero T
	signed := zero-1 < zero
	if signed {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || int64(T(v)) != v {
			return zero, fmt.Errorf("%w: %q", ErrNotNumber, s)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return zero, fmt.Errorf("%w: %q", ErrNotNumber, s)
	}
	return T(v), nil
}

// Separated parses a sep-separated list of integers.
func Separated[T constraints.Integer](s, sep string) ([]T, error) {
	if s == "" {
		return nil, ErrEmpty
	}
	words := strings.Split(s, sep)
	out := make([]T, 0, len(words))
	for _, w := range words {
		v, err := Int[T](strings.TrimSpace(w))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Fields parses a whitespace-separated list of integers.
func Fields[T constraints.Integer](s string) ([]T, error) {
	words := strings.Fields(s)
	out := make([]T, 0, len(words))
	for _, w := range words {
		v, err := Int[T](w)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Lines splits s into lines, dropping blank ones and trailing carriage
// returns.
func Lines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
