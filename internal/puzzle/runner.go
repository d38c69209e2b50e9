package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jayconrod/advent-of-code-2021/internal/observability"
	"github.com/rs/zerolog/log"
)

const DefaultDataDir = "data"

// Result is the outcome of one puzzle run.
type Result struct {
	RunID   string
	Name    string
	Answer  any
	Elapsed time.Duration
}

// Runner loads inputs from DataDir and dispatches to registered puzzles.
type Runner struct {
	Registry *Registry
	DataDir  string
}

func NewRunner(reg *Registry, dataDir string) *Runner {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	return &Runner{Registry: reg, DataDir: dataDir}
}

// InputPath returns the input file for the named puzzle.
func InputPath(dataDir, name string) string {
	return filepath.Join(dataDir, name+".txt")
}

// LoadInput reads the input file for the named puzzle.
func (r *Runner) LoadInput(name string) (string, error) {
	path := InputPath(r.DataDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	log.Debug().Str("puzzle", name).Str("path", path).Int("bytes", len(data)).Msg("loaded input")
	observability.RecordInput(name, len(data))
	return string(data), nil
}

// Run loads the input for name and solves it.
func (r *Runner) Run(name string) (Result, error) {
	p, ok := r.Registry.Resolve(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownPuzzle, name)
	}
	input, err := r.LoadInput(p.Name())
	if err != nil {
		return Result{}, err
	}
	return r.Solve(p, input)
}

// Solve runs p against input, logging and recording the outcome.
func (r *Runner) Solve(p Puzzle, input string) (Result, error) {
	res := Result{RunID: uuid.NewString(), Name: p.Name()}
	start := time.Now()
	answer, err := p.Solve(input)
	res.Elapsed = time.Since(start)
	observability.RecordPuzzleRun(res.Name, res.Elapsed, err)
	if err != nil {
		log.Error().
			Str("run_id", res.RunID).
			Str("puzzle", res.Name).
			Err(err).
			Msg("puzzle failed")
		return res, fmt.Errorf("puzzle %s: %w", res.Name, err)
	}
	res.Answer = answer
	log.Info().
		Str("run_id", res.RunID).
		Str("puzzle", res.Name).
		Str("title", p.Title).
		Dur("elapsed", res.Elapsed).
		Msg("puzzle solved")
	return res, nil
}
