package puzzle

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
)

func TestRunnerLoadsInputAndSolves(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1_1.txt"), []byte("a b c\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	r := NewRegistry()
	err := r.Register(Puzzle{Day: 1, Part: 1, Title: "Words", Solve: Adapt(func(in string) (int, error) {
		return len(strings.Fields(in)), nil
	})})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := NewRunner(r, dir).Run("1_1")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Answer != 3 {
		t.Fatalf("unexpected answer: %v", res.Answer)
	}
	if res.Name != "1_1" || res.RunID == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestRunnerUnknownPuzzle(t *testing.T) {
	testlog.Start(t)
	_, err := NewRunner(NewRegistry(), t.TempDir()).Run("99_1")
	if !errors.Is(err, ErrUnknownPuzzle) {
		t.Fatalf("expected ErrUnknownPuzzle, got %v", err)
	}
}

func TestRunnerMissingInput(t *testing.T) {
	testlog.Start(t)
	r := NewRegistry()
	if err := r.Register(Puzzle{Day: 3, Part: 1, Solve: constant(0)}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := NewRunner(r, t.TempDir()).Run("3_1")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestRunnerWrapsSolverError(t *testing.T) {
	testlog.Start(t)
	boom := errors.New("boom")
	p := Puzzle{Day: 4, Part: 2, Solve: func(string) (any, error) { return nil, boom }}
	_, err := NewRunner(NewRegistry(), "").Solve(p, "")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped solver error, got %v", err)
	}
	if !strings.Contains(err.Error(), "4_2") {
		t.Fatalf("error does not name puzzle: %v", err)
	}
}

func TestInputPath(t *testing.T) {
	testlog.Start(t)
	if got := InputPath("data", "16_1"); got != filepath.Join("data", "16_1.txt") {
		t.Fatalf("unexpected path: %q", got)
	}
	if NewRunner(NewRegistry(), "").DataDir != DefaultDataDir {
		t.Fatalf("expected default data dir")
	}
}
