package puzzles

import (
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
)

func TestRegistryHasEveryPuzzle(t *testing.T) {
	testlog.Start(t)
	r, err := Registry()
	if err != nil {
		t.Fatalf("unexpected registry error: %v", err)
	}
	list := r.List()
	if len(list) != 32 {
		t.Fatalf("unexpected puzzle count: got=%d want=32", len(list))
	}
	for i, p := range list {
		wantDay, wantPart := i/2+1, i%2+1
		if p.Day != wantDay || p.Part != wantPart {
			t.Fatalf("unexpected puzzle at %d: got=%s", i, p.Name())
		}
		if p.Title == "" {
			t.Fatalf("puzzle %s has no title", p.Name())
		}
	}
}

func TestRegistryRunsPacketDecoder(t *testing.T) {
	testlog.Start(t)
	r, err := Registry()
	if err != nil {
		t.Fatalf("unexpected registry error: %v", err)
	}
	runner := puzzle.NewRunner(r, t.TempDir())
	p, ok := r.Resolve("16_2")
	if !ok {
		t.Fatalf("16_2 not registered")
	}
	res, err := runner.Solve(p, "9C0141080250320F1802104A08")
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if got, ok := res.Answer.(uint64); !ok || got != 1 {
		t.Fatalf("unexpected answer: %#v", res.Answer)
	}
}
