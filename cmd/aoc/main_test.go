package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jayconrod/advent-of-code-2021/internal/testutil/testlog"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRunPrintsAnswer(t *testing.T) {
	testlog.Start(t)
	t.Setenv("AOC_LOG_BYPASS", "true")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "16_2.txt"), "9C0141080250320F1802104A08\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-data", dir, "16_2"}, &stdout, &stderr); code != 0 {
		t.Fatalf("unexpected exit code %d: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "1\n" {
		t.Fatalf("unexpected stdout: %q", got)
	}
}

func TestRunVerify(t *testing.T) {
	testlog.Start(t)
	t.Setenv("AOC_LOG_BYPASS", "true")
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "1_1.txt"), "199\n200\n208\n210\n200\n207\n240\n269\n260\n263\n")
	metrics := filepath.Join(dir, "aoc.prom")
	writeFile(t, filepath.Join(dir, "aoc.toml"),
		"data_dir = \""+dir+"\"\nanswers_file = \""+filepath.Join(dir, "answers.toml")+"\"\nmetrics_file = \""+metrics+"\"\n")

	writeFile(t, filepath.Join(dir, "answers.toml"), "[answers]\n1_1 = \"7\"\n")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-config", filepath.Join(dir, "aoc.toml"), "-verify", "1_1"}, &stdout, &stderr); code != 0 {
		t.Fatalf("unexpected exit code %d: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "7\n" {
		t.Fatalf("unexpected stdout: %q", got)
	}
	data, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(data), "aoc_puzzle_runs_total") {
		t.Fatalf("metrics file missing runs counter:\n%s", data)
	}

	writeFile(t, filepath.Join(dir, "answers.toml"), "[answers]\n1_1 = \"8\"\n")
	stdout.Reset()
	stderr.Reset()
	if code := run([]string{"-config", filepath.Join(dir, "aoc.toml"), "-verify", "1_1"}, &stdout, &stderr); code != 1 {
		t.Fatalf("unexpected exit code %d for mismatch", code)
	}
	if !strings.Contains(stderr.String(), "does not match") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	testlog.Start(t)
	t.Setenv("AOC_LOG_BYPASS", "true")
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-data", dir, "99_1"}, &stdout, &stderr); code != 1 {
		t.Fatalf("unexpected exit code %d for unknown puzzle", code)
	}
	if !strings.Contains(stderr.String(), "aoc: no such puzzle") {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"-data", dir, "1_1"}, &stdout, &stderr); code != 1 {
		t.Fatalf("unexpected exit code %d for missing input", code)
	}

	stderr.Reset()
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("unexpected exit code %d without a puzzle", code)
	}
	if !strings.Contains(stderr.String(), "usage: aoc") {
		t.Fatalf("unexpected usage output: %q", stderr.String())
	}
}

func TestRunList(t *testing.T) {
	testlog.Start(t)
	t.Setenv("AOC_LOG_BYPASS", "true")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list"}, &stdout, &stderr); code != 0 {
		t.Fatalf("unexpected exit code %d", code)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 32 {
		t.Fatalf("unexpected list length: %d", len(lines))
	}
	if lines[31] != "16_2\tPacket Decoder" {
		t.Fatalf("unexpected last entry: %q", lines[31])
	}
}
