package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/jayconrod/advent-of-code-2021/internal/logging"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
)

type fileConfig struct {
	DataDir     string `toml:"data_dir"`
	LogLevel    string `toml:"log_level"`
	AnswersFile string `toml:"answers_file"`
	Verify      bool   `toml:"verify"`
	MetricsFile string `toml:"metrics_file"`
}

// runConfig is the resolved configuration for one invocation.
type runConfig struct {
	DataDir     string
	LogLevel    zerolog.Level
	AnswersFile string
	Verify      bool
	MetricsFile string
}

func defaultRunConfig() runConfig {
	return runConfig{
		DataDir:     puzzle.DefaultDataDir,
		LogLevel:    zerolog.InfoLevel,
		AnswersFile: "answers.toml",
	}
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runConfig{}, fmt.Errorf("load aoc config: %w", err)
	}

	if meta.IsDefined("data_dir") {
		if dir := strings.TrimSpace(raw.DataDir); dir != "" {
			cfg.DataDir = dir
		}
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return runConfig{}, fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("answers_file") {
		cfg.AnswersFile = strings.TrimSpace(raw.AnswersFile)
	}

	if meta.IsDefined("verify") {
		cfg.Verify = raw.Verify
	}

	if meta.IsDefined("metrics_file") {
		cfg.MetricsFile = strings.TrimSpace(raw.MetricsFile)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return runConfig{}, fmt.Errorf("load aoc config: unknown key %q", undecoded[0].String())
	}

	return cfg, nil
}
