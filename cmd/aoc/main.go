package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/jayconrod/advent-of-code-2021/internal/config"
	"github.com/jayconrod/advent-of-code-2021/internal/logging"
	"github.com/jayconrod/advent-of-code-2021/internal/observability"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzle"
	"github.com/jayconrod/advent-of-code-2021/internal/puzzles"
)

var errMismatch = errors.New("answer does not match the answer book")

type options struct {
	configPath string
	dataDir    string
	verify     bool
	list       bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "runtime config file (TOML)")
	fs.StringVar(&opts.dataDir, "data", "", "directory holding <day>_<part>.txt inputs")
	fs.BoolVar(&opts.verify, "verify", false, "check the answer against the answer book")
	fs.BoolVar(&opts.list, "list", false, "list registered puzzles and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: aoc [-config aoc.toml] [-data dir] [-verify] [-list] <day>_<part>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := defaultRunConfig()
	if opts.configPath != "" {
		loaded, err := loadRunConfig(opts.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "aoc: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataDir = opts.dataDir
		case "verify":
			cfg.Verify = opts.verify
		}
	})

	logCfg := logging.DefaultConfig(logging.ProfileRuntime)
	logCfg.Level = cfg.LogLevel
	logCfg.Out = stderr
	logging.ApplyEnvOverrides(&logCfg)
	logging.Apply(logCfg)
	observability.RegisterMetrics()

	reg, err := puzzles.Registry()
	if err != nil {
		fmt.Fprintf(stderr, "aoc: %v\n", err)
		return 1
	}

	if opts.list {
		for _, p := range reg.List() {
			fmt.Fprintf(stdout, "%s\t%s\n", p.Name(), p.Title)
		}
		return 0
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	err = solve(reg, cfg, fs.Arg(0), stdout)
	if cfg.MetricsFile != "" {
		if werr := observability.WriteTextfile(cfg.MetricsFile); werr != nil {
			log.Warn().Err(werr).Msg("metrics not written")
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "aoc: %v\n", err)
		return 1
	}
	return 0
}

func solve(reg *puzzle.Registry, cfg runConfig, name string, stdout io.Writer) error {
	var book config.AnswerBook
	if cfg.Verify {
		var err error
		if book, err = config.LoadAnswerBook(cfg.AnswersFile); err != nil {
			return err
		}
	}

	runner := puzzle.NewRunner(reg, cfg.DataDir)
	res, err := runner.Run(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, res.Answer)

	if !cfg.Verify {
		return nil
	}
	ok, err := book.Check(res.Name, res.Answer)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w (want %q)", res.Name, errMismatch, book.Answers[res.Name])
	}
	log.Info().Str("run_id", res.RunID).Str("puzzle", res.Name).Msg("answer verified")
	return nil
}
