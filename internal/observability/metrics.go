package observability

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	registerOnce sync.Once

	puzzleRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aoc",
			Subsystem: "puzzle",
			Name:      "runs_total",
			Help:      "Total puzzle runs.",
		},
		[]string{"puzzle", "status"},
	)
	puzzleDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aoc",
			Subsystem: "puzzle",
			Name:      "duration_seconds",
			Help:      "Puzzle solve duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"puzzle"},
	)
	inputBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "aoc",
			Subsystem: "puzzle",
			Name:      "input_bytes",
			Help:      "Size of the last input read for a puzzle.",
		},
		[]string{"puzzle"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(puzzleRuns, puzzleDuration, inputBytes)
	})
}

func RecordPuzzleRun(puzzle string, duration time.Duration, err error) {
	RegisterMetrics()
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	puzzleRuns.WithLabelValues(puzzle, status).Inc()
	puzzleDuration.WithLabelValues(puzzle).Observe(duration.Seconds())
}

func RecordInput(puzzle string, size int) {
	RegisterMetrics()
	inputBytes.WithLabelValues(puzzle).Set(float64(size))
}

// WriteTextfile dumps the default registry in the node-exporter textfile
// format.
func WriteTextfile(path string) error {
	RegisterMetrics()
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile (%s): %w", path, err)
	}
	return nil
}
