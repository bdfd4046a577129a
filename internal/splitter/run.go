package splitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pgnsplit/internal/config"
	"pgnsplit/internal/logging"
)

// GameRecord describes one successfully written fixture.
type GameRecord struct {
	RunID     string
	Dataset   string
	Index     int
	Path      string
	Bytes     int
	Segments  int
	SHA256    string
	WrittenAt time.Time
}

// Recorder receives a GameRecord for every successful write.
type Recorder interface {
	RecordGames(ctx context.Context, records []GameRecord) error
}

// Options configures a Run.
type Options struct {
	Dataset   string
	InputPath string
	OutputDir string
	// StateDir holds the per-dataset lock file. Empty disables locking.
	StateDir    string
	Encoding    string
	Strict      bool
	Atomic      bool
	Concurrency int
	Logger      *slog.Logger
	Recorder    Recorder
}

// OptionsFromConfig maps configuration values onto run options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Dataset:     cfg.Dataset,
		InputPath:   cfg.InputPath(),
		OutputDir:   cfg.Paths.OutputDir,
		StateDir:    cfg.Paths.StateDir,
		Encoding:    cfg.Split.Encoding,
		Strict:      cfg.Split.Strict,
		Atomic:      cfg.Split.AtomicWrites,
		Concurrency: cfg.Split.WriteConcurrency,
	}
}

// Report summarizes a completed run.
type Report struct {
	RunID     string
	Dataset   string
	InputPath string
	OutputDir string
	Segments  int
	Results   []Result
	Elapsed   time.Duration
}

// Games returns the number of games the input produced.
func (r *Report) Games() int {
	return len(r.Results)
}

// Failed returns the number of games that could not be written.
func (r *Report) Failed() int {
	failed := 0
	for _, res := range r.Results {
		if res.Err != nil {
			failed++
		}
	}
	return failed
}

// Err summarizes write failures, or returns nil when every game was written.
// The first failure is wrapped so callers can match it with errors.As.
func (r *Report) Err() error {
	failed := r.Failed()
	if failed == 0 {
		return nil
	}
	var first error
	for _, res := range r.Results {
		if res.Err != nil {
			first = res.Err
			break
		}
	}
	return fmt.Errorf("%d of %d games failed to write: %w", failed, r.Games(), first)
}

// Run reads the input, pairs its blocks into games, and writes one file per
// game. A read or pairing error aborts the run before any write and is
// returned. Every returned error has already been logged. Write failures are
// reported through the Report, not the error.
func Run(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)

	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "splitter")).
		With(logging.String(logging.FieldDataset, opts.Dataset))

	if err := config.ValidateDataset(opts.Dataset); err != nil {
		logger.Error("invalid dataset", logging.Error(err))
		return nil, err
	}

	unlock, err := acquireLock(opts.StateDir, opts.Dataset)
	switch {
	case errors.Is(err, ErrLocked):
		logger.Error("dataset lock held by another run", logging.Error(err))
		return nil, err
	case err != nil:
		logger.Warn("dataset lock unavailable; continuing unlocked", logging.Error(err))
	}
	defer unlock()

	plan, err := BuildPlan(opts.InputPath, opts.Encoding, opts.Strict)
	if err != nil {
		var readErr *ReadError
		switch {
		case errors.As(err, &readErr):
			logger.Error("input read failed", logging.String(logging.FieldPath, readErr.Path), logging.Error(readErr.Err))
		default:
			logger.Error("pairing failed", logging.String(logging.FieldPath, opts.InputPath), logging.Error(err))
		}
		return nil, err
	}
	logger.Info("input segmented",
		logging.String(logging.FieldPath, plan.InputPath),
		logging.Int("segments", len(plan.Segments)),
		logging.Int("games", len(plan.Games)),
	)
	if n := len(plan.Games); n > 0 && plan.Games[n-1].Partial() {
		logger.Warn("odd block count; last game has a single block",
			logging.Int(logging.FieldGameIndex, plan.Games[n-1].Index),
		)
	}

	writer := &Writer{
		Dir:         opts.OutputDir,
		Dataset:     opts.Dataset,
		Atomic:      opts.Atomic,
		Concurrency: opts.Concurrency,
		Logger:      logger,
	}
	report := &Report{
		RunID:     runID,
		Dataset:   opts.Dataset,
		InputPath: plan.InputPath,
		OutputDir: opts.OutputDir,
		Segments:  len(plan.Segments),
		Results:   writer.WriteAll(ctx, plan.Games),
	}

	if opts.Recorder != nil {
		records := recordsFor(report, time.Now().UTC())
		if len(records) > 0 {
			if err := opts.Recorder.RecordGames(ctx, records); err != nil {
				logger.Warn("catalog update failed", logging.Error(err))
			}
		}
	}

	report.Elapsed = time.Since(start)
	logger.Info("split complete",
		logging.Int("games", report.Games()),
		logging.Int("failed", report.Failed()),
		logging.String("output_dir", report.OutputDir),
		logging.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

func recordsFor(report *Report, writtenAt time.Time) []GameRecord {
	records := make([]GameRecord, 0, len(report.Results))
	for _, res := range report.Results {
		if res.Err != nil {
			continue
		}
		records = append(records, GameRecord{
			RunID:     report.RunID,
			Dataset:   report.Dataset,
			Index:     res.Index,
			Path:      res.Path,
			Bytes:     res.Bytes,
			Segments:  res.Segments,
			SHA256:    res.SHA256,
			WrittenAt: writtenAt,
		})
	}
	return records
}
