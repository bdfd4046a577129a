package splitter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"pgnsplit/internal/fileutil"
	"pgnsplit/internal/logging"
)

const fixtureFileMode os.FileMode = 0o644

// Result is the outcome of writing one game.
type Result struct {
	Index    int
	Path     string
	Bytes    int
	Segments int
	SHA256   string
	// Err is a *WriteError when the write failed.
	Err error
}

// Writer persists games as individual files under Dir.
type Writer struct {
	Dir     string
	Dataset string
	// Atomic writes through a temporary file and rename.
	Atomic bool
	// Concurrency bounds parallel writes. Values <= 0 use one per CPU.
	Concurrency int
	Logger      *slog.Logger
}

// Path returns the destination file for game.
func (w *Writer) Path(game Game) string {
	return filepath.Join(w.Dir, game.FileName(w.Dataset))
}

// WriteAll writes every game and waits for all writes to finish. Results are
// ordered by game index. A failed write never stops the others; once ctx is
// cancelled the games not yet started are reported with the context error.
func (w *Writer) WriteAll(ctx context.Context, games []Game) []Result {
	logger := w.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	limit := w.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	sem := make(chan struct{}, limit)

	results := make([]Result, len(games))
	var wg sync.WaitGroup

dispatch:
	for i, game := range games {
		if ctx.Err() == nil {
			select {
			case <-ctx.Done():
			case sem <- struct{}{}:
			}
		}
		if err := ctx.Err(); err != nil {
			for j := i; j < len(games); j++ {
				results[j] = w.failed(games[j], err)
			}
			break dispatch
		}

		wg.Add(1)
		go func(slot int, game Game) {
			defer wg.Done()
			defer func() { <-sem }()
			results[slot] = w.write(game)
		}(i, game)
	}
	wg.Wait()

	for _, res := range results {
		gameLogger := logger.With(logging.Int(logging.FieldGameIndex, res.Index))
		if res.Err != nil {
			gameLogger.Error("game write failed",
				logging.String(logging.FieldPath, res.Path),
				logging.Error(res.Err),
			)
			continue
		}
		gameLogger.Debug("game written",
			logging.String(logging.FieldPath, res.Path),
			logging.Int("bytes", res.Bytes),
			logging.Int("segments", res.Segments),
		)
	}
	return results
}

func (w *Writer) write(game Game) Result {
	data := []byte(game.Text())
	path := w.Path(game)

	var err error
	if w.Atomic {
		err = fileutil.WriteFileAtomic(path, data, fixtureFileMode)
	} else {
		err = fileutil.WriteFile(path, data, fixtureFileMode)
	}
	if err != nil {
		return w.failed(game, err)
	}
	return Result{
		Index:    game.Index,
		Path:     path,
		Bytes:    len(data),
		Segments: len(game.Segments),
		SHA256:   fileutil.SHA256Hex(data),
	}
}

func (w *Writer) failed(game Game, err error) Result {
	path := w.Path(game)
	return Result{
		Index:    game.Index,
		Path:     path,
		Segments: len(game.Segments),
		Err:      &WriteError{Index: game.Index, Path: path, Err: err},
	}
}
