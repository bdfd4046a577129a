package splitter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// acquireLock takes an exclusive per-dataset lock in stateDir so concurrent
// runs cannot interleave overwrites of the same fixtures. An empty stateDir
// disables locking. ErrLocked means another run holds the lock; any other
// error means the lock file could not be created and the returned release
// func is a no-op.
func acquireLock(stateDir, dataset string) (func(), error) {
	noop := func() {}
	if stateDir == "" {
		return noop, nil
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return noop, fmt.Errorf("create state directory: %w", err)
	}
	lock := flock.New(filepath.Join(stateDir, dataset+".lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return noop, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}
	return func() {
		_ = lock.Unlock()
	}, nil
}
