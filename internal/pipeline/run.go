package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"proctools/internal/config"
	"proctools/internal/logging"
)

// Run represents one exclusive invocation of a processing command.
type Run struct {
	ID     string
	Logger *slog.Logger

	lock    *flock.Flock
	started time.Time
}

// Start acquires the run lock under the configured log directory and
// returns a Run carrying a fresh run ID and a logger tagged with it. It
// fails when another invocation already holds the lock.
func Start(cfg *config.Config, logger *slog.Logger) (*Run, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockPath := filepath.Join(cfg.Paths.LogDir, "proctools.lock")
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another proctools run holds %s", lockPath)
	}

	run := &Run{
		ID:      uuid.NewString(),
		lock:    lock,
		started: time.Now(),
	}
	run.Logger = logger.With(logging.String(logging.FieldRunID, run.ID))
	run.Logger.Info("run started")
	return run, nil
}

// Finish logs the run outcome and releases the run lock.
func (r *Run) Finish(err error) {
	elapsed := time.Since(r.started)
	if err != nil {
		r.Logger.Error("run aborted",
			logging.Duration("elapsed", elapsed),
			logging.Error(err))
	} else {
		r.Logger.Info("run completed", logging.Duration("elapsed", elapsed))
	}
	if unlockErr := r.lock.Unlock(); unlockErr != nil {
		r.Logger.Warn("release run lock", logging.Error(unlockErr))
	}
}
