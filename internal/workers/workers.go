package workers

import (
	"context"
	"time"

	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. A zero backup interval
// disables automatic backups.
func NewWorkers(services *service.ClientServices, cfg config.ClientWorkers, storage config.ClientStorage, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.BackupInterval > 0 {
		w.workers = append(w.workers, &backupWorker{
			job:      services.BackupJob,
			dir:      storage.BackupDir,
			interval: cfg.BackupInterval,
		})
		logger.Info().
			Str("dir", storage.BackupDir).
			Dur("interval", cfg.BackupInterval).
			Msg("automatic backups enabled")
	}

	return w
}

// Len returns the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// backupWorker adapts [service.BackupJob] to [Worker].
type backupWorker struct {
	job      service.BackupJob
	dir      string
	interval time.Duration
}

func (b *backupWorker) Start(ctx context.Context) {
	b.job.Start(ctx, b.dir, b.interval)
}

func (b *backupWorker) Stop() {
	b.job.Stop()
}
