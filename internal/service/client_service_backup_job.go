package service

import (
	"context"
	"sync"
	"time"

	"github.com/Theworld7/VisiFind/internal/logger"
)

const defaultBackupInterval = 24 * time.Hour

type clientBackupJob struct {
	backupService BackupService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientBackupJob creates a clientBackupJob that calls
// backupService.WriteFile on a ticker. The job is idle until Start is called.
func NewClientBackupJob(backupService BackupService, logger *logger.Logger) BackupJob {
	return &clientBackupJob{backupService: backupService, logger: logger}
}

// Start implements BackupJob. It stops any previously running job, then
// launches a background goroutine that writes a backup into dir every
// interval. If interval is zero or negative it defaults to 24 hours. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientBackupJob) Start(ctx context.Context, dir string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultBackupInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case now := <-t.C:
				path, err := j.backupService.WriteFile(jobCtx, dir, now)
				if err != nil {
					j.logger.Err(err).Str("func", "clientBackupJob.Start").Str("dir", dir).Msg("automatic backup failed")
					continue
				}
				j.logger.Debug().Str("func", "clientBackupJob.Start").Str("path", path).Msg("automatic backup written")
			}
		}
	}()
}

// Stop implements BackupJob. It cancels the background goroutine's context
// and blocks until the goroutine has exited. Calling Stop on an idle job is a
// no-op.
func (j *clientBackupJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
