package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Theworld7/VisiFind/internal/config"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/server"
	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/internal/tui"
	"github.com/Theworld7/VisiFind/internal/workers"
	"github.com/Theworld7/VisiFind/models"
)

// Launcher is the interactive front-end run in the foreground.
type Launcher interface {
	Run(ctx context.Context) error
}

// App runs one of three lifecycles: a one-shot backup action, the
// interactive launcher or headless mode.
type App struct {
	services *service.ClientServices
	ui       Launcher
	server   server.Server
	workers  *workers.Workers
	cfg      *config.ClientConfig

	// out receives the one-shot reports.
	out    io.Writer
	now    func() time.Time
	logger *logger.Logger
}

// NewApp wires the application. srv may be nil when the local API is
// disabled, ui may be nil in headless mode.
func NewApp(services *service.ClientServices, ui Launcher, srv server.Server, w *workers.Workers, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || cfg == nil {
		return nil, ErrAppNotConfigured
	}
	if ui == nil && !cfg.App.Headless && !cfg.Backup.OneShot() {
		return nil, ErrNoLauncher
	}

	return &App{
		services: services,
		ui:       ui,
		server:   srv,
		workers:  w,
		cfg:      cfg,
		out:      os.Stdout,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	if a.cfg.Backup.OneShot() {
		return a.runBackupActions(ctx)
	}

	if err := a.load(ctx); err != nil {
		return err
	}

	if a.cfg.App.Headless {
		return a.runHeadless(ctx)
	}
	return a.runInteractive(ctx)
}

// load fills the in-memory state of every service.
func (a *App) load(ctx context.Context) error {
	if err := a.services.BookmarkService.Load(ctx); err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}
	if err := a.services.BackgroundService.Load(ctx); err != nil {
		return fmt.Errorf("load background settings: %w", err)
	}
	if err := a.services.AppSettingsService.Load(ctx); err != nil {
		return fmt.Errorf("load app settings: %w", err)
	}
	if err := a.services.FoodLibraryService.Load(ctx); err != nil {
		return fmt.Errorf("load food library: %w", err)
	}
	if err := a.services.IntakeService.LoadByDate(ctx, a.now().Format(models.DateLayout)); err != nil {
		return fmt.Errorf("load intake records: %w", err)
	}
	if _, err := a.services.IntakeService.LoadDailyLimits(ctx); err != nil {
		return fmt.Errorf("load daily limits: %w", err)
	}
	return nil
}

func (a *App) runInteractive(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.startWorkers(ctx)
	defer a.stopWorkers()

	if a.server != nil {
		a.server.Start()
		defer a.server.Shutdown()
	}

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

func (a *App) runHeadless(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.startWorkers(ctx)
	defer a.stopWorkers()

	if a.server != nil {
		// RunServer installs its own signal handling and returns after
		// shutdown.
		a.server.RunServer()
		return nil
	}

	a.logger.Info().Msg("running headless without local API")
	<-ctx.Done()
	return nil
}

func (a *App) startWorkers(ctx context.Context) {
	if a.workers != nil {
		a.workers.Start(ctx)
	}
}

func (a *App) stopWorkers() {
	if a.workers != nil {
		a.workers.Stop()
	}
}

// runBackupActions imports first so that an export in the same run already
// contains the imported data.
func (a *App) runBackupActions(ctx context.Context) error {
	if path := a.cfg.Backup.ImportFile; path != "" {
		if err := a.importFile(ctx, path); err != nil {
			return err
		}
	}
	if dir := a.cfg.Backup.ExportDir; dir != "" {
		path, err := a.services.BackupService.WriteFile(ctx, dir, a.now())
		if err != nil {
			return fmt.Errorf("export backup: %w", err)
		}
		fmt.Fprintf(a.out, "Backup written to %s\n", path)
	}
	return nil
}

func (a *App) importFile(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}

	report, err := a.services.BackupService.Import(ctx, raw)
	if err != nil {
		return fmt.Errorf("import backup: %w", err)
	}

	printReport(a.out, report)
	return nil
}

func printReport(w io.Writer, report models.ImportReport) {
	fmt.Fprintf(w, "Imported version %d backup (run %s)\n", report.Version, report.RunID)
	fmt.Fprintf(w, "  bookmarks: %d\n", report.Bookmarks)
	fmt.Fprintf(w, "  foods:     %d\n", report.Foods)
	fmt.Fprintf(w, "  records:   %d\n", report.Records)
	if len(report.Failures) == 0 {
		return
	}
	fmt.Fprintf(w, "  failed:    %d\n", len(report.Failures))
	for _, f := range report.Failures {
		name := f.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "    %s[%d] %s: %s\n", f.Domain, f.Index, name, f.Err)
	}
}
