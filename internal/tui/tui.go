package tui

import (
	"context"
	"errors"

	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/service"
	"github.com/Theworld7/VisiFind/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:       NewMenuModel(),
		pageBookmarks:  NewLauncherModel(ctx, t.services.BookmarkService, t.services.AppSettingsService),
		pageIntake:     NewIntakeModel(ctx, t.services.IntakeService),
		pageBackground: NewBackgroundModel(ctx, t.services.BackgroundService),
	}
}

// Run blocks until the user leaves the launcher or ctx is cancelled.
// Ctrl+C is reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Debug().Str("func", "*TUI.Run").Msg("launcher closed with ctrl+c")
		return ErrUserQuit
	}
	return nil
}
