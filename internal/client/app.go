package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/service"
	"github.com/horizone-blog/horizone/internal/tui"
	"github.com/horizone-blog/horizone/internal/workers"
	"github.com/horizone-blog/horizone/models"
)

type App struct {
	services *service.Services
	tui      *tui.TUI
	activity *workers.ActivityWorker
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, cfg config.Session, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}

	return &App{
		services: services,
		tui:      ui,
		activity: workers.NewActivityWorker(services.Session, cfg.ActivityInterval, log),
		logger:   log,
	}, nil
}

// Run drives one login-to-logout cycle and recurses on logout so the next
// user lands back on the welcome screen.
func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.resolveUser(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	a.activity.Start(ctx)
	defer a.activity.Stop()

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		if err := a.services.Auth.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.activity.Stop()
		return a.Run()
	}

	return nil
}

// resolveUser restores the persisted session when possible, otherwise runs
// the interactive login flow.
func (a *App) resolveUser(ctx context.Context) (models.User, error) {
	restored, err := a.services.Session.Restore(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("restore session: %w", err)
	}

	if restored {
		user, err := a.services.Auth.CurrentUser(ctx)
		if err == nil {
			a.logger.Info().Str("email", user.Email).Msg("session restored, skipping login")
			return user, nil
		}
		if !errors.Is(err, service.ErrNotLoggedIn) {
			return models.User{}, err
		}
	}

	return a.tui.LoginFlow(ctx)
}
