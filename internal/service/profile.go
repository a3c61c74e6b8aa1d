package service

import (
	"context"

	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/store"
)

type profileService struct {
	users  store.UserRepository
	prefs  store.PrefsRepository
	auth   AuthService
	cfg    config.UI
	logger *logger.Logger
}

// NewProfileService constructs a [ProfileService] for the current user's
// avatar and presentation preferences.
func NewProfileService(users store.UserRepository, prefs store.PrefsRepository, auth AuthService, cfg config.UI, logger *logger.Logger) ProfileService {
	return &profileService{users: users, prefs: prefs, auth: auth, cfg: cfg, logger: logger}
}

func (p *profileService) SetAvatar(ctx context.Context, dataURI string) error {
	user, err := p.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	if err := p.users.SetProfileImage(ctx, user.Email, dataURI); err != nil {
		return err
	}

	p.logger.Info().Str("email", user.Email).Msg("profile image updated")
	return nil
}

func (p *profileService) RemoveAvatar(ctx context.Context) error {
	user, err := p.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	return p.users.RemoveProfileImage(ctx, user.Email)
}

func (p *profileService) Theme(ctx context.Context) (string, error) {
	theme, err := p.prefs.Theme(ctx)
	if err != nil {
		return "", err
	}
	if theme == "" {
		theme = p.cfg.Theme
	}
	return theme, nil
}

func (p *profileService) ToggleTheme(ctx context.Context) (string, error) {
	theme, err := p.Theme(ctx)
	if err != nil {
		return "", err
	}

	if theme == "dark" {
		theme = "light"
	} else {
		theme = "dark"
	}

	if err := p.prefs.SetTheme(ctx, theme); err != nil {
		return "", err
	}
	return theme, nil
}
