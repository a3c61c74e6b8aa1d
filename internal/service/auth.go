package service

import (
	"context"
	"errors"
	"time"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/store"
	"github.com/horizone-blog/horizone/models"
)

type authService struct {
	users    store.UserRepository
	sessions store.SessionRepository
	session  SessionService
	logger   *logger.Logger
	now      func() time.Time
}

// NewAuthService constructs an [AuthService] over the user repository and
// the session lifecycle service.
func NewAuthService(users store.UserRepository, sessions store.SessionRepository, session SessionService, logger *logger.Logger) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		session:  session,
		logger:   logger,
		now:      time.Now,
	}
}

func (a *authService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	name = SanitizeInput(name)

	if len(name) < 2 {
		return models.User{}, ErrInvalidName
	}
	if !ValidateEmail(email) {
		return models.User{}, ErrInvalidEmail
	}
	if len(password) < 6 {
		return models.User{}, ErrInvalidPassword
	}

	user := models.User{
		Name:          name,
		Email:         email,
		Password:      password,
		SavedArticles: []string{},
		ProfileImage:  nil,
		JoinDate:      a.now(),
	}

	if err := a.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	if err := a.session.Start(ctx, email); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Str("email", email).Msg("account registered")
	return user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	// a failed login must not reveal whether email or password was wrong
	if user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	if err := a.session.Start(ctx, email); err != nil {
		return models.User{}, err
	}

	a.logger.Info().Str("email", email).Msg("login successful")
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.logger.Info().Msg("logging out")
	return a.session.Clear(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	email, err := a.sessions.CurrentUserEmail(ctx)
	if err != nil {
		return models.User{}, err
	}
	if email == "" {
		return models.User{}, ErrNotLoggedIn
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// the pointer outlived the account, clean it up
			a.logger.Warn().Str("email", email).Msg("current user no longer exists, clearing session")
			if clearErr := a.session.Clear(ctx); clearErr != nil {
				return models.User{}, clearErr
			}
			return models.User{}, ErrNotLoggedIn
		}
		return models.User{}, err
	}

	return user, nil
}
