package service

import (
	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/store"
)

// Services bundles every application service behind one constructor.
type Services struct {
	Auth    AuthService
	Session SessionService
	Limiter RateLimiter
	Content ContentService
	Image   ImageService
	Profile ProfileService
	Share   ShareService
	Perf    PerfService
}

// NewServices wires all services over the given storages and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	sessionSvc := NewSessionService(storages.Sessions, storages.Users, cfg.Session, log)
	authSvc := NewAuthService(storages.Users, storages.Sessions, sessionSvc, log)
	limiter := NewRateLimiter(storages.RateLimits, log)
	contentSvc := NewContentService(storages.Posts, storages.Comments, storages.Users, authSvc, limiter, cfg.RateLimit, log)

	return &Services{
		Auth:    authSvc,
		Session: sessionSvc,
		Limiter: limiter,
		Content: contentSvc,
		Image:   NewImageService(cfg.Image, log),
		Profile: NewProfileService(storages.Users, storages.Prefs, authSvc, cfg.UI, log),
		Share:   NewShareService(log),
		Perf:    NewPerfService(storages.Prefs, log),
	}
}
