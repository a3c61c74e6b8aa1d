package service

import (
	"context"
	"time"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/store"
	"github.com/horizone-blog/horizone/models"
)

type perfService struct {
	prefs  store.PrefsRepository
	logger *logger.Logger
	now    func() time.Time
}

// NewPerfService constructs a [PerfService] over the prefs repository.
func NewPerfService(prefs store.PrefsRepository, logger *logger.Logger) PerfService {
	return &perfService{prefs: prefs, logger: logger, now: time.Now}
}

func (p *perfService) RecordSample(ctx context.Context, page string, loadTime, total float64) error {
	return p.prefs.AppendPerfSample(ctx, models.PerfSample{
		Timestamp: p.now(),
		Page:      page,
		LoadTime:  loadTime,
		Total:     total,
	})
}

func (p *perfService) Samples(ctx context.Context) ([]models.PerfSample, error) {
	return p.prefs.PerfLog(ctx)
}
