package store

import (
	"context"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/models"
)

// maxPerfSamples bounds the stored performance log.
const maxPerfSamples = 50

// prefsRepository stores UI preferences and the performance log.
type prefsRepository struct {
	kv     KV
	logger *logger.Logger
}

// NewPrefsRepository constructs a [PrefsRepository] backed by the provided
// key-value store and logger.
func NewPrefsRepository(kv KV, logger *logger.Logger) PrefsRepository {
	logger.Debug().Msg("creating prefs repository")
	return &prefsRepository{kv: kv, logger: logger}
}

func (r *prefsRepository) Theme(ctx context.Context) (string, error) {
	raw, found, err := r.kv.Get(ctx, keyTheme)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	return raw, nil
}

func (r *prefsRepository) SetTheme(ctx context.Context, theme string) error {
	return r.kv.Set(ctx, keyTheme, theme)
}

func (r *prefsRepository) PerfLog(ctx context.Context) ([]models.PerfSample, error) {
	raw, _, err := r.kv.Get(ctx, keyPerfLog)
	if err != nil {
		return nil, err
	}

	return decodeOrDefault(r.logger, keyPerfLog, raw, []models.PerfSample{}), nil
}

func (r *prefsRepository) AppendPerfSample(ctx context.Context, sample models.PerfSample) error {
	samples, err := r.PerfLog(ctx)
	if err != nil {
		return err
	}

	samples = append(samples, sample)
	if len(samples) > maxPerfSamples {
		samples = samples[len(samples)-maxPerfSamples:]
	}

	value, err := encode(samples)
	if err != nil {
		return err
	}

	return r.kv.Set(ctx, keyPerfLog, value)
}
