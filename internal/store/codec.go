package store

import (
	"encoding/json"

	"github.com/horizone-blog/horizone/internal/logger"
)

// decodeOrDefault unmarshals raw into T, falling back to the provided
// default when raw is empty or malformed. Malformed persisted data is a
// recoverable condition here: it is logged and replaced, never propagated,
// so a corrupted collection degrades to "empty" instead of breaking every
// caller.
func decodeOrDefault[T any](log *logger.Logger, key, raw string, fallback T) T {
	if raw == "" {
		return fallback
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed stored value, using empty default")
		return fallback
	}

	return value
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
