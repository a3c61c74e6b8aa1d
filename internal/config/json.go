package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly [Duration] type so config files can write durations as
// "5m" or "720h".
type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Session struct {
		MaxAge           Duration `json:"max_age"`
		ActivityInterval Duration `json:"activity_interval"`
	} `json:"session,omitempty"`

	RateLimit struct {
		CommentLimit  int      `json:"comment_limit"`
		CommentWindow Duration `json:"comment_window"`
		PostLimit     int      `json:"post_limit"`
		PostWindow    Duration `json:"post_window"`
	} `json:"rate_limit,omitempty"`

	Image struct {
		MaxBytes        int64    `json:"max_bytes"`
		MinBytes        int64    `json:"min_bytes"`
		MaxDimension    int      `json:"max_dimension"`
		TargetDimension int      `json:"target_dimension"`
		TargetEncodedKB int      `json:"target_encoded_kb"`
		DecodeTimeout   Duration `json:"decode_timeout"`
		ReadTimeout     Duration `json:"read_timeout"`
	} `json:"image,omitempty"`

	UI struct {
		Theme string `json:"theme"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Session: Session{
			MaxAge:           time.Duration(jsonCfg.Session.MaxAge),
			ActivityInterval: time.Duration(jsonCfg.Session.ActivityInterval),
		},
		RateLimit: RateLimit{
			CommentLimit:  jsonCfg.RateLimit.CommentLimit,
			CommentWindow: time.Duration(jsonCfg.RateLimit.CommentWindow),
			PostLimit:     jsonCfg.RateLimit.PostLimit,
			PostWindow:    time.Duration(jsonCfg.RateLimit.PostWindow),
		},
		Image: Image{
			MaxBytes:        jsonCfg.Image.MaxBytes,
			MinBytes:        jsonCfg.Image.MinBytes,
			MaxDimension:    jsonCfg.Image.MaxDimension,
			TargetDimension: jsonCfg.Image.TargetDimension,
			TargetEncodedKB: jsonCfg.Image.TargetEncodedKB,
			DecodeTimeout:   time.Duration(jsonCfg.Image.DecodeTimeout),
			ReadTimeout:     time.Duration(jsonCfg.Image.ReadTimeout),
		},
		UI:           UI{Theme: jsonCfg.UI.Theme},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
