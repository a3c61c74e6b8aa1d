package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-session-max-age session maximum age (e.g., "720h")
//	-activity-interval session activity refresh interval (e.g., "5m")
//	-theme default UI theme ("light" or "dark")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var jsonConfigPath string
	var sessionMaxAge time.Duration
	var activityInterval time.Duration
	var theme string

	flag.StringVar(&databaseDSN, "d", "", "Database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&sessionMaxAge, "session-max-age", 0, "Session maximum age (e.g., 720h)")
	flag.DurationVar(&activityInterval, "activity-interval", 0, "Session activity refresh interval (e.g., 5m)")
	flag.StringVar(&theme, "theme", "", "Default UI theme (light or dark)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Session: Session{
			MaxAge:           sessionMaxAge,
			ActivityInterval: activityInterval,
		},
		UI:           UI{Theme: theme},
		JSONFilePath: jsonConfigPath,
	}
}
