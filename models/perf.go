package models

import "time"

// PerfSample is one entry of the performance log: how long a screen took to
// become ready. The store keeps only the most recent samples.
type PerfSample struct {
	Timestamp time.Time     `json:"timestamp"`
	Page      string        `json:"page"`
	LoadTime  float64 `json:"loadTime"`
	Total     float64 `json:"totalTime"`
}
