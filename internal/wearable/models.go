package wearable

import (
	"time"

	"stride/internal/route"
)

// Session is a single recorded workout on the device
type Session struct {
	ID           string
	Name         string
	ActivityType string
	StartTime    time.Time
	EndTime      time.Time
	Samples      []route.Sample
}

// SleepRecord is one night of sleep as reported by the device
type SleepRecord struct {
	Date  string // YYYY-MM-DD
	Hours float64
}
