package wearable

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Device is a simulated fitness wearable. Everything it reports is a
// pure function of the pairing seed and the requested date range, so
// re-syncing the same window always yields the same sessions.
type Device struct {
	Seed int64
}

// NewDevice creates a device handle for a pairing seed.
func NewDevice(seed int64) *Device {
	return &Device{Seed: seed}
}

// DeviceID derives the stable device identifier for a seed.
func DeviceID(seed int64) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("stride-device-%d", seed))).String()
}

const (
	sessionStream int64 = 1
	sleepStream   int64 = 2

	restDayChance = 0.25
	sampleStepSec = 5
)

// Sessions returns recorded workout sessions that started after the
// given cursor, at most one per day, oldest first. The window covers
// the last `days` days including today; days <= 0 means 30.
func (d *Device) Sessions(after time.Time, days int) []Session {
	if days <= 0 {
		days = 30
	}

	var sessions []Session
	today := startOfDay(time.Now().UTC())
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		s, ok := d.sessionForDay(day)
		if !ok {
			continue
		}
		if !after.IsZero() && !s.StartTime.After(after) {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions
}

// SleepRecords returns nightly sleep readings for the last `days` days
// including today, oldest first, skipping dates at or before the cursor.
func (d *Device) SleepRecords(after time.Time, days int) []SleepRecord {
	if days <= 0 {
		days = 30
	}

	var records []SleepRecord
	today := startOfDay(time.Now().UTC())
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		if !after.IsZero() && !day.After(after) {
			continue
		}

		rng := d.dayRNG(day, sleepStream)
		hours := 5.5 + rng.Float64()*3.0
		if rng.Float64() < 0.12 {
			// Rough night
			hours = 4.2 + rng.Float64()*1.3
		}
		records = append(records, SleepRecord{
			Date:  day.Format("2006-01-02"),
			Hours: math.Round(hours*10) / 10,
		})
	}
	return records
}

// sessionForDay synthesizes the day's session. Roughly a quarter of
// days are rest days with no session at all.
func (d *Device) sessionForDay(day time.Time) (Session, bool) {
	rng := d.dayRNG(day, sessionStream)

	if rng.Float64() < restDayChance {
		return Session{}, false
	}

	activity := pickActivity(rng)
	start := day.Add(time.Duration(6+rng.Intn(12)) * time.Hour).
		Add(time.Duration(rng.Intn(60)) * time.Minute)
	durationSec := sessionDurationSec(rng, activity)
	end := start.Add(time.Duration(durationSec) * time.Second)

	id := uuid.NewSHA1(uuid.NameSpaceOID,
		[]byte(fmt.Sprintf("stride-session-%d-%s", d.Seed, day.Format("2006-01-02"))))

	return Session{
		ID:           id.String(),
		Name:         sessionName(start, activity),
		ActivityType: activity,
		StartTime:    start,
		EndTime:      end,
		Samples:      d.generateTrack(rng, activity, start, durationSec),
	}, true
}

func (d *Device) dayRNG(day time.Time, stream int64) *rand.Rand {
	return rand.New(rand.NewSource(d.Seed ^ day.Unix()<<2 ^ stream))
}

func pickActivity(rng *rand.Rand) string {
	roll := rng.Float64()
	switch {
	case roll < 0.40:
		return "running"
	case roll < 0.60:
		return "walking"
	case roll < 0.80:
		return "cycling"
	case roll < 0.90:
		return "jogging"
	default:
		return "hiking"
	}
}

func sessionDurationSec(rng *rand.Rand, activity string) int {
	var minutes int
	switch activity {
	case "running":
		minutes = 25 + rng.Intn(35)
	case "walking":
		minutes = 20 + rng.Intn(40)
	case "cycling":
		minutes = 40 + rng.Intn(50)
	case "jogging":
		minutes = 20 + rng.Intn(25)
	case "hiking":
		minutes = 60 + rng.Intn(90)
	default:
		minutes = 30
	}
	return minutes * 60
}

func sessionName(start time.Time, activity string) string {
	var part string
	switch {
	case start.Hour() < 11:
		part = "Morning"
	case start.Hour() < 17:
		part = "Afternoon"
	default:
		part = "Evening"
	}

	noun := map[string]string{
		"running": "Run",
		"walking": "Walk",
		"cycling": "Ride",
		"jogging": "Jog",
		"hiking":  "Hike",
	}[activity]
	if noun == "" {
		noun = "Workout"
	}

	return part + " " + noun
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
