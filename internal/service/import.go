package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"stride/internal/fitfile"
	"stride/internal/gpxfile"
	"stride/internal/route"
	"stride/internal/store"
)

// ErrUnsupportedFormat is returned for files that are neither FIT nor GPX
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Importer loads workout files into the store
type Importer struct {
	store    *store.DB
	weightKg float64
}

// NewImporter creates a new importer
func NewImporter(db *store.DB, weightKg float64) *Importer {
	return &Importer{store: db, weightKg: weightKg}
}

// ImportResult reports the outcome of importing one file
type ImportResult struct {
	Path      string
	WorkoutID int64
	Name      string
	Distance  float64
	Err       error
}

// decodedWorkout is the decode-phase output for one file
type decodedWorkout struct {
	externalID string
	name       string
	sport      string
	source     string
	start, end time.Time
	samples    []route.Sample
}

// ImportFiles decodes the given FIT/GPX files concurrently, then
// stores and analyzes them one at a time (SQLite wants a single
// writer). Re-importing a file is idempotent: the workout's external
// ID is derived from the file contents.
func (im *Importer) ImportFiles(ctx context.Context, paths []string) ([]ImportResult, error) {
	results := make([]ImportResult, len(paths))
	decoded := make([]*decodedWorkout, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		results[i] = ImportResult{Path: path}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			dw, err := decodeFile(path)
			if err != nil {
				results[i].Err = err
				return nil
			}
			decoded[i] = dw
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	for i, dw := range decoded {
		if dw == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		id, err := im.storeAndAnalyze(dw)
		if err != nil {
			results[i].Err = err
			continue
		}

		w, err := im.store.GetWorkout(id)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].WorkoutID = id
		results[i].Name = w.Name
		results[i].Distance = w.Distance
	}

	return results, nil
}

func (im *Importer) storeAndAnalyze(dw *decodedWorkout) (int64, error) {
	w := &store.Workout{
		ExternalID:   dw.externalID,
		Name:         dw.name,
		ActivityType: dw.sport,
		Source:       dw.source,
		StartedAt:    dw.start,
		EndedAt:      dw.end,
		WeightKg:     im.weightKg,
		SampleCount:  len(dw.samples),
	}

	id, err := im.store.UpsertWorkout(w)
	if err != nil {
		return 0, fmt.Errorf("storing workout: %w", err)
	}
	if err := im.store.SaveTrackPoints(id, samplesToPoints(id, dw.samples)); err != nil {
		return 0, fmt.Errorf("saving track points: %w", err)
	}

	w.ID = id
	if err := analyzeStoredWorkout(im.store, w); err != nil {
		return 0, fmt.Errorf("analyzing: %w", err)
	}

	return id, nil
}

func decodeFile(path string) (*decodedWorkout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	externalID := uuid.NewSHA1(uuid.NameSpaceURL, data).String()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".fit":
		w, err := fitfile.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &decodedWorkout{
			externalID: externalID,
			name:       importName(w.StartTime, w.Sport),
			sport:      w.Sport,
			source:     "fit",
			start:      w.StartTime,
			end:        w.EndTime,
			samples:    w.Samples,
		}, nil

	case ".gpx":
		w, err := gpxfile.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		name := w.Name
		if name == "" {
			name = importName(w.StartTime, w.Sport)
		}
		return &decodedWorkout{
			externalID: externalID,
			name:       name,
			sport:      w.Sport,
			source:     "gpx",
			start:      w.StartTime,
			end:        w.EndTime,
			samples:    w.Samples,
		}, nil

	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// importName names a workout when the file doesn't carry one
func importName(start time.Time, sport string) string {
	noun := map[string]string{
		"running": "Run",
		"walking": "Walk",
		"cycling": "Ride",
		"jogging": "Jog",
		"hiking":  "Hike",
	}[sport]
	if noun == "" {
		noun = "Workout"
	}
	return fmt.Sprintf("%s %s", start.Format("Jan 2"), noun)
}
