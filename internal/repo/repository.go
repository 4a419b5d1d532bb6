// Package repo discovers daily-note files, filters them by date range,
// and produces the ordered typed-record sequence consumed by the sleep
// reconstructor and by renderers.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/daylog/internal/record"
	"github.com/mesh-intelligence/daylog/pkg/types"
)

// Repository loads typed records from one folder of daily-note files.
type Repository struct {
	folder string
	schema types.Schema
	logger *zap.Logger
}

// New creates a repository over the given folder. A nil logger is
// replaced with a no-op logger.
func New(folder string, schema types.Schema, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{folder: folder, schema: schema, logger: logger}
}

// candidate is a discovered file whose name prefix parsed as a date.
type candidate struct {
	name string
	date time.Time
}

// Load enumerates the folder, keeps files whose first 10 name characters
// parse as yyyy-mm-dd, filters to the inclusive [start, end] range, and
// returns the records sorted ascending by derived date. Files mapping to
// the same date both stay, in directory-listing order.
//
// Returns types.ErrNoRecordFiles when the folder holds no date-prefixed
// files at all, and types.ErrEmptyRange when none fall inside the range;
// both carry the attempted folder and range for the caller's message.
func (r *Repository) Load(start, end time.Time) (types.Sequence, error) {
	entries, err := os.ReadDir(r.folder)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", r.folder, err)
	}

	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		date, ok := dateFromName(entry.Name())
		if !ok {
			// Best-effort discovery: a bad prefix is not an error.
			r.logger.Debug("skipping file without date prefix",
				zap.String("file", entry.Name()))
			continue
		}
		candidates = append(candidates, candidate{name: entry.Name(), date: date})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: folder %s", types.ErrNoRecordFiles, r.folder)
	}

	var inRange []candidate
	for _, c := range candidates {
		if c.date.Before(start) || c.date.After(end) {
			continue
		}
		inRange = append(inRange, c)
	}
	if len(inRange) == 0 {
		return nil, fmt.Errorf("%w: folder %s, range %s..%s",
			types.ErrEmptyRange, r.folder,
			start.Format(types.DateLayout), end.Format(types.DateLayout))
	}

	// Stable sort keeps directory-listing order for equal dates. The date
	// order is load-bearing: it defines which records are adjacent when
	// sleep cycles are paired.
	slices.SortStableFunc(inRange, func(a, b candidate) int {
		return a.date.Compare(b.date)
	})

	seq := make(types.Sequence, 0, len(inRange))
	for _, c := range inRange {
		text, err := os.ReadFile(filepath.Join(r.folder, c.name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", c.name, err)
		}
		seq = append(seq, record.Build(r.schema, c.name, c.date, string(text)))
	}

	r.logger.Info("loaded records",
		zap.String("folder", r.folder),
		zap.Int("count", len(seq)))
	return seq, nil
}

// dateFromName parses the first 10 characters of a file name as a
// yyyy-mm-dd date.
func dateFromName(name string) (time.Time, bool) {
	if len(name) < len(types.DateLayout) {
		return time.Time{}, false
	}
	date, err := time.Parse(types.DateLayout, name[:len(types.DateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
