// Package export writes the record sequence and sleep cycles to
// renderer-facing interchange files: JSONL or a SQLite database. The
// pipeline itself stays in-memory; exports are a one-shot snapshot, never
// reloaded by daylog.
package export

import (
	"github.com/mesh-intelligence/daylog/pkg/types"
)

// RecordLine is the JSON view of one typed record. Absent numeric values
// marshal as null (NaN has no JSON encoding); absent time-of-day and
// bool-text values keep their text sentinels.
type RecordLine struct {
	RecordID string              `json:"record_id"`
	FileName string              `json:"file_name"`
	Date     string              `json:"date"`
	Numeric  map[string]*float64 `json:"numeric"`
	Times    map[string]string   `json:"times"`
	Bools    map[string]string   `json:"bools"`
}

// CycleLine is the JSON view of one sleep cycle. Undefined bounds marshal
// as null.
type CycleLine struct {
	Index      int      `json:"index"`
	SleepStart *float64 `json:"sleep_start"`
	WakeEnd    *float64 `json:"wake_end"`
	Duration   *float64 `json:"duration"`
}

// RecordLines converts a sequence into its JSON view.
func RecordLines(seq types.Sequence) []RecordLine {
	lines := make([]RecordLine, 0, len(seq))
	for _, rec := range seq {
		line := RecordLine{
			RecordID: rec.RecordID,
			FileName: rec.FileName,
			Date:     rec.Date.Format(types.DateLayout),
			Numeric:  make(map[string]*float64, len(rec.Numeric)),
			Times:    rec.Times,
			Bools:    rec.Bools,
		}
		for name, v := range rec.Numeric {
			line.Numeric[name] = nullableFloat(v)
		}
		lines = append(lines, line)
	}
	return lines
}

// CycleLines converts sleep cycles into their JSON view.
func CycleLines(cycles []types.SleepCycle) []CycleLine {
	lines := make([]CycleLine, 0, len(cycles))
	for _, c := range cycles {
		lines = append(lines, CycleLine{
			Index:      c.Index,
			SleepStart: nullableFloat(c.SleepStart),
			WakeEnd:    nullableFloat(c.WakeEnd),
			Duration:   nullableFloat(c.Duration()),
		})
	}
	return lines
}

// nullableFloat turns the NaN sentinel into a nil pointer for JSON null.
func nullableFloat(v float64) *float64 {
	if types.IsAbsent(v) {
		return nil
	}
	return &v
}
