package types

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Absent sentinels per field kind. Numeric fields use NaN (see
// AbsentNumeric); a bool-text field that is missing or unparsable holds
// BoolSentinel, which makes "explicitly false" and "absent"
// indistinguishable. That conflation matches the daily-note convention's
// observed behavior and is kept deliberately.
const (
	TimeSentinel = ""
	BoolSentinel = "false"
)

// AbsentNumeric returns the sentinel for a missing numeric field.
func AbsentNumeric() float64 {
	return math.NaN()
}

// IsAbsent reports whether a numeric value is the absent sentinel.
func IsAbsent(v float64) bool {
	return math.IsNaN(v)
}

// Record is the typed result of parsing one daily-note file against the
// schema. Every schema field has exactly one slot, holding either a parsed
// value or the kind's absent sentinel. Records are immutable once built.
type Record struct {
	RecordID string    // UUID v7, generated on creation.
	FileName string    // Source file name, always populated.
	Date     time.Time // Derived from the file name's yyyy-mm-dd prefix.

	Numeric map[string]float64 // Numeric slots; NaN when absent.
	Times   map[string]string  // Time-of-day slots, verbatim text; "" when absent.
	Bools   map[string]string  // Bool-text slots; "false" by default.
}

// NewRecord creates a record for the given file with every schema field
// initialized to its absent sentinel.
func NewRecord(schema Schema, fileName string, date time.Time) Record {
	r := Record{
		RecordID: uuid.Must(uuid.NewV7()).String(),
		FileName: fileName,
		Date:     date,
		Numeric:  make(map[string]float64),
		Times:    make(map[string]string),
		Bools:    make(map[string]string),
	}
	for name, spec := range schema {
		switch spec.Kind {
		case KindNumeric:
			r.Numeric[name] = AbsentNumeric()
		case KindTimeOfDay:
			r.Times[name] = TimeSentinel
		case KindBoolText:
			r.Bools[name] = BoolSentinel
		}
	}
	return r
}

// Sequence is an ordered run of records, ascending by file date. Two files
// mapping to the same date both stay, in file-listing order. The sequence
// is the read-only interface handed to renderers.
type Sequence []Record

// NumericSeries extracts one numeric field as a vector indexed by record
// position, absent values included as NaN. Renderers consume this for
// generic metric charts.
func (seq Sequence) NumericSeries(name string) []float64 {
	out := make([]float64, len(seq))
	for i, r := range seq {
		v, ok := r.Numeric[name]
		if !ok {
			v = AbsentNumeric()
		}
		out[i] = v
	}
	return out
}

// Dates returns the per-record dates in sequence order.
func (seq Sequence) Dates() []time.Time {
	out := make([]time.Time, len(seq))
	for i, r := range seq {
		out[i] = r.Date
	}
	return out
}
