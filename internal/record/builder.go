// Package record builds typed records from raw daily-note text by
// applying the field schema to the extracted metadata pairs.
package record

import (
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/daylog/internal/frontmatter"
	"github.com/mesh-intelligence/daylog/pkg/types"
)

// Build converts one file's raw text into a typed record. Keys unknown to
// the schema are skipped. Per-field parse failures never abort the file:
// the slot simply stays at its absent sentinel, so one malformed line
// cannot take down an otherwise valid record.
func Build(schema types.Schema, fileName string, date time.Time, text string) types.Record {
	rec := types.NewRecord(schema, fileName, date)

	for _, pair := range frontmatter.Extract(text) {
		spec, ok := schema[pair.Key]
		if !ok {
			continue
		}
		switch spec.Kind {
		case types.KindNumeric:
			if v, err := strconv.ParseFloat(pair.Value, 64); err == nil {
				rec.Numeric[pair.Key] = v
			}
		case types.KindTimeOfDay:
			// Stored verbatim; HH:MM shape is validated lazily by the
			// axis mapping, not here.
			if pair.Value != "" {
				rec.Times[pair.Key] = pair.Value
			}
		case types.KindBoolText:
			if v := strings.ToLower(pair.Value); v == "true" || v == "false" {
				rec.Bools[pair.Key] = v
			}
		}
	}
	return rec
}
