package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/daylog/pkg/types"
)

// DBFileName is the default SQLite export file name.
const DBFileName = "daylog.db"

// WriteSQLite writes the sequence and cycles into a fresh SQLite database
// at path. An existing file at path is replaced; the export is a
// snapshot, not a store.
func WriteSQLite(path string, schema types.Schema, seq types.Sequence, cycles []types.SleepCycle) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = insertRecords(tx, schema, seq); err != nil {
		return err
	}
	if err = insertCycles(tx, seq, cycles); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

func insertRecords(tx *sql.Tx, schema types.Schema, seq types.Sequence) error {
	for _, rec := range seq {
		_, err := tx.Exec(
			"INSERT INTO records (record_id, file_name, date) VALUES (?, ?, ?)",
			rec.RecordID, rec.FileName, rec.Date.Format(types.DateLayout),
		)
		if err != nil {
			return fmt.Errorf("inserting record %s: %w", rec.FileName, err)
		}

		// Deterministic field order keeps exports diffable.
		for _, name := range schema.Names() {
			spec := schema[name]
			value, absent := fieldValue(rec, spec)
			_, err := tx.Exec(
				"INSERT INTO record_fields (record_id, name, kind, value, absent) VALUES (?, ?, ?, ?, ?)",
				rec.RecordID, name, spec.Kind, value, boolToInt(absent),
			)
			if err != nil {
				return fmt.Errorf("inserting field %s of %s: %w", name, rec.FileName, err)
			}
		}
	}
	return nil
}

// fieldValue renders one record slot as export text plus an absent flag.
// Bool-text slots are never flagged absent: the "false" default is
// indistinguishable from a missing field, and the export does not invent
// a distinction the record cannot make.
func fieldValue(rec types.Record, spec types.FieldSpec) (string, bool) {
	switch spec.Kind {
	case types.KindNumeric:
		v := rec.Numeric[spec.Name]
		if types.IsAbsent(v) {
			return "", true
		}
		return strconv.FormatFloat(v, 'g', -1, 64), false
	case types.KindTimeOfDay:
		v := rec.Times[spec.Name]
		return v, v == types.TimeSentinel
	case types.KindBoolText:
		return rec.Bools[spec.Name], false
	default:
		return "", true
	}
}

func insertCycles(tx *sql.Tx, seq types.Sequence, cycles []types.SleepCycle) error {
	for _, c := range cycles {
		fromFile, toFile := "", ""
		if c.Index >= 0 && c.Index+1 < len(seq) {
			fromFile = seq[c.Index].FileName
			toFile = seq[c.Index+1].FileName
		}
		_, err := tx.Exec(
			"INSERT INTO sleep_cycles (cycle_index, from_file, to_file, sleep_start, wake_end) VALUES (?, ?, ?, ?, ?)",
			c.Index, fromFile, toFile, nullFloat(c.SleepStart), nullFloat(c.WakeEnd),
		)
		if err != nil {
			return fmt.Errorf("inserting cycle %d: %w", c.Index, err)
		}
	}
	return nil
}

// nullFloat maps the NaN sentinel to a SQL NULL.
func nullFloat(v float64) sql.NullFloat64 {
	if types.IsAbsent(v) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
