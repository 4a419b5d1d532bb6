package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/daylog/pkg/types"
)

// Default JSONL export file names.
const (
	RecordsFileName = "records.jsonl"
	CyclesFileName  = "sleep_cycles.jsonl"
)

// WriteRecordsJSONL writes the sequence to path as one JSON object per
// line, atomically.
func WriteRecordsJSONL(path string, seq types.Sequence) error {
	lines := RecordLines(seq)
	raw := make([]json.RawMessage, 0, len(lines))
	for _, line := range lines {
		b, err := json.Marshal(line)
		if err != nil {
			return fmt.Errorf("marshaling record %s: %w", line.FileName, err)
		}
		raw = append(raw, b)
	}
	return writeJSONL(path, raw)
}

// WriteCyclesJSONL writes the sleep cycles to path as one JSON object per
// line, atomically. Placeholder cycles are written too, with null bounds.
func WriteCyclesJSONL(path string, cycles []types.SleepCycle) error {
	lines := CycleLines(cycles)
	raw := make([]json.RawMessage, 0, len(lines))
	for _, line := range lines {
		b, err := json.Marshal(line)
		if err != nil {
			return fmt.Errorf("marshaling cycle %d: %w", line.Index, err)
		}
		raw = append(raw, b)
	}
	return writeJSONL(path, raw)
}

// writeJSONL atomically writes records to a JSONL file using the
// temp-file, fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
