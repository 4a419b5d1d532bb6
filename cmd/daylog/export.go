// Export command: writes renderer-facing interchange files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/daylog/internal/export"
	"github.com/mesh-intelligence/daylog/internal/paths"
	"github.com/mesh-intelligence/daylog/internal/sleep"
	"github.com/mesh-intelligence/daylog/pkg/types"
)

// Export formats.
const (
	formatJSONL  = "jsonl"
	formatSQLite = "sqlite"
)

var (
	flagFormat string
	flagOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write records and sleep cycles for external renderers",
	Long: `Export runs the pipeline and writes its output where chart renderers
can pick it up: either JSONL files (records.jsonl, sleep_cycles.jsonl)
or a single SQLite database (daylog.db). Each export is a fresh
snapshot; daylog never reads these files back.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagFormat, "format", formatJSONL, "export format: jsonl or sqlite")
	exportCmd.Flags().StringVar(&flagOut, "out", "", "export directory (default: $(CWD)/daylog-out)")
}

func runExport(cmd *cobra.Command, args []string) error {
	seq, err := loadSequence()
	if err != nil {
		return err
	}
	cycles := sleep.Reconstruct(seq)

	outDir, err := paths.ResolveExportDir(flagOut)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating export dir %s: %w", outDir, err)
	}

	logger.Debug("exporting",
		zap.String("format", flagFormat),
		zap.String("dir", outDir),
		zap.Int("records", len(seq)),
		zap.Int("cycles", len(cycles)))

	switch flagFormat {
	case formatJSONL:
		recordsPath := filepath.Join(outDir, export.RecordsFileName)
		if err := export.WriteRecordsJSONL(recordsPath, seq); err != nil {
			return err
		}
		cyclesPath := filepath.Join(outDir, export.CyclesFileName)
		if err := export.WriteCyclesJSONL(cyclesPath, cycles); err != nil {
			return err
		}
		fmt.Println("wrote", recordsPath)
		fmt.Println("wrote", cyclesPath)
		return nil
	case formatSQLite:
		dbPath := filepath.Join(outDir, export.DBFileName)
		if err := export.WriteSQLite(dbPath, types.DefaultSchema(), seq, cycles); err != nil {
			return err
		}
		fmt.Println("wrote", dbPath)
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: %s, %s)", flagFormat, formatJSONL, formatSQLite)
	}
}
