// Records command: prints the typed record table.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/daylog/internal/export"
	"github.com/mesh-intelligence/daylog/pkg/types"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List typed records in the configured date range",
	Long: `Records runs the extraction pipeline over the configured folder and
date range and prints one row per daily note: the file, its date, and
every schema field. Absent values print as "-" (numeric and time
fields); bool fields always carry text, "false" by default.`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

func runRecords(cmd *cobra.Command, args []string) error {
	seq, err := loadSequence()
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(export.RecordLines(seq))
	}
	return printRecordTable(seq)
}

func printRecordTable(seq types.Sequence) error {
	schema := types.DefaultSchema()
	names := schema.Names()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprint(w, "FILE\tDATE")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)

	for _, rec := range seq {
		fmt.Fprintf(w, "%s\t%s", rec.FileName, rec.Date.Format(types.DateLayout))
		for _, name := range names {
			fmt.Fprintf(w, "\t%s", fieldText(rec, schema[name]))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

// fieldText renders one slot for the text table, with "-" for absent
// numeric and time values.
func fieldText(rec types.Record, spec types.FieldSpec) string {
	switch spec.Kind {
	case types.KindNumeric:
		v := rec.Numeric[spec.Name]
		if types.IsAbsent(v) {
			return "-"
		}
		return fmt.Sprintf("%g", v)
	case types.KindTimeOfDay:
		v := rec.Times[spec.Name]
		if v == types.TimeSentinel {
			return "-"
		}
		return v
	case types.KindBoolText:
		return rec.Bools[spec.Name]
	default:
		return "-"
	}
}
