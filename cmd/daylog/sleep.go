// Sleep command: prints reconstructed sleep cycles.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/daylog/internal/export"
	"github.com/mesh-intelligence/daylog/internal/sleep"
	"github.com/mesh-intelligence/daylog/pkg/types"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Reconstruct and print sleep cycles",
	Long: `Sleep pairs each day's sleep-in time with the next day's wake-up time
and prints one line per night: clock times, plus the duration in hours.
Nights where either time is missing or unparsable print as incomplete
placeholders so the numbering still matches the calendar transitions.`,
	Args: cobra.NoArgs,
	RunE: runSleep,
}

func runSleep(cmd *cobra.Command, args []string) error {
	seq, err := loadSequence()
	if err != nil {
		return err
	}

	cycles := sleep.Reconstruct(seq)
	if len(cycles) == 0 {
		logger.Warn("not enough records to form a sleep cycle",
			zap.Int("records", len(seq)))
	}

	if flagJSON {
		return printJSON(export.CycleLines(cycles))
	}

	for _, c := range cycles {
		from := seq[c.Index].Date.Format(types.DateLayout)
		if !c.Defined() {
			fmt.Printf("%s  incomplete\n", from)
			continue
		}
		fmt.Printf("%s  %s -> %s  %.2fh\n",
			from, sleep.FromAxis(c.SleepStart), sleep.FromAxis(c.WakeEnd), c.Duration())
	}
	return nil
}
