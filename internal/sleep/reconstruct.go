package sleep

import (
	"math"

	"github.com/mesh-intelligence/daylog/pkg/types"
)

// Reconstruct pairs each record's sleep-in time with the next record's
// wake-up time and maps both onto the axis, producing N-1 cycles for N
// records. Fewer than 2 records is not an error; it simply yields no
// cycles. A cycle whose source field is absent or unparsable keeps NaN
// bounds and stays in the output as a placeholder, so cycle i always
// describes the transition from record i to record i+1.
func Reconstruct(seq types.Sequence) []types.SleepCycle {
	if len(seq) < 2 {
		return nil
	}

	cycles := make([]types.SleepCycle, 0, len(seq)-1)
	for i := 0; i+1 < len(seq); i++ {
		cycle := types.SleepCycle{
			Index:      i,
			SleepStart: math.NaN(),
			WakeEnd:    math.NaN(),
		}

		sleepAt, sleepOK := ToAxis(seq[i].Times[types.FieldSleepIn])
		wakeAt, wakeOK := ToAxis(seq[i+1].Times[types.FieldWakeUp])
		if sleepOK {
			cycle.SleepStart = sleepAt
		}
		if wakeOK {
			cycle.WakeEnd = wakeAt
		}
		if sleepOK && wakeOK {
			cycle.WakeEnd = correctWraparound(cycle.SleepStart, cycle.WakeEnd)
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// correctWraparound moves a wake bound that mapped below its sleep bound
// into the next half of the axis. The axis spans roughly 12 hours from
// 22:00, so a smaller wake value means the wake time belongs past the
// span boundary. This assumes a nocturnal sleep window of at most ~14
// hours; it is not a general 24-hour interval solver.
func correctWraparound(sleepStart, wakeEnd float64) float64 {
	if wakeEnd < sleepStart {
		return wakeEnd + axisSpan
	}
	return wakeEnd
}
