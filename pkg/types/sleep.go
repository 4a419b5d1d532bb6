package types

import "math"

// SleepCycle pairs one day's sleep start with the next day's wake end on
// the 22:00-origin linear axis. Cycle i spans the transition from record i
// to record i+1; a bound is NaN when the source time-of-day field was
// absent or unparsable. Undefined cycles are retained as placeholders so
// the index always corresponds to the calendar transition.
type SleepCycle struct {
	Index      int     // Position i of the cycle's first record.
	SleepStart float64 // Axis value of record i's sleep-in; NaN when undefined.
	WakeEnd    float64 // Axis value of record i+1's wake-up; NaN when undefined.
}

// Defined reports whether both bounds carry real axis values.
func (c SleepCycle) Defined() bool {
	return !math.IsNaN(c.SleepStart) && !math.IsNaN(c.WakeEnd)
}

// Duration returns the cycle length in hours, or NaN when either bound is
// undefined.
func (c SleepCycle) Duration() float64 {
	if !c.Defined() {
		return math.NaN()
	}
	return c.WakeEnd - c.SleepStart
}
