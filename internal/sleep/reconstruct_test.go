package sleep

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/daylog/pkg/types"
)

func recordWithTimes(t *testing.T, day int, sleepIn, wakeUp string) types.Record {
	t.Helper()
	date := time.Date(2025, 7, day, 0, 0, 0, 0, time.UTC)
	rec := types.NewRecord(types.DefaultSchema(), date.Format(types.DateLayout)+".md", date)
	rec.Times[types.FieldSleepIn] = sleepIn
	rec.Times[types.FieldWakeUp] = wakeUp
	return rec
}

func TestReconstructSingleNight(t *testing.T) {
	seq := types.Sequence{
		recordWithTimes(t, 6, "23:00", "06:30"),
		recordWithTimes(t, 7, "22:45", "07:00"),
	}
	cycles := Reconstruct(seq)
	require.Len(t, cycles, 1)

	c := cycles[0]
	assert.Equal(t, 0, c.Index)
	require.True(t, c.Defined())
	assert.InDelta(t, 1.0, c.SleepStart, 1e-9) // 23:00
	assert.InDelta(t, 9.0, c.WakeEnd, 1e-9)    // next day's 07:00
	assert.InDelta(t, 8.0, c.Duration(), 1e-9)
}

func TestReconstructTooFewRecords(t *testing.T) {
	assert.Empty(t, Reconstruct(nil))
	assert.Empty(t, Reconstruct(types.Sequence{recordWithTimes(t, 6, "23:00", "07:00")}))
}

func TestReconstructWraparoundCorrection(t *testing.T) {
	// 00:30 maps to 2.5 and 22:15 to 0.25; the smaller wake value gets
	// shifted one span forward.
	seq := types.Sequence{
		recordWithTimes(t, 6, "00:30", ""),
		recordWithTimes(t, 7, "", "22:15"),
	}
	cycles := Reconstruct(seq)
	require.Len(t, cycles, 1)
	require.True(t, cycles[0].Defined())
	assert.InDelta(t, 2.5, cycles[0].SleepStart, 1e-9)
	assert.InDelta(t, 12.25, cycles[0].WakeEnd, 1e-9)
}

func TestReconstructLateEveningSleep(t *testing.T) {
	// 21:45 maps past the span (23.75); one correction still leaves the
	// wake bound at 21.0. The heuristic is bounded to typical nocturnal
	// windows and is applied exactly once.
	seq := types.Sequence{
		recordWithTimes(t, 6, "21:45", ""),
		recordWithTimes(t, 7, "", "07:00"),
	}
	cycles := Reconstruct(seq)
	require.Len(t, cycles, 1)
	assert.InDelta(t, 23.75, cycles[0].SleepStart, 1e-9)
	assert.InDelta(t, 21.0, cycles[0].WakeEnd, 1e-9)
}

func TestReconstructUndefinedBounds(t *testing.T) {
	t.Run("missing sleep-in", func(t *testing.T) {
		seq := types.Sequence{
			recordWithTimes(t, 6, "", "07:00"),
			recordWithTimes(t, 7, "23:00", "07:15"),
		}
		cycles := Reconstruct(seq)
		require.Len(t, cycles, 1)
		assert.True(t, math.IsNaN(cycles[0].SleepStart))
		assert.InDelta(t, 9.25, cycles[0].WakeEnd, 1e-9)
		assert.False(t, cycles[0].Defined())
	})

	t.Run("unparsable wake-up", func(t *testing.T) {
		seq := types.Sequence{
			recordWithTimes(t, 6, "23:00", ""),
			recordWithTimes(t, 7, "", "early, maybe seven"),
		}
		cycles := Reconstruct(seq)
		require.Len(t, cycles, 1)
		assert.True(t, math.IsNaN(cycles[0].WakeEnd))
		assert.False(t, cycles[0].Defined())
	})
}

// A gap in the middle must not shift later indices: cycle i always maps
// to the transition from record i to record i+1.
func TestReconstructKeepsPlaceholders(t *testing.T) {
	seq := types.Sequence{
		recordWithTimes(t, 6, "23:00", "07:00"),
		recordWithTimes(t, 7, "", ""),
		recordWithTimes(t, 8, "22:30", "06:45"),
		recordWithTimes(t, 9, "23:10", "07:20"),
	}
	cycles := Reconstruct(seq)
	require.Len(t, cycles, 3)

	assert.False(t, cycles[0].Defined()) // day 7 has no wake-up
	assert.False(t, cycles[1].Defined()) // day 7 has no sleep-in
	require.True(t, cycles[2].Defined())
	assert.Equal(t, 2, cycles[2].Index)
	assert.InDelta(t, 1.1666667, cycles[2].SleepStart, 1e-6) // 23:10
	assert.InDelta(t, 9.3333333, cycles[2].WakeEnd, 1e-6)    // 07:20
}
