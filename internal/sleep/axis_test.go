package sleep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAxis(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"22:00", 0.0},
		{"23:30", 1.5},
		{"00:00", 2.0},
		{"02:00", 4.0},
		{"06:00", 8.0},
		{"07:00", 9.0},
		{"21:00", 23.0},
		{"21:45", 23.75},
		{"23:15", 1.25},
		{" 23:15 ", 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ToAxis(tt.in)
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestToAxisRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"7",
		"07:00:00",
		"7:0x",
		"24:00",
		"-1:30",
		"10:60",
		"about ten",
	} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, ok := ToAxis(in)
			assert.False(t, ok)
		})
	}
}

func TestToAxisMonotonicAcrossMidnight(t *testing.T) {
	// A normal nocturnal pair must already be ordered on the axis.
	sleepAt, ok := ToAxis("23:15")
	require.True(t, ok)
	wakeAt, ok := ToAxis("07:30")
	require.True(t, ok)
	assert.Less(t, sleepAt, wakeAt)
}

func TestFromAxis(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.0, "22:00"},
		{1.5, "23:30"},
		{2.0, "00:00"},
		{9.0, "07:00"},
		{11.983333, "09:59"},
		{21.0, "07:00"}, // beyond one span, reduced modulo 12
		{-0.5, "09:30"}, // negative values normalize into the span first
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FromAxis(tt.in))
		})
	}
}

// Round-trip holds to the minute for the span the axis is designed for,
// 22:00 through 09:59.
func TestAxisRoundTrip(t *testing.T) {
	for _, in := range []string{
		"22:00", "22:01", "23:30", "23:59",
		"00:00", "01:17", "02:00", "05:45", "06:15", "09:59",
	} {
		t.Run(in, func(t *testing.T) {
			v, ok := ToAxis(in)
			require.True(t, ok)
			assert.Equal(t, in, FromAxis(v))
		})
	}
}
