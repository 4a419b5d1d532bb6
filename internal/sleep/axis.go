// Package sleep maps clock times onto the 22:00-origin linear axis and
// reconstructs cross-midnight sleep cycles from a record sequence.
package sleep

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Axis constants. The axis puts 22:00 at 0.0 and runs forward, so a
// normal night (roughly 22:00 through 10:00) is monotonically increasing
// across midnight. Clock hours before 22:00 land after the early offset:
// 00:00 maps to 2.0, 06:00 to 8.0, 21:00 to 23.0.
const (
	originHour  = 22
	earlyOffset = 2.0
	axisSpan    = 12.0
)

// ToAxis maps an "HH:MM" string onto the axis. The second return value is
// false when the text is empty, not shaped HH:MM, or out of clock bounds;
// the caller treats that bound as undefined rather than failing.
func ToAxis(text string) (float64, bool) {
	hour, minute, ok := splitClock(strings.TrimSpace(text))
	if !ok {
		return 0, false
	}
	frac := float64(minute) / 60.0
	if hour >= originHour {
		return float64(hour-originHour) + frac, true
	}
	return float64(hour) + earlyOffset + frac, true
}

// FromAxis maps an axis value back to "HH:MM" display text: reduce modulo
// the axis span, shift values below the early offset back to the late
// evening (wrapping past 24), shift the rest back by the offset. Minutes
// round to the nearest whole minute.
func FromAxis(v float64) string {
	v = math.Mod(v, axisSpan)
	if v < 0 {
		v += axisSpan
	}
	total := int(math.Round(v * 60))
	if total >= int(axisSpan)*60 {
		// Rounding can push v*60 past the span; wrap it back.
		total -= int(axisSpan) * 60
	}
	hour, minute := total/60, total%60
	if total < int(earlyOffset*60) {
		hour += originHour
		if hour >= 24 {
			hour -= 24
		}
	} else {
		hour -= int(earlyOffset)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// splitClock parses "HH:MM" into hour and minute with clock bounds
// checking.
func splitClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
