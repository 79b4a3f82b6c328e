package util

import (
	"fmt"
	"time"
)

// MaxCalendarOffsetMonths bounds MonthAfter so year arithmetic stays well inside int range
const MaxCalendarOffsetMonths = 12 * 10000

// MonthLabel returns the chart category label for a month index (M0, M1, ...)
func MonthLabel(index int) string {
	return fmt.Sprintf("M%d", index)
}

// MonthLabels returns labels M0 through M(count-1)
func MonthLabels(count int) []string {
	if count <= 0 {
		return []string{}
	}
	labels := make([]string, count)
	for i := range labels {
		labels[i] = MonthLabel(i)
	}
	return labels
}

// MonthAfter returns the year and month that is offset months after the given year/month.
// Returns ok=false when offset is negative or exceeds MaxCalendarOffsetMonths.
func MonthAfter(year int, month time.Month, offset int64) (int, time.Month, bool) {
	if offset < 0 || offset > MaxCalendarOffsetMonths {
		return 0, 0, false
	}
	// Work in zero-based month ordinals to avoid time.Date normalisation on huge offsets
	ordinal := int64(year)*12 + int64(month-1) + offset
	return int(ordinal / 12), time.Month(ordinal%12) + 1, true
}
