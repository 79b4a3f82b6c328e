package util

import (
	"testing"
	"time"
)

func TestMonthLabel(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "M0"},
		{1, "M1"},
		{12, "M12"},
		{600, "M600"},
	}

	for _, tt := range tests {
		if got := MonthLabel(tt.index); got != tt.want {
			t.Errorf("MonthLabel(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestMonthLabels(t *testing.T) {
	labels := MonthLabels(6)
	want := []string{"M0", "M1", "M2", "M3", "M4", "M5"}

	if len(labels) != len(want) {
		t.Fatalf("MonthLabels(6) returned %d labels, want %d", len(labels), len(want))
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestMonthLabels_NonPositiveCount(t *testing.T) {
	if got := MonthLabels(0); len(got) != 0 {
		t.Errorf("MonthLabels(0) = %v, want empty", got)
	}
	if got := MonthLabels(-3); len(got) != 0 {
		t.Errorf("MonthLabels(-3) = %v, want empty", got)
	}
}

func TestMonthAfter(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		offset    int64
		wantYear  int
		wantMonth time.Month
	}{
		{"zero offset", 2026, time.June, 0, 2026, time.June},
		{"same year", 2026, time.June, 5, 2026, time.November},
		{"crosses year", 2026, time.October, 5, 2027, time.March},
		{"december to january", 2026, time.December, 1, 2027, time.January},
		{"exact years", 2026, time.January, 24, 2028, time.January},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotYear, gotMonth, ok := MonthAfter(tt.year, tt.month, tt.offset)
			if !ok {
				t.Fatalf("MonthAfter(%d, %d, %d) not ok", tt.year, tt.month, tt.offset)
			}
			if gotYear != tt.wantYear || gotMonth != tt.wantMonth {
				t.Errorf("MonthAfter(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.year, tt.month, tt.offset, gotYear, gotMonth, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestMonthAfter_OutOfRange(t *testing.T) {
	if _, _, ok := MonthAfter(2026, time.June, -1); ok {
		t.Error("expected negative offset to be rejected")
	}
	if _, _, ok := MonthAfter(2026, time.June, MaxCalendarOffsetMonths+1); ok {
		t.Error("expected offset beyond the limit to be rejected")
	}
}
