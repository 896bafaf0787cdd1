package report

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDefaultRange(t *testing.T) {
	today := day(2025, time.June, 18)
	start, end := DefaultRange(today)
	if !start.Equal(day(2025, time.June, 1)) {
		t.Fatalf("expected month start, got %v", start)
	}
	if !end.Equal(today) {
		t.Fatalf("expected today, got %v", end)
	}
}

func TestFilterByDate(t *testing.T) {
	orders := []Order{
		{Reference: "SO-1", OrderDate: day(2025, time.June, 1)},
		{Reference: "SO-2", OrderDate: day(2025, time.June, 15)},
		{Reference: "SO-3", OrderDate: day(2025, time.June, 30)},
		{Reference: "SO-4", OrderDate: day(2025, time.July, 1)},
		{Reference: "SO-5"}, // missing date
	}

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected []string
	}{
		{
			name:     "inclusive bounds",
			start:    day(2025, time.June, 1),
			end:      day(2025, time.June, 30),
			expected: []string{"SO-1", "SO-2", "SO-3"},
		},
		{
			name:     "narrow window",
			start:    day(2025, time.June, 15),
			end:      day(2025, time.June, 15),
			expected: []string{"SO-2"},
		},
		{
			name:     "inverted range matches nothing",
			start:    day(2025, time.June, 30),
			end:      day(2025, time.June, 1),
			expected: []string{},
		},
		{
			name:     "range with no rows",
			start:    day(2024, time.January, 1),
			end:      day(2024, time.January, 31),
			expected: []string{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByDate(orders, tc.start, tc.end)
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d rows, got %d", len(tc.expected), len(got))
			}
			for i, ref := range tc.expected {
				if got[i].Reference != ref {
					t.Fatalf("expected %s at index %d, got %s", ref, i, got[i].Reference)
				}
			}
		})
	}
}

func TestFilterByDateDropsMissingDates(t *testing.T) {
	orders := []Order{{Reference: "SO-1"}}
	got := FilterByDate(orders, day(2000, time.January, 1), day(2100, time.January, 1))
	if len(got) != 0 {
		t.Fatalf("expected missing-date row to be dropped, got %d rows", len(got))
	}
}
