package services

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextAnniversary(t *testing.T) {
	anniversary := date(2024, time.May, 14)

	tests := []struct {
		name      string
		now       time.Time
		wantNext  time.Time
		wantUntil int
	}{
		{"seven days before", date(2026, time.May, 7), date(2026, time.May, 14), 7},
		{"day before", date(2026, time.May, 13), date(2026, time.May, 14), 1},
		{"on the day", date(2026, time.May, 14), date(2026, time.May, 14), 0},
		{"day after rolls to next year", date(2026, time.May, 15), date(2027, time.May, 14), 364},
		{"time of day is ignored", time.Date(2026, time.May, 14, 23, 59, 0, 0, time.UTC), date(2026, time.May, 14), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, until := NextAnniversary(tc.now, anniversary)
			if !next.Equal(tc.wantNext) {
				t.Fatalf("next = %v, want %v", next, tc.wantNext)
			}
			if until != tc.wantUntil {
				t.Fatalf("until = %d, want %d", until, tc.wantUntil)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(date(2024, time.May, 14), date(2024, time.May, 14)); got != 0 {
		t.Fatalf("same day: got %d", got)
	}
	if got := DaysBetween(date(2024, time.May, 14), date(2024, time.May, 15)); got != 1 {
		t.Fatalf("next day: got %d", got)
	}
	if got := DaysBetween(date(2024, time.May, 14), date(2026, time.May, 14)); got != 730 {
		t.Fatalf("two years: got %d", got)
	}
}

// US clocks spring forward on March 8 2026; the span between local midnights
// on either side of it is 47 hours, not 48.
func TestDaysBetween_SpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	a := time.Date(2026, time.March, 7, 0, 0, 0, 0, loc)
	b := time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)
	if got := DaysBetween(a, b); got != 2 {
		t.Fatalf("across spring forward: got %d, want 2", got)
	}
}

func TestNextAnniversary_SpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	anniversary := date(2024, time.March, 10)
	now := time.Date(2026, time.March, 6, 12, 0, 0, 0, loc)

	next, until := NextAnniversary(now, anniversary)
	if until != 4 {
		t.Fatalf("until = %d, want 4", until)
	}
	if !next.Equal(date(2026, time.March, 10)) {
		t.Fatalf("next = %v, want %v", next, date(2026, time.March, 10))
	}
}
