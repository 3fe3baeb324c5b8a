package interest

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestElapsed(t *testing.T) {
	cases := []struct {
		name       string
		start      time.Time
		asOf       time.Time
		wantDays   int
		wantMonths float64
	}{
		{"same day", date(2024, 1, 1), date(2024, 1, 1), 0, 0},
		{"one day", date(2024, 1, 1), date(2024, 1, 2), 1, 1.0 / 30},
		{"across leap february", date(2024, 1, 1), date(2024, 3, 15), 74, 74.0 / 30},
		{"exactly thirty days", date(2024, 5, 1), date(2024, 5, 31), 30, 1},
		{"year boundary", date(2023, 12, 31), date(2024, 1, 30), 30, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Elapsed(tc.start, tc.asOf)
			if err != nil {
				t.Fatalf("Elapsed err: %v", err)
			}
			if d.Days != tc.wantDays {
				t.Fatalf("days=%d want %d", d.Days, tc.wantDays)
			}
			if d.Months != tc.wantMonths {
				t.Fatalf("months=%v want %v", d.Months, tc.wantMonths)
			}
		})
	}
}

func TestElapsed_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	asOf := time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)
	d, err := Elapsed(start, asOf)
	if err != nil {
		t.Fatalf("Elapsed err: %v", err)
	}
	if d.Days != 1 {
		t.Fatalf("days=%d want 1", d.Days)
	}
}

func TestElapsed_AsOfBeforeStart(t *testing.T) {
	_, err := Elapsed(date(2024, 3, 15), date(2024, 1, 1))
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("err=%v want ErrInvalidDateRange", err)
	}
}

func TestValidUntil(t *testing.T) {
	got := ValidUntil(date(2024, 1, 15), 6)
	if want := date(2024, 7, 15); !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
