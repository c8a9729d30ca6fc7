package timeutil

import (
	"testing"
	"time"
)

func TestMidnight(t *testing.T) {
	at := time.Date(2026, time.September, 1, 17, 42, 13, 99, time.Local)
	m := Midnight(at)
	if m.Hour() != 0 || m.Minute() != 0 || m.Second() != 0 || m.Nanosecond() != 0 {
		t.Fatalf("Midnight left time-of-day: %v", m)
	}
	if !SameDay(at, m) {
		t.Fatalf("midnight should share the day with its input")
	}
}

func TestSameDayAcrossMidnight(t *testing.T) {
	before := time.Date(2026, time.September, 1, 23, 59, 0, 0, time.Local)
	after := time.Date(2026, time.September, 2, 0, 1, 0, 0, time.Local)
	if SameDay(before, after) {
		t.Fatalf("dates across midnight should differ")
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"14:30", 14*time.Hour + 30*time.Minute},
		{"09:05:30", 9*time.Hour + 5*time.Minute + 30*time.Second},
		{"2:30 PM", 14*time.Hour + 30*time.Minute},
		{"2:30pm", 14*time.Hour + 30*time.Minute},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "noon", "25:99"} {
		if _, err := ParseClock(bad); err == nil {
			t.Fatalf("ParseClock(%q) should fail", bad)
		}
	}
}

func TestParseLead(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", DefaultLead},
		{"30m", 30 * time.Minute},
		{"1h", time.Hour},
		{"45", 45 * time.Minute},
		{"2 hours", 2 * time.Hour},
	}
	for _, tc := range cases {
		got, err := ParseLead(tc.in)
		if err != nil {
			t.Fatalf("ParseLead(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLead(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"-5m", "soon", "0m"} {
		if _, err := ParseLead(bad); err == nil {
			t.Fatalf("ParseLead(%q) should fail", bad)
		}
	}
}
