package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func eastern(t *testing.T) *time.Location {
	t.Helper()
	zone, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return zone
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestVisibleHiddenOverridesEverything(t *testing.T) {
	zone := eastern(t)
	now := mustParse(t, "2025-06-01T13:00:00Z")

	schedules := []string{"", "2020-01-01T00:00:00Z", "2099-01-01T00:00:00Z", "garbage"}
	for _, schedule := range schedules {
		if Visible(true, schedule, now, zone) {
			t.Errorf("hidden image visible with schedule %q", schedule)
		}
	}
}

func TestVisibleNoScheduleIsVisible(t *testing.T) {
	zone := eastern(t)
	if !Visible(false, "", mustParse(t, "2025-06-01T13:00:00Z"), zone) {
		t.Error("image with no schedule should be visible")
	}
}

func TestVisibleWallClockComparison(t *testing.T) {
	zone := eastern(t)
	// Stored schedules carry the intended Eastern wall clock in their
	// literal fields: "2025-06-01T09:00:00Z" means 9:00am Eastern.
	const schedule = "2025-06-01T09:00:00Z"

	tests := []struct {
		name string
		now  string
		want bool
	}{
		{"8:55am EDT", "2025-06-01T12:55:00Z", false},
		{"9:00am EDT exactly", "2025-06-01T13:00:00Z", true},
		{"9:05am EDT", "2025-06-01T13:05:00Z", true},
		{"previous day", "2025-05-31T23:00:00Z", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(false, schedule, mustParse(t, tt.now), zone)
			if got != tt.want {
				t.Errorf("Visible(now=%s) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestVisibleWallClockAcrossDST(t *testing.T) {
	zone := eastern(t)
	// In January the zone is EST (UTC-5), not EDT (UTC-4). 9am Eastern is
	// 14:00Z; a naive instant comparison calibrated for EDT would flip an
	// hour early.
	const schedule = "2025-01-15T09:00:00Z"

	if Visible(false, schedule, mustParse(t, "2025-01-15T13:30:00Z"), zone) {
		t.Error("8:30am EST should not be visible yet")
	}
	if !Visible(false, schedule, mustParse(t, "2025-01-15T14:00:00Z"), zone) {
		t.Error("9:00am EST should be visible")
	}
}

func TestVisibleMonotonicAroundSchedule(t *testing.T) {
	zone := eastern(t)
	const schedule = "2025-06-01T09:00:00Z"
	boundary := mustParse(t, "2025-06-01T13:00:00Z")

	for _, offset := range []time.Duration{-48 * time.Hour, -time.Hour, -time.Second} {
		if Visible(false, schedule, boundary.Add(offset), zone) {
			t.Errorf("visible %v before the schedule boundary", -offset)
		}
	}
	for _, offset := range []time.Duration{0, time.Second, time.Hour, 48 * time.Hour} {
		if !Visible(false, schedule, boundary.Add(offset), zone) {
			t.Errorf("not visible %v after the schedule boundary", offset)
		}
	}
}

func TestVisibleMalformedScheduleFailsOpen(t *testing.T) {
	zone := eastern(t)
	now := mustParse(t, "2025-06-01T13:00:00Z")

	for _, schedule := range []string{"not-a-date", "2025-13-45T99:99:99Z", "12345"} {
		if !Visible(false, schedule, now, zone) {
			t.Errorf("malformed schedule %q should fail open", schedule)
		}
	}
}

func TestVisibleZonelessSchedule(t *testing.T) {
	zone := eastern(t)
	const schedule = "2025-06-01T09:00:00"

	if Visible(false, schedule, mustParse(t, "2025-06-01T12:55:00Z"), zone) {
		t.Error("8:55am EDT should not be visible")
	}
	if !Visible(false, schedule, mustParse(t, "2025-06-01T13:00:00Z"), zone) {
		t.Error("9:00am EDT should be visible")
	}
}
