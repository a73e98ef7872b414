package catalog

import "time"

// wallClockLayout is the rendering both sides of a schedule comparison are
// reduced to before a lexicographic compare.
const wallClockLayout = "2006-01-02T15:04:05"

// Visible resolves whether an image may be shown to public viewers at the
// given instant.
//
// Hidden overrides everything. An unset schedule means visible immediately.
// Otherwise the comparison is by wall clock, not by instant: stored schedules
// carry the admin's intended local time in their literal clock fields (an
// entry of "2025-06-01T09:00:00Z" means 9am in the display zone), so the
// schedule's own clock fields are compared against now rendered into the
// configured zone. A naive instant comparison would drift by the UTC offset
// and move across DST transitions. Malformed schedules fail open.
func Visible(hidden bool, schedule string, now time.Time, zone *time.Location) bool {
	if hidden {
		return false
	}
	if schedule == "" {
		return true
	}

	scheduleWall, ok := scheduleWallClock(schedule)
	if !ok {
		return true
	}
	nowWall := now.In(zone).Format(wallClockLayout)
	return nowWall >= scheduleWall
}

// scheduleWallClock extracts the literal clock fields of a stored schedule.
func scheduleWallClock(schedule string) (string, bool) {
	if t, err := time.Parse(time.RFC3339, schedule); err == nil {
		return t.UTC().Format(wallClockLayout), true
	}
	// Some entries were stored without a zone suffix.
	if t, err := time.Parse(wallClockLayout, schedule); err == nil {
		return t.Format(wallClockLayout), true
	}
	if t, err := time.Parse("2006-01-02T15:04", schedule); err == nil {
		return t.Format(wallClockLayout), true
	}
	return "", false
}
