package analytics

import (
	"fmt"
	"time"
)

// DefaultWindow is the range used when a request names neither end.
const DefaultWindow = 30 * 24 * time.Hour

// ParseRange reads ?from=&to= values given as YYYY-MM-DD or RFC 3339. A date-only "to"
// covers that whole day. Missing ends default to the 30 days up to now.
func ParseRange(from, to string, now time.Time) (DateRange, error) {
	r := DateRange{Start: now.Add(-DefaultWindow), End: now}
	if from != "" {
		t, _, err := parseInstant(from)
		if err != nil {
			return DateRange{}, fmt.Errorf("from: %w", err)
		}
		r.Start = t
	}
	if to != "" {
		t, dateOnly, err := parseInstant(to)
		if err != nil {
			return DateRange{}, fmt.Errorf("to: %w", err)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		r.End = t
	}
	return r, nil
}

func parseInstant(s string) (time.Time, bool, error) {
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("want YYYY-MM-DD or RFC 3339, got %q", s)
	}
	return t, false, nil
}
