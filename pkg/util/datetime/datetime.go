package datetime

import (
	"fmt"
	"time"
)

// timestampLayouts are the accepted raw snapshot timestamp formats, tried in
// order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate formats time into RFC3339 format.
func FormatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimestamp parses a raw snapshot timestamp. Layouts without a zone are
// interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format %q", s)
}

// DaysBetween returns the number of whole days from earlier to later,
// truncated toward zero.
func DaysBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier) / (24 * time.Hour))
}
