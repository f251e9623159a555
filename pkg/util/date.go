package util

import (
    "strconv"
    "time"
)

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
    time.DateOnly,
    time.RFC3339,
    time.RFC3339Nano,
    "2006-01-02T15:04:05",
    "2006-01-02 15:04:05",
}

// ParseDate parses an ISO date, an RFC3339 timestamp, a naive ISO datetime or
// unix seconds. Returns (t, true) if any worked.
func ParseDate(s string) (time.Time, bool) {
    if s == "" {
        return time.Time{}, false
    }
    for _, layout := range dateLayouts {
        if t, err := time.Parse(layout, s); err == nil {
            return t, true
        }
    }
    if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
        return time.Unix(ts, 0).UTC(), true
    }
    return time.Time{}, false
}

// FormatShortDate renders t as "Jan 02".
func FormatShortDate(t time.Time) string {
    return t.Format("Jan 02")
}
