package util

import (
    "strconv"
    "testing"
    "time"
)

func TestParseDateISO(t *testing.T) {
    got, ok := ParseDate("2024-01-02")
    if !ok {
        t.Fatalf("expected ok")
    }
    if !got.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseDateRFC3339(t *testing.T) {
    s := "2024-10-10T10:10:10Z"
    got, ok := ParseDate(s)
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.UTC().Format(time.RFC3339) != s {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseDateNaiveDatetime(t *testing.T) {
    got, ok := ParseDate("2024-10-10T10:10:10")
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.Hour() != 10 || got.Day() != 10 {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseDateUnix(t *testing.T) {
    ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
    got, ok := ParseDate(strconv.FormatInt(ts, 10))
    if !ok {
        t.Fatalf("expected ok")
    }
    if got.Unix() != ts {
        t.Fatalf("unexpected unix %v", got.Unix())
    }
}

func TestParseDateInvalid(t *testing.T) {
    for _, s := range []string{"", "yesterday", "2024-13-45"} {
        if _, ok := ParseDate(s); ok {
            t.Fatalf("expected %q to be rejected", s)
        }
    }
}

func TestFormatShortDate(t *testing.T) {
    if got := FormatShortDate(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)); got != "Jan 02" {
        t.Fatalf("unexpected label %q", got)
    }
}
