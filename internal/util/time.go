package util

import (
	"fmt"
	"time"
)

// dateStampLayout is the only date format that appears in generated names.
const dateStampLayout = "20060102"

// FormatDateStamp formats t as "YYYYMMDD" in t's own location.
func FormatDateStamp(t time.Time) string {
	return t.Format(dateStampLayout)
}

// ParseDateStamp parses an 8-digit "YYYYMMDD" stamp as midnight in loc.
func ParseDateStamp(stamp string, loc *time.Location) (time.Time, error) {
	if len(stamp) != 8 {
		return time.Time{}, fmt.Errorf("invalid date stamp: %s", stamp)
	}
	t, err := time.ParseInLocation(dateStampLayout, stamp, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date stamp: %s", stamp)
	}
	return t, nil
}

// StartOfDay returns midnight of the calendar day t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// BeforeDay reports whether t falls on an earlier calendar day than ref,
// both read in loc. Time of day is ignored on both sides.
func BeforeDay(t, ref time.Time, loc *time.Location) bool {
	return StartOfDay(t, loc).Before(StartOfDay(ref, loc))
}
