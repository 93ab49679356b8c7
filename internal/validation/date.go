package validation

import "time"

// isoLayouts are the ISO-8601 shapes accepted for dates: reduced precision
// (year, year-month), calendar dates in extended and basic form, and date
// times with an optional Z, ±hh, ±hhmm or ±hh:mm offset. Fractional seconds
// are accepted after any seconds field. Week and ordinal dates are not.
var isoLayouts = []string{
	time.DateOnly,
	"2006-01",
	"2006",
	"20060102",
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"20060102T150405",
	"20060102T150405Z0700",
}

// OptionalDate accepts an empty value as "no date". Anything else must be a
// real calendar date in ISO-8601 form; "2024-02-30" fails.
func OptionalDate(message string) Rule[*time.Time] {
	return func(raw string) Check[*time.Time] {
		if raw == "" {
			return Check[*time.Time]{}
		}
		if t, ok := ParseISODate(raw); ok {
			return Check[*time.Time]{Value: &t, Normalized: t.Format(time.DateOnly)}
		}
		return Check[*time.Time]{Normalized: Escape(raw), Failed: true, Message: message}
	}
}

// ParseISODate parses raw with the first matching ISO-8601 layout and
// returns the result in UTC.
func ParseISODate(raw string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
