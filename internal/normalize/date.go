package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// genericLayouts are tried first, in order. US month-first slash dates sit
// here so that an ambiguous "03/15/2024" resolves the US way before the
// day-first fallback below gets a chance.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
}

var (
	dayFirstRe   = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	monthFirstRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})$`)
	yearFirstRe  = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)
)

// ParseDate parses a date cell, trying generic layouts first and then
// DD/MM/YYYY, MM/DD/YYYY (2-digit years mean 2000+YY) and YYYY/MM/DD, with
// either slash or dash separators. The first calendar-valid date wins.
// Text that parses under no convention yields the current instant; the row
// is still kept.
func ParseDate(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Now()
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}

	if m := dayFirstRe.FindStringSubmatch(trimmed); m != nil {
		if t, ok := makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1])); ok {
			return t
		}
	}

	if m := monthFirstRe.FindStringSubmatch(trimmed); m != nil {
		year := atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if t, ok := makeDate(year, atoi(m[1]), atoi(m[2])); ok {
			return t
		}
	}

	if m := yearFirstRe.FindStringSubmatch(trimmed); m != nil {
		if t, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3])); ok {
			return t
		}
	}

	return time.Now()
}

// makeDate builds a UTC date and rejects components that would roll over
// (month 15, Feb 30) instead of silently normalizing them.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
