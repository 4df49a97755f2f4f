package dates

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const Layout = "2006-01-02"

var (
	ErrEmpty     = errors.New("no dates given")
	ErrMalformed = errors.New("malformed date")
)

// Parse accepts only YYYY-MM-DD and returns the day at UTC midnight.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return t, nil
}

// Day drops the time of day, keeping the calendar date as seen in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

// Canonicalize parses, dedupes and sorts a caller-supplied date list.
func Canonicalize(raw []string) ([]time.Time, error) {
	if len(raw) == 0 {
		return nil, ErrEmpty
	}
	seen := make(map[time.Time]struct{}, len(raw))
	days := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		day, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days, nil
}

// ParseOptional returns the zero time for an empty string.
func ParseOptional(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	return Parse(s)
}
