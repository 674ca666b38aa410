// Package history derives the visible, ordered meal list from the full
// fetched set: date-range filtering, sorting, and the range presets the
// CLI exposes. Everything here is a pure transform of its inputs.
package history

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Preset names a shorthand date interval.
type Preset string

const (
	PresetAll       Preset = "all"
	PresetToday     Preset = "today"
	PresetThisWeek  Preset = "week"
	PresetThisMonth Preset = "month"
	PresetCustom    Preset = "custom"
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate rejects custom bounds that are not 4-digit-year dates.
// An empty string is a valid absent bound.
func ValidateDate(s string) error {
	if s == "" {
		return nil
	}
	if !datePattern.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// Range is a resolved date interval. A zero From or To means unbounded on
// that side.
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls within the range, boundary-inclusive.
func (r Range) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}

// RangeSpec is the caller's range selection before resolution. FromDate
// and ToDate are YYYY-MM-DD literals and only apply to PresetCustom.
type RangeSpec struct {
	Preset   Preset
	FromDate string
	ToDate   string
}

// Resolve turns a spec into concrete bounds relative to now, in now's
// location. Day bounds are midnight to 23:59:59; the week starts on the
// ISO Monday; week and month presets end at the end of the current day.
// Custom bounds must already be validated.
func (s RangeSpec) Resolve(now time.Time) (Range, error) {
	loc := now.Location()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, loc)

	switch s.Preset {
	case PresetAll, "":
		return Range{}, nil
	case PresetToday:
		return Range{From: startOfDay, To: endOfDay}, nil
	case PresetThisWeek:
		// time.Weekday has Sunday=0; shift so Monday opens the week.
		offset := (int(now.Weekday()) + 6) % 7
		monday := startOfDay.AddDate(0, 0, -offset)
		return Range{From: monday, To: endOfDay}, nil
	case PresetThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return Range{From: first, To: endOfDay}, nil
	case PresetCustom:
		var r Range
		if s.FromDate != "" {
			d, err := time.ParseInLocation("2006-01-02", s.FromDate, loc)
			if err != nil {
				return Range{}, fmt.Errorf("%w: %q", ErrInvalidDate, s.FromDate)
			}
			r.From = d
		}
		if s.ToDate != "" {
			d, err := time.ParseInLocation("2006-01-02", s.ToDate, loc)
			if err != nil {
				return Range{}, fmt.Errorf("%w: %q", ErrInvalidDate, s.ToDate)
			}
			r.To = time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, loc)
		}
		return r, nil
	default:
		return Range{}, fmt.Errorf("unknown range preset: %q", s.Preset)
	}
}
