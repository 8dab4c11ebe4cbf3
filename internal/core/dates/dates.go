// Package dates parses free-text review dates such as "11th November 2023" into calendar dates
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	perr "airreviews/internal/platform/errors"
)

// ErrInvalidDate is the sentinel wrapped by every Normalize failure
var ErrInvalidDate = perr.New(perr.ErrorCodeInvalidDate, "invalid date")

// CalendarDate is a validated Gregorian (year, month, day) triple
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// String renders ISO YYYY-MM-DD, negative years keep their sign
func (d CalendarDate) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Ordinal renders the date back in the input shape, e.g. "11th November 2023"
func (d CalendarDate) Ordinal() string {
	return strconv.Itoa(d.Day) + OrdinalSuffix(d.Day) + " " + d.Month.String() + " " + strconv.Itoa(d.Year)
}

// Time returns midnight UTC of the date
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

var months = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"Febuary":   time.February, // legacy spelling found in older exports
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// ParseMonth maps an English month name to its number. Matching is exact and case-sensitive
func ParseMonth(name string) (time.Month, bool) {
	m, ok := months[name]
	return m, ok
}

// OrdinalSuffix returns the English ordinal suffix for a day of month
func OrdinalSuffix(day int) string {
	if n := day % 100; n >= 11 && n <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Normalize parses "<day><suffix> <Month> <year>" split on single spaces.
// The last two bytes of the day token are dropped without being checked
func Normalize(text string) (CalendarDate, error) {
	parts := strings.Split(text, " ")
	if len(parts) != 3 {
		return CalendarDate{}, invalid(text, "want 3 space separated tokens, got %d", len(parts))
	}
	dayTok, monthTok, yearTok := parts[0], parts[1], parts[2]

	if len(dayTok) < 3 {
		return CalendarDate{}, invalid(text, "day %q has no ordinal suffix", dayTok)
	}
	// one leading '+' is allowed, as for the year
	day, err := strconv.ParseUint(strings.TrimPrefix(dayTok[:len(dayTok)-2], "+"), 10, 32)
	if err != nil {
		return CalendarDate{}, invalid(text, "day %q is not a number", dayTok)
	}

	month, ok := ParseMonth(monthTok)
	if !ok {
		return CalendarDate{}, invalid(text, "unknown month %q", monthTok)
	}

	year, err := strconv.ParseInt(yearTok, 10, 32)
	if err != nil {
		return CalendarDate{}, invalid(text, "year %q is not a number", yearTok)
	}

	d := CalendarDate{Year: int(year), Month: month, Day: int(day)}
	if !d.valid() {
		return CalendarDate{}, invalid(text, "%s %d has no day %d", month, year, day)
	}
	return d, nil
}

// valid reports whether time.Date keeps the triple unchanged (no normalization rollover)
func (d CalendarDate) valid() bool {
	if d.Day < 1 || d.Month < time.January || d.Month > time.December {
		return false
	}
	t := d.Time()
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

func invalid(text, format string, a ...any) error {
	return perr.Wrapf(ErrInvalidDate, perr.ErrorCodeInvalidDate, "invalid date %q: "+format, append([]any{text}, a...)...)
}
