package timewindow

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalidDateFormat is returned when a custom report date does not match
// the expected YYYY-M-D pattern. It aborts the run; there is no fallback.
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-M-D")

var dayPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

// DayStart returns local midnight of t's calendar day shifted by offsetDays.
func DayStart(t time.Time, offsetDays int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+offsetDays, 0, 0, 0, 0, t.Location())
}

// DayEnd returns 23:59:59.999 of t's calendar day shifted by offsetDays.
func DayEnd(t time.Time, offsetDays int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+offsetDays, 23, 59, 59, lastMillisecond, t.Location())
}

// WeekStart returns local midnight of the Sunday on or before t, shifted by
// offsetWeeks full weeks. Weeks start on Sunday regardless of locale.
func WeekStart(t time.Time, offsetWeeks int) time.Time {
	dow := int(t.Weekday())
	return time.Date(t.Year(), t.Month(), t.Day()-dow+7*offsetWeeks, 0, 0, 0, 0, t.Location())
}

// WeekEnd returns 23:59:59.999 of the Saturday on or after t, shifted by
// offsetWeeks full weeks.
func WeekEnd(t time.Time, offsetWeeks int) time.Time {
	dow := 6 - int(t.Weekday())
	return time.Date(t.Year(), t.Month(), t.Day()+dow+7*offsetWeeks, 23, 59, 59, lastMillisecond, t.Location())
}

const lastMillisecond = 999 * int(time.Millisecond)

// ParseDay interprets a "YYYY-M-D" string as a calendar date in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	match := dayPattern.FindStringSubmatch(value)
	if match == nil {
		return time.Time{}, ErrInvalidDateFormat
	}

	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidDateFormat
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}
