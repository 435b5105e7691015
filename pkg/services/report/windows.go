package report

import (
	"time"

	"github.com/de-tools/time-atlas/pkg/models/domain"
	"github.com/de-tools/time-atlas/pkg/services/timewindow"
)

// DefaultRegistry returns a registry with the built-in report windows.
func DefaultRegistry() Registry {
	r := NewRegistry()

	_ = r.Register("today", Window{
		Label: "Today's Hours",
		Range: func(now time.Time) domain.TimePeriod {
			return domain.TimePeriod{Start: timewindow.DayStart(now, 0), End: timewindow.DayEnd(now, 0)}
		},
	})
	_ = r.Register("yesterday", Window{
		Label: "Yesterday's Hours",
		Range: func(now time.Time) domain.TimePeriod {
			return domain.TimePeriod{Start: timewindow.DayStart(now, -1), End: timewindow.DayEnd(now, -1)}
		},
	})
	_ = r.Register("this-week", Window{
		Label: "This Week's Hours",
		Range: func(now time.Time) domain.TimePeriod {
			return domain.TimePeriod{Start: timewindow.WeekStart(now, 0), End: timewindow.WeekEnd(now, 0)}
		},
	})
	_ = r.Register("last-week", Window{
		Label: "Last Week's Hours",
		Range: func(now time.Time) domain.TimePeriod {
			return domain.TimePeriod{Start: timewindow.WeekStart(now, -1), End: timewindow.WeekEnd(now, -1)}
		},
	})

	return r
}

// DayWindow is the fetch period for one explicit calendar date.
func DayWindow(date time.Time) domain.TimePeriod {
	return domain.TimePeriod{
		Start: timewindow.DayStart(date, 0),
		End:   timewindow.DayEnd(date, 0),
	}
}
