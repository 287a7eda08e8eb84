package domain

import (
	"math"
	"time"
)

// MetricWindow is a pair of inclusive calendar-month boundaries, derived from
// "now" at request time and discarded with the request.
type MetricWindow struct {
	Start time.Time
	End   time.Time
}

// MonthWindow returns the window spanning the first to the last instant of
// the calendar month containing now, in now's location. Month lengths
// (28/29/30/31 days) fall out of the calendar arithmetic.
func MonthWindow(now time.Time) MetricWindow {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return MetricWindow{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// Previous returns the window for the calendar month immediately before this
// one. For January this wraps to December of the prior year.
func (w MetricWindow) Previous() MetricWindow {
	start := w.Start.AddDate(0, -1, 0)
	return MetricWindow{
		Start: start,
		End:   w.Start.Add(-time.Nanosecond),
	}
}

// ChangePercent computes the month-over-month delta between current and
// previous, rounded to one decimal place (half away from zero).
//
// When previous is zero the result is 100 unconditionally, even when current
// is also zero: only the denominator is checked, and dashboard consumers key
// off that value.
func ChangePercent(current, previous float64) float64 {
	if previous == 0 {
		return 100
	}
	return math.Round(((current-previous)/previous)*100*10) / 10
}

// MetricSnapshot is one dashboard figure: the current-month value and its
// delta against the previous month.
type MetricSnapshot struct {
	Value         float64 `json:"value"`
	ChangePercent float64 `json:"changePercent"`
}
