package query

import "time"

const week = 7 * 24 * time.Hour

// TimeRange is an interval over forecast times. Start is always inclusive.
type TimeRange struct {
	Start        time.Time
	End          time.Time
	EndInclusive bool
}

// YearInclusive covers Jan 1 00:00:00 through Dec 31 23:59:59 UTC, both ends
// included. Used by the per-city stats report.
func YearInclusive(year int) TimeRange {
	return TimeRange{
		Start:        yearStart(year),
		End:          time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
		EndInclusive: true,
	}
}

// YearHalfOpen covers [Jan 1 of year, Jan 1 of year+1) UTC. Used by the
// top-days ranking.
func YearHalfOpen(year int) TimeRange {
	return TimeRange{
		Start: yearStart(year),
		End:   yearStart(year + 1),
	}
}

// WeekAhead covers [now, now+7d). Callers evaluate now once per request.
func WeekAhead(now time.Time) TimeRange {
	return TimeRange{
		Start: now,
		End:   now.Add(week),
	}
}

func (r TimeRange) Contains(t time.Time) bool {
	if t.Before(r.Start) {
		return false
	}
	if r.EndInclusive {
		return !t.After(r.End)
	}
	return t.Before(r.End)
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
