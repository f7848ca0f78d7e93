package scoring

import (
	"fmt"
	"time"
)

// Granularity is the resolution of a score series.
type Granularity int

const (
	Daily Granularity = iota
	Weekly
)

func (g Granularity) String() string {
	switch g {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// GranularityFor picks weekly buckets when start lies strictly before
// end minus one calendar month, daily otherwise.
func GranularityFor(start, end time.Time) Granularity {
	if DateOf(start).Before(monthBefore(DateOf(end))) {
		return Weekly
	}
	return Daily
}

// monthBefore steps back one calendar month, clamping the day to the length
// of the target month: 2024-03-31 gives 2024-02-29, not AddDate's 2024-03-02.
func monthBefore(t time.Time) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-1, 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// BucketKey identifies a time bucket. Daily keys carry Date; weekly keys carry
// the ISO-8601 year and week.
type BucketKey struct {
	Granularity Granularity
	Date        time.Time
	Year        int
	Week        int
}

// KeyFor maps a date to its bucket under g.
func KeyFor(date time.Time, g Granularity) BucketKey {
	if g == Weekly {
		year, week := date.ISOWeek()
		return BucketKey{Granularity: Weekly, Year: year, Week: week}
	}
	return BucketKey{Granularity: Daily, Date: DateOf(date)}
}

// Before orders keys chronologically. Keys of different granularity are not
// comparable and never share a series.
func (k BucketKey) Before(other BucketKey) bool {
	if k.Granularity == Weekly {
		if k.Year != other.Year {
			return k.Year < other.Year
		}
		return k.Week < other.Week
	}
	return k.Date.Before(other.Date)
}

func (k BucketKey) String() string {
	if k.Granularity == Weekly {
		return fmt.Sprintf("%04d-W%02d", k.Year, k.Week)
	}
	return k.Date.Format(DateLayout)
}
