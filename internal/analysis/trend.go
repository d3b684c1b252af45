package analysis

import (
	"fmt"
	"time"

	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/models"
)

// TrendPoint is the average activity of a single calendar day. Days without
// entries have Count 0 and Average 0.
type TrendPoint struct {
	Date    time.Time
	Average float64
	Count   int
}

// Trend is a contiguous daily series of average activity. Point i is the
// day Start+i.
type Trend struct {
	Start  time.Time
	End    time.Time
	Points []TrendPoint

	// NoData is set when the store is empty; Points is nil in that case.
	NoData bool
}

// Values returns the per-day averages in chronological order.
func (t Trend) Values() []float64 {
	values := make([]float64, len(t.Points))
	for i, p := range t.Points {
		values[i] = p.Average
	}
	return values
}

// Days returns the number of days covered by the series.
func (t Trend) Days() int {
	return len(t.Points)
}

// BuildTrend walks every day between the earliest and latest bucket keys,
// inclusive, and zero-fills the days nothing was logged.
func BuildTrend(log models.Log) Trend {
	if log.Empty() {
		return Trend{NoData: true}
	}

	var start, end time.Time
	for _, key := range log.Dates() {
		if len(log[key]) == 0 {
			continue
		}
		day, err := time.Parse(constants.DateFormat, key)
		if err != nil {
			logger.Warn("Skipping bucket with invalid date key", "key", key, "error", err)
			continue
		}
		if start.IsZero() {
			start = day
		}
		end = day
	}
	if start.IsZero() {
		return Trend{NoData: true}
	}

	trend, _ := BuildTrendBetween(log, start, end)
	return trend
}

// BuildTrendBetween builds the series for the calendar days from..to,
// inclusive, regardless of where the logged data begins or ends. Only the
// calendar date of from and to is used.
func BuildTrendBetween(log models.Log, from, to time.Time) (Trend, error) {
	start := truncateDay(from)
	end := truncateDay(to)
	if start.After(end) {
		return Trend{}, fmt.Errorf("trend window starts after it ends: %s > %s",
			start.Format(constants.DateFormat), end.Format(constants.DateFormat))
	}

	trend := Trend{
		Start:  start,
		End:    end,
		NoData: log.Empty(),
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		point := TrendPoint{Date: day}
		entries := log[day.Format(constants.DateFormat)]
		if len(entries) > 0 {
			sum := 0
			for _, e := range entries {
				sum += e.Activity
			}
			point.Count = len(entries)
			point.Average = float64(sum) / float64(len(entries))
		}
		trend.Points = append(trend.Points, point)
	}

	return trend, nil
}

// truncateDay maps t to midnight UTC of its own calendar date, so that day
// arithmetic is free of DST shifts.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
