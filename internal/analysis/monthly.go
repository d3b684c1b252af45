package analysis

import (
	"time"

	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/models"
)

// MoodCounts holds one counter per mood, indexed by Mood.Index().
type MoodCounts [6]int

func (c MoodCounts) Get(m models.Mood) int {
	i := m.Index()
	if i < 0 {
		return 0
	}
	return c[i]
}

func (c MoodCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// MostCommon returns the mood with the highest count. Moods are visited in
// declaration order and only a strictly greater count replaces the current
// pick, so ties go to the earlier mood. ok is false when every count is zero.
func (c MoodCounts) MostCommon() (models.Mood, bool) {
	best := -1
	bestCount := 0
	for i, n := range c {
		if n > bestCount {
			best = i
			bestCount = n
		}
	}
	if best < 0 {
		return "", false
	}
	return models.Moods[best], true
}

// MonthlySummary aggregates every entry logged in one calendar month.
type MonthlySummary struct {
	Year  int
	Month time.Month

	// NoData is set when the whole store is empty; nothing else is computed.
	NoData bool

	MoodCounts    MoodCounts
	TotalActivity int
	TotalLogs     int
}

// Average returns TotalActivity / TotalLogs. ok is false when the month has
// no logs.
func (s MonthlySummary) Average() (avg float64, ok bool) {
	if s.TotalLogs == 0 {
		return 0, false
	}
	return float64(s.TotalActivity) / float64(s.TotalLogs), true
}

func (s MonthlySummary) MostCommonMood() (models.Mood, bool) {
	return s.MoodCounts.MostCommon()
}

// Summarize aggregates the entries whose bucket falls in the same calendar
// year and month as ref. The day of ref is irrelevant.
func Summarize(log models.Log, ref time.Time) MonthlySummary {
	summary := MonthlySummary{
		Year:  ref.Year(),
		Month: ref.Month(),
	}
	if log.Empty() {
		summary.NoData = true
		return summary
	}

	for date, entries := range log {
		day, err := time.Parse(constants.DateFormat, date)
		if err != nil {
			logger.Warn("Skipping bucket with invalid date key", "key", date, "error", err)
			continue
		}
		if day.Year() != summary.Year || day.Month() != summary.Month {
			continue
		}

		for _, e := range entries {
			i := e.Mood.Index()
			if i < 0 {
				// Keeps MoodCounts.Total() == TotalLogs
				logger.Warn("Skipping entry with unknown mood", "date", date, "mood", e.Mood)
				continue
			}
			summary.MoodCounts[i]++
			summary.TotalActivity += e.Activity
			summary.TotalLogs++
		}
	}

	return summary
}
