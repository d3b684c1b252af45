package models

import "sort"

// Entry is a single mood log.
type Entry struct {
	Date     string `json:"date"` // YYYY-MM-DD, always equal to the bucket key
	Mood     Mood   `json:"mood"`
	Activity int    `json:"activity"`
	Notes    string `json:"notes"`
}

// Log maps a date key (YYYY-MM-DD) to the entries logged on that day, in
// logging order.
type Log map[string][]Entry

// Append adds e to the bucket for date, creating the bucket if needed.
// The bucket key wins over whatever e.Date held.
func (l Log) Append(date string, e Entry) {
	e.Date = date
	l[date] = append(l[date], e)
}

// Dates returns the bucket keys in chronological order.
func (l Log) Dates() []string {
	dates := make([]string, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Len returns the total number of entries across all buckets.
func (l Log) Len() int {
	n := 0
	for _, entries := range l {
		n += len(entries)
	}
	return n
}

func (l Log) Empty() bool {
	return l.Len() == 0
}
