package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/moodlit/internal/analysis"
	"github.com/julianstephens/moodlit/internal/chart"
	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/models"
)

const (
	NoDataMessage   = "No data to analyze."
	NoLogsThisMonth = "no logs for this month"
)

// Banner is the greeting printed when the interactive shell starts.
func Banner() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		bannerStyle.Render("✦ "+constants.AppName+" ✦"),
		welcomeStyle.Render("Welcome to "+constants.AppName+", your daily mood tracker!"),
	)
}

// MonthLabel formats the summary's month, e.g. "June 2024".
func MonthLabel(s analysis.MonthlySummary) string {
	return fmt.Sprintf("%s %d", s.Month, s.Year)
}

// Summary renders a monthly summary as a mood table followed by the
// activity statistics.
func Summary(s analysis.MonthlySummary) string {
	if s.NoData {
		return mutedStyle.Render(NoDataMessage)
	}

	rows := make([][]string, 0, len(models.Moods))
	for _, m := range models.Moods {
		rows = append(rows, []string{m.String(), strconv.Itoa(s.MoodCounts.Get(m))})
	}

	moods := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Mood", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	average := NoLogsThisMonth
	if avg, ok := s.Average(); ok {
		average = fmt.Sprintf("%.2f", avg)
	}
	mostCommon := "-"
	if m, ok := s.MostCommonMood(); ok {
		mostCommon = m.String()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Mood Analysis for " + MonthLabel(s) + ":"))
	b.WriteString("\n")
	b.WriteString(moods.String())
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Activity Analysis for " + MonthLabel(s) + ":"))
	b.WriteString("\n")
	writeStat(&b, "Total Activity", strconv.Itoa(s.TotalActivity))
	writeStat(&b, "Total Logs", strconv.Itoa(s.TotalLogs))
	writeStat(&b, "Average Activity", average)
	writeStat(&b, "Most Common Mood", mostCommon)

	return strings.TrimRight(b.String(), "\n")
}

func writeStat(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-18s %s\n", label+":", valueStyle.Render(value))
}

// Trend renders the daily activity series as a sparkline and a bar chart.
func Trend(t analysis.Trend, width int) string {
	if t.NoData {
		return mutedStyle.Render(NoDataMessage)
	}

	logged := 0
	for _, p := range t.Points {
		if p.Count > 0 {
			logged++
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Activity trend %s → %s:",
		t.Start.Format(constants.DateFormat), t.End.Format(constants.DateFormat))))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render(fmt.Sprintf("%d days, %d logged", t.Days(), logged)), chart.Sparkline(t.Values()))
	b.WriteString("\n")
	b.WriteString(chart.Bars(t, width))
	return b.String()
}

// Entry renders a confirmation line for a freshly logged entry.
func Entry(e models.Entry) string {
	line := fmt.Sprintf("Logged %s (activity %d) for %s", e.Mood, e.Activity, e.Date)
	if e.Notes != "" {
		line += mutedStyle.Render(" (" + e.Notes + ")")
	}
	return welcomeStyle.Render("✓ ") + line
}
