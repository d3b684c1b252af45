package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodlit/internal/analysis"
	"github.com/julianstephens/moodlit/internal/report"
)

const trendWidth = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.err != nil:
		content = errorStyle.Render(fmt.Sprintf("Failed to load entries: %v", m.err))
	case m.state == StateSummary:
		content = m.viewSummary()
	case m.state == StateTrend:
		content = m.viewTrend()
	case m.state == StateEntries:
		content = m.entries.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		monthStyle.Render(m.month.Format("January 2006")),
		docStyle.Render(content),
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSummary() string {
	return report.Summary(analysis.Summarize(m.log, m.month))
}

// viewTrend charts the selected month, stopping at today for the current
// month.
func (m Model) viewTrend() string {
	from := m.month
	to := m.month.AddDate(0, 1, -1)
	if today := m.now(); to.After(today) {
		to = today
	}
	if from.After(to) {
		return report.Trend(analysis.Trend{NoData: true}, trendWidth)
	}

	trend, err := analysis.BuildTrendBetween(m.log, from, to)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return report.Trend(trend, trendWidth)
}
