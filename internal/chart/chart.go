package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/moodlit/internal/analysis"
	"github.com/julianstephens/moodlit/internal/constants"
)

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

var (
	lowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	midStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	highStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// levelStyle colours a bar by how close its value is to the top of the
// activity scale.
func levelStyle(v float64) lipgloss.Style {
	switch {
	case v >= 7:
		return highStyle
	case v >= 4:
		return midStyle
	default:
		return lowStyle
	}
}

// Sparkline renders values on a fixed 0..MaxActivity scale, one rune per value.
func Sparkline(values []float64) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteRune(sparkRune(v))
	}
	return b.String()
}

func sparkRune(v float64) rune {
	if v <= 0 {
		return ' '
	}
	idx := int(math.Ceil(v/constants.MaxActivity*float64(len(sparkTicks)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sparkTicks) {
		idx = len(sparkTicks) - 1
	}
	return sparkTicks[idx]
}

// Bars renders one horizontal bar per day of the trend. width is the
// length of a bar at the maximum activity rating.
func Bars(trend analysis.Trend, width int) string {
	if width <= 0 {
		width = 30
	}

	var b strings.Builder
	for _, p := range trend.Points {
		n := int(math.Round(p.Average / constants.MaxActivity * float64(width)))
		label := axisStyle.Render(p.Date.Format(constants.DateFormat) + " │")

		if p.Count == 0 {
			fmt.Fprintf(&b, "%s %s\n", label, axisStyle.Render("·"))
			continue
		}

		bar := levelStyle(p.Average).Render(strings.Repeat("█", n))
		fmt.Fprintf(&b, "%s %s %.1f\n", label, bar, p.Average)
	}
	return strings.TrimRight(b.String(), "\n")
}
