package cli

import (
	"fmt"

	"github.com/julianstephens/moodlit/internal/analysis"
	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/report"
	"github.com/julianstephens/moodlit/internal/validation"
)

const chartWidth = 30

type TrendsCmd struct {
	Last int    `short:"l" help:"Show only the last N days, ending today."`
	From string `help:"First day of the window (YYYY-MM-DD)."`
	To   string `help:"Last day of the window (YYYY-MM-DD). Defaults to today."`
}

func (c *TrendsCmd) Validate() error {
	if c.Last < 0 {
		return fmt.Errorf("--last must be positive")
	}
	if c.Last > 0 && (c.From != "" || c.To != "") {
		return fmt.Errorf("--last cannot be combined with --from/--to")
	}
	return nil
}

func (c *TrendsCmd) Run(ctx *Context) error {
	ctx.println("Trending...")
	log, err := ctx.Store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	var trend analysis.Trend
	switch {
	case c.Last > 0:
		today, _ := validation.ParseDate("today", ctx.Now())
		trend, err = analysis.BuildTrendBetween(log, today.AddDate(0, 0, -(c.Last-1)), today)
	case c.From != "" || c.To != "":
		trend, err = c.window(ctx, log)
	default:
		trend = analysis.BuildTrend(log)
	}
	if err != nil {
		return err
	}

	ctx.println(report.Trend(trend, chartWidth))
	ctx.println()
	return nil
}

// window resolves --from/--to. A missing --from starts at the first
// logged day; a missing --to ends today.
func (c *TrendsCmd) window(ctx *Context, log models.Log) (analysis.Trend, error) {
	to, err := validation.ParseDate(c.To, ctx.Now())
	if err != nil {
		return analysis.Trend{}, err
	}

	if c.From == "" {
		full := analysis.BuildTrend(log)
		if full.NoData {
			return full, nil
		}
		return analysis.BuildTrendBetween(log, full.Start, to)
	}

	from, err := validation.ParseDate(c.From, ctx.Now())
	if err != nil {
		return analysis.Trend{}, err
	}
	return analysis.BuildTrendBetween(log, from, to)
}
