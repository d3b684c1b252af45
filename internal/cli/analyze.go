package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/moodlit/internal/analysis"
	"github.com/julianstephens/moodlit/internal/report"
	"github.com/julianstephens/moodlit/internal/validation"
)

type AnalyzeCmd struct {
	Month string `short:"M" help:"Month to analyze (YYYY-MM). Defaults to the current month."`
}

func (c *AnalyzeCmd) Run(ctx *Context) error {
	ref, err := validation.ParseMonth(c.Month, ctx.Now())
	if err != nil {
		return err
	}
	return analyzeMonth(ctx, ref)
}

// analyzeMonth prints the summary for the calendar month containing ref.
func analyzeMonth(ctx *Context, ref time.Time) error {
	ctx.println("Analyzing...")
	log, err := ctx.Store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	ctx.println(report.Summary(analysis.Summarize(log, ref)))
	ctx.println()
	return nil
}
