package cli

import (
	"fmt"

	"github.com/julianstephens/moodlit/internal/analysis"
	"github.com/julianstephens/moodlit/internal/constants"
	apperr "github.com/julianstephens/moodlit/internal/errors"
	"github.com/julianstephens/moodlit/internal/report"
)

// ShellCmd is the interactive menu. It loops until the user picks Exit or
// cancels a prompt.
type ShellCmd struct {
	Once bool `help:"Return after a single menu action."`
}

func (c *ShellCmd) Run(ctx *Context) error {
	ctx.println(report.Banner())
	ctx.println()

	for {
		choice, err := ctx.Prompter.Menu()
		if err != nil {
			return goodbyeOnAbort(ctx, err)
		}

		if choice == constants.MenuExit {
			ctx.println("Goodbye!")
			return nil
		}

		if err := c.dispatch(ctx, choice); err != nil {
			return goodbyeOnAbort(ctx, err)
		}

		if c.Once {
			return nil
		}
	}
}

func (c *ShellCmd) dispatch(ctx *Context, choice string) error {
	switch choice {
	case constants.MenuLog:
		input, err := ctx.Prompter.Entry(EntryInput{})
		if err != nil {
			return err
		}
		return logEntry(ctx, ctx.Today(), input)
	case constants.MenuAnalyze:
		return analyzeMonth(ctx, ctx.Now())
	case constants.MenuTrends:
		ctx.println("Trending...")
		log, err := ctx.Store.LoadAll()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}
		ctx.println(report.Trend(analysis.BuildTrend(log), chartWidth))
		ctx.println()
		return nil
	case constants.MenuClear:
		return clearData(ctx, false)
	default:
		return fmt.Errorf("unknown menu choice: %q", choice)
	}
}

// goodbyeOnAbort turns a cancelled prompt into a clean exit.
func goodbyeOnAbort(ctx *Context, err error) error {
	if apperr.IsAborted(err) {
		ctx.println("Goodbye!")
		return nil
	}
	return err
}
