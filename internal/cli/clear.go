package cli

import (
	"fmt"

	"github.com/julianstephens/moodlit/internal/logger"
)

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	return clearData(ctx, c.Yes)
}

// clearData empties the store after confirmation. A backup of the current
// store is taken first.
func clearData(ctx *Context, skipConfirm bool) error {
	if !skipConfirm {
		ok, err := ctx.Prompter.Confirm("Delete all logged entries? A backup is kept.")
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Clear cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.Clear(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	logger.Info("Cleared all entries", "path", ctx.Store.GetConfigPath())

	ctx.println("All data cleared.")
	return nil
}
