package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/models"
	"github.com/julianstephens/moodlit/internal/validation"
)

type DebugCmd struct {
	StorePath *DebugStorePathCmd `cmd:"" help:"Show store path."`
	Dump      *DebugDumpCmd      `cmd:"" help:"Dump logged entries as JSON."`
}

type DebugStorePathCmd struct{}

func (cmd *DebugStorePathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
		"kind": storeKind(ctx.Store.GetConfigPath()),
	}
	return printJSON(ctx, output)
}

type DebugDumpCmd struct {
	Date string `arg:"" optional:"" help:"Only dump this date (YYYY-MM-DD, 'today' or 'yesterday')."`
}

func (cmd *DebugDumpCmd) Run(ctx *Context) error {
	log, err := ctx.Store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}

	if cmd.Date == "" {
		return printJSON(ctx, log)
	}

	day, err := validation.ParseDate(cmd.Date, ctx.Now())
	if err != nil {
		return err
	}
	date := day.Format(constants.DateFormat)

	entries, ok := log[date]
	if !ok {
		return fmt.Errorf("no entries found for date: %s", date)
	}
	return printJSON(ctx, models.Log{date: entries})
}

func printJSON(ctx *Context, v interface{}) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.println(string(jsonBytes))
	return nil
}
