package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/moodlit/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Delete an existing store before initializing."`
	Source string `help:"Store to copy existing entries from (JSON or SQLite path)." type:"path"`
}

func (c *InitCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Source != "" {
		absPath, _ := filepath.Abs(path)
		absSource, _ := filepath.Abs(c.Source)
		if absPath == absSource {
			return fmt.Errorf("source and destination are the same store: %s", path)
		}
		if _, err := os.Stat(c.Source); err != nil {
			return fmt.Errorf("source store not found: %w", err)
		}
	}

	if c.Force {
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			ctx.PerformAutomaticBackup()
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			ctx.printf("Deleted existing store at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.printf("Initialized %s storage at: %s\n", storeKind(path), path)

	if c.Source == "" {
		return nil
	}

	src := storage.New(c.Source)
	defer src.Close()

	n, err := storage.CopyAll(src, ctx.Store)
	if err != nil {
		return fmt.Errorf("migration stopped after %d entries: %w", n, err)
	}
	ctx.printf("Copied %d entries from %s\n", n, c.Source)
	return nil
}

func storeKind(path string) string {
	if storage.IsSQLitePath(path) {
		return "SQLite"
	}
	return "JSON"
}
