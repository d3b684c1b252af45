package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/moodlit/internal/backup"
	"github.com/julianstephens/moodlit/internal/constants"
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/storage"
)

// Context is handed to every command's Run method.
type Context struct {
	Store    storage.Provider
	Prompter Prompter
	Out      io.Writer

	// Now supplies the reference time ("today", "this month").
	Now func() time.Time
}

// NewContext wires a context with interactive prompts on the terminal.
func NewContext(store storage.Provider) *Context {
	return &Context{
		Store:    store,
		Prompter: NewHuhPrompter(os.Getenv("ACCESSIBLE") != ""),
		Out:      os.Stdout,
		Now:      time.Now,
	}
}

// Today returns the local calendar date key for the reference time.
func (c *Context) Today() string {
	return c.Now().Format(constants.DateFormat)
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

// PerformAutomaticBackup backs up the store if it exists on disk. Failures
// are logged and never interrupt the command.
func (c *Context) PerformAutomaticBackup() {
	if _, err := os.Stat(c.Store.GetConfigPath()); err != nil {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
