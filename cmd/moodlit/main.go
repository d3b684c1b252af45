package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/moodlit/internal/cli"
	"github.com/julianstephens/moodlit/internal/constants"
	apperr "github.com/julianstephens/moodlit/internal/errors"
	"github.com/julianstephens/moodlit/internal/logger"
	"github.com/julianstephens/moodlit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path (.json, or .db/.sqlite for SQLite)." type:"path" env:"MOODLIT_CONFIG" default:"${default_config}"`
	Debug   bool   `help:"Mirror debug logs to stderr." env:"MOODLIT_DEBUG"`

	Shell   cli.ShellCmd   `cmd:"" help:"Interactive menu." default:"1"`
	Log     cli.LogCmd     `cmd:"" help:"Log your mood for a day."`
	Analyze cli.AnalyzeCmd `cmd:"" help:"Summarize a month of entries."`
	Trends  cli.TrendsCmd  `cmd:"" help:"Chart daily activity over time."`
	Clear   cli.ClearCmd   `cmd:"" help:"Delete all logged entries."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the dashboard."`
	Init    cli.InitCmd    `cmd:"" help:"Initialize moodlit storage."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmds cli.DebugCmd `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track your daily mood and activity from the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintln(os.Stderr, apperr.Formatf("failed to initialize logging: %v", err))
	}
	logger.Debug("Starting", "command", ctx.Command(), "store", CLI.Config)

	store := storage.New(CLI.Config)
	appCtx := cli.NewContext(store)

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	switch {
	case err == nil:
		return
	case apperr.IsAborted(err):
		fmt.Println("Goodbye!")
		return
	case apperr.IsValidation(err):
		fmt.Fprintln(os.Stderr, apperr.Format(err))
		os.Exit(2)
	case apperr.IsStorage(err):
		logger.Error("Store unavailable", "path", CLI.Config, "error", err)
	}
	apperr.Fatal(err)
}
