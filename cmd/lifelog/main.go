package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifelog/internal/cli"
	"github.com/julianstephens/lifelog/internal/cli/backups"
	"github.com/julianstephens/lifelog/internal/cli/bookmarks"
	"github.com/julianstephens/lifelog/internal/cli/diet"
	"github.com/julianstephens/lifelog/internal/cli/habitcmds"
	"github.com/julianstephens/lifelog/internal/cli/money"
	"github.com/julianstephens/lifelog/internal/cli/notes"
	"github.com/julianstephens/lifelog/internal/cli/system"
	"github.com/julianstephens/lifelog/internal/cli/work"
	"github.com/julianstephens/lifelog/internal/cli/workouts"
	"github.com/julianstephens/lifelog/internal/constants"
	"github.com/julianstephens/lifelog/internal/logger"
	"github.com/julianstephens/lifelog/internal/storage"
	"github.com/julianstephens/lifelog/internal/storage/jsonfile"
	"github.com/julianstephens/lifelog/internal/storage/postgres"
	"github.com/julianstephens/lifelog/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path (.db or .json) or PostgreSQL connection string. Credentials must NOT be embedded in the connection string." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd        `cmd:"" help:"Initialize lifelog storage."`
	Tui      system.TuiCmd         `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Habit    habitcmds.HabitCmd    `cmd:"" help:"Track habits with a start/stop timer and streaks."`
	Note     notes.NoteCmd         `cmd:"" help:"Manage notes."`
	Bookmark bookmarks.BookmarkCmd `cmd:"" help:"Manage bookmarks."`
	Diet     diet.DietCmd          `cmd:"" help:"Log meals and weight."`
	Workout  workouts.WorkoutCmd   `cmd:"" help:"Log workouts."`
	Sub      money.SubCmd          `cmd:"" help:"Track subscriptions."`
	Work     work.WorkCmd          `cmd:"" help:"Manage work tasks, focus sessions, and reminders."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal life-tracking dashboard: habits, notes, bookmarks, diet, workouts, money, work"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := cli.NewContext(store)

	// Init handles its own lifecycle; everything else needs a loaded store.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore picks the backend from the config value: a postgres:// or
// postgresql:// string selects Postgres, a .json path the JSON file store,
// anything else sqlite.
func openStore(config string) (storage.Provider, error) {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if valid, err := postgres.ValidateConnString(config); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("connection string contains embedded credentials; use environment variables or .pgpass instead")
			}
			return nil, err
		}
		return postgres.NewStore(config), nil
	}

	path := expandHome(config)
	if filepath.Ext(path) == ".json" {
		return jsonfile.NewStore(path), nil
	}
	return sqlite.NewStore(path), nil
}

// configDir is where logs and backups live: next to the database file, or
// the default config directory when the store is remote.
func configDir(config string) string {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(expandHome(config))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
