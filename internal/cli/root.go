package cli

import (
	"os"
	"time"

	"github.com/julianstephens/lifelog/internal/backup"
	"github.com/julianstephens/lifelog/internal/constants"
	"github.com/julianstephens/lifelog/internal/habits"
	"github.com/julianstephens/lifelog/internal/logger"
	"github.com/julianstephens/lifelog/internal/storage"
)

// Context carries shared dependencies into every command's Run method.
type Context struct {
	Store  storage.Provider
	Habits *habits.Service
	Owner  string
}

func NewContext(store storage.Provider) *Context {
	return &Context{
		Store:  store,
		Habits: habits.NewService(store, nil),
		Owner:  constants.DefaultOwner,
	}
}

// PerformAutomaticBackup snapshots the database after a write command.
// Failures are logged, never surfaced; backups must not block the workflow.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if !BackupEligible(path) {
		// Server-backed stores have no database file to snapshot.
		logger.Debug("Skipping automatic backup", "path", path)
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// BackupEligible reports whether the store's config path names a local
// database file that the backup manager can snapshot.
func BackupEligible(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// NowMillis is the single wall-clock read for command timestamps.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// FormatMillis renders an epoch-ms timestamp for display.
func FormatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format(constants.DateFormat + " " + constants.TimeFormat)
}
