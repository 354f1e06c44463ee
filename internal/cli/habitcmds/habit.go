// Package habitcmds implements the habit time-tracking commands.
package habitcmds

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/lifelog/internal/cli"
	"github.com/julianstephens/lifelog/internal/habits"
	"github.com/julianstephens/lifelog/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit and start tracking it."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Show   HabitShowCmd   `cmd:"" help:"Show one habit in detail."`
	Start  HabitStartCmd  `cmd:"" help:"Start the timer for a habit."`
	Stop   HabitStopCmd   `cmd:"" help:"Stop the timer and bank the session."`
	Reset  HabitResetCmd  `cmd:"" help:"Archive accumulated time and restart from zero."`
	Watch  HabitWatchCmd  `cmd:"" help:"Live elapsed-time display for a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit permanently."`
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `short:"d" help:"Optional description."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	habit, err := ctx.Habits.Create(ctx.Owner, c.Name, c.Description)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Added habit: %s (ID: %s). Timer is running.\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Habits.List(ctx.Owner)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := cli.NowMillis()
	for _, h := range list {
		state := "idle"
		if h.IsActive {
			state = "tracking"
		}
		fmt.Printf("%-36s  %-20s  %-8s  streak %-3d  %s\n",
			h.ID, h.Name, state, h.CurrentStreak,
			habits.FormatElapsed(habits.ProjectElapsedSeconds(h, now)))
	}
	return nil
}

type HabitShowCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitShowCmd) Run(ctx *cli.Context) error {
	h, err := ctx.Habits.Get(ctx.Owner, c.ID)
	if err != nil {
		return err
	}

	now := cli.NowMillis()
	fmt.Printf("Name:        %s\n", h.Name)
	if h.Description != "" {
		fmt.Printf("Description: %s\n", h.Description)
	}
	if h.IsActive {
		fmt.Printf("Status:      tracking since %s\n", cli.FormatMillis(h.LastUpdated))
	} else {
		fmt.Println("Status:      idle")
	}
	fmt.Printf("Streak:      %d\n", h.CurrentStreak)
	fmt.Printf("Elapsed:     %s\n", habits.FormatElapsed(habits.ProjectElapsedSeconds(h, now)))
	fmt.Printf("Last active: %s\n", cli.FormatMillis(h.LastActive))
	fmt.Printf("Created:     %s\n", cli.FormatMillis(h.CreatedAt))

	if len(h.StreakHistory) > 0 {
		fmt.Println("History:")
		for _, s := range h.StreakHistory {
			fmt.Printf("  %s - %s  %s\n",
				cli.FormatMillis(s.StartDate), cli.FormatMillis(s.EndDate), describeStreak(s))
		}
	}
	return nil
}

func describeStreak(s models.Streak) string {
	if s.Kind == models.StreakSeconds {
		return habits.FormatElapsed(s.Value) + " banked"
	}
	return fmt.Sprintf("%d-day streak", s.Value)
}

type HabitStartCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitStartCmd) Run(ctx *cli.Context) error {
	h, err := ctx.Habits.Start(ctx.Owner, c.ID)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Tracking %s.\n", h.Name)
	return nil
}

type HabitStopCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitStopCmd) Run(ctx *cli.Context) error {
	before, err := ctx.Habits.Get(ctx.Owner, c.ID)
	if err != nil {
		return err
	}
	h, err := ctx.Habits.Stop(ctx.Owner, c.ID)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	if len(h.StreakHistory) > len(before.StreakHistory) && h.CurrentStreak <= 1 {
		fmt.Printf("Streak broken after a gap. Previous run archived; starting over at day 1.\n")
	}
	fmt.Printf("Stopped %s. Streak %d, total %s.\n",
		h.Name, h.CurrentStreak, habits.FormatElapsed(h.TotalSeconds))
	return nil
}

type HabitResetCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitResetCmd) Run(ctx *cli.Context) error {
	h, err := ctx.Habits.Reset(ctx.Owner, c.ID)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Reset %s. Accumulated time archived; timer restarted from zero.\n", h.Name)
	return nil
}

type HabitWatchCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

// Run redraws the projected elapsed time once per second until interrupted.
func (c *HabitWatchCmd) Run(ctx *cli.Context) error {
	h, err := ctx.Habits.Get(ctx.Owner, c.ID)
	if err != nil {
		return err
	}

	watchCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	fmt.Printf("Watching %s (Ctrl-C to exit)\n", h.Name)
	for {
		fmt.Printf("\r%s  ", habits.FormatElapsed(habits.ProjectElapsedSeconds(h, cli.NowMillis())))
		if !h.IsActive {
			fmt.Println("\nTimer is idle.")
			return nil
		}
		select {
		case <-watchCtx.Done():
			fmt.Println()
			return nil
		case <-ticker.C:
		}
	}
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Habits.Delete(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted habit.")
	return nil
}
