// Package work implements task, focus-session, and reminder commands.
package work

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifelog/internal/cli"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/utils"
	"github.com/julianstephens/lifelog/internal/validation"
)

type WorkCmd struct {
	Add      TaskAddCmd      `cmd:"" help:"Add a work task."`
	List     TaskListCmd     `cmd:"" help:"List tasks."`
	Toggle   TaskToggleCmd   `cmd:"" help:"Toggle a task's completion."`
	Delete   TaskDeleteCmd   `cmd:"" help:"Delete a task."`
	Focus    FocusLogCmd     `cmd:"" help:"Record a completed focus session."`
	Stats    FocusStatsCmd   `cmd:"" help:"Show focus-session counts for day, week, month."`
	Remind   ReminderAddCmd  `cmd:"" help:"Add a reminder."`
	Reminds  ReminderListCmd `cmd:"" help:"List reminders."`
	Unremind ReminderDelCmd  `cmd:"" help:"Delete a reminder."`
}

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `short:"d" help:"Description."`
	Label       string `short:"l" help:"Leverage label (high-leverage|low-leverage-important|nice-to-have)." default:"nice-to-have"`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if err := validation.RequireName("title", c.Title); err != nil {
		return err
	}
	label := models.TaskLabel(strings.ToLower(c.Label))
	if err := validation.ValidateTaskLabel(label); err != nil {
		return err
	}

	task := models.Task{
		ID:          uuid.New().String(),
		OwnerID:     ctx.Owner,
		Title:       c.Title,
		Description: c.Description,
		Label:       label,
		CreatedAt:   cli.NowMillis(),
	}
	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}

type TaskListCmd struct {
	All bool `short:"a" help:"Include completed tasks."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks, err := ctx.Store.GetTasks(ctx.Owner)
	if err != nil {
		return err
	}

	shown := 0
	for _, t := range tasks {
		if t.Completed && !c.All {
			continue
		}
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %-36s  %-22s  %s\n", mark, t.ID, t.Label, t.Title)
		shown++
	}
	if shown == 0 {
		fmt.Println("No tasks found.")
	}
	return nil
}

type TaskToggleCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskToggleCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.GetTask(ctx.Owner, c.ID)
	if err != nil {
		return err
	}

	task.Completed = !task.Completed
	if task.Completed {
		task.CompletedAt = cli.NowMillis()
	} else {
		task.CompletedAt = 0
	}
	if err := ctx.Store.PutTask(task); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	if task.Completed {
		fmt.Printf("Completed: %s\n", task.Title)
	} else {
		fmt.Printf("Reopened: %s\n", task.Title)
	}
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteTask(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted task.")
	return nil
}

type FocusLogCmd struct {
	Minutes int    `arg:"" help:"Session length in minutes."`
	Notes   string `short:"n" help:"Notes."`
}

func (c *FocusLogCmd) Run(ctx *cli.Context) error {
	if err := validation.RequireNonNegative("minutes", float64(c.Minutes)); err != nil {
		return err
	}

	end := cli.NowMillis()
	session := models.FocusSession{
		ID:          uuid.New().String(),
		OwnerID:     ctx.Owner,
		StartTime:   end - int64(c.Minutes)*60*1000,
		EndTime:     end,
		DurationMin: c.Minutes,
		Notes:       c.Notes,
	}
	if err := ctx.Store.AddFocusSession(session); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Recorded %d-minute focus session.\n", c.Minutes)
	return nil
}

type FocusStatsCmd struct{}

func (c *FocusStatsCmd) Run(ctx *cli.Context) error {
	sessions, err := ctx.Store.GetFocusSessions(ctx.Owner)
	if err != nil {
		return err
	}

	stats := ComputeStats(sessions, time.Now())
	fmt.Printf("Focus sessions: %d today, %d this week, %d this month\n",
		stats.Daily, stats.Weekly, stats.Monthly)
	return nil
}

// ComputeStats counts sessions finished within the trailing day, week, and
// 30-day month relative to now.
func ComputeStats(sessions []models.FocusSession, now time.Time) models.FocusStats {
	day := utils.TrailingWindow(now, 1)
	week := utils.TrailingWindow(now, 7)
	month := utils.TrailingWindow(now, 30)

	var stats models.FocusStats
	for _, s := range sessions {
		if s.EndTime >= day {
			stats.Daily++
		}
		if s.EndTime >= week {
			stats.Weekly++
		}
		if s.EndTime >= month {
			stats.Monthly++
		}
	}
	return stats
}

type ReminderAddCmd struct {
	Text string `arg:"" help:"Reminder text."`
}

func (c *ReminderAddCmd) Run(ctx *cli.Context) error {
	if err := validation.RequireName("text", c.Text); err != nil {
		return err
	}

	reminder := models.Reminder{
		ID:        uuid.New().String(),
		OwnerID:   ctx.Owner,
		Text:      c.Text,
		CreatedAt: cli.NowMillis(),
	}
	if err := ctx.Store.AddReminder(reminder); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Added reminder.")
	return nil
}

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	reminders, err := ctx.Store.GetReminders(ctx.Owner)
	if err != nil {
		return err
	}
	if len(reminders) == 0 {
		fmt.Println("No reminders.")
		return nil
	}
	for _, r := range reminders {
		fmt.Printf("%-36s  %s  %s\n", r.ID, cli.FormatMillis(r.CreatedAt), r.Text)
	}
	return nil
}

type ReminderDelCmd struct {
	ID string `arg:"" help:"Reminder ID."`
}

func (c *ReminderDelCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteReminder(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted reminder.")
	return nil
}
