// Package notes implements the note commands.
package notes

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/lifelog/internal/cli"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/validation"
)

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Add a note."`
	List   NoteListCmd   `cmd:"" help:"List notes, optionally filtered by a search term."`
	Show   NoteShowCmd   `cmd:"" help:"Show a note in full."`
	Edit   NoteEditCmd   `cmd:"" help:"Update a note's title, content, or tags."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete a note."`
}

type NoteAddCmd struct {
	Title   string   `arg:"" help:"Note title."`
	Content string   `short:"c" help:"Note body."`
	Tags    []string `short:"t" help:"Tags."`
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	if err := validation.RequireName("title", c.Title); err != nil {
		return err
	}

	note := models.Note{
		ID:        uuid.New().String(),
		OwnerID:   ctx.Owner,
		Title:     c.Title,
		Content:   c.Content,
		Tags:      c.Tags,
		Timestamp: cli.NowMillis(),
	}
	if err := ctx.Store.AddNote(note); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Added note: %s (ID: %s)\n", note.Title, note.ID)
	return nil
}

type NoteListCmd struct {
	Search string `short:"s" help:"Case-insensitive match against title, content, and tags."`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Store.GetNotes(ctx.Owner)
	if err != nil {
		return err
	}
	if c.Search != "" {
		list = filterNotes(list, c.Search)
	}
	if len(list) == 0 {
		fmt.Println("No notes found.")
		return nil
	}

	for _, n := range list {
		tags := ""
		if len(n.Tags) > 0 {
			tags = "  [" + strings.Join(n.Tags, ", ") + "]"
		}
		fmt.Printf("%-36s  %s  %s%s\n", n.ID, cli.FormatMillis(n.Timestamp), n.Title, tags)
	}
	return nil
}

// filterNotes keeps notes whose title, content, or any tag contains the term,
// case-insensitively.
func filterNotes(list []models.Note, term string) []models.Note {
	term = strings.ToLower(term)
	var out []models.Note
	for _, n := range list {
		if strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term) ||
			tagMatch(n.Tags, term) {
			out = append(out, n)
		}
	}
	return out
}

func tagMatch(tags []string, term string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

type NoteShowCmd struct {
	ID string `arg:"" help:"Note ID."`
}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	n, err := ctx.Store.GetNote(ctx.Owner, c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", n.Title)
	if len(n.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(n.Tags, ", "))
	}
	fmt.Printf("Updated: %s\n\n", cli.FormatMillis(n.Timestamp))
	fmt.Println(n.Content)
	return nil
}

type NoteEditCmd struct {
	ID      string   `arg:"" help:"Note ID."`
	Title   string   `help:"New title."`
	Content string   `short:"c" help:"New body."`
	Tags    []string `short:"t" help:"Replacement tags."`
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	n, err := ctx.Store.GetNote(ctx.Owner, c.ID)
	if err != nil {
		return err
	}

	if c.Title != "" {
		n.Title = c.Title
	}
	if c.Content != "" {
		n.Content = c.Content
	}
	if c.Tags != nil {
		n.Tags = c.Tags
	}
	n.Timestamp = cli.NowMillis()

	if err := ctx.Store.PutNote(n); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Updated note.")
	return nil
}

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteNote(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted note.")
	return nil
}
