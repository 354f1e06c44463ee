// Package bookmarks implements the bookmark commands.
package bookmarks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/lifelog/internal/cli"
	"github.com/julianstephens/lifelog/internal/models"
	"github.com/julianstephens/lifelog/internal/validation"
)

type BookmarkCmd struct {
	Add    BookmarkAddCmd    `cmd:"" help:"Save a bookmark."`
	List   BookmarkListCmd   `cmd:"" help:"List bookmarks, optionally filtered by tag."`
	Edit   BookmarkEditCmd   `cmd:"" help:"Update a bookmark."`
	Delete BookmarkDeleteCmd `cmd:"" help:"Delete a bookmark."`
	Tags   BookmarkTagsCmd   `cmd:"" help:"List all bookmark tags."`
}

type BookmarkAddCmd struct {
	URL         string   `arg:"" help:"Address to save."`
	Title       string   `short:"T" help:"Title."`
	Description string   `short:"d" help:"Description."`
	Tags        []string `short:"t" help:"Tags."`
	Notes       string   `short:"n" help:"Free-form notes."`
}

func (c *BookmarkAddCmd) Run(ctx *cli.Context) error {
	if err := validation.RequireURL(c.URL); err != nil {
		return err
	}

	title := c.Title
	if title == "" {
		title = c.URL
	}
	bookmark := models.Bookmark{
		ID:          uuid.New().String(),
		OwnerID:     ctx.Owner,
		URL:         strings.TrimSpace(c.URL),
		Title:       title,
		Description: c.Description,
		Tags:        c.Tags,
		Notes:       c.Notes,
		Timestamp:   cli.NowMillis(),
	}
	if err := ctx.Store.AddBookmark(bookmark); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("Saved bookmark: %s (ID: %s)\n", bookmark.Title, bookmark.ID)
	return nil
}

type BookmarkListCmd struct {
	Tag string `short:"t" help:"Only bookmarks carrying this tag."`
}

func (c *BookmarkListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Store.GetBookmarks(ctx.Owner)
	if err != nil {
		return err
	}
	if c.Tag != "" {
		list = filterByTag(list, c.Tag)
	}
	if len(list) == 0 {
		fmt.Println("No bookmarks found.")
		return nil
	}

	for _, b := range list {
		tags := ""
		if len(b.Tags) > 0 {
			tags = "  [" + strings.Join(b.Tags, ", ") + "]"
		}
		fmt.Printf("%-36s  %s%s\n%38s%s\n", b.ID, b.Title, tags, "", b.URL)
	}
	return nil
}

func filterByTag(list []models.Bookmark, tag string) []models.Bookmark {
	tag = strings.ToLower(tag)
	var out []models.Bookmark
	for _, b := range list {
		for _, t := range b.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

type BookmarkTagsCmd struct{}

func (c *BookmarkTagsCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Store.GetBookmarks(ctx.Owner)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, b := range list {
		for _, t := range b.Tags {
			key := strings.ToLower(t)
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	if len(tags) == 0 {
		fmt.Println("No tags found.")
		return nil
	}
	sort.Strings(tags)
	for _, t := range tags {
		fmt.Println(t)
	}
	return nil
}

type BookmarkEditCmd struct {
	ID          string   `arg:"" help:"Bookmark ID."`
	URL         string   `help:"New address."`
	Title       string   `short:"T" help:"New title."`
	Description string   `short:"d" help:"New description."`
	Tags        []string `short:"t" help:"Replacement tags."`
	Notes       string   `short:"n" help:"New notes."`
}

func (c *BookmarkEditCmd) Run(ctx *cli.Context) error {
	b, err := ctx.Store.GetBookmark(ctx.Owner, c.ID)
	if err != nil {
		return err
	}

	if c.URL != "" {
		if err := validation.RequireURL(c.URL); err != nil {
			return err
		}
		b.URL = strings.TrimSpace(c.URL)
	}
	if c.Title != "" {
		b.Title = c.Title
	}
	if c.Description != "" {
		b.Description = c.Description
	}
	if c.Tags != nil {
		b.Tags = c.Tags
	}
	if c.Notes != "" {
		b.Notes = c.Notes
	}
	b.Timestamp = cli.NowMillis()

	if err := ctx.Store.PutBookmark(b); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Updated bookmark.")
	return nil
}

type BookmarkDeleteCmd struct {
	ID string `arg:"" help:"Bookmark ID."`
}

func (c *BookmarkDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteBookmark(ctx.Owner, c.ID); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Println("Deleted bookmark.")
	return nil
}
