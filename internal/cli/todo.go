package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"daygrid/internal/models"
)

type TodoAddCmd struct {
	Title    string `arg:"" help:"To-do title."`
	Duration int    `short:"d" help:"Estimated duration in minutes." required:""`
	Due      string `short:"u" help:"Due window (today|tomorrow|this-week|next-week|this-month|someday)." default:"someday"`
	Notes    string `help:"Free-text description."`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	due, err := ParseDue(c.Due)
	if err != nil {
		return err
	}

	it := models.Item{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Notes:       c.Notes,
		DurationMin: c.Duration,
		Due:         due,
		CreatedAt:   time.Now().UTC(),
	}
	if err := it.Validate(); err != nil {
		return fmt.Errorf("invalid to-do: %w", err)
	}

	if err := ctx.Store.AddItem(it); err != nil {
		return err
	}
	fmt.Printf("Added to-do: %s (ID: %s)\n", it.Title, it.ID)
	return nil
}

type TodoListCmd struct {
	All bool `short:"a" help:"Include completed to-dos."`
}

func (c *TodoListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	items, err := ctx.Store.GetAllItems(c.All)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No to-dos.")
		return nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Due.Urgency() != items[j].Due.Urgency() {
			return items[i].Due.Urgency() < items[j].Due.Urgency()
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	for _, it := range items {
		mark := " "
		if it.Done {
			mark = "x"
		}
		note := ""
		if it.PostponeNote != "" {
			note = fmt.Sprintf("  (postponed: %s)", it.PostponeNote)
		}
		fmt.Printf("[%s] %s  %s  %dmin  [%s]%s\n",
			mark, it.ID[:8], it.Title, it.DurationMin, FormatDue(it.Due), note)
	}
	return nil
}

type TodoDoneCmd struct {
	ID string `arg:"" help:"To-do ID (or unique prefix)."`
}

func (c *TodoDoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	it, err := findItem(ctx, c.ID)
	if err != nil {
		return err
	}
	it.Done = true
	if err := ctx.Store.UpdateItem(it); err != nil {
		return err
	}
	fmt.Printf("Completed: %s\n", it.Title)
	return nil
}

type TodoPostponeCmd struct {
	ID   string `arg:"" help:"To-do ID (or unique prefix)."`
	Due  string `short:"u" help:"New due window." required:""`
	Note string `help:"Why it was postponed."`
}

func (c *TodoPostponeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	it, err := findItem(ctx, c.ID)
	if err != nil {
		return err
	}
	due, err := ParseDue(c.Due)
	if err != nil {
		return err
	}
	it.Due = due
	if c.Note != "" {
		it.PostponeNote = c.Note
	}
	if err := ctx.Store.UpdateItem(it); err != nil {
		return err
	}
	fmt.Printf("Postponed %s to %s\n", it.Title, FormatDue(due))
	return nil
}

type TodoDeleteCmd struct {
	ID string `arg:"" help:"To-do ID (or unique prefix)."`
}

func (c *TodoDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	it, err := findItem(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteItem(it.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted to-do: %s\n", it.Title)
	return nil
}

func findItem(ctx *Context, id string) (models.Item, error) {
	if len(id) == 36 {
		return ctx.Store.GetItem(id)
	}
	items, err := ctx.Store.GetAllItems(true)
	if err != nil {
		return models.Item{}, err
	}
	var match *models.Item
	for i := range items {
		if len(items[i].ID) >= len(id) && items[i].ID[:len(id)] == id {
			if match != nil {
				return models.Item{}, fmt.Errorf("ambiguous to-do ID prefix: %s", id)
			}
			match = &items[i]
		}
	}
	if match == nil {
		return models.Item{}, fmt.Errorf("to-do not found: %s", id)
	}
	return *match, nil
}
