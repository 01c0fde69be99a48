package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"daygrid/internal/models"
)

type ObligationAddCmd struct {
	Title      string `arg:"" help:"Obligation title."`
	Duration   int    `short:"d" help:"Duration in minutes." required:""`
	Repeats    int    `short:"n" help:"Instances per day (1-5)." default:"1"`
	Recurrence string `short:"r" help:"Recurrence kind (daily|weekly|monthly)." default:"daily"`
	Weekdays   string `short:"w" help:"Comma-separated weekdays (daily narrows, weekly requires)."`
	MonthDay   int    `help:"Day of month (1-31) for monthly recurrence."`
	Placement  string `short:"p" help:"Preferred placement (morning|midday|afternoon|none|spread)." default:"none"`
}

func (c *ObligationAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	rec := models.Recurrence{
		Kind:     models.RecurrenceKind(c.Recurrence),
		MonthDay: c.MonthDay,
	}
	if c.Weekdays != "" {
		wds, err := ParseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
		rec.Weekdays = wds
	}

	placement := models.Placement(c.Placement)
	if c.Repeats > 1 {
		// More than one instance per day only makes sense spread out.
		placement = models.PlacementSpread
	}

	o := models.Obligation{
		ID:          uuid.New().String(),
		Title:       c.Title,
		DurationMin: c.Duration,
		Repeats:     c.Repeats,
		Recurrence:  rec,
		Placement:   placement,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("invalid obligation: %w", err)
	}

	if err := ctx.Store.AddObligation(o); err != nil {
		return err
	}
	fmt.Printf("Added obligation: %s (ID: %s)\n", o.Title, o.ID)
	return nil
}

type ObligationListCmd struct{}

func (c *ObligationListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	obligations, err := ctx.Store.GetAllObligations()
	if err != nil {
		return err
	}
	if len(obligations) == 0 {
		fmt.Println("No obligations.")
		return nil
	}
	for _, o := range obligations {
		state := ""
		if !o.Active {
			state = " [inactive]"
		}
		fmt.Printf("%s  %s  %dmin x%d  %s  %s%s\n",
			o.ID[:8], o.Title, o.DurationMin, o.Repeats,
			FormatRecurrence(o.Recurrence), o.Placement, state)
	}
	return nil
}

type ObligationEditCmd struct {
	ID        string `arg:"" help:"Obligation ID (or unique prefix)."`
	Title     string `help:"New title."`
	Duration  int    `short:"d" help:"New duration in minutes."`
	Repeats   int    `short:"n" help:"New instances per day (1-5)."`
	Placement string `short:"p" help:"New placement (morning|midday|afternoon|none|spread)."`
	Active    string `help:"Set active state (true|false)."`
}

func (c *ObligationEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	o, err := findObligation(ctx, c.ID)
	if err != nil {
		return err
	}

	if c.Title != "" {
		o.Title = c.Title
	}
	if c.Duration > 0 {
		o.DurationMin = c.Duration
	}
	if c.Repeats > 0 {
		o.Repeats = c.Repeats
	}
	if c.Placement != "" {
		o.Placement = models.Placement(c.Placement)
	}
	if c.Active != "" {
		o.Active = c.Active == "true"
	}
	if o.Repeats > 1 {
		o.Placement = models.PlacementSpread
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("invalid obligation: %w", err)
	}

	if err := ctx.Store.UpdateObligation(o); err != nil {
		return err
	}
	fmt.Printf("Updated obligation: %s\n", o.Title)
	return nil
}

type ObligationDeleteCmd struct {
	ID string `arg:"" help:"Obligation ID (or unique prefix)."`
}

func (c *ObligationDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	o, err := findObligation(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteObligation(o.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted obligation: %s\n", o.Title)
	return nil
}

// findObligation resolves a full ID or unique prefix.
func findObligation(ctx *Context, id string) (models.Obligation, error) {
	if len(id) == 36 {
		return ctx.Store.GetObligation(id)
	}
	obligations, err := ctx.Store.GetAllObligations()
	if err != nil {
		return models.Obligation{}, err
	}
	var match *models.Obligation
	for i := range obligations {
		if len(obligations[i].ID) >= len(id) && obligations[i].ID[:len(id)] == id {
			if match != nil {
				return models.Obligation{}, fmt.Errorf("ambiguous obligation ID prefix: %s", id)
			}
			match = &obligations[i]
		}
	}
	if match == nil {
		return models.Obligation{}, fmt.Errorf("obligation not found: %s", id)
	}
	return *match, nil
}
