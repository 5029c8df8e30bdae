package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jyriad/sleepfactor/internal/constants"
	"github.com/Jyriad/sleepfactor/internal/models"
	"github.com/Jyriad/sleepfactor/internal/utils"
)

type LogCmd struct {
	Add    LogAddCmd    `cmd:"" help:"Log a consumption event."`
	List   LogListCmd   `cmd:"" help:"List consumption events for a habit."`
	Delete LogDeleteCmd `cmd:"" help:"Delete a consumption event."`
}

type LogAddCmd struct {
	Habit  string  `arg:"" help:"Habit name."`
	Amount float64 `arg:"" help:"Amount consumed in the habit's unit (0 records an explicit no-consumption log)."`
	Date   string  `help:"Date of consumption (YYYY-MM-DD). Defaults to today." default:""`
	At     string  `help:"Clock time of consumption (HH:MM). Defaults to now." default:""`
}

func (c *LogAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %g", c.Amount)
	}

	habit, err := ctx.Store.GetHabitByName(c.Habit)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	var consumedAt time.Time
	if c.Date == "" && c.At == "" {
		consumedAt = time.Now().In(loc)
	} else {
		day, err := ctx.ResolveDay(c.Date)
		if err != nil {
			return err
		}
		clock := c.At
		if clock == "" {
			clock = time.Now().In(loc).Format(constants.TimeFormat)
		}
		consumedAt, err = utils.CombineDateAndTime(day, clock, loc)
		if err != nil {
			return err
		}
	}

	event := models.ConsumptionEvent{
		ID:         uuid.New().String(),
		HabitID:    habit.ID,
		ConsumedAt: consumedAt,
		Amount:     c.Amount,
		CreatedAt:  time.Now(),
	}

	if err := ctx.Store.AddEvent(event); err != nil {
		return err
	}

	unit := habit.Unit
	if unit == "" {
		unit = "units"
	}
	fmt.Printf("Logged %g %s of %s at %s (id %s)\n",
		c.Amount, unit, habit.Name, consumedAt.Format("2006-01-02 15:04"), event.ID)
	return nil
}

type LogListCmd struct {
	Habit string `arg:"" help:"Habit name."`
	Days  int    `help:"Number of days to look back." default:"7"`
}

func (c *LogListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Habit)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	end := time.Now().In(loc)
	start := end.AddDate(0, 0, -c.Days)
	events, err := ctx.Store.GetEventsInRange(habit.ID, start, end)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Printf("No events for %q in the last %d days.\n", habit.Name, c.Days)
		return nil
	}

	unit := habit.Unit
	if unit == "" {
		unit = "units"
	}
	for _, event := range events {
		fmt.Printf("%s  %8g %s  %s\n",
			event.ConsumedAt.In(loc).Format("2006-01-02 15:04"), event.Amount, unit, event.ID)
	}

	return nil
}

type LogDeleteCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (c *LogDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return fmt.Errorf("event %q not found", c.ID)
	}

	if err := ctx.Store.DeleteEvent(event.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted event %s\n", event.ID)
	return nil
}
