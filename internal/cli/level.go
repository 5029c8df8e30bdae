package cli

import (
	"fmt"

	"github.com/Jyriad/sleepfactor/internal/insights"
	"github.com/Jyriad/sleepfactor/internal/logger"
)

type LevelCmd struct {
	Habit string `arg:"" help:"Habit name."`
	Date  string `help:"Logged day (YYYY-MM-DD). Defaults to today." default:""`
}

func (c *LevelCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Habit)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	report, err := insights.New(ctx.Store).LevelAtReference(habit, day)
	if err != nil {
		return err
	}

	for _, rejected := range report.Rejected {
		logger.Warn("skipped malformed event",
			"event", rejected.Event.ID, "reason", rejected.Reason)
	}

	unit := report.Unit
	if unit == "" {
		unit = "units"
	}
	fmt.Printf("Estimated %s level at %s: %.1f %s\n",
		report.HabitName, report.ReferenceInstant.Format("2006-01-02 15:04"), report.Level, unit)
	if !report.Logged {
		fmt.Printf("No %s events were logged on %s.\n", report.HabitName, day)
	}
	if ctx.Debug {
		logger.Debug("level estimate",
			"habit", report.HabitID, "day", report.Day,
			"lookbackDays", report.LookbackDays, "rejected", len(report.Rejected))
	}

	return nil
}
