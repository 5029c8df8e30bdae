package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jyriad/sleepfactor/internal/models"
	"github.com/Jyriad/sleepfactor/internal/utils"
)

type SleepCmd struct {
	Add    SleepAddCmd    `cmd:"" help:"Record a night of sleep."`
	List   SleepListCmd   `cmd:"" help:"List sleep records."`
	Delete SleepDeleteCmd `cmd:"" help:"Delete a sleep record."`
}

type SleepAddCmd struct {
	Date    string `help:"Night of (YYYY-MM-DD). Defaults to today." default:""`
	Bed     string `help:"Bedtime (HH:MM)." required:""`
	Wake    string `help:"Wake time (HH:MM)." required:""`
	Quality int    `help:"Subjective quality from 1 (worst) to 5 (best)." default:"3"`
	Note    string `help:"Optional note." default:""`
}

func (c *SleepAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	if !utils.ValidateTimeFormat(c.Bed) {
		return fmt.Errorf("invalid bed time %q (expected HH:MM)", c.Bed)
	}
	if !utils.ValidateTimeFormat(c.Wake) {
		return fmt.Errorf("invalid wake time %q (expected HH:MM)", c.Wake)
	}
	if c.Quality < 1 || c.Quality > 5 {
		return fmt.Errorf("quality must be between 1 and 5, got %d", c.Quality)
	}

	record := models.SleepRecord{
		ID:        uuid.New().String(),
		Day:       day,
		BedTime:   c.Bed,
		WakeTime:  c.Wake,
		Quality:   c.Quality,
		Note:      c.Note,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddSleepRecord(record); err != nil {
		return err
	}

	fmt.Printf("Recorded sleep for %s (%s - %s, quality %d)\n", day, c.Bed, c.Wake, c.Quality)
	return nil
}

type SleepListCmd struct {
	Days int `help:"Number of days to look back." default:"7"`
}

func (c *SleepListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	endDay, err := ctx.ResolveDay("")
	if err != nil {
		return err
	}
	end, err := time.Parse("2006-01-02", endDay)
	if err != nil {
		return err
	}
	startDay := end.AddDate(0, 0, -c.Days).Format("2006-01-02")

	records, err := ctx.Store.GetSleepRecords(startDay, endDay)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Printf("No sleep records in the last %d days.\n", c.Days)
		return nil
	}

	for _, record := range records {
		line := fmt.Sprintf("%s  %s - %s  quality %d", record.Day, record.BedTime, record.WakeTime, record.Quality)
		if record.Note != "" {
			line += "  " + record.Note
		}
		fmt.Println(line)
	}

	return nil
}

type SleepDeleteCmd struct {
	Date string `arg:"" help:"Night of (YYYY-MM-DD)."`
}

func (c *SleepDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	if _, err := ctx.Store.GetSleepRecord(day); err != nil {
		return fmt.Errorf("no sleep record for %s", day)
	}

	if err := ctx.Store.DeleteSleepRecord(day); err != nil {
		return err
	}

	fmt.Printf("Deleted sleep record for %s\n", day)
	return nil
}
