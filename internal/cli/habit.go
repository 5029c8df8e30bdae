package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jyriad/sleepfactor/internal/constants"
	"github.com/Jyriad/sleepfactor/internal/decay"
	"github.com/Jyriad/sleepfactor/internal/models"
	"github.com/Jyriad/sleepfactor/internal/utils"
)

type HabitCmd struct {
	Add        HabitAddCmd        `cmd:"" help:"Add a new habit."`
	List       HabitListCmd       `cmd:"" help:"List habits."`
	SetProfile HabitSetProfileCmd `cmd:"" help:"Set or update a habit's decay profile."`
	Archive    HabitArchiveCmd    `cmd:"" help:"Archive a habit."`
	Unarchive  HabitUnarchiveCmd  `cmd:"" help:"Unarchive a habit."`
	Delete     HabitDeleteCmd     `cmd:"" help:"Delete a habit (soft delete)."`
	Restore    HabitRestoreCmd    `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name          string  `arg:"" help:"Habit name."`
	Unit          string  `help:"Unit of measurement for a substance habit (e.g. mg, drinks)." default:""`
	HalfLife      float64 `help:"Elimination half-life in hours (makes this a substance habit)." default:"0"`
	Threshold     float64 `help:"Negligibility threshold percent for lookback sizing." default:"5"`
	ReferenceTime string  `help:"Habitual bedtime (HH:MM) used as the level reference instant." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Check if habit with same name already exists
	_, err := ctx.Store.GetHabitByName(c.Name)
	if err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	if c.ReferenceTime != "" && !utils.ValidateTimeFormat(c.ReferenceTime) {
		return fmt.Errorf("invalid reference time %q (expected HH:MM)", c.ReferenceTime)
	}

	habit := models.Habit{
		ID:            uuid.New().String(),
		Name:          c.Name,
		Kind:          constants.HabitKindGeneric,
		Unit:          c.Unit,
		ReferenceTime: c.ReferenceTime,
		CreatedAt:     time.Now(),
	}

	if c.HalfLife != 0 {
		profile := models.DecayProfile{
			HalfLifeHours:    c.HalfLife,
			ThresholdPercent: c.Threshold,
		}
		if err := decay.ValidateProfile(profile); err != nil {
			return err
		}
		habit.Kind = constants.HabitKindSubstance
		habit.Profile = &profile
	}

	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
	Deleted  bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.Archived, c.Deleted)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		status := ""
		if habit.DeletedAt != nil {
			status = " [DELETED]"
		} else if habit.ArchivedAt != nil {
			status = " [ARCHIVED]"
		}
		if habit.IsSubstance() {
			fmt.Printf("%s (%s, %s)%s\n", habit.Name, habit.Unit, FormatProfile(habit.Profile), status)
		} else {
			fmt.Printf("%s%s\n", habit.Name, status)
		}
	}

	return nil
}

type HabitSetProfileCmd struct {
	Name      string  `arg:"" help:"Habit name."`
	HalfLife  float64 `arg:"" help:"Elimination half-life in hours."`
	Threshold float64 `help:"Negligibility threshold percent for lookback sizing." default:"5"`
	Unit      string  `help:"Unit of measurement (keeps the current unit when omitted)." default:""`
}

func (c *HabitSetProfileCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	profile := models.DecayProfile{
		HalfLifeHours:    c.HalfLife,
		ThresholdPercent: c.Threshold,
	}
	if err := decay.ValidateProfile(profile); err != nil {
		return err
	}

	habit.Kind = constants.HabitKindSubstance
	habit.Profile = &profile
	if c.Unit != "" {
		habit.Unit = c.Unit
	}

	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	// Configuration is read fresh on every estimation, so the new profile
	// applies from the very next level query.
	fmt.Printf("Updated profile for %q: %s\n", c.Name, FormatProfile(habit.Profile))
	return nil
}

type HabitArchiveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.ArchiveHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Archived habit: %s\n", c.Name)
	return nil
}

type HabitUnarchiveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitUnarchiveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.UnarchiveHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Unarchived habit: %s\n", c.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		return err
	}

	for _, habit := range habits {
		if habit.Name == c.Name && habit.DeletedAt != nil {
			if err := ctx.Store.RestoreHabit(habit.ID); err != nil {
				return err
			}
			fmt.Printf("Restored habit: %s\n", c.Name)
			return nil
		}
	}

	return fmt.Errorf("no deleted habit named %q found", c.Name)
}
