package cli

import (
	"fmt"

	"github.com/Jyriad/sleepfactor/internal/utils"
)

type SettingsCmd struct {
	Get SettingsGetCmd `cmd:"" help:"Show current settings."`
	Set SettingsSetCmd `cmd:"" help:"Update settings."`
}

type SettingsGetCmd struct{}

func (c *SettingsGetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("timezone: %s\n", settings.Timezone)
	fmt.Printf("default-reference-time: %s\n", settings.DefaultReferenceTime)
	return nil
}

type SettingsSetCmd struct {
	Timezone             string `help:"IANA timezone name (or 'Local')." default:""`
	DefaultReferenceTime string `help:"Default habitual bedtime (HH:MM)." default:""`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Timezone == "" && c.DefaultReferenceTime == "" {
		return fmt.Errorf("nothing to update: pass --timezone and/or --default-reference-time")
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Timezone != "" {
		if !utils.ValidateTimezone(c.Timezone) {
			return fmt.Errorf("invalid timezone %q", c.Timezone)
		}
		settings.Timezone = c.Timezone
	}
	if c.DefaultReferenceTime != "" {
		if !utils.ValidateTimeFormat(c.DefaultReferenceTime) {
			return fmt.Errorf("invalid time %q (expected HH:MM)", c.DefaultReferenceTime)
		}
		settings.DefaultReferenceTime = c.DefaultReferenceTime
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Settings updated.")
	return nil
}
