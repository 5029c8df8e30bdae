package cli

import (
	"fmt"
	"time"

	"github.com/Jyriad/sleepfactor/internal/constants"
	"github.com/Jyriad/sleepfactor/internal/models"
	"github.com/Jyriad/sleepfactor/internal/storage"
	"github.com/Jyriad/sleepfactor/internal/utils"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// ResolveDay validates an explicit YYYY-MM-DD date or falls back to today in
// the configured timezone.
func (c *Context) ResolveDay(date string) (string, error) {
	if date != "" {
		if _, err := time.Parse(constants.DateFormat, date); err != nil {
			return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
		}
		return date, nil
	}

	settings, err := c.Store.GetSettings()
	if err != nil {
		settings = models.Settings{Timezone: constants.DefaultTimezone}
	}
	return utils.GetTodayFromSettings(settings)
}

// Location returns the configured timezone location, defaulting to the
// system timezone when settings are unavailable.
func (c *Context) Location() (*time.Location, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Local, nil
	}
	return utils.LoadLocation(settings.Timezone)
}

// FormatProfile formats a decay profile into a human-readable string
func FormatProfile(profile *models.DecayProfile) string {
	if profile == nil {
		return "none"
	}
	return fmt.Sprintf("half-life %gh, threshold %g%%", profile.HalfLifeHours, profile.ThresholdPercent)
}
