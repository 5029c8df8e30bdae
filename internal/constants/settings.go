package constants

const (
	// General Settings
	SettingTimezone             = "timezone"
	SettingDefaultReferenceTime = "default_reference_time"

	// Default Settings Values
	DefaultTimezone = "Local" // Use system local timezone by default

	// DefaultReferenceTime is the habitual bedtime used when a habit has no
	// reference time of its own and none is configured in settings.
	DefaultReferenceTime = "22:00"
)
