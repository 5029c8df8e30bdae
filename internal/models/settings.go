package models

// Settings represents application-wide settings
type Settings struct {
	Timezone             string `json:"timezone"`               // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	DefaultReferenceTime string `json:"default_reference_time"` // habitual bedtime (HH:MM) used when a habit has none of its own
}
