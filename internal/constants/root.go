package constants

// HabitKind represents the kind of habit being tracked
type HabitKind string

const (
	AppName            = "sleepfactor"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/sleepfactor/sleepfactor.db"
	Version            = "v0.2.0"

	// Habit Kind constants
	HabitKindGeneric   HabitKind = "generic"
	HabitKindSubstance HabitKind = "substance"
)
