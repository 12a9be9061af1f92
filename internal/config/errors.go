package config

// ConfigError is a configuration validation error
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when a nil config is passed to a constructor
	ErrNilConfig ConfigError = "config cannot be nil"

	// ErrEmptyPath is returned when no config file path is given
	ErrEmptyPath ConfigError = "config path cannot be empty"

	// ErrInvalidDefaultTime is returned when default_time is not HH:MM
	ErrInvalidDefaultTime ConfigError = "default_time must be formatted as HH:MM"

	// ErrUnknownTimezone is returned when timezone is not a known IANA zone
	ErrUnknownTimezone ConfigError = "unknown timezone"

	// ErrActivityMissingName is returned when an activity has no name
	ErrActivityMissingName ConfigError = "activity name cannot be empty"

	// ErrActivityMissingChannel is returned when an activity has no channel
	ErrActivityMissingChannel ConfigError = "activity channel_id cannot be empty"

	// ErrActivityMissingRole is returned when an activity has no role
	ErrActivityMissingRole ConfigError = "activity role_id cannot be empty"

	// ErrDuplicateActivityChannel is returned when two activities share a channel
	ErrDuplicateActivityChannel ConfigError = "activity channel_id is used more than once"

	// ErrColorMissingRole is returned when a color entry has no role
	ErrColorMissingRole ConfigError = "color role_id cannot be empty"
)
