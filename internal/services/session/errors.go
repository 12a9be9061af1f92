package session

// SessionError is a custom error type for session workflow errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionAlreadyRunning SessionError = "a session is already running"
	ErrNotActivityChannel    SessionError = "channel has no activity"
	ErrInvalidTime           SessionError = "time must be formatted as HH:MM"
	ErrNoSession             SessionError = "no session is running"
	ErrNotPermitted          SessionError = "user may not end this session"
	ErrInvalidRSVP           SessionError = "invalid rsvp state"
	ErrNilInput              SessionError = "input cannot be nil"
	ErrNilConfig             SessionError = "config cannot be nil"
	ErrNilStore              SessionError = "session store cannot be nil"
	ErrNilScheduler          SessionError = "scheduler cannot be nil"
	ErrNilPlatform           SessionError = "platform cannot be nil"
	ErrNilMessaging          SessionError = "messaging service cannot be nil"
	ErrNilHistoryRepo        SessionError = "history repository cannot be nil"
	ErrNilConfigProvider     SessionError = "config provider cannot be nil"
	ErrNilClock              SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator      SessionError = "UUID generator cannot be nil"
)
