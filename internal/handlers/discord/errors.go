package discord

// HandlerError is a custom error type for the discord handlers
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig         HandlerError = "config cannot be nil"
	ErrNilSession        HandlerError = "discord session cannot be nil"
	ErrNilPlatform       HandlerError = "platform cannot be nil"
	ErrNilRegistry       HandlerError = "registry cannot be nil"
	ErrNilSessions       HandlerError = "session service cannot be nil"
	ErrNilMessaging      HandlerError = "messaging service cannot be nil"
	ErrNilConfigProvider HandlerError = "config provider cannot be nil"
	ErrEmptyKey          HandlerError = "handler key cannot be empty"
	ErrInvalidHandler    HandlerError = "handler has no implementation"
	ErrRoleNotFound      HandlerError = "role not found"

	// ErrMalformedPayload is returned for component values the bot never
	// produced, such as a forged menu index
	ErrMalformedPayload HandlerError = "malformed interaction payload"
)
