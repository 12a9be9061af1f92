package messaging

// MessagingError represents messaging service errors
type MessagingError string

func (e MessagingError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when a nil config is passed to NewService
	ErrNilConfig MessagingError = "config cannot be nil"

	// ErrNilInput is returned when a nil input is passed to a method
	ErrNilInput MessagingError = "input cannot be nil"

	// ErrNilSession is returned when an input carries no session
	ErrNilSession MessagingError = "session cannot be nil"

	// ErrUnknownRSVP is returned for an RSVP state with no message
	ErrUnknownRSVP MessagingError = "unknown rsvp state"
)
