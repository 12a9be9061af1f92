package session

// StoreError is returned by the session store
type StoreError string

// Error implements the error interface
func (e StoreError) Error() string {
	return string(e)
}

const (
	ErrSessionAlreadyRunning StoreError = "a session is already running"
	ErrNoSession             StoreError = "no session is running"
	ErrNilSession            StoreError = "session cannot be nil"
	ErrNilClock              StoreError = "clock cannot be nil"
)
