package scheduler

// SchedulerError is returned by the scheduler package
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

const (
	ErrInvalidTime    SchedulerError = "time must be formatted as HH:MM"
	ErrNilConfig      SchedulerError = "config cannot be nil"
	ErrNilClock       SchedulerError = "clock cannot be nil"
	ErrNilCheckpoints SchedulerError = "checkpoints cannot be nil"
)
