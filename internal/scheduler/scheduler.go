// Package scheduler runs the timed checkpoints of a hosted session.
//
// A Task sleeps until the reminder point (start minus the reminder lead),
// then until the start time, then for the follow-up delay, calling the
// matching Checkpoints method after each sleep. Arm only prepares a task;
// nothing sleeps or fires until Start. Cancel stops the task. A checkpoint
// that is already running is never interrupted; Cancel waits for it to
// return so that no checkpoint runs after Cancel returns.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/hostbot/internal/common/clock"
	"github.com/rs/zerolog"
)

const (
	// DefaultReminderLead is how long before the start the reminder fires
	DefaultReminderLead = 10 * time.Minute

	// DefaultFollowUpDelay is how long after the start the follow-up fires
	DefaultFollowUpDelay = 10 * time.Minute
)

// Checkpoints receives the scheduled callbacks of one session
type Checkpoints interface {
	Reminder(ctx context.Context)
	Start(ctx context.Context)
	FollowUp(ctx context.Context)
}

// Config holds configuration for the scheduler
type Config struct {
	Clock clock.Clock

	// ReminderLead defaults to DefaultReminderLead
	ReminderLead time.Duration

	// FollowUpDelay defaults to DefaultFollowUpDelay
	FollowUpDelay time.Duration

	Logger zerolog.Logger
}

// Scheduler arms checkpoint tasks
type Scheduler struct {
	clock         clock.Clock
	reminderLead  time.Duration
	followUpDelay time.Duration
	logger        zerolog.Logger
}

// New creates a scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	s := &Scheduler{
		clock:         cfg.Clock,
		reminderLead:  cfg.ReminderLead,
		followUpDelay: cfg.FollowUpDelay,
		logger:        cfg.Logger,
	}
	if s.reminderLead <= 0 {
		s.reminderLead = DefaultReminderLead
	}
	if s.followUpDelay <= 0 {
		s.followUpDelay = DefaultFollowUpDelay
	}

	return s, nil
}

// firingKey marks the context handed to a running checkpoint
type firingKey struct{}

// Arm prepares a task for a session starting at startTime. The task does
// nothing until Start is called.
func (s *Scheduler) Arm(startTime time.Time, checkpoints Checkpoints) (*Task, error) {
	if checkpoints == nil {
		return nil, ErrNilCheckpoints
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &Task{
		scheduler:   s,
		startTime:   startTime,
		checkpoints: checkpoints,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
	t.state.Store(int32(StateArmed))

	return t, nil
}

// Task is the background timer bound to one session
type Task struct {
	scheduler   *Scheduler
	startTime   time.Time
	checkpoints Checkpoints
	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}
	state       atomic.Int32

	// runs either the task goroutine or, if cancelled first, the close of done
	started sync.Once

	// held while a checkpoint runs
	firing sync.Mutex
}

// Start begins sleeping towards the first checkpoint. A reminder whose lead
// has already passed fires right away. Start after Cancel, or a second
// Start, does nothing.
func (t *Task) Start() {
	t.started.Do(func() {
		go t.run(t.ctx, t.checkpoints)
	})
}

// Cancel stops all pending checkpoints. If a checkpoint is running, Cancel
// returns once it has finished, unless ctx is the context that checkpoint
// was called with, in which case Cancel returns at once and nothing fires
// after that checkpoint. Cancel is safe to call more than once.
func (t *Task) Cancel(ctx context.Context) {
	t.cancel()

	// never started
	t.started.Do(func() {
		close(t.done)
	})

	if owner, _ := ctx.Value(firingKey{}).(*Task); owner == t {
		// the firing lock is held further up this goroutine's stack
		t.state.Store(int32(StateCancelled))
		return
	}

	t.firing.Lock()
	defer t.firing.Unlock()
	if !t.State().Terminal() {
		t.state.Store(int32(StateCancelled))
	}
}

// Done is closed when the task goroutine has exited
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// State returns the last checkpoint the task reached
func (t *Task) State() State {
	return State(t.state.Load())
}

// StartTime returns the start time the task was armed for
func (t *Task) StartTime() time.Time {
	return t.startTime
}

func (t *Task) run(ctx context.Context, checkpoints Checkpoints) {
	defer close(t.done)

	s := t.scheduler

	if !t.sleepUntil(ctx, t.startTime.Add(-s.reminderLead)) {
		return
	}
	if !t.fire(ctx, StateReminderFired, checkpoints.Reminder) {
		return
	}

	if !t.sleepUntil(ctx, t.startTime) {
		return
	}
	if !t.fire(ctx, StateStartFired, checkpoints.Start) {
		return
	}

	if !t.sleepUntil(ctx, s.clock.Now().Add(s.followUpDelay)) {
		return
	}
	if !t.fire(ctx, StateFollowUpFired, checkpoints.FollowUp) {
		return
	}

	t.firing.Lock()
	if ctx.Err() == nil {
		t.state.Store(int32(StateDone))
	}
	t.firing.Unlock()
}

// sleepUntil blocks until at or until ctx is cancelled. It reports whether
// the task should continue.
func (t *Task) sleepUntil(ctx context.Context, at time.Time) bool {
	delay := at.Sub(t.scheduler.clock.Now())

	select {
	case <-ctx.Done():
		return false
	case <-t.scheduler.clock.After(delay):
		return true
	}
}

// fire runs one checkpoint. A panicking checkpoint is logged and the task
// moves on to the next one.
func (t *Task) fire(ctx context.Context, reached State, checkpoint func(ctx context.Context)) (ok bool) {
	t.firing.Lock()
	defer t.firing.Unlock()

	if ctx.Err() != nil {
		return false
	}

	t.state.Store(int32(reached))

	defer func() {
		if r := recover(); r != nil {
			t.scheduler.logger.Error().
				Str("checkpoint", reached.String()).
				Interface("panic", r).
				Msg("checkpoint panicked")
			ok = true
		}
	}()

	t.scheduler.logger.Debug().
		Str("checkpoint", reached.String()).
		Time("start_time", t.startTime).
		Msg("firing checkpoint")

	checkpoint(context.WithValue(context.WithoutCancel(ctx), firingKey{}, t))
	return ctx.Err() == nil
}
