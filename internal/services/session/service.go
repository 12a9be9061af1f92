package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hostbot/internal/common/clock"
	"github.com/KirkDiggler/hostbot/internal/common/uuid"
	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/platform"
	historyRepo "github.com/KirkDiggler/hostbot/internal/repositories/history"
	"github.com/KirkDiggler/hostbot/internal/scheduler"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	sessionStore "github.com/KirkDiggler/hostbot/internal/session"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Config holds the dependencies of the session service
type Config struct {
	Store       *sessionStore.Store
	Scheduler   *scheduler.Scheduler
	Platform    platform.Platform
	Messaging   messaging.Service
	HistoryRepo historyRepo.Repository
	Configs     ConfigProvider
	Clock       clock.Clock
	UUID        uuid.UUID
	Logger      zerolog.Logger
}

// service implements the Service interface
type service struct {
	store       *sessionStore.Store
	scheduler   *scheduler.Scheduler
	platform    platform.Platform
	messaging   messaging.Service
	historyRepo historyRepo.Repository
	configs     ConfigProvider
	clock       clock.Clock
	uuid        uuid.UUID
	logger      zerolog.Logger
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch {
	case cfg.Store == nil:
		return nil, ErrNilStore
	case cfg.Scheduler == nil:
		return nil, ErrNilScheduler
	case cfg.Platform == nil:
		return nil, ErrNilPlatform
	case cfg.Messaging == nil:
		return nil, ErrNilMessaging
	case cfg.HistoryRepo == nil:
		return nil, ErrNilHistoryRepo
	case cfg.Configs == nil:
		return nil, ErrNilConfigProvider
	case cfg.Clock == nil:
		return nil, ErrNilClock
	case cfg.UUID == nil:
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		store:       cfg.Store,
		scheduler:   cfg.Scheduler,
		platform:    cfg.Platform,
		messaging:   cfg.Messaging,
		historyRepo: cfg.HistoryRepo,
		configs:     cfg.Configs,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		logger:      cfg.Logger,
	}, nil
}

// Host creates a session for the channel's activity and announces it
func (s *service) Host(ctx context.Context, input *HostInput) (*HostOutput, error) {
	if input == nil || input.Interaction == nil {
		return nil, ErrNilInput
	}

	if s.store.Present() {
		return nil, ErrSessionAlreadyRunning
	}

	cfg := s.configs.Current()
	activity, ok := cfg.ActivityForChannel(input.ChannelID)
	if !ok {
		return nil, ErrNotActivityChannel
	}

	timeOfDay := input.Time
	if timeOfDay == "" {
		timeOfDay = cfg.DefaultTime
	}
	description := input.Description
	if description == "" {
		description = cfg.DefaultDescription
	}

	now := s.clock.Now().In(cfg.Location())
	startTime, err := scheduler.NextOccurrence(now, timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, timeOfDay)
	}

	sess := models.NewSession(s.uuid.NewUUID(), activity, startTime, input.UserID)
	sess.Description = description
	sess.CreatedAt = now

	task, err := s.scheduler.Arm(startTime, &checkpoints{service: s, sessionID: sess.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to arm scheduler: %w", err)
	}
	sess.Timer = task
	created := sess.Clone()

	if err := s.store.Create(sess); err != nil {
		task.Cancel(ctx)
		if errors.Is(err, sessionStore.ErrSessionAlreadyRunning) {
			return nil, ErrSessionAlreadyRunning
		}
		return nil, err
	}

	logger := s.logger.With().Str("session_id", created.ID).Str("activity", activity.Name).Logger()

	announcement, err := s.messaging.GetAnnouncementMessage(ctx, &messaging.GetAnnouncementMessageInput{Session: created})
	if err != nil {
		s.rollback(ctx, sess.ID, task)
		return nil, fmt.Errorf("failed to build announcement: %w", err)
	}

	err = s.platform.Respond(ctx, &platform.RespondInput{
		Interaction: input.Interaction,
		Content:     announcement.Content,
		Components:  announcement.Components,
		Mentions:    announcement.Mentions,
	})
	if err != nil {
		s.rollback(ctx, sess.ID, task)
		return nil, fmt.Errorf("failed to announce session: %w", err)
	}

	ref, err := s.platform.ResponseMessage(ctx, input.Interaction)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to fetch announcement, it will not be pinned")
	} else {
		if err := s.platform.Pin(ctx, *ref); err != nil {
			logger.Warn().Err(err).Msg("failed to pin announcement")
		}

		_ = s.store.Mutate(func(cur *models.Session) error {
			if cur.ID == sess.ID {
				cur.Message = *ref
			}
			return nil
		})
	}

	// checkpoints only run once the announcement they refer to is visible
	task.Start()

	logger.Info().
		Str("host_id", input.UserID).
		Time("start_time", startTime).
		Msg("session hosted")

	if err := s.RefreshPresence(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to refresh presence")
	}

	snapshot, err := s.store.Snapshot()
	if err != nil {
		// ended between the announcement and now
		snapshot = created
	}

	return &HostOutput{Session: snapshot}, nil
}

// rollback removes a session whose announcement never went out
func (s *service) rollback(ctx context.Context, sessionID string, task *scheduler.Task) {
	task.Cancel(ctx)

	if s.claim(sessionID) {
		s.store.Clear()
	}
}

// claim marks the session as ending if it is still the current one and no
// one else is ending it. The caller that wins the claim owns the teardown.
func (s *service) claim(sessionID string) bool {
	err := s.store.Mutate(func(cur *models.Session) error {
		if cur.ID != sessionID || cur.Ending {
			return ErrNoSession
		}
		cur.Ending = true
		return nil
	})
	return err == nil
}

// SetRSVP records a participant's response, replacing any earlier one
func (s *service) SetRSVP(ctx context.Context, input *SetRSVPInput) (*SetRSVPOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if !input.State.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRSVP, input.State)
	}

	var previous models.RSVP
	err := s.store.Mutate(func(cur *models.Session) error {
		if cur.Ending {
			return ErrNoSession
		}
		previous = cur.Participants[input.UserID]
		cur.Participants[input.UserID] = input.State
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	return &SetRSVPOutput{Previous: previous}, nil
}

// GetStatus returns a snapshot of the current session
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		return nil, mapStoreError(err)
	}

	return &GetStatusOutput{
		Session: snapshot,
		Started: snapshot.Started(s.clock.Now()),
	}, nil
}

// RequestEnd checks that the user may end the current session and reports
// whether ending means cancelling or ending it
func (s *service) RequestEnd(ctx context.Context, input *RequestEndInput) (*RequestEndOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	snapshot, err := s.store.Snapshot()
	if err != nil {
		return nil, mapStoreError(err)
	}
	if snapshot.Ending {
		return nil, ErrNoSession
	}

	if !s.mayEnd(snapshot, input.UserID) {
		return nil, ErrNotPermitted
	}

	return &RequestEndOutput{Verb: s.verb(snapshot)}, nil
}

// End tears down the current session. Only one caller can end a session;
// any concurrent caller gets ErrNoSession. Platform failures during the
// teardown are logged and the slot is always cleared.
func (s *service) End(ctx context.Context, input *EndInput) (*EndOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var snapshot *models.Session
	err := s.store.Mutate(func(cur *models.Session) error {
		if cur.Ending {
			return ErrNoSession
		}
		if !s.mayEnd(cur, input.UserID) {
			return ErrNotPermitted
		}
		cur.Ending = true
		snapshot = cur.Clone()
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	logger := s.logger.With().Str("session_id", snapshot.ID).Str("activity", snapshot.Activity.Name).Logger()

	if snapshot.Timer != nil {
		snapshot.Timer.Cancel(ctx)
	}

	verb := s.verb(snapshot)
	now := s.clock.Now()

	if !snapshot.Message.IsZero() {
		err := s.platform.EditMessage(ctx, &platform.EditMessageInput{
			Ref:        snapshot.Message,
			Components: &[]discordgo.MessageComponent{},
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to remove RSVP buttons")
		}

		if err := s.platform.Unpin(ctx, snapshot.Message); err != nil {
			logger.Warn().Err(err).Msg("failed to unpin announcement")
		}
	}

	closing, err := s.messaging.GetClosingMessage(ctx, &messaging.GetClosingMessageInput{
		Session: snapshot,
		Verb:    verb,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to build closing message")
	} else {
		_, err = s.platform.SendMessage(ctx, &platform.SendMessageInput{
			ChannelID: snapshot.Activity.ChannelID,
			Content:   closing.Content,
			Mentions:  closing.Mentions,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("failed to post closing message")
		}
	}

	outcome := models.SessionOutcomeEnded
	if verb == messaging.EndVerbCancel {
		outcome = models.SessionOutcomeCancelled
	}

	err = s.historyRepo.RecordEntry(ctx, &historyRepo.RecordEntryInput{
		Entry: &models.HistoryEntry{
			SessionID:    snapshot.ID,
			ActivityName: snapshot.Activity.Name,
			HostID:       snapshot.HostID,
			ClosedBy:     input.UserID,
			StartTime:    snapshot.StartTime,
			ClosedAt:     now,
			Outcome:      outcome,
			Committed:    snapshot.Count(models.RSVPCommitted),
			Tentative:    snapshot.Count(models.RSVPTentative),
			Declined:     snapshot.Count(models.RSVPDeclined),
		},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to record session history")
	}

	s.store.Clear()

	logger.Info().
		Str("closed_by", input.UserID).
		Str("outcome", string(outcome)).
		Msg("session closed")

	if err := s.RefreshPresence(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to refresh presence")
	}

	return &EndOutput{
		Verb:    verb,
		Session: snapshot,
	}, nil
}

// RefreshPresence updates the bot presence to match the current session
func (s *service) RefreshPresence(ctx context.Context) error {
	snapshot, err := s.store.Snapshot()
	if err != nil {
		snapshot = nil
	}

	presence, err := s.messaging.GetPresence(ctx, &messaging.GetPresenceInput{
		Session:  snapshot,
		Now:      s.clock.Now(),
		Location: s.configs.Current().Location(),
	})
	if err != nil {
		return fmt.Errorf("failed to build presence: %w", err)
	}

	return s.platform.SetPresence(ctx, &platform.SetPresenceInput{
		Text:   presence.Text,
		Status: presence.Status,
	})
}

// GetHistory lists finished sessions, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.historyRepo.ListEntries(ctx, &historyRepo.ListEntriesInput{Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return &GetHistoryOutput{Entries: out.Entries}, nil
}

func (s *service) mayEnd(sess *models.Session, userID string) bool {
	return sess.HostID == userID || s.configs.Current().IsAdmin(userID)
}

func (s *service) verb(sess *models.Session) messaging.EndVerb {
	if sess.Started(s.clock.Now()) {
		return messaging.EndVerbEnd
	}
	return messaging.EndVerbCancel
}

func mapStoreError(err error) error {
	if errors.Is(err, sessionStore.ErrNoSession) {
		return ErrNoSession
	}
	return err
}
