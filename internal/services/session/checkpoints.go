package session

import (
	"context"
	"slices"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// checkpoints posts the scheduled messages of one session. Each callback
// works on a snapshot and does nothing once its session is gone.
type checkpoints struct {
	service   *service
	sessionID string
}

// current returns a snapshot of the bound session, or nil if it has been
// replaced or is being torn down
func (c *checkpoints) current() *models.Session {
	snapshot, err := c.service.store.Snapshot()
	if err != nil || snapshot.ID != c.sessionID || snapshot.Ending {
		return nil
	}
	return snapshot
}

func (c *checkpoints) logger(sess *models.Session, checkpoint string) zerolog.Logger {
	return c.service.logger.With().
		Str("session_id", sess.ID).
		Str("activity", sess.Activity.Name).
		Str("checkpoint", checkpoint).
		Logger()
}

// Reminder pings the activity role shortly before the start
func (c *checkpoints) Reminder(ctx context.Context) {
	sess := c.current()
	if sess == nil {
		return
	}
	logger := c.logger(sess, "reminder")

	msg, err := c.service.messaging.GetReminderMessage(ctx, &messaging.GetReminderMessageInput{Session: sess})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to build reminder")
		return
	}

	_, err = c.service.platform.SendMessage(ctx, &platform.SendMessageInput{
		ChannelID: sess.Activity.ChannelID,
		Content:   msg.Content,
		Embeds:    []*discordgo.MessageEmbed{msg.Embed},
		Mentions:  msg.Mentions,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to send reminder")
	}
}

// Start announces the start with the committed head count
func (c *checkpoints) Start(ctx context.Context) {
	sess := c.current()
	if sess == nil {
		return
	}
	logger := c.logger(sess, "start")

	msg, err := c.service.messaging.GetStartMessage(ctx, &messaging.GetStartMessageInput{Session: sess})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to build start message")
		return
	}

	_, err = c.service.platform.SendMessage(ctx, &platform.SendMessageInput{
		ChannelID: sess.Activity.ChannelID,
		Content:   msg.Content,
		Embeds:    []*discordgo.MessageEmbed{msg.Embed},
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to send start message")
	}

	if err := c.service.RefreshPresence(ctx); err != nil {
		logger.Warn().Err(err).Msg("failed to refresh presence")
	}
}

// FollowUp tags committed participants who are not in the voice channel
func (c *checkpoints) FollowUp(ctx context.Context) {
	sess := c.current()
	if sess == nil {
		return
	}
	logger := c.logger(sess, "follow_up")

	committed := sess.ParticipantsWith(models.RSVPCommitted)
	if len(committed) == 0 {
		return
	}

	if sess.Activity.VoiceChannelID == "" {
		logger.Warn().Msg("no voice channel configured, skipping late check")
		return
	}

	present, err := c.service.platform.VoiceChannelMembers(ctx, sess.Activity.VoiceChannelID)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read voice channel members")
		return
	}

	var late []string
	for _, id := range committed {
		if !slices.Contains(present, id) {
			late = append(late, id)
		}
	}

	msg, err := c.service.messaging.GetLateMessage(ctx, &messaging.GetLateMessageInput{UserIDs: late})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to build late message")
		return
	}
	if msg.Content == "" {
		return
	}

	_, err = c.service.platform.SendMessage(ctx, &platform.SendMessageInput{
		ChannelID: sess.Activity.ChannelID,
		Content:   msg.Content,
		Mentions:  msg.Mentions,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("failed to send late message")
	}
}
