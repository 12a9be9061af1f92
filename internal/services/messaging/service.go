package messaging

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/bwmarrin/discordgo"
)

const (
	// DefaultStatusColor is the pink used by the status embed
	DefaultStatusColor = 0xF4ADF9

	nobody = "Nobody"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// StatusColor defaults to DefaultStatusColor
	StatusColor int
}

// service implements the Service interface
type service struct {
	statusColor int
}

// NewService creates a new messaging service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	s := &service{statusColor: cfg.StatusColor}
	if s.statusColor == 0 {
		s.statusColor = DefaultStatusColor
	}

	return s, nil
}

// GetAnnouncementMessage returns the message that announces a new session
func (s *service) GetAnnouncementMessage(ctx context.Context, input *GetAnnouncementMessageInput) (*GetAnnouncementMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	content := fmt.Sprintf("%s A session is planned!\nTime: %s\nDescription: %s",
		roleMention(sess.Activity.RoleID),
		timestamp(sess.StartTime.Unix(), ""),
		sess.Description,
	)

	return &GetAnnouncementMessageOutput{
		Content: content,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "Yes", Style: discordgo.SuccessButton, CustomID: ButtonYes},
					discordgo.Button{Label: "Maybe", Style: discordgo.SecondaryButton, CustomID: ButtonMaybe},
					discordgo.Button{Label: "No", Style: discordgo.DangerButton, CustomID: ButtonNo},
				},
			},
		},
		Mentions: platform.Mentions{Roles: []string{sess.Activity.RoleID}},
	}, nil
}

// GetReminderMessage returns the message posted shortly before a session starts
func (s *service) GetReminderMessage(ctx context.Context, input *GetReminderMessageInput) (*GetReminderMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}

	return &GetReminderMessageOutput{
		Content:  fmt.Sprintf("%s Session starting soon!", roleMention(input.Session.Activity.RoleID)),
		Embed:    s.statusEmbed(input.Session),
		Mentions: platform.Mentions{Roles: []string{input.Session.Activity.RoleID}},
	}, nil
}

// GetStartMessage returns the message posted when a session starts
func (s *service) GetStartMessage(ctx context.Context, input *GetStartMessageInput) (*GetStartMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	committed := sess.Count(models.RSVPCommitted)
	content := fmt.Sprintf("%s Session has started! %d %s said Yes!",
		sess.Activity.Name, committed, personOrPeople(committed))

	return &GetStartMessageOutput{
		Content: content,
		Embed:   s.statusEmbed(sess),
	}, nil
}

// GetLateMessage returns the message tagging committed participants missing from voice
func (s *service) GetLateMessage(ctx context.Context, input *GetLateMessageInput) (*GetLateMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.UserIDs) == 0 {
		return &GetLateMessageOutput{}, nil
	}

	return &GetLateMessageOutput{
		Content:  mentions(input.UserIDs) + " you're late, get in the VC!",
		Mentions: platform.Mentions{Users: input.UserIDs},
	}, nil
}

// GetClosingMessage returns the message posted when a session is ended or cancelled.
// Committed participants are only pinged when a session is cancelled before it starts.
func (s *service) GetClosingMessage(ctx context.Context, input *GetClosingMessageInput) (*GetClosingMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	var prefix string
	var pinged []string
	if input.Verb == EndVerbCancel {
		pinged = sess.ParticipantsWith(models.RSVPCommitted)
		if len(pinged) > 0 {
			prefix = mentions(pinged) + ": "
		}
	}

	return &GetClosingMessageOutput{
		Content:  fmt.Sprintf("%s%s Session has been %s!", prefix, sess.Activity.Name, input.Verb.Past()),
		Mentions: platform.Mentions{Users: pinged},
	}, nil
}

// GetStatusEmbed returns the embed listing participants by RSVP
func (s *service) GetStatusEmbed(ctx context.Context, input *GetStatusEmbedInput) (*GetStatusEmbedOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}

	return &GetStatusEmbedOutput{Embed: s.statusEmbed(input.Session)}, nil
}

// GetRSVPMessage returns the private acknowledgement of an RSVP
func (s *service) GetRSVPMessage(ctx context.Context, input *GetRSVPMessageInput) (*GetRSVPMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var answer string
	switch input.State {
	case models.RSVPCommitted:
		answer = "yes"
	case models.RSVPTentative:
		answer = "maybe"
	case models.RSVPDeclined:
		answer = "no"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRSVP, input.State)
	}

	return &GetRSVPMessageOutput{
		Content: fmt.Sprintf("Thanks for saying %s, <@%s>", answer, input.UserID),
	}, nil
}

// GetEndConfirmMessage returns the private end/cancel confirmation prompt
func (s *service) GetEndConfirmMessage(ctx context.Context, input *GetEndConfirmMessageInput) (*GetEndConfirmMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	return &GetEndConfirmMessageOutput{
		Content: fmt.Sprintf("Are you sure you want to %s the Session?", input.Verb),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "Yes", Style: discordgo.DangerButton, CustomID: EndHostYes},
					discordgo.Button{Label: "No", Style: discordgo.SuccessButton, CustomID: EndHostNo},
				},
			},
		},
	}, nil
}

// GetEndResultMessage returns the text that replaces the confirmation prompt
func (s *service) GetEndResultMessage(ctx context.Context, input *GetEndResultMessageInput) (*GetEndResultMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Confirmed {
		return &GetEndResultMessageOutput{Content: fmt.Sprintf("Session *has* been %s!", input.Verb.Past())}, nil
	}

	return &GetEndResultMessageOutput{Content: fmt.Sprintf("Session has *not* been %s!", input.Verb.Past())}, nil
}

// GetPresence returns the bot presence for the current session
func (s *service) GetPresence(ctx context.Context, input *GetPresenceInput) (*GetPresenceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess := input.Session
	if sess == nil {
		return &GetPresenceOutput{Text: "No session planned", Status: platform.PresenceIdle}, nil
	}

	if sess.Started(input.Now) {
		return &GetPresenceOutput{Text: sess.Activity.Name + " now", Status: platform.PresenceOnline}, nil
	}

	loc := input.Location
	if loc == nil {
		loc = sess.StartTime.Location()
	}

	return &GetPresenceOutput{
		Text:   fmt.Sprintf("%s at %s", sess.Activity.Name, sess.StartTime.In(loc).Format("15:04")),
		Status: platform.PresenceOnline,
	}, nil
}

// GetHistoryEmbed returns the embed listing finished sessions, newest first
func (s *service) GetHistoryEmbed(ctx context.Context, input *GetHistoryEmbedInput) (*GetHistoryEmbedOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	embed := &discordgo.MessageEmbed{
		Title: "Session history",
		Color: s.statusColor,
	}

	if len(input.Entries) == 0 {
		embed.Description = "No finished sessions yet"
		return &GetHistoryEmbedOutput{Embed: embed}, nil
	}

	for _, e := range input.Entries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s (%s)", e.ActivityName, e.Outcome),
			Value: fmt.Sprintf("Hosted by <@%s> for %s\n%d yes, %d maybe, %d no",
				e.HostID, timestamp(e.StartTime.Unix(), "f"), e.Committed, e.Tentative, e.Declined),
		})
	}

	return &GetHistoryEmbedOutput{Embed: embed}, nil
}

func (s *service) statusEmbed(sess *models.Session) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Status",
		Description: fmt.Sprintf("%s at %s", sess.Activity.Name, timestamp(sess.StartTime.Unix(), "t")),
		Color:       s.statusColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "People who are sure", Value: mentionsOrNobody(sess.ParticipantsWith(models.RSVPCommitted))},
			{Name: "People who are unsure", Value: mentionsOrNobody(sess.ParticipantsWith(models.RSVPTentative))},
			{Name: "People who don't want to", Value: mentionsOrNobody(sess.ParticipantsWith(models.RSVPDeclined))},
		},
	}
}

func personOrPeople(n int) string {
	if n == 1 {
		return "person"
	}
	return "people"
}

func roleMention(roleID string) string {
	return "<@&" + roleID + ">"
}

func mentions(userIDs []string) string {
	tags := make([]string, len(userIDs))
	for i, id := range userIDs {
		tags[i] = "<@" + id + ">"
	}
	return strings.Join(tags, " ")
}

func mentionsOrNobody(userIDs []string) string {
	if len(userIDs) == 0 {
		return nobody
	}
	return mentions(userIDs)
}

// timestamp renders a Discord timestamp that each client shows in its own zone
func timestamp(unix int64, style string) string {
	if style == "" {
		return fmt.Sprintf("<t:%d>", unix)
	}
	return fmt.Sprintf("<t:%d:%s>", unix, style)
}
