package messaging

import "context"

// Service builds the user-facing texts, embeds and components of the bot
type Service interface {
	// GetAnnouncementMessage returns the message that announces a new session
	GetAnnouncementMessage(ctx context.Context, input *GetAnnouncementMessageInput) (*GetAnnouncementMessageOutput, error)

	// GetReminderMessage returns the message posted shortly before a session starts
	GetReminderMessage(ctx context.Context, input *GetReminderMessageInput) (*GetReminderMessageOutput, error)

	// GetStartMessage returns the message posted when a session starts
	GetStartMessage(ctx context.Context, input *GetStartMessageInput) (*GetStartMessageOutput, error)

	// GetLateMessage returns the message tagging committed participants missing from voice
	GetLateMessage(ctx context.Context, input *GetLateMessageInput) (*GetLateMessageOutput, error)

	// GetClosingMessage returns the message posted when a session is ended or cancelled
	GetClosingMessage(ctx context.Context, input *GetClosingMessageInput) (*GetClosingMessageOutput, error)

	// GetStatusEmbed returns the embed listing participants by RSVP
	GetStatusEmbed(ctx context.Context, input *GetStatusEmbedInput) (*GetStatusEmbedOutput, error)

	// GetRSVPMessage returns the private acknowledgement of an RSVP
	GetRSVPMessage(ctx context.Context, input *GetRSVPMessageInput) (*GetRSVPMessageOutput, error)

	// GetEndConfirmMessage returns the private end/cancel confirmation prompt
	GetEndConfirmMessage(ctx context.Context, input *GetEndConfirmMessageInput) (*GetEndConfirmMessageOutput, error)

	// GetEndResultMessage returns the text that replaces the confirmation prompt
	GetEndResultMessage(ctx context.Context, input *GetEndResultMessageInput) (*GetEndResultMessageOutput, error)

	// GetPresence returns the bot presence for the current session
	GetPresence(ctx context.Context, input *GetPresenceInput) (*GetPresenceOutput, error)

	// GetHistoryEmbed returns the embed listing finished sessions
	GetHistoryEmbed(ctx context.Context, input *GetHistoryEmbedInput) (*GetHistoryEmbedOutput, error)
}
