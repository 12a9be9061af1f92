package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/bwmarrin/discordgo"
)

// TransportConfig holds configuration for the discordgo transport
type TransportConfig struct {
	Session *discordgo.Session

	// ApplicationID owns the slash commands. Empty falls back to the bot user.
	ApplicationID string

	// GuildID scopes slash commands to one guild. Empty registers them globally.
	GuildID string
}

// Transport implements platform.Platform over a discordgo session
type Transport struct {
	session       *discordgo.Session
	applicationID string
	guildID       string
}

var _ platform.Platform = (*Transport)(nil)

// NewTransport creates a new transport
func NewTransport(cfg *TransportConfig) (*Transport, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	return &Transport{
		session:       cfg.Session,
		applicationID: cfg.ApplicationID,
		guildID:       cfg.GuildID,
	}, nil
}

// SendMessage posts a message to a channel
func (t *Transport) SendMessage(ctx context.Context, input *platform.SendMessageInput) (*models.MessageRef, error) {
	msg, err := t.session.ChannelMessageSendComplex(input.ChannelID, &discordgo.MessageSend{
		Content:         input.Content,
		Embeds:          input.Embeds,
		Components:      input.Components,
		AllowedMentions: allowedMentions(input.Mentions),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send message to %s: %w", input.ChannelID, err)
	}

	return &models.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

// EditMessage replaces the content and/or components of a posted message
func (t *Transport) EditMessage(ctx context.Context, input *platform.EditMessageInput) error {
	_, err := t.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    input.Ref.ChannelID,
		ID:         input.Ref.MessageID,
		Content:    input.Content,
		Components: input.Components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to edit message %s: %w", input.Ref.MessageID, err)
	}

	return nil
}

// Pin pins a message in its channel
func (t *Transport) Pin(ctx context.Context, ref models.MessageRef) error {
	if err := t.session.ChannelMessagePin(ref.ChannelID, ref.MessageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to pin message %s: %w", ref.MessageID, err)
	}
	return nil
}

// Unpin removes a message from its channel's pins
func (t *Transport) Unpin(ctx context.Context, ref models.MessageRef) error {
	if err := t.session.ChannelMessageUnpin(ref.ChannelID, ref.MessageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to unpin message %s: %w", ref.MessageID, err)
	}
	return nil
}

// Respond answers an interaction with a new message
func (t *Transport) Respond(ctx context.Context, input *platform.RespondInput) error {
	return t.respond(ctx, discordgo.InteractionResponseChannelMessageWithSource, input)
}

// UpdateOrigin answers a component interaction by editing the message it came from
func (t *Transport) UpdateOrigin(ctx context.Context, input *platform.RespondInput) error {
	return t.respond(ctx, discordgo.InteractionResponseUpdateMessage, input)
}

func (t *Transport) respond(ctx context.Context, kind discordgo.InteractionResponseType, input *platform.RespondInput) error {
	data := &discordgo.InteractionResponseData{
		Content:         input.Content,
		Embeds:          input.Embeds,
		Components:      input.Components,
		AllowedMentions: allowedMentions(input.Mentions),
	}
	if input.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := t.session.InteractionRespond(input.Interaction, &discordgo.InteractionResponse{
		Type: kind,
		Data: data,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to respond to interaction %s: %w", input.Interaction.ID, err)
	}

	return nil
}

// ResponseMessage returns the message created by an earlier Respond call
func (t *Transport) ResponseMessage(ctx context.Context, interaction *discordgo.Interaction) (*models.MessageRef, error) {
	msg, err := t.session.InteractionResponse(interaction, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interaction response: %w", err)
	}

	return &models.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

// VoiceChannelMembers returns the users connected to a voice channel, read from the gateway state
func (t *Transport) VoiceChannelMembers(ctx context.Context, channelID string) ([]string, error) {
	channel, err := t.session.State.Channel(channelID)
	if err != nil {
		channel, err = t.session.Channel(channelID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to get voice channel %s: %w", channelID, err)
		}
	}

	guild, err := t.session.State.Guild(channel.GuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild %s from state: %w", channel.GuildID, err)
	}

	// voice states are replaced under the state lock on every VOICE_STATE_UPDATE
	t.session.State.RLock()
	defer t.session.State.RUnlock()

	var userIDs []string
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == channelID {
			userIDs = append(userIDs, vs.UserID)
		}
	}

	return userIDs, nil
}

// SetPresence updates the bot's visible activity and status
func (t *Transport) SetPresence(ctx context.Context, input *platform.SetPresenceInput) error {
	status := discordgo.UpdateStatusData{Status: string(input.Status)}
	if input.Text != "" {
		status.Activities = []*discordgo.Activity{{
			Name: input.Text,
			Type: discordgo.ActivityTypeGame,
		}}
	}

	if err := t.session.UpdateStatusComplex(status); err != nil {
		return fmt.Errorf("failed to update presence: %w", err)
	}
	return nil
}

// RegisterCommand publishes a slash command and returns its ID
func (t *Transport) RegisterCommand(ctx context.Context, command *discordgo.ApplicationCommand) (string, error) {
	appID, err := t.appID()
	if err != nil {
		return "", err
	}

	created, err := t.session.ApplicationCommandCreate(appID, t.guildID, command, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to create command %s: %w", command.Name, err)
	}

	return created.ID, nil
}

// DeleteCommand removes a registered slash command
func (t *Transport) DeleteCommand(ctx context.Context, commandID string) error {
	appID, err := t.appID()
	if err != nil {
		return err
	}

	if err := t.session.ApplicationCommandDelete(appID, t.guildID, commandID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete command %s: %w", commandID, err)
	}
	return nil
}

// MemberRoles returns the role IDs a guild member has
func (t *Transport) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	member, err := t.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", userID, err)
	}
	return member.Roles, nil
}

// AddRole gives a guild member a role
func (t *Transport) AddRole(ctx context.Context, input *platform.RoleInput) error {
	if err := t.session.GuildMemberRoleAdd(input.GuildID, input.UserID, input.RoleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to add role %s to %s: %w", input.RoleID, input.UserID, err)
	}
	return nil
}

// RemoveRole takes a role away from a guild member
func (t *Transport) RemoveRole(ctx context.Context, input *platform.RoleInput) error {
	if err := t.session.GuildMemberRoleRemove(input.GuildID, input.UserID, input.RoleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to remove role %s from %s: %w", input.RoleID, input.UserID, err)
	}
	return nil
}

// RoleColor returns the display color of a role
func (t *Transport) RoleColor(ctx context.Context, guildID, roleID string) (int, error) {
	if role, err := t.session.State.Role(guildID, roleID); err == nil {
		return role.Color, nil
	}

	roles, err := t.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to get roles of guild %s: %w", guildID, err)
	}
	for _, role := range roles {
		if role.ID == roleID {
			return role.Color, nil
		}
	}

	return 0, fmt.Errorf("role %s: %w", roleID, ErrRoleNotFound)
}

func (t *Transport) appID() (string, error) {
	if t.applicationID != "" {
		return t.applicationID, nil
	}
	if t.session.State != nil && t.session.State.User != nil {
		return t.session.State.User.ID, nil
	}
	return "", errors.New("application ID unknown before the gateway is ready")
}

// allowedMentions limits pings to the listed roles and users
func allowedMentions(m platform.Mentions) *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{},
		Roles: m.Roles,
		Users: m.Users,
	}
}
