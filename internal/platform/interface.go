// Package platform describes the chat platform capabilities the bot core
// depends on. The discordgo implementation lives with the Discord handlers.
package platform

//go:generate mockgen -package=mocks -destination=mocks/mock_platform.go github.com/KirkDiggler/hostbot/internal/platform Platform

import (
	"context"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Platform is the set of chat platform calls made by handlers and checkpoints
type Platform interface {
	// SendMessage posts a message to a channel
	SendMessage(ctx context.Context, input *SendMessageInput) (*models.MessageRef, error)

	// EditMessage replaces the content and/or components of a posted message
	EditMessage(ctx context.Context, input *EditMessageInput) error

	// Pin pins a message in its channel
	Pin(ctx context.Context, ref models.MessageRef) error

	// Unpin removes a pinned message from its channel's pins
	Unpin(ctx context.Context, ref models.MessageRef) error

	// Respond answers an interaction with a new message
	Respond(ctx context.Context, input *RespondInput) error

	// UpdateOrigin answers a component interaction by editing the message the component is on
	UpdateOrigin(ctx context.Context, input *RespondInput) error

	// ResponseMessage returns the message created by an earlier Respond call
	ResponseMessage(ctx context.Context, interaction *discordgo.Interaction) (*models.MessageRef, error)

	// VoiceChannelMembers returns the IDs of users currently connected to a voice channel
	VoiceChannelMembers(ctx context.Context, channelID string) ([]string, error)

	// SetPresence updates the bot's visible activity and status
	SetPresence(ctx context.Context, input *SetPresenceInput) error

	// RegisterCommand publishes a slash command definition and returns its ID
	RegisterCommand(ctx context.Context, command *discordgo.ApplicationCommand) (string, error)

	// DeleteCommand removes a previously registered slash command
	DeleteCommand(ctx context.Context, commandID string) error

	// MemberRoles returns the role IDs a guild member has
	MemberRoles(ctx context.Context, guildID, userID string) ([]string, error)

	// AddRole gives a guild member a role
	AddRole(ctx context.Context, input *RoleInput) error

	// RemoveRole takes a role away from a guild member
	RemoveRole(ctx context.Context, input *RoleInput) error

	// RoleColor returns the display colour of a role
	RoleColor(ctx context.Context, guildID, roleID string) (int, error)
}
