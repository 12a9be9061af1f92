package discord

import (
	"context"

	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for slash command handlers
type CommandHandler interface {
	// Name returns the command name
	Name() string

	// Command returns the application command definition
	Command() *discordgo.ApplicationCommand

	// HandleCommand processes a slash command interaction
	HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error
}

// ActionHandler defines the interface for message component handlers
type ActionHandler interface {
	// Name returns the custom ID of the component
	Name() string

	// HandleAction processes a component interaction
	HandleAction(ctx context.Context, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	CommandName string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// Name returns the command name
func (c *BaseCommand) Name() string {
	return c.CommandName
}

// Command returns the application command definition
func (c *BaseCommand) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Description,
		Options:     c.Options,
	}
}

// BaseAction provides the custom ID of an action handler
type BaseAction struct {
	CustomID string
}

// Name returns the custom ID
func (a *BaseAction) Name() string {
	return a.CustomID
}

// respondWithMessage sends a text response to an interaction
func respondWithMessage(ctx context.Context, p platform.Platform, i *discordgo.InteractionCreate, message string) error {
	return p.Respond(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Content:     message,
	})
}

// respondWithEphemeralMessage sends a text response only the invoking user can see
func respondWithEphemeralMessage(ctx context.Context, p platform.Platform, i *discordgo.InteractionCreate, message string) error {
	return p.Respond(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Content:     message,
		Ephemeral:   true,
	})
}

// respondWithEmbed sends an embed response to an interaction
func respondWithEmbed(ctx context.Context, p platform.Platform, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) error {
	return p.Respond(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Embeds:      []*discordgo.MessageEmbed{embed},
		Ephemeral:   ephemeral,
	})
}

// respondWithError answers a precondition failure privately with its user
// text and reports it as handled. Any other error is returned unchanged.
func respondWithError(ctx context.Context, p platform.Platform, i *discordgo.InteractionCreate, err error) error {
	if err == nil {
		return nil
	}

	text, ok := errorText(err)
	if !ok {
		return err
	}

	return respondWithEphemeralMessage(ctx, p, i, text)
}

// userID returns the invoking user for guild and direct interactions
func userID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// stringOption returns the value of a string option, empty if absent
func stringOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}
