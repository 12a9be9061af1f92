package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/KirkDiggler/hostbot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// StatusCommand handles the /status command
type StatusCommand struct {
	BaseCommand
	*deps
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(d *deps) *StatusCommand {
	return &StatusCommand{
		BaseCommand: BaseCommand{
			CommandName: "status",
			Description: "Status of the current game session",
		},
		deps: d,
	}
}

// HandleCommand shows who said yes, maybe and no
func (c *StatusCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	status, err := c.sessions.GetStatus(ctx, &session.GetStatusInput{})
	if err != nil {
		return respondWithError(ctx, c.platform, i, err)
	}

	out, err := c.messaging.GetStatusEmbed(ctx, &messaging.GetStatusEmbedInput{Session: status.Session})
	if err != nil {
		return fmt.Errorf("failed to build status embed: %w", err)
	}

	return respondWithEmbed(ctx, c.platform, i, out.Embed, false)
}

// PingCommand handles the /ping command
type PingCommand struct {
	BaseCommand
	*deps
}

// NewPingCommand creates a new ping command handler
func NewPingCommand(d *deps) *PingCommand {
	return &PingCommand{
		BaseCommand: BaseCommand{
			CommandName: "ping",
			Description: "A ping/pong command",
		},
		deps: d,
	}
}

// HandleCommand replies with whether a session is running
func (c *PingCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	content := "Pong! No session running."

	status, err := c.sessions.GetStatus(ctx, &session.GetStatusInput{})
	switch {
	case err == nil:
		state := "planned"
		if status.Started {
			state = "running"
		}
		content = fmt.Sprintf("Pong! %s session %s with %d yes.",
			status.Session.Activity.Name, state, status.Session.Count(models.RSVPCommitted))
	case !errors.Is(err, session.ErrNoSession):
		return err
	}

	return respondWithEphemeralMessage(ctx, c.platform, i, content)
}
