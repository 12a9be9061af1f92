package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/KirkDiggler/hostbot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// EndHostCommand handles the /endhost command
type EndHostCommand struct {
	BaseCommand
	*deps
}

// NewEndHostCommand creates a new endhost command handler
func NewEndHostCommand(d *deps) *EndHostCommand {
	return &EndHostCommand{
		BaseCommand: BaseCommand{
			CommandName: "endhost",
			Description: "Ends/Cancels the current session",
		},
		deps: d,
	}
}

// HandleCommand asks the host or an admin to confirm ending the session
func (c *EndHostCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	out, err := c.sessions.RequestEnd(ctx, &session.RequestEndInput{UserID: userID(i)})
	if err != nil {
		return respondWithError(ctx, c.platform, i, err)
	}

	msg, err := c.messaging.GetEndConfirmMessage(ctx, &messaging.GetEndConfirmMessageInput{Verb: out.Verb})
	if err != nil {
		return fmt.Errorf("failed to build end confirmation: %w", err)
	}

	return c.platform.Respond(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Content:     msg.Content,
		Components:  msg.Components,
		Ephemeral:   true,
	})
}

// EndHostConfirmAction handles the Yes button of the end confirmation
type EndHostConfirmAction struct {
	BaseAction
	*deps
}

// NewEndHostConfirmAction creates the handler for the Yes button
func NewEndHostConfirmAction(d *deps) *EndHostConfirmAction {
	return &EndHostConfirmAction{
		BaseAction: BaseAction{CustomID: messaging.EndHostYes},
		deps:       d,
	}
}

// HandleAction ends the session and replaces the prompt with the result
func (a *EndHostConfirmAction) HandleAction(ctx context.Context, i *discordgo.InteractionCreate) error {
	out, err := a.sessions.End(ctx, &session.EndInput{UserID: userID(i)})
	if err != nil {
		return respondWithError(ctx, a.platform, i, err)
	}

	return a.updatePrompt(ctx, i, out.Verb, true)
}

// EndHostAbortAction handles the No button of the end confirmation
type EndHostAbortAction struct {
	BaseAction
	*deps
}

// NewEndHostAbortAction creates the handler for the No button
func NewEndHostAbortAction(d *deps) *EndHostAbortAction {
	return &EndHostAbortAction{
		BaseAction: BaseAction{CustomID: messaging.EndHostNo},
		deps:       d,
	}
}

// HandleAction leaves the session running and replaces the prompt
func (a *EndHostAbortAction) HandleAction(ctx context.Context, i *discordgo.InteractionCreate) error {
	status, err := a.sessions.GetStatus(ctx, &session.GetStatusInput{})
	if err != nil {
		return respondWithError(ctx, a.platform, i, err)
	}

	verb := messaging.EndVerbCancel
	if status.Started {
		verb = messaging.EndVerbEnd
	}

	return a.updatePrompt(ctx, i, verb, false)
}

// updatePrompt replaces the confirmation prompt with the outcome and removes its buttons
func (d *deps) updatePrompt(ctx context.Context, i *discordgo.InteractionCreate, verb messaging.EndVerb, confirmed bool) error {
	msg, err := d.messaging.GetEndResultMessage(ctx, &messaging.GetEndResultMessageInput{
		Verb:      verb,
		Confirmed: confirmed,
	})
	if err != nil {
		return fmt.Errorf("failed to build end result: %w", err)
	}

	return d.platform.UpdateOrigin(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Content:     msg.Content,
		Components:  []discordgo.MessageComponent{},
	})
}
