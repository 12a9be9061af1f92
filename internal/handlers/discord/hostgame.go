package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/KirkDiggler/hostbot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// HostGameCommand handles the /hostgame command
type HostGameCommand struct {
	BaseCommand
	*deps
}

// NewHostGameCommand creates a new hostgame command handler
func NewHostGameCommand(d *deps) *HostGameCommand {
	return &HostGameCommand{
		BaseCommand: BaseCommand{
			CommandName: "hostgame",
			Description: "Hosts a new game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "time",
					Description: "Time to host the session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "description",
					Description: "Sets the session description",
				},
			},
		},
		deps: d,
	}
}

// HandleCommand hosts a session in the invoking channel
func (c *HostGameCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()

	_, err := c.sessions.Host(ctx, &session.HostInput{
		Interaction: i.Interaction,
		ChannelID:   i.ChannelID,
		UserID:      userID(i),
		Time:        stringOption(data, "time"),
		Description: stringOption(data, "description"),
	})

	return respondWithError(ctx, c.platform, i, err)
}

// RSVPAction handles one of the RSVP buttons on the announcement
type RSVPAction struct {
	BaseAction
	*deps
	state models.RSVP
}

// NewRSVPAction creates the handler for an RSVP button
func NewRSVPAction(d *deps, customID string) *RSVPAction {
	state := models.RSVPDeclined
	switch customID {
	case messaging.ButtonYes:
		state = models.RSVPCommitted
	case messaging.ButtonMaybe:
		state = models.RSVPTentative
	}

	return &RSVPAction{
		BaseAction: BaseAction{CustomID: customID},
		deps:       d,
		state:      state,
	}
}

// HandleAction records the response and acknowledges it privately
func (a *RSVPAction) HandleAction(ctx context.Context, i *discordgo.InteractionCreate) error {
	user := userID(i)

	_, err := a.sessions.SetRSVP(ctx, &session.SetRSVPInput{
		UserID: user,
		State:  a.state,
	})
	if err != nil {
		return respondWithError(ctx, a.platform, i, err)
	}

	msg, err := a.messaging.GetRSVPMessage(ctx, &messaging.GetRSVPMessageInput{
		UserID: user,
		State:  a.state,
	})
	if err != nil {
		return fmt.Errorf("failed to build rsvp acknowledgement: %w", err)
	}

	return respondWithEphemeralMessage(ctx, a.platform, i, msg.Content)
}
