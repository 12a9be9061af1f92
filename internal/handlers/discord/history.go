package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/KirkDiggler/hostbot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

const maxHistoryLimit = 25

// HistoryCommand handles the /history command
type HistoryCommand struct {
	BaseCommand
	*deps
}

// NewHistoryCommand creates a new history command handler
func NewHistoryCommand(d *deps) *HistoryCommand {
	minLimit := float64(1)

	return &HistoryCommand{
		BaseCommand: BaseCommand{
			CommandName: "history",
			Description: "Shows recently finished sessions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "How many sessions to show",
					MinValue:    &minLimit,
					MaxValue:    maxHistoryLimit,
				},
			},
		},
		deps: d,
	}
}

// HandleCommand lists finished sessions, newest first
func (c *HistoryCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	limit := 0
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "limit" && opt.Type == discordgo.ApplicationCommandOptionInteger {
			limit = int(opt.IntValue())
		}
	}
	if limit <= 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	out, err := c.sessions.GetHistory(ctx, &session.GetHistoryInput{Limit: limit})
	if err != nil {
		return err
	}

	msg, err := c.messaging.GetHistoryEmbed(ctx, &messaging.GetHistoryEmbedInput{Entries: out.Entries})
	if err != nil {
		return fmt.Errorf("failed to build history embed: %w", err)
	}

	return respondWithEmbed(ctx, c.platform, i, msg.Embed, true)
}
