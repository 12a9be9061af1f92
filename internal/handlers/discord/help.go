package discord

import (
	"context"

	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// HelpCommand handles the /help command
type HelpCommand struct {
	BaseCommand
	*deps
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(d *deps) *HelpCommand {
	return &HelpCommand{
		BaseCommand: BaseCommand{
			CommandName: "help",
			Description: "Shows help pages",
		},
		deps: d,
	}
}

// HandleCommand shows the default help page with a menu of the others
func (c *HelpCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	cfg := c.configs.Current()

	input := &platform.RespondInput{
		Interaction: i.Interaction,
		Embeds:      []*discordgo.MessageEmbed{renderEmbed(cfg.DefaultHelp)},
		Ephemeral:   true,
	}
	if len(cfg.Help) > 0 {
		input.Components = renderHelpMenu(cfg.Help)
	}

	return c.platform.Respond(ctx, input)
}

// HelpPageAction handles a selection from the help menu
type HelpPageAction struct {
	BaseAction
	*deps
}

// NewHelpPageAction creates the handler for the help menu
func NewHelpPageAction(d *deps) *HelpPageAction {
	return &HelpPageAction{
		BaseAction: BaseAction{CustomID: messaging.HelpPages},
		deps:       d,
	}
}

// HandleAction swaps the shown page for the selected one
func (a *HelpPageAction) HandleAction(ctx context.Context, i *discordgo.InteractionCreate) error {
	cfg := a.configs.Current()

	idx, err := selectedIndex(i, len(cfg.Help))
	if err != nil {
		return err
	}

	return a.platform.UpdateOrigin(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Embeds:      []*discordgo.MessageEmbed{renderEmbed(cfg.Help[idx].Embed)},
		Components:  renderHelpMenu(cfg.Help),
	})
}

// IPCommand handles the /ip command
type IPCommand struct {
	BaseCommand
	*deps
}

// NewIPCommand creates a new ip command handler
func NewIPCommand(d *deps) *IPCommand {
	return &IPCommand{
		BaseCommand: BaseCommand{
			CommandName: "ip",
			Description: "Shows the IPs currently in use",
		},
		deps: d,
	}
}

// HandleCommand shows the configured server addresses
func (c *IPCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	return respondWithEmbed(ctx, c.platform, i, renderEmbed(c.configs.Current().IP), true)
}
