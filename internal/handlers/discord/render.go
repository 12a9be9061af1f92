package discord

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/KirkDiggler/hostbot/internal/config"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/KirkDiggler/hostbot/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// errorText maps a precondition failure to the message shown to the user
func errorText(err error) (string, bool) {
	switch {
	case errors.Is(err, session.ErrSessionAlreadyRunning):
		return "There is already a session running!", true
	case errors.Is(err, session.ErrNotActivityChannel):
		return "This is not a game channel!", true
	case errors.Is(err, session.ErrNoSession):
		return "No session currently running!", true
	case errors.Is(err, session.ErrNotPermitted):
		return "You don't have permissions to cancel this session!", true
	case errors.Is(err, session.ErrInvalidTime):
		return "Time must be formatted as HH:MM, for example 20:00!", true
	}
	return "", false
}

// renderEmbed converts a configured embed into a Discord embed
func renderEmbed(e config.Embed) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Color,
	}

	if e.Image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: e.Image}
	}

	for _, section := range e.Sections {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  section.Title,
			Value: section.Content,
		})
	}

	return embed
}

// selectRow wraps a select menu in an action row
func selectRow(customID, placeholder string, options []discordgo.SelectMenuOption) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    customID,
					Placeholder: placeholder,
					Options:     options,
				},
			},
		},
	}
}

// renderHelpMenu lists the configured help pages by index
func renderHelpMenu(pages []config.HelpPage) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(pages))
	for idx, page := range pages {
		options = append(options, discordgo.SelectMenuOption{
			Label:       page.DropdownTitle,
			Description: page.DropdownDescription,
			Value:       strconv.Itoa(idx),
		})
	}

	return selectRow(messaging.HelpPages, "Pick a help page", options)
}

// renderRolesMenu lists the activity roles and whether the member has each
func renderRolesMenu(activities []config.Activity, memberRoles []string) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(activities))
	for idx, activity := range activities {
		state := "not "
		if slices.Contains(memberRoles, activity.RoleID) {
			state = ""
		}

		options = append(options, discordgo.SelectMenuOption{
			Label:       activity.Name,
			Description: fmt.Sprintf("This role is %sset", state),
			Value:       strconv.Itoa(idx),
		})
	}

	return selectRow(messaging.RolesMenu, "Pick a role", options)
}

// colorOption is a color role with its resolved display color
type colorOption struct {
	index int
	role  config.ColorRole
	color int
}

// renderColorMenu lists the color roles with their hex colors
func renderColorMenu(colors []colorOption) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(colors))
	for _, c := range colors {
		options = append(options, discordgo.SelectMenuOption{
			Label:       c.role.Name,
			Description: fmt.Sprintf("#%06x", c.color),
			Value:       strconv.Itoa(c.index),
		})
	}

	return selectRow(messaging.ColorRoleMenu, "Pick a color", options)
}

// selectedIndex reads the single menu value as an index into a list of n items
func selectedIndex(i *discordgo.InteractionCreate, n int) (int, error) {
	data, ok := i.Data.(discordgo.MessageComponentInteractionData)
	if !ok || len(data.Values) != 1 {
		return 0, ErrMalformedPayload
	}

	idx, err := strconv.Atoi(data.Values[0])
	if err != nil || idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: menu value %q", ErrMalformedPayload, data.Values[0])
	}

	return idx, nil
}
