package discord

import (
	"context"
	"fmt"
	"slices"

	"github.com/KirkDiggler/hostbot/internal/config"
	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// RolesCommand handles the /roles command
type RolesCommand struct {
	BaseCommand
	*deps
}

// NewRolesCommand creates a new roles command handler
func NewRolesCommand(d *deps) *RolesCommand {
	return &RolesCommand{
		BaseCommand: BaseCommand{
			CommandName: "roles",
			Description: "Adds/removes roles",
		},
		deps: d,
	}
}

// HandleCommand shows the activity roles the invoker can toggle
func (c *RolesCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	activities := c.configs.Current().Activities
	if len(activities) == 0 {
		return respondWithEphemeralMessage(ctx, c.platform, i, "There are no roles to pick from!")
	}

	roles, err := c.platform.MemberRoles(ctx, i.GuildID, userID(i))
	if err != nil {
		return err
	}

	return c.platform.Respond(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Content:     "Select which role to add/remove!",
		Components:  renderRolesMenu(activities, roles),
		Ephemeral:   true,
	})
}

// RolesMenuAction handles a selection from the roles menu
type RolesMenuAction struct {
	BaseAction
	*deps
}

// NewRolesMenuAction creates the handler for the roles menu
func NewRolesMenuAction(d *deps) *RolesMenuAction {
	return &RolesMenuAction{
		BaseAction: BaseAction{CustomID: messaging.RolesMenu},
		deps:       d,
	}
}

// HandleAction adds the selected role if the member lacks it and removes it otherwise
func (a *RolesMenuAction) HandleAction(ctx context.Context, i *discordgo.InteractionCreate) error {
	activities := a.configs.Current().Activities

	idx, err := selectedIndex(i, len(activities))
	if err != nil {
		return err
	}

	user := userID(i)
	roleID := activities[idx].RoleID

	roles, err := a.platform.MemberRoles(ctx, i.GuildID, user)
	if err != nil {
		return err
	}

	input := &platform.RoleInput{GuildID: i.GuildID, UserID: user, RoleID: roleID}
	action := ""
	if pos := slices.Index(roles, roleID); pos >= 0 {
		if err := a.platform.RemoveRole(ctx, input); err != nil {
			return err
		}
		roles = slices.Delete(roles, pos, pos+1)
		action = "un"
	} else {
		if err := a.platform.AddRole(ctx, input); err != nil {
			return err
		}
		roles = append(roles, roleID)
	}

	return a.platform.UpdateOrigin(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Content:     fmt.Sprintf("Role <@&%s> has been %sset!", roleID, action),
		Components:  renderRolesMenu(activities, roles),
	})
}

// ColorsCommand handles the /colors command
type ColorsCommand struct {
	BaseCommand
	*deps
}

// NewColorsCommand creates a new colors command handler
func NewColorsCommand(d *deps) *ColorsCommand {
	return &ColorsCommand{
		BaseCommand: BaseCommand{
			CommandName: "colors",
			Description: "Picks your color role",
		},
		deps: d,
	}
}

// HandleCommand shows the color roles and the one the invoker has
func (c *ColorsCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	colors := c.configs.Current().Colors

	options := c.colorOptions(ctx, i.GuildID, colors)
	if len(options) == 0 {
		return respondWithEphemeralMessage(ctx, c.platform, i, "There are no colors to pick from!")
	}

	roles, err := c.platform.MemberRoles(ctx, i.GuildID, userID(i))
	if err != nil {
		return err
	}

	content := "No color role currently set, select to add one!"
	for _, color := range colors {
		if slices.Contains(roles, color.RoleID) {
			content = fmt.Sprintf("You currently have the <@&%s> color role", color.RoleID)
			break
		}
	}

	return c.platform.Respond(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Content:     content,
		Components:  renderColorMenu(options),
		Ephemeral:   true,
	})
}

// colorOptions resolves the display color of each color role. Roles that
// cannot be resolved are left out of the menu.
func (d *deps) colorOptions(ctx context.Context, guildID string, colors []config.ColorRole) []colorOption {
	options := make([]colorOption, 0, len(colors))
	for idx, role := range colors {
		color, err := d.platform.RoleColor(ctx, guildID, role.RoleID)
		if err != nil {
			d.logger.Warn().Err(err).Str("role_id", role.RoleID).Msg("failed to resolve color role")
			continue
		}
		options = append(options, colorOption{index: idx, role: role, color: color})
	}
	return options
}

// ColorMenuAction handles a selection from the colors menu
type ColorMenuAction struct {
	BaseAction
	*deps
}

// NewColorMenuAction creates the handler for the colors menu
func NewColorMenuAction(d *deps) *ColorMenuAction {
	return &ColorMenuAction{
		BaseAction: BaseAction{CustomID: messaging.ColorRoleMenu},
		deps:       d,
	}
}

// HandleAction gives the member the selected color role and removes any other
func (a *ColorMenuAction) HandleAction(ctx context.Context, i *discordgo.InteractionCreate) error {
	colors := a.configs.Current().Colors

	idx, err := selectedIndex(i, len(colors))
	if err != nil {
		return err
	}

	user := userID(i)
	selected := colors[idx].RoleID

	roles, err := a.platform.MemberRoles(ctx, i.GuildID, user)
	if err != nil {
		return err
	}

	for _, color := range colors {
		if color.RoleID == selected || !slices.Contains(roles, color.RoleID) {
			continue
		}
		err := a.platform.RemoveRole(ctx, &platform.RoleInput{GuildID: i.GuildID, UserID: user, RoleID: color.RoleID})
		if err != nil {
			return err
		}
	}

	if !slices.Contains(roles, selected) {
		err := a.platform.AddRole(ctx, &platform.RoleInput{GuildID: i.GuildID, UserID: user, RoleID: selected})
		if err != nil {
			return err
		}
	}

	return a.platform.UpdateOrigin(ctx, &platform.RespondInput{
		Interaction: i.Interaction,
		Content:     fmt.Sprintf("You currently have the <@&%s> color role", selected),
		Components:  renderColorMenu(a.colorOptions(ctx, i.GuildID, colors)),
	})
}

// AllRolesCommand handles the /allroles command
type AllRolesCommand struct {
	BaseCommand
	*deps
}

// NewAllRolesCommand creates a new allroles command handler
func NewAllRolesCommand(d *deps) *AllRolesCommand {
	return &AllRolesCommand{
		BaseCommand: BaseCommand{
			CommandName: "allroles",
			Description: "Gives verified role + all game roles to a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to give all the roles to",
					Required:    true,
				},
			},
		},
		deps: d,
	}
}

// HandleCommand grants every activity role and the default user role to a member
func (c *AllRolesCommand) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) error {
	cfg := c.configs.Current()
	if !cfg.IsAdmin(userID(i)) {
		return respondWithEphemeralMessage(ctx, c.platform, i, "You do not have permissions to use this command!")
	}

	target := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" && opt.Type == discordgo.ApplicationCommandOptionUser {
			target = opt.UserValue(nil).ID
		}
	}
	if target == "" {
		return fmt.Errorf("%w: missing user option", ErrMalformedPayload)
	}

	held, err := c.platform.MemberRoles(ctx, i.GuildID, target)
	if err != nil {
		return err
	}

	wanted := make([]string, 0, len(cfg.Activities)+1)
	for _, activity := range cfg.Activities {
		wanted = append(wanted, activity.RoleID)
	}
	if cfg.DefaultUserRole != "" {
		wanted = append(wanted, cfg.DefaultUserRole)
	}

	for _, roleID := range wanted {
		if slices.Contains(held, roleID) {
			continue
		}
		err := c.platform.AddRole(ctx, &platform.RoleInput{GuildID: i.GuildID, UserID: target, RoleID: roleID})
		if err != nil {
			return err
		}
		held = append(held, roleID)
	}

	c.logger.Info().Str("admin_id", userID(i)).Str("user_id", target).Msg("granted all roles")

	return respondWithEphemeralMessage(ctx, c.platform, i, "Roles added successfully!")
}
