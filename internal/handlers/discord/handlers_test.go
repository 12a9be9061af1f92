package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/hostbot/internal/config"
	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/KirkDiggler/hostbot/internal/platform"
	platformMocks "github.com/KirkDiggler/hostbot/internal/platform/mocks"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/KirkDiggler/hostbot/internal/services/session"
	sessionMocks "github.com/KirkDiggler/hostbot/internal/services/session/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const handlersTestConfig = `
default_time: "19:30"
timezone: UTC
admins: ["admin"]
default_user_role: "300"
activities:
  - name: Chess
    channel_id: "100"
    role_id: "200"
  - name: Go
    channel_id: "101"
    role_id: "201"
colors:
  - name: Red
    role_id: "400"
  - name: Blue
    role_id: "401"
default_help:
  title: Help
  description: Start here
help:
  - dropdown_title: Hosting
    dropdown_description: How to host
    embed:
      title: Hosting
      description: Use /hostgame
ip:
  title: Servers
  sections:
    - title: Minecraft
      content: mc.example.com
`

type staticConfig struct {
	file *config.File
}

func (c *staticConfig) Current() *config.File {
	return c.file
}

type HandlersTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPlatform *platformMocks.MockPlatform
	mockSessions *sessionMocks.MockService
	deps         *deps
	ctx          context.Context
}

func (s *HandlersTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlatform = platformMocks.NewMockPlatform(s.mockCtrl)
	s.mockSessions = sessionMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	file, err := config.Parse([]byte(handlersTestConfig))
	s.Require().NoError(err)

	msgs, err := messaging.NewService(&messaging.ServiceConfig{})
	s.Require().NoError(err)

	s.deps = &deps{
		platform:  s.mockPlatform,
		sessions:  s.mockSessions,
		messaging: msgs,
		configs:   &staticConfig{file: file},
		logger:    zerolog.Nop(),
	}
}

func (s *HandlersTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectPrivateReply expects one ephemeral text response
func (s *HandlersTestSuite) expectPrivateReply(content string) {
	s.mockPlatform.EXPECT().
		Respond(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Equal(content, input.Content)
			s.True(input.Ephemeral)
			return nil
		})
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func (s *HandlersTestSuite) TestNewHandlersHaveUniqueKeys() {
	handlers, err := NewHandlers(&HandlersConfig{
		Platform:  s.deps.platform,
		Sessions:  s.deps.sessions,
		Messaging: s.deps.messaging,
		Configs:   s.deps.configs,
	})
	s.Require().NoError(err)

	keys := make(map[string]Kind)
	for _, h := range handlers {
		_, dup := keys[h.Key()]
		s.False(dup, "duplicate key %s", h.Key())
		keys[h.Key()] = h.Kind()
	}

	s.Equal(KindCommand, keys["hostgame"])
	s.Equal(KindAction, keys[messaging.ButtonYes])
	s.Equal(KindAction, keys[messaging.EndHostYes])
	s.Equal(KindCommand, keys["history"])
	s.Len(keys, 18)
}

func (s *HandlersTestSuite) TestNewHandlersRequiresDependencies() {
	_, err := NewHandlers(&HandlersConfig{Platform: s.deps.platform})
	s.ErrorIs(err, ErrNilSessions)
}

func (s *HandlersTestSuite) TestHostGamePassesOptions() {
	i := commandInteraction("hostgame", stringOpt("time", "21:00"), stringOpt("description", "Blitz"))

	s.mockSessions.EXPECT().
		Host(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *session.HostInput) (*session.HostOutput, error) {
			s.Same(i.Interaction, input.Interaction)
			s.Equal("100", input.ChannelID)
			s.Equal("host", input.UserID)
			s.Equal("21:00", input.Time)
			s.Equal("Blitz", input.Description)
			return &session.HostOutput{}, nil
		})

	s.NoError(NewHostGameCommand(s.deps).HandleCommand(s.ctx, i))
}

func (s *HandlersTestSuite) TestHostGameRejectionsArePrivate() {
	testCases := []struct {
		name    string
		err     error
		content string
	}{
		{"already running", session.ErrSessionAlreadyRunning, "There is already a session running!"},
		{"not a game channel", session.ErrNotActivityChannel, "This is not a game channel!"},
		{"bad time", session.ErrInvalidTime, "Time must be formatted as HH:MM, for example 20:00!"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockSessions.EXPECT().Host(s.ctx, gomock.Any()).Return(nil, tc.err)
			s.expectPrivateReply(tc.content)

			s.NoError(NewHostGameCommand(s.deps).HandleCommand(s.ctx, commandInteraction("hostgame")))
		})
	}
}

func (s *HandlersTestSuite) TestHostGameTransportErrorIsReturned() {
	s.mockSessions.EXPECT().Host(s.ctx, gomock.Any()).Return(nil, errors.New("failed to announce session"))

	err := NewHostGameCommand(s.deps).HandleCommand(s.ctx, commandInteraction("hostgame"))
	s.EqualError(err, "failed to announce session")
}

func (s *HandlersTestSuite) TestRSVPButtonsRecordAndAcknowledge() {
	testCases := []struct {
		customID string
		state    models.RSVP
		content  string
	}{
		{messaging.ButtonYes, models.RSVPCommitted, "Thanks for saying yes, <@host>"},
		{messaging.ButtonMaybe, models.RSVPTentative, "Thanks for saying maybe, <@host>"},
		{messaging.ButtonNo, models.RSVPDeclined, "Thanks for saying no, <@host>"},
	}

	for _, tc := range testCases {
		s.Run(tc.customID, func() {
			s.mockSessions.EXPECT().
				SetRSVP(s.ctx, &session.SetRSVPInput{UserID: "host", State: tc.state}).
				Return(&session.SetRSVPOutput{}, nil)
			s.expectPrivateReply(tc.content)

			s.NoError(NewRSVPAction(s.deps, tc.customID).HandleAction(s.ctx, componentInteraction(tc.customID)))
		})
	}
}

func (s *HandlersTestSuite) TestRSVPWithoutSession() {
	s.mockSessions.EXPECT().SetRSVP(s.ctx, gomock.Any()).Return(nil, session.ErrNoSession)
	s.expectPrivateReply("No session currently running!")

	s.NoError(NewRSVPAction(s.deps, messaging.ButtonYes).HandleAction(s.ctx, componentInteraction(messaging.ButtonYes)))
}

func (s *HandlersTestSuite) TestEndHostAsksForConfirmation() {
	s.mockSessions.EXPECT().
		RequestEnd(s.ctx, &session.RequestEndInput{UserID: "host"}).
		Return(&session.RequestEndOutput{Verb: messaging.EndVerbCancel}, nil)

	s.mockPlatform.EXPECT().
		Respond(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Equal("Are you sure you want to cancel the Session?", input.Content)
			s.True(input.Ephemeral)
			s.Len(input.Components, 1)
			return nil
		})

	s.NoError(NewEndHostCommand(s.deps).HandleCommand(s.ctx, commandInteraction("endhost")))
}

func (s *HandlersTestSuite) TestEndHostNotPermitted() {
	s.mockSessions.EXPECT().RequestEnd(s.ctx, gomock.Any()).Return(nil, session.ErrNotPermitted)
	s.expectPrivateReply("You don't have permissions to cancel this session!")

	s.NoError(NewEndHostCommand(s.deps).HandleCommand(s.ctx, commandInteraction("endhost")))
}

func (s *HandlersTestSuite) TestEndHostConfirmEndsSession() {
	s.mockSessions.EXPECT().
		End(s.ctx, &session.EndInput{UserID: "host"}).
		Return(&session.EndOutput{Verb: messaging.EndVerbCancel}, nil)

	s.mockPlatform.EXPECT().
		UpdateOrigin(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Equal("Session *has* been cancelled!", input.Content)
			s.NotNil(input.Components)
			s.Empty(input.Components)
			return nil
		})

	s.NoError(NewEndHostConfirmAction(s.deps).HandleAction(s.ctx, componentInteraction(messaging.EndHostYes)))
}

func (s *HandlersTestSuite) TestEndHostConfirmAfterSessionIsGone() {
	s.mockSessions.EXPECT().End(s.ctx, gomock.Any()).Return(nil, session.ErrNoSession)
	s.expectPrivateReply("No session currently running!")

	s.NoError(NewEndHostConfirmAction(s.deps).HandleAction(s.ctx, componentInteraction(messaging.EndHostYes)))
}

func (s *HandlersTestSuite) TestEndHostAbortKeepsSession() {
	s.mockSessions.EXPECT().
		GetStatus(s.ctx, gomock.Any()).
		Return(&session.GetStatusOutput{Session: &models.Session{}, Started: true}, nil)

	s.mockPlatform.EXPECT().
		UpdateOrigin(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Equal("Session has *not* been ended!", input.Content)
			return nil
		})

	s.NoError(NewEndHostAbortAction(s.deps).HandleAction(s.ctx, componentInteraction(messaging.EndHostNo)))
}

func (s *HandlersTestSuite) TestStatusShowsEmbed() {
	sess := models.NewSession("session-1", models.Activity{Name: "Chess"}, time.Date(2025, 4, 19, 20, 0, 0, 0, time.UTC), "host")
	sess.Participants["a"] = models.RSVPCommitted

	s.mockSessions.EXPECT().GetStatus(s.ctx, gomock.Any()).Return(&session.GetStatusOutput{Session: sess}, nil)
	s.mockPlatform.EXPECT().
		Respond(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Require().Len(input.Embeds, 1)
			s.Equal("Status", input.Embeds[0].Title)
			s.Equal("<@a>", input.Embeds[0].Fields[0].Value)
			s.False(input.Ephemeral)
			return nil
		})

	s.NoError(NewStatusCommand(s.deps).HandleCommand(s.ctx, commandInteraction("status")))
}

func (s *HandlersTestSuite) TestStatusWithoutSession() {
	s.mockSessions.EXPECT().GetStatus(s.ctx, gomock.Any()).Return(nil, session.ErrNoSession)
	s.expectPrivateReply("No session currently running!")

	s.NoError(NewStatusCommand(s.deps).HandleCommand(s.ctx, commandInteraction("status")))
}

func (s *HandlersTestSuite) TestPing() {
	s.mockSessions.EXPECT().GetStatus(s.ctx, gomock.Any()).Return(nil, session.ErrNoSession)
	s.expectPrivateReply("Pong! No session running.")

	s.NoError(NewPingCommand(s.deps).HandleCommand(s.ctx, commandInteraction("ping")))
}

func (s *HandlersTestSuite) TestHelpShowsDefaultPageAndMenu() {
	s.mockPlatform.EXPECT().
		Respond(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Require().Len(input.Embeds, 1)
			s.Equal("Help", input.Embeds[0].Title)
			s.Len(input.Components, 1)
			s.True(input.Ephemeral)
			return nil
		})

	s.NoError(NewHelpCommand(s.deps).HandleCommand(s.ctx, commandInteraction("help")))
}

func (s *HandlersTestSuite) TestHelpPageSwitchesEmbed() {
	s.mockPlatform.EXPECT().
		UpdateOrigin(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Require().Len(input.Embeds, 1)
			s.Equal("Hosting", input.Embeds[0].Title)
			return nil
		})

	s.NoError(NewHelpPageAction(s.deps).HandleAction(s.ctx, componentInteraction(messaging.HelpPages, "0")))
}

func (s *HandlersTestSuite) TestForgedMenuValuesAreRejected() {
	for _, value := range []string{"7", "-1", "abc"} {
		err := NewHelpPageAction(s.deps).HandleAction(s.ctx, componentInteraction(messaging.HelpPages, value))
		s.ErrorIs(err, ErrMalformedPayload, value)
	}

	err := NewRolesMenuAction(s.deps).HandleAction(s.ctx, componentInteraction(messaging.RolesMenu))
	s.ErrorIs(err, ErrMalformedPayload)
}

func (s *HandlersTestSuite) TestIPShowsConfiguredEmbed() {
	s.mockPlatform.EXPECT().
		Respond(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Require().Len(input.Embeds, 1)
			s.Equal("Servers", input.Embeds[0].Title)
			s.Equal("mc.example.com", input.Embeds[0].Fields[0].Value)
			s.True(input.Ephemeral)
			return nil
		})

	s.NoError(NewIPCommand(s.deps).HandleCommand(s.ctx, commandInteraction("ip")))
}

func (s *HandlersTestSuite) TestRolesMenuTogglesRole() {
	s.Run("removes a held role", func() {
		s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild", "host").Return([]string{"200"}, nil)
		s.mockPlatform.EXPECT().
			RemoveRole(s.ctx, &platform.RoleInput{GuildID: "guild", UserID: "host", RoleID: "200"}).
			Return(nil)
		s.mockPlatform.EXPECT().
			UpdateOrigin(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
				s.Equal("Role <@&200> has been unset!", input.Content)
				return nil
			})

		s.NoError(NewRolesMenuAction(s.deps).HandleAction(s.ctx, componentInteraction(messaging.RolesMenu, "0")))
	})

	s.Run("adds a missing role", func() {
		s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild", "host").Return([]string{"200"}, nil)
		s.mockPlatform.EXPECT().
			AddRole(s.ctx, &platform.RoleInput{GuildID: "guild", UserID: "host", RoleID: "201"}).
			Return(nil)
		s.mockPlatform.EXPECT().
			UpdateOrigin(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
				s.Equal("Role <@&201> has been set!", input.Content)
				return nil
			})

		s.NoError(NewRolesMenuAction(s.deps).HandleAction(s.ctx, componentInteraction(messaging.RolesMenu, "1")))
	})
}

func (s *HandlersTestSuite) TestRolesMenuShowsState() {
	s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild", "host").Return([]string{"201"}, nil)
	s.mockPlatform.EXPECT().
		Respond(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			row := input.Components[0].(discordgo.ActionsRow)
			menu := row.Components[0].(discordgo.SelectMenu)
			s.Equal(messaging.RolesMenu, menu.CustomID)
			s.Equal("This role is not set", menu.Options[0].Description)
			s.Equal("This role is set", menu.Options[1].Description)
			return nil
		})

	s.NoError(NewRolesCommand(s.deps).HandleCommand(s.ctx, commandInteraction("roles")))
}

func (s *HandlersTestSuite) TestColorMenuIsExclusive() {
	s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild", "host").Return([]string{"400"}, nil)
	s.mockPlatform.EXPECT().
		RemoveRole(s.ctx, &platform.RoleInput{GuildID: "guild", UserID: "host", RoleID: "400"}).
		Return(nil)
	s.mockPlatform.EXPECT().
		AddRole(s.ctx, &platform.RoleInput{GuildID: "guild", UserID: "host", RoleID: "401"}).
		Return(nil)
	s.mockPlatform.EXPECT().RoleColor(s.ctx, "guild", "400").Return(0xff0000, nil)
	s.mockPlatform.EXPECT().RoleColor(s.ctx, "guild", "401").Return(0x0000ff, nil)
	s.mockPlatform.EXPECT().
		UpdateOrigin(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Equal("You currently have the <@&401> color role", input.Content)
			menu := input.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
			s.Equal("#0000ff", menu.Options[1].Description)
			return nil
		})

	s.NoError(NewColorMenuAction(s.deps).HandleAction(s.ctx, componentInteraction(messaging.ColorRoleMenu, "1")))
}

func (s *HandlersTestSuite) TestColorsSkipsUnresolvedRoles() {
	s.mockPlatform.EXPECT().RoleColor(s.ctx, "guild", "400").Return(0, ErrRoleNotFound)
	s.mockPlatform.EXPECT().RoleColor(s.ctx, "guild", "401").Return(0x0000ff, nil)
	s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild", "host").Return(nil, nil)
	s.mockPlatform.EXPECT().
		Respond(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Equal("No color role currently set, select to add one!", input.Content)
			menu := input.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
			s.Require().Len(menu.Options, 1)
			s.Equal("1", menu.Options[0].Value)
			return nil
		})

	s.NoError(NewColorsCommand(s.deps).HandleCommand(s.ctx, commandInteraction("colors")))
}

func (s *HandlersTestSuite) TestAllRolesRequiresAdmin() {
	s.expectPrivateReply("You do not have permissions to use this command!")

	s.NoError(NewAllRolesCommand(s.deps).HandleCommand(s.ctx, commandInteraction("allroles")))
}

func (s *HandlersTestSuite) TestAllRolesGrantsMissingRoles() {
	i := commandInteraction("allroles", &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "user",
		Type:  discordgo.ApplicationCommandOptionUser,
		Value: "target",
	})
	i.Member.User.ID = "admin"

	s.mockPlatform.EXPECT().MemberRoles(s.ctx, "guild", "target").Return([]string{"200"}, nil)
	gomock.InOrder(
		s.mockPlatform.EXPECT().
			AddRole(s.ctx, &platform.RoleInput{GuildID: "guild", UserID: "target", RoleID: "201"}).
			Return(nil),
		s.mockPlatform.EXPECT().
			AddRole(s.ctx, &platform.RoleInput{GuildID: "guild", UserID: "target", RoleID: "300"}).
			Return(nil),
	)
	s.expectPrivateReply("Roles added successfully!")

	s.NoError(NewAllRolesCommand(s.deps).HandleCommand(s.ctx, i))
}

func (s *HandlersTestSuite) TestHistoryClampsLimit() {
	i := commandInteraction("history", &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "limit",
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(100),
	})

	s.mockSessions.EXPECT().
		GetHistory(s.ctx, &session.GetHistoryInput{Limit: maxHistoryLimit}).
		Return(&session.GetHistoryOutput{}, nil)
	s.mockPlatform.EXPECT().
		Respond(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *platform.RespondInput) error {
			s.Require().Len(input.Embeds, 1)
			s.Equal("No finished sessions yet", input.Embeds[0].Description)
			return nil
		})

	s.NoError(NewHistoryCommand(s.deps).HandleCommand(s.ctx, i))
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
