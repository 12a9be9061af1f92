package discord

import (
	"context"
	"errors"
	"testing"

	platformMocks "github.com/KirkDiggler/hostbot/internal/platform/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistryTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPlatform *platformMocks.MockPlatform
	registry     *Registry
	ctx          context.Context
}

func (s *RegistryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlatform = platformMocks.NewMockPlatform(s.mockCtrl)
	s.ctx = context.Background()

	registry, err := NewRegistry(&RegistryConfig{Platform: s.mockPlatform, Logger: zerolog.Nop()})
	s.Require().NoError(err)
	s.registry = registry
}

func (s *RegistryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RegistryTestSuite) TestNewRegistryRequiresPlatform() {
	_, err := NewRegistry(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRegistry(&RegistryConfig{})
	s.ErrorIs(err, ErrNilPlatform)
}

func (s *RegistryTestSuite) TestRegisterCommandPublishesDefinition() {
	cmd := &fakeCommand{BaseCommand: BaseCommand{CommandName: "hostgame", Description: "Hosts a new game"}}

	s.mockPlatform.EXPECT().
		RegisterCommand(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, def *discordgo.ApplicationCommand) (string, error) {
			s.Equal("hostgame", def.Name)
			s.Equal("Hosts a new game", def.Description)
			return "cmd-1", nil
		})

	s.Require().NoError(s.registry.Register(s.ctx, Command(cmd)))

	h, ok := s.registry.Lookup("hostgame")
	s.Require().True(ok)
	s.Equal(KindCommand, h.Kind())
}

func (s *RegistryTestSuite) TestFailedCommandRegistrationIsNotInserted() {
	cmd := &fakeCommand{BaseCommand: BaseCommand{CommandName: "hostgame"}}
	s.mockPlatform.EXPECT().RegisterCommand(s.ctx, gomock.Any()).Return("", errors.New("401 unauthorized"))

	err := s.registry.Register(s.ctx, Command(cmd))
	s.Require().Error(err)
	s.Contains(err.Error(), "hostgame")

	_, ok := s.registry.Lookup("hostgame")
	s.False(ok)
}

func (s *RegistryTestSuite) TestRegisterActionSkipsPlatform() {
	action := &fakeAction{BaseAction: BaseAction{CustomID: "button-yes"}}

	s.Require().NoError(s.registry.Register(s.ctx, Action(action)))

	h, ok := s.registry.Lookup("button-yes")
	s.Require().True(ok)
	s.Equal(KindAction, h.Kind())
}

func (s *RegistryTestSuite) TestReRegistrationOverwrites() {
	first := &fakeAction{BaseAction: BaseAction{CustomID: "button-yes"}}
	second := &fakeAction{BaseAction: BaseAction{CustomID: "button-yes"}}

	s.Require().NoError(s.registry.Register(s.ctx, Action(first)))
	s.Require().NoError(s.registry.Register(s.ctx, Action(second)))

	h, ok := s.registry.Lookup("button-yes")
	s.Require().True(ok)
	s.Same(second, h.action)
	s.Equal(1, s.registry.Len())
}

func (s *RegistryTestSuite) TestRejectsInvalidHandlers() {
	s.ErrorIs(s.registry.Register(s.ctx, Handler{}), ErrInvalidHandler)
	s.ErrorIs(s.registry.Register(s.ctx, Action(&fakeAction{})), ErrEmptyKey)
}

func (s *RegistryTestSuite) TestUnregisterDeletesCommands() {
	cmd := &fakeCommand{BaseCommand: BaseCommand{CommandName: "status"}}
	other := &fakeCommand{BaseCommand: BaseCommand{CommandName: "ping"}}
	action := &fakeAction{BaseAction: BaseAction{CustomID: "button-yes"}}

	gomock.InOrder(
		s.mockPlatform.EXPECT().RegisterCommand(s.ctx, gomock.Any()).Return("cmd-status", nil),
		s.mockPlatform.EXPECT().RegisterCommand(s.ctx, gomock.Any()).Return("cmd-ping", nil),
	)
	s.Require().NoError(s.registry.Register(s.ctx, Command(cmd)))
	s.Require().NoError(s.registry.Register(s.ctx, Command(other)))
	s.Require().NoError(s.registry.Register(s.ctx, Action(action)))

	s.mockPlatform.EXPECT().DeleteCommand(s.ctx, "cmd-status").Return(errors.New("gone"))
	s.mockPlatform.EXPECT().DeleteCommand(s.ctx, "cmd-ping").Return(nil)

	s.registry.Unregister(s.ctx)

	s.Zero(s.registry.Len())
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}
