package discord

import (
	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	"github.com/KirkDiggler/hostbot/internal/services/session"
	"github.com/rs/zerolog"
)

// HandlersConfig holds the dependencies shared by all command and action handlers
type HandlersConfig struct {
	Platform  platform.Platform
	Sessions  session.Service
	Messaging messaging.Service
	Configs   session.ConfigProvider
	Logger    zerolog.Logger
}

type deps struct {
	platform  platform.Platform
	sessions  session.Service
	messaging messaging.Service
	configs   session.ConfigProvider
	logger    zerolog.Logger
}

// NewHandlers builds every handler the bot serves
func NewHandlers(cfg *HandlersConfig) ([]Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch {
	case cfg.Platform == nil:
		return nil, ErrNilPlatform
	case cfg.Sessions == nil:
		return nil, ErrNilSessions
	case cfg.Messaging == nil:
		return nil, ErrNilMessaging
	case cfg.Configs == nil:
		return nil, ErrNilConfigProvider
	}

	d := &deps{
		platform:  cfg.Platform,
		sessions:  cfg.Sessions,
		messaging: cfg.Messaging,
		configs:   cfg.Configs,
		logger:    cfg.Logger,
	}

	return []Handler{
		Command(NewHostGameCommand(d)),
		Action(NewRSVPAction(d, messaging.ButtonYes)),
		Action(NewRSVPAction(d, messaging.ButtonMaybe)),
		Action(NewRSVPAction(d, messaging.ButtonNo)),
		Command(NewEndHostCommand(d)),
		Action(NewEndHostConfirmAction(d)),
		Action(NewEndHostAbortAction(d)),
		Command(NewStatusCommand(d)),
		Command(NewHelpCommand(d)),
		Action(NewHelpPageAction(d)),
		Command(NewIPCommand(d)),
		Command(NewRolesCommand(d)),
		Action(NewRolesMenuAction(d)),
		Command(NewColorsCommand(d)),
		Action(NewColorMenuAction(d)),
		Command(NewAllRolesCommand(d)),
		Command(NewPingCommand(d)),
		Command(NewHistoryCommand(d)),
	}, nil
}
