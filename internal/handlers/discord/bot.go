package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/KirkDiggler/hostbot/internal/services/session"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	registry   *Registry
	dispatcher *Dispatcher
	handlers   []Handler
	sessions   session.Service
	logger     zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the discordgo session, see NewSession
	Session *discordgo.Session

	// Platform is the transport the handlers talk to Discord through
	Platform platform.Platform

	// Handlers are registered when the bot starts
	Handlers []Handler

	// Sessions refreshes the presence once the gateway is ready
	Sessions session.Service

	Logger zerolog.Logger
}

// NewSession creates a discordgo session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}

	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates

	return s, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch {
	case cfg.Session == nil:
		return nil, ErrNilSession
	case cfg.Platform == nil:
		return nil, ErrNilPlatform
	case cfg.Sessions == nil:
		return nil, ErrNilSessions
	}

	registry, err := NewRegistry(&RegistryConfig{
		Platform: cfg.Platform,
		Logger:   cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	dispatcher, err := NewDispatcher(&DispatcherConfig{
		Registry: registry,
		Logger:   cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Bot{
		session:    cfg.Session,
		registry:   registry,
		dispatcher: dispatcher,
		handlers:   cfg.Handlers,
		sessions:   cfg.Sessions,
		logger:     cfg.Logger,
	}, nil
}

// Start opens the gateway connection and registers every handler.
// A handler that fails to register is fatal.
func (b *Bot) Start(ctx context.Context) error {
	b.ctx, b.cancel = context.WithCancel(ctx)

	b.session.AddHandler(b.handleReady)
	b.session.AddHandler(b.handleInteraction)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, h := range b.handlers {
		if err := b.registry.Register(b.ctx, h); err != nil {
			return err
		}
	}

	b.logger.Info().Int("handlers", b.registry.Len()).Msg("bot is now running")
	return nil
}

// Stop deletes the registered commands and closes the gateway connection
func (b *Bot) Stop(ctx context.Context) error {
	if b.cancel != nil {
		b.cancel()
	}

	b.registry.Unregister(ctx)

	return b.session.Close()
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("connected to gateway")

	if err := b.sessions.RefreshPresence(b.ctx); err != nil {
		b.logger.Warn().Err(err).Msg("failed to refresh presence")
	}
}

// handleInteraction runs on discordgo's event goroutine for each interaction
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatcher.Dispatch(b.ctx, i)
}
