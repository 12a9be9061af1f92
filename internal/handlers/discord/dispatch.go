package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// DispatcherConfig holds configuration for the dispatcher
type DispatcherConfig struct {
	Registry *Registry
	Logger   zerolog.Logger
}

// Dispatcher routes interactions to their registered handler
type Dispatcher struct {
	registry *Registry
	logger   zerolog.Logger
}

// NewDispatcher creates a new dispatcher
func NewDispatcher(cfg *DispatcherConfig) (*Dispatcher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	return &Dispatcher{
		registry: cfg.Registry,
		logger:   cfg.Logger,
	}, nil
}

// Dispatch runs the handler registered for the interaction and returns when
// it is done. Unknown keys, handler errors and panics are logged, never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, i *discordgo.InteractionCreate) {
	logger := d.logger

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("handler panicked")
		}
	}()

	if i == nil || i.Interaction == nil {
		logger.Warn().Msg("dropping empty interaction")
		return
	}

	key, kind, ok := routingKey(i)
	if !ok {
		logger.Warn().Str("type", i.Type.String()).Msg("dropping unsupported interaction")
		return
	}

	logger = logger.With().
		Str("key", key).
		Str("interaction_id", i.ID).
		Str("user_id", userID(i)).
		Logger()

	h, found := d.registry.Lookup(key)
	if !found {
		logger.Warn().Msg("no handler registered")
		return
	}

	if h.kind != kind {
		logger.Warn().Str("kind", h.kind.String()).Msg("handler does not accept this interaction type")
		return
	}

	var err error
	switch h.kind {
	case KindCommand:
		err = h.command.HandleCommand(ctx, i)
	case KindAction:
		err = h.action.HandleAction(ctx, i)
	}
	if err != nil {
		logger.Warn().Err(err).Msg("handler failed")
	}
}

// routingKey returns the command name of a slash command or the custom ID of a component
func routingKey(i *discordgo.InteractionCreate) (string, Kind, bool) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data, ok := i.Data.(discordgo.ApplicationCommandInteractionData)
		if !ok {
			return "", 0, false
		}
		return data.Name, KindCommand, true
	case discordgo.InteractionMessageComponent:
		data, ok := i.Data.(discordgo.MessageComponentInteractionData)
		if !ok {
			return "", 0, false
		}
		return data.CustomID, KindAction, true
	}
	return "", 0, false
}
