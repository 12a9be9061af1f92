package discord

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/hostbot/internal/platform"
	"github.com/rs/zerolog"
)

// Kind tells the two handler variants apart
type Kind int

const (
	KindCommand Kind = iota + 1
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindAction:
		return "action"
	default:
		return "unknown"
	}
}

// Handler is either a command handler or an action handler.
// Build one with Command or Action.
type Handler struct {
	kind    Kind
	command CommandHandler
	action  ActionHandler
}

// Command wraps a slash command handler
func Command(h CommandHandler) Handler {
	return Handler{kind: KindCommand, command: h}
}

// Action wraps a message component handler
func Action(h ActionHandler) Handler {
	return Handler{kind: KindAction, action: h}
}

// Kind returns the handler variant
func (h Handler) Kind() Kind {
	return h.kind
}

// Key returns the routing key: the command name or the component custom ID
func (h Handler) Key() string {
	switch h.kind {
	case KindCommand:
		if h.command != nil {
			return h.command.Name()
		}
	case KindAction:
		if h.action != nil {
			return h.action.Name()
		}
	}
	return ""
}

func (h Handler) valid() bool {
	switch h.kind {
	case KindCommand:
		return h.command != nil
	case KindAction:
		return h.action != nil
	}
	return false
}

// RegistryConfig holds configuration for the registry
type RegistryConfig struct {
	Platform platform.Platform
	Logger   zerolog.Logger
}

// Registry maps routing keys to handlers. Commands and actions share one key space.
type Registry struct {
	mu         sync.RWMutex
	handlers   map[string]Handler
	commandIDs map[string]string // Maps command name to command ID

	platform platform.Platform
	logger   zerolog.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	return &Registry{
		handlers:   make(map[string]Handler),
		commandIDs: make(map[string]string),
		platform:   cfg.Platform,
		logger:     cfg.Logger,
	}, nil
}

// Register adds a handler, replacing any handler with the same key.
// A command's definition is published to Discord first; if that fails the
// handler is not added.
func (r *Registry) Register(ctx context.Context, h Handler) error {
	if !h.valid() {
		return ErrInvalidHandler
	}

	key := h.Key()
	if key == "" {
		return ErrEmptyKey
	}

	var commandID string
	if h.kind == KindCommand {
		id, err := r.platform.RegisterCommand(ctx, h.command.Command())
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", key, err)
		}
		commandID = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[key] = h
	if commandID != "" {
		r.commandIDs[key] = commandID
	} else {
		delete(r.commandIDs, key)
	}

	r.logger.Debug().
		Str("key", key).
		Str("kind", h.kind.String()).
		Str("command_id", commandID).
		Msg("registered handler")

	return nil
}

// Lookup returns the handler for a routing key
func (r *Registry) Lookup(key string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[key]
	return h, ok
}

// Len returns the number of registered handlers
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers)
}

// Unregister removes every handler and deletes the published commands.
// Failed deletions are logged and do not stop the others.
func (r *Registry) Unregister(ctx context.Context) {
	r.mu.Lock()
	commandIDs := r.commandIDs
	r.handlers = make(map[string]Handler)
	r.commandIDs = make(map[string]string)
	r.mu.Unlock()

	for name, id := range commandIDs {
		if err := r.platform.DeleteCommand(ctx, id); err != nil {
			r.logger.Warn().Err(err).Str("command", name).Str("command_id", id).Msg("failed to delete command")
			continue
		}
		r.logger.Debug().Str("command", name).Str("command_id", id).Msg("deleted command")
	}
}
