package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hostbot/internal/services/session Service

import (
	"context"

	"github.com/KirkDiggler/hostbot/internal/config"
)

// Service defines the session lifecycle operations
type Service interface {
	// Host creates a session for the channel's activity and announces it
	Host(ctx context.Context, input *HostInput) (*HostOutput, error)

	// SetRSVP records a participant's response to the current session
	SetRSVP(ctx context.Context, input *SetRSVPInput) (*SetRSVPOutput, error)

	// GetStatus returns a snapshot of the current session
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// RequestEnd checks that a user may end the current session
	RequestEnd(ctx context.Context, input *RequestEndInput) (*RequestEndOutput, error)

	// End tears down the current session
	End(ctx context.Context, input *EndInput) (*EndOutput, error)

	// RefreshPresence updates the bot presence to match the current session
	RefreshPresence(ctx context.Context) error

	// GetHistory lists finished sessions, newest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}

// ConfigProvider returns the active configuration snapshot
type ConfigProvider interface {
	Current() *config.File
}
