package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hostbot/internal/repositories/history Repository

import (
	"context"
)

// Repository defines the interface for the finished session archive
type Repository interface {
	// RecordEntry archives a closed session, dropping the oldest entries past the limit
	RecordEntry(ctx context.Context, input *RecordEntryInput) error

	// ListEntries returns archived sessions, newest first
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)
}
