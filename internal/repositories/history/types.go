package history

import (
	"github.com/KirkDiggler/hostbot/internal/models"
)

// RecordEntryInput contains parameters for archiving a session
type RecordEntryInput struct {
	// Entry is the closed session
	Entry *models.HistoryEntry
}

// ListEntriesInput contains parameters for listing archived sessions
type ListEntriesInput struct {
	// Limit caps the number of entries returned. Zero returns all kept entries.
	Limit int
}

// ListEntriesOutput contains the archived sessions
type ListEntriesOutput struct {
	// Entries are ordered newest first
	Entries []*models.HistoryEntry
}
