package history

// RepositoryError represents history repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when a nil config is passed to NewRedis
	ErrNilConfig RepositoryError = "config cannot be nil"

	// ErrNilRedisClient is returned when the config has no redis client
	ErrNilRedisClient RepositoryError = "redis client cannot be nil"

	// ErrNilEntry is returned when RecordEntry is called without an entry
	ErrNilEntry RepositoryError = "entry cannot be nil"

	// ErrNilInput is returned when a nil input is passed
	ErrNilInput RepositoryError = "input cannot be nil"
)
