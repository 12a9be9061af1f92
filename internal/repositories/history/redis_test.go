package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/hostbot/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Limit:       3,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 19, 20, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) entry(n int) *models.HistoryEntry {
	return &models.HistoryEntry{
		SessionID:    fmt.Sprintf("session-%d", n),
		ActivityName: "Chess",
		HostID:       "host",
		ClosedBy:     "host",
		StartTime:    s.testNow.Add(time.Duration(n) * time.Hour),
		ClosedAt:     s.testNow.Add(time.Duration(n)*time.Hour + 30*time.Minute),
		Outcome:      models.SessionOutcomeEnded,
		Committed:    n,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewRedis(&Config{})
	s.ErrorIs(err, ErrNilRedisClient)
}

func (s *RedisRepositoryTestSuite) TestRecordAndList() {
	ctx := context.Background()
	s.Require().NoError(s.repo.RecordEntry(ctx, &RecordEntryInput{Entry: s.entry(1)}))
	s.Require().NoError(s.repo.RecordEntry(ctx, &RecordEntryInput{Entry: s.entry(2)}))

	out, err := s.repo.ListEntries(ctx, &ListEntriesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)

	s.Equal("session-2", out.Entries[0].SessionID)
	s.Equal("session-1", out.Entries[1].SessionID)
	s.True(s.entry(1).StartTime.Equal(out.Entries[1].StartTime))
	s.Equal(models.SessionOutcomeEnded, out.Entries[1].Outcome)
	s.Equal(1, out.Entries[1].Committed)
}

func (s *RedisRepositoryTestSuite) TestRecordTrimsToLimit() {
	ctx := context.Background()
	for n := 1; n <= 5; n++ {
		s.Require().NoError(s.repo.RecordEntry(ctx, &RecordEntryInput{Entry: s.entry(n)}))
	}

	out, err := s.repo.ListEntries(ctx, &ListEntriesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Equal("session-5", out.Entries[0].SessionID)
	s.Equal("session-3", out.Entries[2].SessionID)
}

func (s *RedisRepositoryTestSuite) TestListRespectsInputLimit() {
	ctx := context.Background()
	for n := 1; n <= 3; n++ {
		s.Require().NoError(s.repo.RecordEntry(ctx, &RecordEntryInput{Entry: s.entry(n)}))
	}

	out, err := s.repo.ListEntries(ctx, &ListEntriesInput{Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Equal("session-3", out.Entries[0].SessionID)
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.ListEntries(context.Background(), &ListEntriesInput{})
	s.Require().NoError(err)
	s.Empty(out.Entries)
}

func (s *RedisRepositoryTestSuite) TestRecordRequiresEntry() {
	err := s.repo.RecordEntry(context.Background(), &RecordEntryInput{})
	s.ErrorIs(err, ErrNilEntry)

	_, err = s.repo.ListEntries(context.Background(), nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *RedisRepositoryTestSuite) TestCorruptEntry() {
	s.Require().NoError(s.client.LPush(context.Background(), historyKey, "not json").Err())

	_, err := s.repo.ListEntries(context.Background(), &ListEntriesInput{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestRedisDown() {
	s.mr.Close()

	err := s.repo.RecordEntry(context.Background(), &RecordEntryInput{Entry: s.entry(1)})
	s.Error(err)
}
