package maiden

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/maiden/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	arena   string
	testDay time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.arena = "arena:1"
	s.testDay = time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestPreviousRollerLifecycle() {
	// Lock starts clear
	prev, err := s.repo.GetPreviousRoller(s.ctx, &GetPreviousRollerInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal("", prev)

	// Arm the lock
	err = s.repo.SetPreviousRoller(s.ctx, &SetPreviousRollerInput{
		Arena:    s.arena,
		PlayerID: "player-1",
	})
	s.Require().NoError(err)

	prev, err = s.repo.GetPreviousRoller(s.ctx, &GetPreviousRollerInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal("player-1", prev)

	// Clear the lock
	err = s.repo.ClearPreviousRoller(s.ctx, &ClearPreviousRollerInput{Arena: s.arena})
	s.Require().NoError(err)

	prev, err = s.repo.GetPreviousRoller(s.ctx, &GetPreviousRollerInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal("", prev)
}

func (s *RedisRepositoryTestSuite) TestGetDiceCountSelfHeals() {
	// Absent key initializes to 1
	count, err := s.repo.GetDiceCount(s.ctx, &GetDiceCountInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal(1, count)

	// The healed value is persisted
	stored, err := s.mr.Get(diceCountKey(s.arena))
	s.Require().NoError(err)
	s.Equal("1", stored)

	// Garbage below 1 also heals
	s.Require().NoError(s.mr.Set(diceCountKey(s.arena), "0"))
	count, err = s.repo.GetDiceCount(s.ctx, &GetDiceCountInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *RedisRepositoryTestSuite) TestIncrementDiceCount() {
	_, err := s.repo.GetDiceCount(s.ctx, &GetDiceCountInput{Arena: s.arena})
	s.Require().NoError(err)

	err = s.repo.IncrementDiceCount(s.ctx, &IncrementDiceCountInput{Arena: s.arena})
	s.Require().NoError(err)

	count, err := s.repo.GetDiceCount(s.ctx, &GetDiceCountInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *RedisRepositoryTestSuite) TestGetStreakDefaults() {
	streak, err := s.repo.GetStreak(s.ctx, &GetStreakInput{
		Arena: s.arena,
		Kind:  models.StreakHundo,
	})
	s.Require().NoError(err)
	s.Equal(models.Nobody, streak.Name)
	s.Equal(0, streak.Length)
	s.Equal("", streak.Token)

	// Doubler carries a default token even before one is assigned
	doubler, err := s.repo.GetStreak(s.ctx, &GetStreakInput{
		Arena: s.arena,
		Kind:  models.StreakDoubler,
	})
	s.Require().NoError(err)
	s.Equal(models.Nobody, doubler.Name)
	s.Equal("✌️", doubler.Token)
}

func (s *RedisRepositoryTestSuite) TestAdvanceStreakResetAndIncrement() {
	// First claim resets to 1
	out, err := s.repo.AdvanceStreak(s.ctx, &AdvanceStreakInput{
		Arena:      s.arena,
		Kind:       models.StreakHundo,
		HolderName: "Ann",
	})
	s.Require().NoError(err)
	s.True(out.Reset)
	s.Equal(1, out.Length)

	// Same holder increments
	out, err = s.repo.AdvanceStreak(s.ctx, &AdvanceStreakInput{
		Arena:      s.arena,
		Kind:       models.StreakHundo,
		HolderName: "Ann",
	})
	s.Require().NoError(err)
	s.False(out.Reset)
	s.Equal(2, out.Length)

	// A different holder restarts the streak
	out, err = s.repo.AdvanceStreak(s.ctx, &AdvanceStreakInput{
		Arena:      s.arena,
		Kind:       models.StreakHundo,
		HolderName: "Bob",
	})
	s.Require().NoError(err)
	s.True(out.Reset)
	s.Equal(1, out.Length)

	streak, err := s.repo.GetStreak(s.ctx, &GetStreakInput{
		Arena: s.arena,
		Kind:  models.StreakHundo,
	})
	s.Require().NoError(err)
	s.Equal("Bob", streak.Name)
	s.Equal(1, streak.Length)
}

func (s *RedisRepositoryTestSuite) TestAdvanceStreakDoublerToken() {
	// A new doubler streak stores its token
	out, err := s.repo.AdvanceStreak(s.ctx, &AdvanceStreakInput{
		Arena:      s.arena,
		Kind:       models.StreakDoubler,
		HolderName: "Ann",
		Token:      "🍒",
	})
	s.Require().NoError(err)
	s.True(out.Reset)
	s.Equal("🍒", out.Token)

	// Extending the streak keeps the token even if a new one is offered
	out, err = s.repo.AdvanceStreak(s.ctx, &AdvanceStreakInput{
		Arena:      s.arena,
		Kind:       models.StreakDoubler,
		HolderName: "Ann",
		Token:      "⚔️",
	})
	s.Require().NoError(err)
	s.False(out.Reset)
	s.Equal(2, out.Length)
	s.Equal("🍒", out.Token)
}

func (s *RedisRepositoryTestSuite) TestUpdateDailyRecordTrends() {
	input := &UpdateDailyRecordInput{
		Arena:      s.arena,
		Day:        s.testDay,
		Sum:        50,
		HolderName: "Ann",
		TTL:        30 * 24 * time.Hour,
	}

	// First roll of the day is a new-day high, never "lower"
	out, err := s.repo.UpdateDailyRecord(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(models.TrendNewDay, out.Trend)

	// A higher sum moves the high score
	input.Sum = 80
	input.HolderName = "Bob"
	out, err = s.repo.UpdateDailyRecord(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(models.TrendHigher, out.Trend)

	// A lower sum moves the low score
	input.Sum = 20
	input.HolderName = "Cid"
	out, err = s.repo.UpdateDailyRecord(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(models.TrendLower, out.Trend)

	// A middle sum changes nothing
	input.Sum = 50
	out, err = s.repo.UpdateDailyRecord(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(models.TrendNone, out.Trend)

	record, err := s.repo.GetDailyRecord(s.ctx, &GetDailyRecordInput{
		Arena: s.arena,
		Day:   s.testDay,
	})
	s.Require().NoError(err)
	s.Equal(80, record.HighScore)
	s.Equal("Bob", record.HighName)
	s.Equal(20, record.LowScore)
	s.Equal("Cid", record.LowName)
}

func (s *RedisRepositoryTestSuite) TestUpdateDailyRecordSetsTTL() {
	_, err := s.repo.UpdateDailyRecord(s.ctx, &UpdateDailyRecordInput{
		Arena:      s.arena,
		Day:        s.testDay,
		Sum:        50,
		HolderName: "Ann",
		TTL:        30 * 24 * time.Hour,
	})
	s.Require().NoError(err)

	ttl := s.mr.TTL(dailyHighScoreKey(s.arena, s.testDay))
	s.Equal(30*24*time.Hour, ttl)
	ttl = s.mr.TTL(dailyLowNameKey(s.arena, s.testDay))
	s.Equal(30*24*time.Hour, ttl)
}

func (s *RedisRepositoryTestSuite) TestDailyRecordsAreDistinctPerDay() {
	_, err := s.repo.UpdateDailyRecord(s.ctx, &UpdateDailyRecordInput{
		Arena:      s.arena,
		Day:        s.testDay,
		Sum:        50,
		HolderName: "Ann",
		TTL:        time.Hour,
	})
	s.Require().NoError(err)

	// Yesterday's record is untouched
	record, err := s.repo.GetDailyRecord(s.ctx, &GetDailyRecordInput{
		Arena: s.arena,
		Day:   s.testDay.AddDate(0, 0, -1),
	})
	s.Require().NoError(err)
	s.Equal(0, record.HighScore)
	s.Equal("", record.HighName)
}

func (s *RedisRepositoryTestSuite) TestBumpSpeedCounter() {
	// First bump sees an empty window
	before, err := s.repo.BumpSpeedCounter(s.ctx, &BumpSpeedCounterInput{
		Arena: s.arena,
		TTL:   3 * time.Second,
	})
	s.Require().NoError(err)
	s.Equal(0, before)

	// Second bump sees the first
	before, err = s.repo.BumpSpeedCounter(s.ctx, &BumpSpeedCounterInput{
		Arena: s.arena,
		TTL:   3 * time.Second,
	})
	s.Require().NoError(err)
	s.Equal(1, before)

	s.Equal(3*time.Second, s.mr.TTL(speedKey(s.arena)))

	// Once the window passes, the counter is gone
	s.mr.FastForward(4 * time.Second)

	before, err = s.repo.BumpSpeedCounter(s.ctx, &BumpSpeedCounterInput{
		Arena: s.arena,
		TTL:   3 * time.Second,
	})
	s.Require().NoError(err)
	s.Equal(0, before)
}

func (s *RedisRepositoryTestSuite) TestAllTimeRecord() {
	// Empty record before any roll
	record, err := s.repo.GetAllTimeRecord(s.ctx, &GetAllTimeRecordInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal(0, record.Score)
	s.Equal("", record.Name)

	err = s.repo.UpdateAllTimeRecord(s.ctx, &UpdateAllTimeRecordInput{
		Arena:      s.arena,
		Sum:        120,
		HolderName: "Ann",
	})
	s.Require().NoError(err)

	// A lower sum does not displace the record
	err = s.repo.UpdateAllTimeRecord(s.ctx, &UpdateAllTimeRecordInput{
		Arena:      s.arena,
		Sum:        80,
		HolderName: "Bob",
	})
	s.Require().NoError(err)

	record, err = s.repo.GetAllTimeRecord(s.ctx, &GetAllTimeRecordInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal(120, record.Score)
	s.Equal("Ann", record.Name)

	// A higher sum does
	err = s.repo.UpdateAllTimeRecord(s.ctx, &UpdateAllTimeRecordInput{
		Arena:      s.arena,
		Sum:        150,
		HolderName: "Bob",
	})
	s.Require().NoError(err)

	record, err = s.repo.GetAllTimeRecord(s.ctx, &GetAllTimeRecordInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal(150, record.Score)
	s.Equal("Bob", record.Name)
}

func (s *RedisRepositoryTestSuite) TestRollCounts() {
	counts, err := s.repo.GetRollCounts(s.ctx, &GetRollCountsInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Empty(counts)

	for i := 0; i < 3; i++ {
		err = s.repo.IncrementRollCount(s.ctx, &IncrementRollCountInput{
			Arena:    s.arena,
			PlayerID: "player-1",
		})
		s.Require().NoError(err)
	}
	err = s.repo.IncrementRollCount(s.ctx, &IncrementRollCountInput{
		Arena:    s.arena,
		PlayerID: "player-2",
	})
	s.Require().NoError(err)

	counts, err = s.repo.GetRollCounts(s.ctx, &GetRollCountsInput{Arena: s.arena})
	s.Require().NoError(err)
	s.Equal(map[string]int{
		"player-1": 3,
		"player-2": 1,
	}, counts)
}

func (s *RedisRepositoryTestSuite) TestArenasAreIsolated() {
	err := s.repo.SetPreviousRoller(s.ctx, &SetPreviousRollerInput{
		Arena:    s.arena,
		PlayerID: "player-1",
	})
	s.Require().NoError(err)

	prev, err := s.repo.GetPreviousRoller(s.ctx, &GetPreviousRollerInput{Arena: "arena:2"})
	s.Require().NoError(err)
	s.Equal("", prev)
}
