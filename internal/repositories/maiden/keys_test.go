package maiden

import (
	"testing"
	"time"

	"github.com/KirkDiggler/maiden/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestKeyScheme(t *testing.T) {
	arena := "arena:1"
	day := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "arena:1:maiden:dice_count", diceCountKey(arena))
	assert.Equal(t, "arena:1:maiden:previous_roller", previousRollerKey(arena))
	assert.Equal(t, "arena:1:maiden:hundo", streakHolderKey(arena, models.StreakHundo))
	assert.Equal(t, "arena:1:maiden:hundo_streak", streakLengthKey(arena, models.StreakHundo))
	assert.Equal(t, "arena:1:maiden:pooper", streakHolderKey(arena, models.StreakPooper))
	assert.Equal(t, "arena:1:maiden:pooper_streak", streakLengthKey(arena, models.StreakPooper))
	assert.Equal(t, "arena:1:maiden:doubler", streakHolderKey(arena, models.StreakDoubler))
	assert.Equal(t, "arena:1:maiden:doubler_streak", streakLengthKey(arena, models.StreakDoubler))
	assert.Equal(t, "arena:1:maiden:doubler_token", streakTokenKey(arena, models.StreakDoubler))
	assert.Equal(t, "arena:1:maiden:high_score", highScoreKey(arena))
	assert.Equal(t, "arena:1:maiden:high_name", highNameKey(arena))
	assert.Equal(t, "arena:1:maiden:roll_counts", rollCountsKey(arena))
	assert.Equal(t, "arena:1:speed", speedKey(arena))
	assert.Equal(t, "arena:1:maiden:day:2025-03-07", DayRollKey(arena, day))
	assert.Equal(t, "arena:1:maiden:day:2025-03-07:score", dailyHighScoreKey(arena, day))
	assert.Equal(t, "arena:1:maiden:day:2025-03-07:name", dailyHighNameKey(arena, day))
	assert.Equal(t, "arena:1:maiden:day:2025-03-07:low", dailyLowScoreKey(arena, day))
	assert.Equal(t, "arena:1:maiden:day:2025-03-07:low_name", dailyLowNameKey(arena, day))
}

func TestDayRollKeyZeroPadsDates(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "a:maiden:day:2025-01-02", DayRollKey("a", day))
}

func TestDayRollKeyYesterdayRollsOverMonthAndYear(t *testing.T) {
	// First of a month
	day := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "a:maiden:day:2025-02-28", DayRollKey("a", day.AddDate(0, 0, -1)))

	// New Year's Day
	day = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "a:maiden:day:2024-12-31", DayRollKey("a", day.AddDate(0, 0, -1)))

	// Leap day
	day = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "a:maiden:day:2024-02-29", DayRollKey("a", day.AddDate(0, 0, -1)))
}
