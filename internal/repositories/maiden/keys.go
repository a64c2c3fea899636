package maiden

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/maiden/internal/models"
)

// All game state lives under "{arena}:maiden:". The key builders below are
// the only place the namespace scheme is spelled out.

func diceCountKey(arena string) string {
	return fmt.Sprintf("%s:maiden:dice_count", arena)
}

func previousRollerKey(arena string) string {
	return fmt.Sprintf("%s:maiden:previous_roller", arena)
}

// streakHolderKey stores the current holder's name for a streak record
func streakHolderKey(arena string, kind models.StreakKind) string {
	return fmt.Sprintf("%s:maiden:%s", arena, kind)
}

// streakLengthKey stores the holder's consecutive-event count
func streakLengthKey(arena string, kind models.StreakKind) string {
	return streakHolderKey(arena, kind) + "_streak"
}

// streakTokenKey stores the emoji assigned to the current doubler streak
func streakTokenKey(arena string, kind models.StreakKind) string {
	return streakHolderKey(arena, kind) + "_token"
}

func highScoreKey(arena string) string {
	return fmt.Sprintf("%s:maiden:high_score", arena)
}

func highNameKey(arena string) string {
	return fmt.Sprintf("%s:maiden:high_name", arena)
}

func rollCountsKey(arena string) string {
	return fmt.Sprintf("%s:maiden:roll_counts", arena)
}

// speedKey is the short-lived counter of back-to-back rolls
func speedKey(arena string) string {
	return fmt.Sprintf("%s:speed", arena)
}

// DayRollKey derives the storage key for one calendar day's records. The
// date carries no time-of-day component, so every roll on the same wall-clock
// day addresses the same key and the pair of "today"/"yesterday" keys forms a
// rolling window with no cleanup job.
func DayRollKey(arena string, day time.Time) string {
	return fmt.Sprintf("%s:maiden:day:%s", arena, day.Format("2006-01-02"))
}

func dailyHighScoreKey(arena string, day time.Time) string {
	return DayRollKey(arena, day) + ":score"
}

func dailyHighNameKey(arena string, day time.Time) string {
	return DayRollKey(arena, day) + ":name"
}

func dailyLowScoreKey(arena string, day time.Time) string {
	return DayRollKey(arena, day) + ":low"
}

func dailyLowNameKey(arena string, day time.Time) string {
	return DayRollKey(arena, day) + ":low_name"
}
