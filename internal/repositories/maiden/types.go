package maiden

import (
	"time"

	"github.com/KirkDiggler/maiden/internal/models"
)

type GetPreviousRollerInput struct {
	Arena string
}

type SetPreviousRollerInput struct {
	Arena    string
	PlayerID string
}

type ClearPreviousRollerInput struct {
	Arena string
}

type GetDiceCountInput struct {
	Arena string
}

type IncrementDiceCountInput struct {
	Arena string
}

type GetStreakInput struct {
	Arena string
	Kind  models.StreakKind
}

type AdvanceStreakInput struct {
	Arena string
	Kind  models.StreakKind

	// HolderName is the player claiming or extending the streak
	HolderName string

	// Token is stored only when the holder changes (doubler streaks)
	Token string
}

type AdvanceStreakOutput struct {
	// Length of the streak after the operation
	Length int

	// Token currently assigned to the streak
	Token string

	// Reset is true when the holder changed and the streak restarted at 1
	Reset bool
}

type GetDailyRecordInput struct {
	Arena string

	// Day selects the calendar date; time-of-day is ignored
	Day time.Time
}

type UpdateDailyRecordInput struct {
	Arena string
	Day   time.Time

	Sum        int
	HolderName string

	// TTL applied to every record field written
	TTL time.Duration
}

type UpdateDailyRecordOutput struct {
	Trend models.Trend
}

type BumpSpeedCounterInput struct {
	Arena string

	// TTL is the sliding cooldown window
	TTL time.Duration
}

type GetAllTimeRecordInput struct {
	Arena string
}

type UpdateAllTimeRecordInput struct {
	Arena      string
	Sum        int
	HolderName string
}

type IncrementRollCountInput struct {
	Arena    string
	PlayerID string
}

type GetRollCountsInput struct {
	Arena string
}
