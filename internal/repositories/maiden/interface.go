package maiden

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/maiden/internal/repositories/maiden Repository

import (
	"context"

	"github.com/KirkDiggler/maiden/internal/models"
)

// Repository defines the interface for the per-arena game state
type Repository interface {
	// GetPreviousRoller returns the player id holding the anti-consecutive
	// lock, or "" when the lock is clear
	GetPreviousRoller(ctx context.Context, input *GetPreviousRollerInput) (string, error)

	// SetPreviousRoller arms the anti-consecutive lock
	SetPreviousRoller(ctx context.Context, input *SetPreviousRollerInput) error

	// ClearPreviousRoller clears the anti-consecutive lock
	ClearPreviousRoller(ctx context.Context, input *ClearPreviousRollerInput) error

	// GetDiceCount returns the arena's dice count, initializing it to 1
	// when absent or invalid
	GetDiceCount(ctx context.Context, input *GetDiceCountInput) (int, error)

	// IncrementDiceCount escalates the arena's dice count by one
	IncrementDiceCount(ctx context.Context, input *IncrementDiceCountInput) error

	// GetStreak returns the current holder of a streak record
	GetStreak(ctx context.Context, input *GetStreakInput) (*models.StreakHolder, error)

	// AdvanceStreak atomically resets the streak to the given holder with
	// length 1, or increments it when the holder is unchanged
	AdvanceStreak(ctx context.Context, input *AdvanceStreakInput) (*AdvanceStreakOutput, error)

	// GetDailyRecord returns one calendar day's high/low records
	GetDailyRecord(ctx context.Context, input *GetDailyRecordInput) (*models.DailyRecord, error)

	// UpdateDailyRecord atomically applies a roll to the day's high/low
	// records and reports the resulting trend
	UpdateDailyRecord(ctx context.Context, input *UpdateDailyRecordInput) (*UpdateDailyRecordOutput, error)

	// BumpSpeedCounter increments the self-expiring rapid-roll counter and
	// returns its pre-increment value
	BumpSpeedCounter(ctx context.Context, input *BumpSpeedCounterInput) (int, error)

	// GetAllTimeRecord returns the arena's all-time high score
	GetAllTimeRecord(ctx context.Context, input *GetAllTimeRecordInput) (*models.AllTimeRecord, error)

	// UpdateAllTimeRecord atomically raises the all-time high score when beaten
	UpdateAllTimeRecord(ctx context.Context, input *UpdateAllTimeRecordInput) error

	// IncrementRollCount bumps a player's cumulative roll count
	IncrementRollCount(ctx context.Context, input *IncrementRollCountInput) error

	// GetRollCounts returns every player's cumulative roll count
	GetRollCounts(ctx context.Context, input *GetRollCountsInput) (map[string]int, error)
}
