package maiden

import (
	"time"

	"github.com/KirkDiggler/maiden/internal/common/clock"
	"github.com/KirkDiggler/maiden/internal/common/uuid"
	"github.com/KirkDiggler/maiden/internal/dice"
	"github.com/KirkDiggler/maiden/internal/models"
	maidenRepo "github.com/KirkDiggler/maiden/internal/repositories/maiden"
	namesRepo "github.com/KirkDiggler/maiden/internal/repositories/names"
	rolllogRepo "github.com/KirkDiggler/maiden/internal/repositories/rolllog"
)

// RollKind classifies a completed turn
type RollKind string

const (
	// RollKindNormal is any turn where at least one die missed the maximum
	RollKindNormal RollKind = "normal"

	// RollKindMax is a turn where every die showed the maximum face. It
	// escalates the dice count and clears the anti-consecutive lock.
	RollKindMax RollKind = "max_roll"
)

const (
	// UnknownName stands in for players whose display name could not be
	// resolved. Tolerated, not an error.
	UnknownName = "???"

	// DefaultDiceSides is the face count of every die
	DefaultDiceSides = 100

	// DefaultSpeedWindow is the cooldown within which back-to-back rolls
	// count as speedy
	DefaultSpeedWindow = 3 * time.Second

	// DefaultDailyRecordTTL keeps daily records around for a month
	DefaultDailyRecordTTL = 30 * 24 * time.Hour

	// DefaultFastEmoji marks rapid rolling
	DefaultFastEmoji = "💨"
)

// Config holds configuration for the maiden service
type Config struct {
	// Repository dependencies
	GameRepo    maidenRepo.Repository
	NamesRepo   namesRepo.Repository
	RollLogRepo rolllogRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Number of sides on each die. Defaults to DefaultDiceSides.
	DiceSides int

	// SpeedWindow is the TTL of the rapid-roll counter. Defaults to
	// DefaultSpeedWindow.
	SpeedWindow time.Duration

	// DailyRecordTTL is applied to daily record fields on every write.
	// Defaults to DefaultDailyRecordTTL.
	DailyRecordTTL time.Duration

	// FastEmoji is the symbol repeated in the speed marker. Defaults to
	// DefaultFastEmoji.
	FastEmoji string
}

type RollInput struct {
	Arena    string
	PlayerID string

	// DisplayName is resolved by the caller; empty means unresolved
	DisplayName string
}

type RollOutput struct {
	// TurnID uniquely identifies this turn
	TurnID string

	// Kind is RollKindMax when every die showed the maximum face
	Kind RollKind

	// Dice holds the individual face values
	Dice []int

	// Sum of all dice
	Sum int

	// DecoratedName is the roller's name with record-holder badges applied
	DecoratedName string

	// TrendMarker annotates a daily-record move; empty on max rolls
	TrendMarker string

	// SpeedMarker annotates rapid back-to-back rolling; empty on max rolls
	SpeedMarker string

	// FlavorText accompanies certain two-die rolls; empty on max rolls
	FlavorText string
}

type GetHighScoreInput struct {
	Arena string
}

type GetHighScoreOutput struct {
	AllTime   *models.AllTimeRecord
	Today     *models.DailyRecord
	Yesterday *models.DailyRecord

	// CurrentPooper is the reigning pooper's name, or Nobody
	CurrentPooper string

	// Leaderboard holds per-player roll counts, ascending by count
	Leaderboard []*models.LeaderboardEntry

	// TotalRolls across all players
	TotalRolls int
}
