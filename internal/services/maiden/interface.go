package maiden

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/maiden/internal/services/maiden Service

import "context"

// Service defines the interface for turn resolution and its read projections
type Service interface {
	// Roll resolves one turn for one player in one arena
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// GetHighScore returns the arena's record board: daily, all-time, and
	// per-player roll counts
	GetHighScore(ctx context.Context, input *GetHighScoreInput) (*GetHighScoreOutput, error)
}
