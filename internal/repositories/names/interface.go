package names

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/maiden/internal/repositories/names Repository

import "context"

// Repository defines the interface for the per-arena display-name directory
type Repository interface {
	// GetName returns a player's display name, or "" when unknown
	GetName(ctx context.Context, input *GetNameInput) (string, error)

	// SetName records a player's display name
	SetName(ctx context.Context, input *SetNameInput) error

	// GetAllNames returns the full playerId -> display name mapping
	GetAllNames(ctx context.Context, input *GetAllNamesInput) (map[string]string, error)
}
