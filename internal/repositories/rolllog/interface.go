package rolllog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/maiden/internal/repositories/rolllog Repository

import (
	"context"

	"github.com/KirkDiggler/maiden/internal/models"
)

// Repository is the write-only sink for completed rolls. The engine never
// reads it back.
type Repository interface {
	// AppendRoll records one completed turn
	AppendRoll(ctx context.Context, input *AppendRollInput) error
}

type AppendRollInput struct {
	Record *models.RollRecord
}
