package photos

import (
	"context"

	"github.com/pairspace/loveos/internal/models"
)

type Repository interface {
	List(ctx context.Context, limit int) ([]models.PhotoEntry, error)
	Create(ctx context.Context, p *models.PhotoEntry) error
}
