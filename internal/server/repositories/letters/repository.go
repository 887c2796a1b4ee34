package letters

import (
	"context"

	"github.com/pairspace/loveos/internal/models"
)

type Repository interface {
	List(ctx context.Context, limit int) ([]models.LetterEntry, error)
	Create(ctx context.Context, l *models.LetterEntry) error
}
