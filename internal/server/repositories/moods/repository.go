package moods

import (
	"context"

	"github.com/pairspace/loveos/internal/models"
)

type Repository interface {
	// List returns moods from both partners, newest first, up to limit rows.
	List(ctx context.Context, limit int) ([]models.MoodEntry, error)

	// LatestByAuthor returns the single most recent mood for the given
	// identity, or common.ErrNotFound when the identity has never posted.
	LatestByAuthor(ctx context.Context, author string) (*models.MoodEntry, error)

	// Create inserts a mood and fills the store-assigned ID and CreatedAt.
	Create(ctx context.Context, m *models.MoodEntry) error
}
