package questions

import (
	"context"
	"time"

	"github.com/pairspace/loveos/internal/models"
)

type Repository interface {
	// ByDate returns the question scheduled for the given day, or
	// common.ErrNotFound when no question matches.
	ByDate(ctx context.Context, day time.Time) (*models.QuestionEntry, error)

	// Any returns an arbitrary question (deterministically the first by date),
	// used as a fallback when no question is scheduled for today.
	Any(ctx context.Context) (*models.QuestionEntry, error)
}
