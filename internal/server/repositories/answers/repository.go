package answers

import (
	"context"

	"github.com/pairspace/loveos/internal/models"
)

type Repository interface {
	// ByQuestion returns all answers (both identities) for one question.
	ByQuestion(ctx context.Context, questionID string) ([]models.AnswerEntry, error)

	// Create inserts an answer and fills the store-assigned ID and CreatedAt.
	Create(ctx context.Context, a *models.AnswerEntry) error

	// UpdateText replaces the text of an existing answer owned by author.
	// Returns common.ErrNotFound when no matching row exists.
	UpdateText(ctx context.Context, id, author, text string) error
}
