// Package store provides the client for the remote event log store: CRUD over
// HTTP plus a websocket change-notification subscription.
package store

import (
	"context"

	"github.com/pairspace/loveos/internal/models"
)

// UnsubscribeFunc closes one change-notification subscription. Safe to call
// more than once.
type UnsubscribeFunc func()

type Store interface {
	Close() error

	Login(ctx context.Context, space, passcode string) (*models.Space, error)
	Profile(ctx context.Context) (*models.Space, error)
	Anniversary(ctx context.Context) (*models.Anniversary, error)

	ListMoods(ctx context.Context, limit int) ([]models.MoodEntry, error)
	LatestMood(ctx context.Context, author string) (*models.MoodEntry, error)
	ShareMood(ctx context.Context, m *models.MoodEntry) (*models.MoodEntry, error)

	ListPhotos(ctx context.Context, limit int) ([]models.PhotoEntry, error)
	AddPhoto(ctx context.Context, p *models.PhotoEntry) (*models.PhotoEntry, error)

	ListLetters(ctx context.Context, limit int) ([]models.LetterEntry, error)
	SendLetter(ctx context.Context, l *models.LetterEntry) (*models.LetterEntry, error)

	TodaysQuestion(ctx context.Context) (*models.QuestionEntry, error)
	AnswersFor(ctx context.Context, questionID string) ([]models.AnswerEntry, error)
	SubmitAnswer(ctx context.Context, a *models.AnswerEntry) (*models.AnswerEntry, error)
	UpdateAnswer(ctx context.Context, id, text string) error

	Upload(ctx context.Context, name string, data []byte) (string, error)

	Subscribe(ctx context.Context, onEvent func(models.ChangeEvent)) (UnsubscribeFunc, error)
}
