package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
	"github.com/pairspace/loveos/internal/server/repositories/repomanager"
)

// DefaultListLimit bounds every collection fetch. There is no pagination;
// the fixed limit is part of the contract.
const DefaultListLimit = 200

// ContentService exposes the event-log operations for moods, photos, letters,
// questions, and answers.
type ContentService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewContentService(db *sql.DB, repos repomanager.RepositoryManager) *ContentService {
	return &ContentService{db: db, repos: repos}
}

func (s *ContentService) ListMoods(ctx context.Context, limit int) ([]models.MoodEntry, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	return s.repos.Moods(s.db).List(ctx, limit)
}

func (s *ContentService) LatestMood(ctx context.Context, author string) (*models.MoodEntry, error) {
	return s.repos.Moods(s.db).LatestByAuthor(ctx, author)
}

func (s *ContentService) ShareMood(ctx context.Context, m *models.MoodEntry) error {
	if err := s.repos.Moods(s.db).Create(ctx, m); err != nil {
		return fmt.Errorf("error creating mood: %w", err)
	}
	return nil
}

func (s *ContentService) ListPhotos(ctx context.Context, limit int) ([]models.PhotoEntry, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	return s.repos.Photos(s.db).List(ctx, limit)
}

func (s *ContentService) AddPhoto(ctx context.Context, p *models.PhotoEntry) error {
	if err := s.repos.Photos(s.db).Create(ctx, p); err != nil {
		return fmt.Errorf("error creating photo: %w", err)
	}
	return nil
}

func (s *ContentService) ListLetters(ctx context.Context, limit int) ([]models.LetterEntry, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	return s.repos.Letters(s.db).List(ctx, limit)
}

func (s *ContentService) SendLetter(ctx context.Context, l *models.LetterEntry) error {
	if err := s.repos.Letters(s.db).Create(ctx, l); err != nil {
		return fmt.Errorf("error creating letter: %w", err)
	}
	return nil
}

// TodaysQuestion returns the question scheduled for today, falling back to
// the first available question when today has none. A completely empty
// question table yields common.ErrNotFound.
func (s *ContentService) TodaysQuestion(ctx context.Context, now time.Time) (*models.QuestionEntry, error) {
	repo := s.repos.Questions(s.db)

	q, err := repo.ByDate(ctx, now)
	if err == nil {
		return q, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	return repo.Any(ctx)
}

func (s *ContentService) AnswersFor(ctx context.Context, questionID string) ([]models.AnswerEntry, error) {
	return s.repos.Answers(s.db).ByQuestion(ctx, questionID)
}

func (s *ContentService) SubmitAnswer(ctx context.Context, a *models.AnswerEntry) error {
	if err := s.repos.Answers(s.db).Create(ctx, a); err != nil {
		return fmt.Errorf("error creating answer: %w", err)
	}
	return nil
}

func (s *ContentService) UpdateAnswer(ctx context.Context, id, author, text string) error {
	return s.repos.Answers(s.db).UpdateText(ctx, id, author, text)
}
