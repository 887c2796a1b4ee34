// Package answers provides the PostgreSQL-backed repository for daily
// question answers. Answers are the only mutable entity in the store.
package answers

import (
	"context"
	"fmt"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/dbx"
	"github.com/pairspace/loveos/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ByQuestion(ctx context.Context, questionID string) ([]models.AnswerEntry, error) {
	query := `
		SELECT id, question_id, author, answer_text, created_at
		FROM answers
		WHERE question_id = $1
		ORDER BY created_at, id;
	`
	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to select answers: %w", err)
	}
	defer rows.Close()

	var result []models.AnswerEntry
	for rows.Next() {
		var a models.AnswerEntry
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Author, &a.Text, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.AnswerEntry) error {
	query := `
		INSERT INTO answers (question_id, author, answer_text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	err := r.db.QueryRowContext(ctx, query, a.QuestionID, a.Author, a.Text).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateText(ctx context.Context, id, author, text string) error {
	query := `UPDATE answers SET answer_text = $3 WHERE id = $1 AND author = $2;`
	res, err := r.db.ExecContext(ctx, query, id, author, text)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
