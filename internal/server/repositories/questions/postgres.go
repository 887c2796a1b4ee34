// Package questions provides the PostgreSQL-backed repository for the daily
// question reference data.
package questions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *PostgresRepository) ByDate(ctx context.Context, day time.Time) (*models.QuestionEntry, error) {
	query := `
		SELECT id, question_text, category, date
		FROM questions
		WHERE date = $1
		LIMIT 1;
	`
	return r.selectOne(ctx, query, day.Format("2006-01-02"))
}

func (r *PostgresRepository) Any(ctx context.Context) (*models.QuestionEntry, error) {
	query := `
		SELECT id, question_text, category, date
		FROM questions
		ORDER BY date, id
		LIMIT 1;
	`
	return r.selectOne(ctx, query)
}

func (r *PostgresRepository) selectOne(ctx context.Context, query string, args ...any) (*models.QuestionEntry, error) {
	var q models.QuestionEntry
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&q.ID, &q.Text, &q.Category, &q.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select question: %w", err)
	}
	return &q, nil
}
