// Package letters provides the PostgreSQL-backed repository for love letters.
package letters

import (
	"context"
	"fmt"

	"github.com/pairspace/loveos/internal/dbx"
	"github.com/pairspace/loveos/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]models.LetterEntry, error) {
	query := `
		SELECT id, title, content, from_author, to_author, created_at
		FROM letters
		ORDER BY created_at DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select letters: %w", err)
	}
	defer rows.Close()

	var result []models.LetterEntry
	for rows.Next() {
		var l models.LetterEntry
		if err := rows.Scan(&l.ID, &l.Title, &l.Content, &l.From, &l.To, &l.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.LetterEntry) error {
	query := `
		INSERT INTO letters (title, content, from_author, to_author)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	err := r.db.QueryRowContext(ctx, query, l.Title, l.Content, l.From, l.To).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
