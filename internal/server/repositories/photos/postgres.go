// Package photos provides the PostgreSQL-backed repository for the photo
// gallery log.
package photos

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]models.PhotoEntry, error) {
	query := `
		SELECT id, image_url, caption, uploaded_by, created_at
		FROM photos
		ORDER BY created_at DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select photos: %w", err)
	}
	defer rows.Close()

	var result []models.PhotoEntry
	for rows.Next() {
		var p models.PhotoEntry
		var caption sql.NullString
		if err := rows.Scan(&p.ID, &p.ImageURL, &caption, &p.UploadedBy, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Caption = caption.String
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.PhotoEntry) error {
	query := `
		INSERT INTO photos (image_url, caption, uploaded_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	caption := sql.NullString{String: p.Caption, Valid: p.Caption != ""}
	err := r.db.QueryRowContext(ctx, query, p.ImageURL, caption, p.UploadedBy).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
