// Package moods provides the PostgreSQL-backed repository for the moods
// event log.
package moods

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/dbx"
	"github.com/pairspace/loveos/internal/models"
)

// PostgresRepository implements mood storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]models.MoodEntry, error) {
	query := `
		SELECT id, author, emoji, label, color, note, photo_url, created_at
		FROM moods
		ORDER BY created_at DESC, id DESC
		LIMIT $1;
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select moods: %w", err)
	}
	defer rows.Close()

	var result []models.MoodEntry
	for rows.Next() {
		m, err := scanMood(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) LatestByAuthor(ctx context.Context, author string) (*models.MoodEntry, error) {
	// Ties on created_at are broken by id so the projection is deterministic.
	query := `
		SELECT id, author, emoji, label, color, note, photo_url, created_at
		FROM moods
		WHERE author = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1;
	`
	row := r.db.QueryRowContext(ctx, query, author)

	m, err := scanMood(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select latest mood: %w", err)
	}
	return &m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.MoodEntry) error {
	query := `
		INSERT INTO moods (author, emoji, label, color, note, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err := r.db.QueryRowContext(ctx, query,
		m.Author, m.Emoji, m.Label, m.Color, nullable(m.Note), nullable(m.PhotoURL),
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMood(row rowScanner) (models.MoodEntry, error) {
	var m models.MoodEntry
	var note, photoURL sql.NullString
	if err := row.Scan(&m.ID, &m.Author, &m.Emoji, &m.Label, &m.Color, &note, &photoURL, &m.CreatedAt); err != nil {
		return models.MoodEntry{}, err
	}
	m.Note = note.String
	m.PhotoURL = photoURL.String
	return m, nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
