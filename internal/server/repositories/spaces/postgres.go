// Package spaces provides the PostgreSQL-backed repository for the two fixed
// partner identities.
package spaces

import (
	"context"
	"database/sql"
	"errors"
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

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*Credential, error) {
	query := `
		SELECT name, display_name, passcode_hash, anniversary_date, relationship_start
		FROM spaces
		WHERE name = $1;
	`
	var c Credential
	var anniversary, start sql.NullTime
	err := r.db.QueryRowContext(ctx, query, name).
		Scan(&c.Space.Name, &c.Space.DisplayName, &c.PasscodeHash, &anniversary, &start)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select space: %w", err)
	}
	if anniversary.Valid {
		c.Space.AnniversaryDate = &anniversary.Time
	}
	if start.Valid {
		c.Space.RelationshipStart = &start.Time
	}
	return &c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Space, error) {
	query := `
		SELECT name, display_name, anniversary_date, relationship_start
		FROM spaces
		ORDER BY name;
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select spaces: %w", err)
	}
	defer rows.Close()

	var result []models.Space
	for rows.Next() {
		var s models.Space
		var anniversary, start sql.NullTime
		if err := rows.Scan(&s.Name, &s.DisplayName, &anniversary, &start); err != nil {
			return nil, err
		}
		if anniversary.Valid {
			s.AnniversaryDate = &anniversary.Time
		}
		if start.Valid {
			s.RelationshipStart = &start.Time
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, c *Credential) error {
	query := `
		INSERT INTO spaces (name, display_name, passcode_hash, anniversary_date, relationship_start)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name)
		DO UPDATE SET
			display_name = EXCLUDED.display_name,
			passcode_hash = EXCLUDED.passcode_hash,
			anniversary_date = EXCLUDED.anniversary_date,
			relationship_start = EXCLUDED.relationship_start;
	`
	var anniversary, start sql.NullTime
	if c.Space.AnniversaryDate != nil {
		anniversary = sql.NullTime{Time: *c.Space.AnniversaryDate, Valid: true}
	}
	if c.Space.RelationshipStart != nil {
		start = sql.NullTime{Time: *c.Space.RelationshipStart, Valid: true}
	}
	_, err := r.db.ExecContext(ctx, query,
		c.Space.Name, c.Space.DisplayName, c.PasscodeHash, anniversary, start)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
