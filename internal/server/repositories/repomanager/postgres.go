package repomanager

import (
	"context"
	"database/sql"

	"github.com/pairspace/loveos/internal/dbx"
	"github.com/pairspace/loveos/internal/server/migrations"
	"github.com/pairspace/loveos/internal/server/repositories/answers"
	"github.com/pairspace/loveos/internal/server/repositories/letters"
	"github.com/pairspace/loveos/internal/server/repositories/moods"
	"github.com/pairspace/loveos/internal/server/repositories/photos"
	"github.com/pairspace/loveos/internal/server/repositories/questions"
	"github.com/pairspace/loveos/internal/server/repositories/spaces"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Spaces(db dbx.DBTX) spaces.Repository {
	return spaces.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Moods(db dbx.DBTX) moods.Repository {
	return moods.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Photos(db dbx.DBTX) photos.Repository {
	return photos.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Letters(db dbx.DBTX) letters.Repository {
	return letters.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Questions(db dbx.DBTX) questions.Repository {
	return questions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Answers(db dbx.DBTX) answers.Repository {
	return answers.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
