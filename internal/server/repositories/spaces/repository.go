package spaces

import (
	"context"

	"github.com/pairspace/loveos/internal/models"
)

// Credential is a space row including the passcode hash. It never leaves the
// auth path; everything else works with models.Space.
type Credential struct {
	Space        models.Space
	PasscodeHash string
}

type Repository interface {
	// GetByName returns one space with its credential, or common.ErrNotFound.
	GetByName(ctx context.Context, name string) (*Credential, error)

	// List returns all spaces (the fixed pair).
	List(ctx context.Context) ([]models.Space, error)

	// Upsert creates or refreshes a space row. Used by startup seeding.
	Upsert(ctx context.Context, c *Credential) error
}
