// Package repomanager wires together repository constructors and database
// migrations (via goose).
package repomanager

import (
	"github.com/pairspace/loveos/internal/dbx"
	"github.com/pairspace/loveos/internal/server/repositories/answers"
	"github.com/pairspace/loveos/internal/server/repositories/letters"
	"github.com/pairspace/loveos/internal/server/repositories/moods"
	"github.com/pairspace/loveos/internal/server/repositories/photos"
	"github.com/pairspace/loveos/internal/server/repositories/questions"
	"github.com/pairspace/loveos/internal/server/repositories/spaces"
)

// RepositoryManager hands out table repositories bound to a DBTX, so the same
// constructors serve both plain-connection and in-transaction use.
type RepositoryManager interface {
	Spaces(db dbx.DBTX) spaces.Repository
	Moods(db dbx.DBTX) moods.Repository
	Photos(db dbx.DBTX) photos.Repository
	Letters(db dbx.DBTX) letters.Repository
	Questions(db dbx.DBTX) questions.Repository
	Answers(db dbx.DBTX) answers.Repository
}
