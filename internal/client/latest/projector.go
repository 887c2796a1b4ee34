// Package latest derives the "current mood per partner" projection from the
// flat mood log.
package latest

import (
	"context"
	"errors"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

// Source is the slice of the store the projector reads.
type Source interface {
	LatestMood(ctx context.Context, author string) (*models.MoodEntry, error)
}

type Projector struct {
	src Source
}

func NewProjector(src Source) *Projector {
	return &Projector{src: src}
}

// LatestMood returns an identity's most recent mood entry. ok is false when
// the identity has never posted; that is an empty state, not an error.
func (p *Projector) LatestMood(ctx context.Context, identity string) (*models.MoodEntry, bool, error) {
	m, err := p.src.LatestMood(ctx, identity)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return m, true, nil
}

// Pair refreshes both partners' current moods. One independent call per
// identity; identities that have never posted are absent from the result.
// Re-run on every change notification, since a new entry may shift the
// latest pointer.
func (p *Projector) Pair(ctx context.Context, identities [2]string) (map[string]*models.MoodEntry, error) {
	result := make(map[string]*models.MoodEntry, 2)
	for _, identity := range identities {
		m, ok, err := p.LatestMood(ctx, identity)
		if err != nil {
			return nil, err
		}
		if ok {
			result[identity] = m
		}
	}
	return result, nil
}
