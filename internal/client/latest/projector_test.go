package latest

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySource serves LatestMood from an in-memory log the way the store
// does: max created_at per author, ties broken by id.
type memorySource struct {
	entries []models.MoodEntry
	err     error
	calls   int
}

func (s *memorySource) LatestMood(ctx context.Context, author string) (*models.MoodEntry, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	var mine []models.MoodEntry
	for _, e := range s.entries {
		if e.Author == author {
			mine = append(mine, e)
		}
	}
	if len(mine) == 0 {
		return nil, common.ErrNotFound
	}
	sort.Slice(mine, func(i, j int) bool {
		if !mine[i].CreatedAt.Equal(mine[j].CreatedAt) {
			return mine[i].CreatedAt.After(mine[j].CreatedAt)
		}
		return mine[i].ID > mine[j].ID
	})
	return &mine[0], nil
}

func TestLatestMood_ReturnsMaxCreatedAt(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	src := &memorySource{entries: []models.MoodEntry{
		{ID: "m1", Author: "cookie", Emoji: "😍", CreatedAt: t1},
		{ID: "m2", Author: "cookie", Emoji: "🥰", CreatedAt: t2},
		{ID: "m3", Author: "bear", Emoji: "😴", CreatedAt: t1},
	}}
	p := NewProjector(src)

	m, ok, err := p.LatestMood(context.Background(), "cookie")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "m2", m.ID)
}

func TestLatestMood_NoneYetIsNotAnError(t *testing.T) {
	p := NewProjector(&memorySource{})

	m, ok, err := p.LatestMood(context.Background(), "bear")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestLatestMood_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("store unreachable")
	p := NewProjector(&memorySource{err: boom})

	_, ok, err := p.LatestMood(context.Background(), "cookie")
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestPair_TwoIndependentCalls(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	src := &memorySource{entries: []models.MoodEntry{
		{ID: "m1", Author: "cookie", CreatedAt: t1},
	}}
	p := NewProjector(src)

	pair, err := p.Pair(context.Background(), [2]string{"cookie", "bear"})
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
	require.Contains(t, pair, "cookie")
	assert.NotContains(t, pair, "bear")
}

func TestNewerEntryShiftsLatestPointer(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	src := &memorySource{entries: []models.MoodEntry{
		{ID: "m1", Author: "Cookie", Emoji: "😍", CreatedAt: t1},
	}}
	p := NewProjector(src)

	m, ok, err := p.LatestMood(context.Background(), "Cookie")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "m1", m.ID)

	src.entries = append(src.entries, models.MoodEntry{
		ID: "m2", Author: "Cookie", Emoji: "🥰", CreatedAt: t1.Add(time.Minute),
	})

	m, ok, err = p.LatestMood(context.Background(), "Cookie")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "m2", m.ID)
}
