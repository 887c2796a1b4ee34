// Package services contains the server-side application services sitting
// between the HTTP handlers and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
	"github.com/pairspace/loveos/internal/server/auth"
	sc "github.com/pairspace/loveos/internal/server/config"
	"github.com/pairspace/loveos/internal/server/repositories/repomanager"
	"github.com/pairspace/loveos/internal/server/repositories/spaces"
)

// SpaceService handles authentication and profile data for the two partner
// spaces.
type SpaceService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	config *sc.Config
}

func NewSpaceService(db *sql.DB, repos repomanager.RepositoryManager, config *sc.Config) *SpaceService {
	return &SpaceService{db: db, repos: repos, config: config}
}

// Seed ensures both configured spaces exist with current display names,
// passcodes, and couple dates. Runs once at startup.
func (s *SpaceService) Seed(ctx context.Context) error {
	repo := s.repos.Spaces(s.db)

	anniversary, err := parseDate(s.config.AnniversaryDate)
	if err != nil {
		return fmt.Errorf("invalid anniversary date: %w", err)
	}
	start, err := parseDate(s.config.RelationshipStart)
	if err != nil {
		return fmt.Errorf("invalid relationship start date: %w", err)
	}

	for _, seed := range s.config.Spaces {
		hash, err := auth.HashPasscode(seed.Passcode)
		if err != nil {
			return fmt.Errorf("hashing passcode for %s: %w", seed.Name, err)
		}
		cred := &spaces.Credential{
			Space: models.Space{
				Name:              seed.Name,
				DisplayName:       seed.DisplayName,
				AnniversaryDate:   anniversary,
				RelationshipStart: start,
			},
			PasscodeHash: hash,
		}
		if err := repo.Upsert(ctx, cred); err != nil {
			return fmt.Errorf("seeding space %s: %w", seed.Name, err)
		}
	}
	return nil
}

// Login checks a space passcode and issues an access token plus the full
// profile (partner name resolved).
func (s *SpaceService) Login(ctx context.Context, name, passcode string) (string, *models.Space, error) {
	repo := s.repos.Spaces(s.db)

	cred, err := repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUnknownSpace
		}
		return "", nil, err
	}

	if !auth.CheckPasscode(cred.PasscodeHash, passcode) {
		return "", nil, common.ErrInvalidPasscode
	}

	token, err := auth.GenerateToken(name, []byte(s.config.SecretKey), s.config.TokenValidityDuration)
	if err != nil {
		return "", nil, err
	}

	space, err := s.Profile(ctx, name)
	if err != nil {
		return "", nil, err
	}

	return token, space, nil
}

// Profile returns one space with its partner name resolved from the fixed
// pair.
func (s *SpaceService) Profile(ctx context.Context, name string) (*models.Space, error) {
	repo := s.repos.Spaces(s.db)

	all, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var me *models.Space
	var partner string
	for i := range all {
		if all[i].Name == name {
			me = &all[i]
		} else {
			partner = all[i].Name
		}
	}
	if me == nil {
		return nil, common.ErrUnknownSpace
	}
	me.Partner = partner
	return me, nil
}

// Anniversary computes the countdown state from the stored couple dates.
func (s *SpaceService) Anniversary(ctx context.Context, name string, now time.Time) (*models.Anniversary, error) {
	space, err := s.Profile(ctx, name)
	if err != nil {
		return nil, err
	}
	if space.AnniversaryDate == nil {
		return nil, common.ErrNotFound
	}

	next, daysUntil := NextAnniversary(now, *space.AnniversaryDate)

	a := &models.Anniversary{
		Next:      next,
		DaysUntil: daysUntil,
	}
	if space.RelationshipStart != nil {
		a.DaysTogether = DaysBetween(*space.RelationshipStart, now)
	}
	return a, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
