package challenge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Challenge is a named collection of problems, the unit at which official
// scores are aggregated.
type Challenge struct {
	ID     uuid.UUID
	Title  string
	Public bool
}

// Viewer identifies who is asking. The zero value is an anonymous viewer.
type Viewer struct {
	ID    uuid.UUID
	Admin bool
}

// Repo supplies the challenge catalogue and per-viewer allow-list rows.
type Repo interface {
	ListChallenges(ctx context.Context) ([]Challenge, error)
	AllowedChallengeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type ChallengeSrvc struct {
	repo Repo
}

func NewChallengeSrvc(repo Repo) *ChallengeSrvc {
	return &ChallengeSrvc{repo: repo}
}

// VisibleChallenges filters the catalogue down to what the viewer may query.
// Admins see everything; everyone else sees public challenges plus those on
// their explicit allow-list.
func (s *ChallengeSrvc) VisibleChallenges(ctx context.Context, viewer Viewer) ([]Challenge, error) {
	all, err := s.repo.ListChallenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	if viewer.Admin {
		return all, nil
	}

	allowed := map[uuid.UUID]struct{}{}
	if viewer.ID != uuid.Nil {
		ids, err := s.repo.AllowedChallengeIDs(ctx, viewer.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list allowed challenges: %w", err)
		}
		for _, id := range ids {
			allowed[id] = struct{}{}
		}
	}

	visible := make([]Challenge, 0, len(all))
	for _, c := range all {
		if _, ok := allowed[c.ID]; c.Public || ok {
			visible = append(visible, c)
		}
	}
	return visible, nil
}
