package participant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Profile is the display metadata of one platform member.
type Profile struct {
	ID     uuid.UUID
	Name   string
	Avatar string
}

// ProfileRepo abstracts where profiles live (DynamoDB table, in-memory).
type ProfileRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]Profile, error)
}

type ParticipantSrvc struct {
	repo ProfileRepo
}

func NewParticipantSrvc(repo ProfileRepo) *ParticipantSrvc {
	return &ParticipantSrvc{repo: repo}
}

// GetProfiles returns the profiles for the given ids, keyed by id. Ids
// without a stored profile are simply absent from the result; callers fall
// back to FallbackName for those.
func (s *ParticipantSrvc) GetProfiles(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]Profile, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]Profile{}, nil
	}
	profiles, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant profiles: %w", err)
	}
	byID := make(map[uuid.UUID]Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	return byID, nil
}
