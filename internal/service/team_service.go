package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"obtconnect/internal/errors"
	"obtconnect/internal/model"
	"obtconnect/internal/repository"
	"obtconnect/internal/scope"
)

// TeamService manages the special State and Master team rosters. These
// bypass district/category scoping: any authenticated identity may view
// them, only Master and State Head may change them.
type TeamService interface {
	List(ctx context.Context, roster model.Roster) ([]model.Member, error)
	Save(ctx context.Context, identity scope.Identity, roster model.Roster, draft MemberDraft) (*model.Member, error)
	Delete(ctx context.Context, identity scope.Identity, roster model.Roster, id string) error
}

type teamService struct {
	repo repository.MemberRepository
}

// NewTeamService creates a team roster service.
func NewTeamService(repo repository.MemberRepository) TeamService {
	return &teamService{repo: repo}
}

func specialRoster(roster model.Roster) bool {
	return roster == model.RosterState || roster == model.RosterMaster
}

func (s *teamService) List(ctx context.Context, roster model.Roster) ([]model.Member, error) {
	if !specialRoster(roster) {
		return nil, errors.ErrNotFound
	}
	return s.repo.List(ctx, roster, "", "")
}

func (s *teamService) Save(ctx context.Context, identity scope.Identity, roster model.Roster, draft MemberDraft) (*model.Member, error) {
	if !specialRoster(roster) {
		return nil, errors.ErrNotFound
	}
	if !identity.CanEditTeam() {
		return nil, errors.ErrPermissionDenied
	}
	if draft.District != "" && !model.IsDistrict(draft.District) {
		return nil, errors.ErrInvalidDistrict
	}
	if draft.Category != "" && !model.IsCategory(draft.Category) {
		return nil, fmt.Errorf("unknown category %q", draft.Category)
	}

	member := &model.Member{
		ID:          draft.ID,
		Roster:      roster,
		Name:        draft.Name,
		Phone:       cleanPhone(draft.Phone),
		Designation: draft.Designation,
		District:    draft.District,
		Category:    draft.Category,
		PhotoURL:    draft.PhotoURL,
	}
	if member.Designation == "" {
		member.Designation = "Member"
	}

	creating := member.ID == ""
	if creating {
		member.ID = uuid.New().String()
		member.JoinedAt = time.Now().UTC()
	} else {
		existing, err := s.repo.FindByID(ctx, roster, member.ID)
		if err == gorm.ErrRecordNotFound {
			creating = true
			member.JoinedAt = time.Now().UTC()
		} else if err != nil {
			return nil, fmt.Errorf("find member: %w", err)
		} else {
			member.JoinedAt = existing.JoinedAt
		}
	}

	if creating {
		count, err := s.repo.Count(ctx, roster, "", "")
		if err != nil {
			return nil, fmt.Errorf("count roster: %w", err)
		}
		if count >= MaxMembersPerScope {
			return nil, errors.ErrCapacityExceeded
		}
	}

	if err := s.repo.Save(ctx, member); err != nil {
		return nil, fmt.Errorf("save member: %w", err)
	}
	return member, nil
}

func (s *teamService) Delete(ctx context.Context, identity scope.Identity, roster model.Roster, id string) error {
	if !specialRoster(roster) {
		return errors.ErrNotFound
	}
	if !identity.CanEditTeam() {
		return errors.ErrPermissionDenied
	}
	if _, err := s.repo.FindByID(ctx, roster, id); err == gorm.ErrRecordNotFound {
		return errors.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("find member: %w", err)
	}
	return s.repo.Delete(ctx, roster, id)
}
