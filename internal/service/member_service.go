package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"obtconnect/internal/cache"
	"obtconnect/internal/errors"
	"obtconnect/internal/model"
	"obtconnect/internal/repository"
	"obtconnect/internal/scope"
)

// MaxMembersPerScope bounds every roster scope: each (district, category)
// pair on the main roster, and each special team as a whole.
const MaxMembersPerScope = 30

const statsCacheTTL = 30 * time.Second

// MemberDraft is the caller-supplied shape of a roster member. ID is empty
// for creation; District/Category are subject to scope enforcement.
type MemberDraft struct {
	ID          string
	Name        string
	Phone       string
	Designation string
	District    string
	Category    model.Category
	PhotoURL    string
}

// MemberService is the scope-filtered view of the main district roster.
// Every operation takes the caller's resolved identity; members outside the
// identity's effective category are invisible to lists, counts and lookups.
type MemberService interface {
	List(ctx context.Context, identity scope.Identity, district string, category model.Category) ([]model.Member, error)
	Stats(ctx context.Context, identity scope.Identity) (map[string]int64, error)
	Save(ctx context.Context, identity scope.Identity, draft MemberDraft) (*model.Member, error)
	Delete(ctx context.Context, identity scope.Identity, district, id string) error
}

type memberService struct {
	repo  repository.MemberRepository
	cache *cache.Client
}

// NewMemberService builds a MemberService with repository and cache.
func NewMemberService(repo repository.MemberRepository, cache *cache.Client) MemberService {
	return &memberService{repo: repo, cache: cache}
}

func statsCacheKey(category model.Category) string {
	if category == "" {
		return "district_stats:all"
	}
	return fmt.Sprintf("district_stats:%s", category)
}

// List returns the district's members visible to the identity. Privileged
// identities may narrow to one category or see all; everyone else only ever
// sees their own category, whatever was requested.
func (s *memberService) List(ctx context.Context, identity scope.Identity, district string, category model.Category) ([]model.Member, error) {
	if !model.IsDistrict(district) {
		return nil, errors.ErrInvalidDistrict
	}
	effective, filtered := identity.EffectiveCategory(category)
	if !filtered {
		effective = ""
	}
	return s.repo.List(ctx, model.RosterDistrict, district, effective)
}

// Stats returns a member count for every fixed district under the identity's
// effective category filter. Districts with no members report zero.
func (s *memberService) Stats(ctx context.Context, identity scope.Identity) (map[string]int64, error) {
	effective, filtered := identity.EffectiveCategory("")
	if !filtered {
		effective = ""
	}

	key := statsCacheKey(effective)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached map[string]int64
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	counts, err := s.repo.CountByDistrict(ctx, effective)
	if err != nil {
		return nil, fmt.Errorf("count by district: %w", err)
	}

	stats := make(map[string]int64, len(model.Districts))
	for _, d := range model.Districts {
		stats[d] = counts[d]
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, key, payload, statsCacheTTL)
	}
	return stats, nil
}

// Save creates or updates a district roster member. Non-privileged writers
// have the saved category forced to their own; creation into a full
// (district, category) scope is rejected.
func (s *memberService) Save(ctx context.Context, identity scope.Identity, draft MemberDraft) (*model.Member, error) {
	if !model.IsDistrict(draft.District) {
		return nil, errors.ErrInvalidDistrict
	}
	if !identity.CanEditDistrict(draft.District) {
		return nil, errors.ErrPermissionDenied
	}

	category := identity.PinCategory(draft.Category)
	if !model.IsCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	member := &model.Member{
		ID:          draft.ID,
		Roster:      model.RosterDistrict,
		Name:        draft.Name,
		Phone:       cleanPhone(draft.Phone),
		Designation: draft.Designation,
		District:    draft.District,
		Category:    category,
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
		existing, err := s.repo.FindByID(ctx, model.RosterDistrict, member.ID)
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
		count, err := s.repo.Count(ctx, model.RosterDistrict, member.District, member.Category)
		if err != nil {
			return nil, fmt.Errorf("count scope: %w", err)
		}
		if count >= MaxMembersPerScope {
			return nil, errors.ErrCapacityExceeded
		}
	}

	if err := s.repo.Save(ctx, member); err != nil {
		return nil, fmt.Errorf("save member: %w", err)
	}
	s.invalidateStats(ctx, member.Category)
	return member, nil
}

// Delete removes a district roster member if the identity may edit that district.
func (s *memberService) Delete(ctx context.Context, identity scope.Identity, district, id string) error {
	if !model.IsDistrict(district) {
		return errors.ErrInvalidDistrict
	}
	if !identity.CanEditDistrict(district) {
		return errors.ErrPermissionDenied
	}

	member, err := s.repo.FindByID(ctx, model.RosterDistrict, id)
	if err == gorm.ErrRecordNotFound {
		return errors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find member: %w", err)
	}
	if member.District != district {
		return errors.ErrNotFound
	}
	// A non-privileged editor cannot touch members outside their own category.
	if effective, filtered := identity.EffectiveCategory(""); filtered && member.Category != effective {
		return errors.ErrNotFound
	}

	if err := s.repo.Delete(ctx, model.RosterDistrict, id); err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	s.invalidateStats(ctx, member.Category)
	return nil
}

func (s *memberService) invalidateStats(ctx context.Context, category model.Category) {
	_ = s.cache.Delete(ctx, statsCacheKey(category))
	_ = s.cache.Delete(ctx, statsCacheKey(""))
}
