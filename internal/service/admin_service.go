package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"obtconnect/internal/errors"
	"obtconnect/internal/model"
	"obtconnect/internal/repository"
	"obtconnect/internal/scope"
)

// AdminService runs the registration approval pipeline. Only Master and
// State Head identities may call any of it.
type AdminService interface {
	ListPending(ctx context.Context, identity scope.Identity) ([]model.User, error)
	Approve(ctx context.Context, identity scope.Identity, userID string) (*model.Member, error)
	Reject(ctx context.Context, identity scope.Identity, userID string) error
}

type adminService struct {
	users   repository.UserRepository
	members repository.MemberRepository
}

// NewAdminService creates an approval service.
func NewAdminService(users repository.UserRepository, members repository.MemberRepository) AdminService {
	return &adminService{users: users, members: members}
}

func (s *adminService) ListPending(ctx context.Context, identity scope.Identity) ([]model.User, error) {
	if !identity.CanApprove() {
		return nil, errors.ErrPermissionDenied
	}
	return s.users.ListPending(ctx)
}

// Approve marks the user approved and places them on their district roster
// with the default designation. The user keeps their ID on the roster, and
// the upsert makes a repeated approval leave exactly one member behind.
func (s *adminService) Approve(ctx context.Context, identity scope.Identity, userID string) (*model.Member, error) {
	if !identity.CanApprove() {
		return nil, errors.ErrPermissionDenied
	}

	user, err := s.users.FindByID(ctx, userID)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	member := &model.Member{
		ID:          user.ID,
		Roster:      model.RosterDistrict,
		Name:        user.Name,
		Phone:       user.Phone,
		Designation: "Member",
		District:    user.District,
		Category:    user.Category,
		PhotoURL:    user.PhotoURL,
		JoinedAt:    time.Now().UTC(),
	}

	if err := s.users.Approve(ctx, user.ID, member); err != nil {
		return nil, fmt.Errorf("approve user: %w", err)
	}
	return member, nil
}

// Reject deletes a pending registration outright, keeping no trace.
func (s *adminService) Reject(ctx context.Context, identity scope.Identity, userID string) error {
	if !identity.CanApprove() {
		return errors.ErrPermissionDenied
	}
	if _, err := s.users.FindByID(ctx, userID); err == gorm.ErrRecordNotFound {
		return errors.ErrNotFound
	} else if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	return s.users.Delete(ctx, userID)
}
