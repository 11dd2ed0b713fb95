package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"obtconnect/internal/errors"
	"obtconnect/internal/model"
	"obtconnect/internal/repository"
	"obtconnect/internal/scope"
)

// maxPhotoBytes caps profile photos at roughly 2MB of encoded data.
const maxPhotoBytes = 2 << 20

// UserService exposes self-service profile operations. Only name and photo
// are editable; phone, district, category, role and approval are fixed.
type UserService interface {
	GetProfile(ctx context.Context, identity scope.Identity) (*model.User, error)
	UpdateProfile(ctx context.Context, identity scope.Identity, name, photoURL string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetProfile(ctx context.Context, identity scope.Identity) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, identity.ID)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, identity scope.Identity, name, photoURL string) (*model.User, error) {
	if len(photoURL) > maxPhotoBytes {
		return nil, fmt.Errorf("photo too large")
	}

	user, err := s.repo.FindByID(ctx, identity.ID)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if name != "" {
		user.Name = name
	}
	if photoURL != "" {
		user.PhotoURL = photoURL
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
