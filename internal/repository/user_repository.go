package repository

import (
	"context"

	"gorm.io/gorm"

	"obtconnect/internal/model"
)

// UserRepository defines persistence operations for registered accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	ListPending(ctx context.Context) ([]model.User, error)
	// Approve marks the user approved and upserts the given roster member in
	// one transaction, so a failed member write never leaves a half-approved
	// account behind.
	Approve(ctx context.Context, userID string, member *model.Member) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListPending(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("is_approved = ?", false).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Approve(ctx context.Context, userID string, member *model.Member) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("id = ?", userID).Update("is_approved", true).Error; err != nil {
			return err
		}
		var existing model.Member
		err := tx.Where("id = ? AND roster = ?", member.ID, member.Roster).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			return tx.Create(member).Error
		}
		if err != nil {
			return err
		}
		// Already on the roster: double-approve must not duplicate.
		return tx.Model(&existing).Updates(map[string]interface{}{
			"name":      member.Name,
			"phone":     member.Phone,
			"district":  member.District,
			"category":  member.Category,
			"photo_url": member.PhotoURL,
		}).Error
	})
}
