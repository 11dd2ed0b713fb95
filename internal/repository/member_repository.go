package repository

import (
	"context"

	"gorm.io/gorm"

	"obtconnect/internal/model"
)

// MemberRepository defines persistence operations for roster members. All
// three rosters (district, State team, Master team) share one table keyed by
// the roster column; empty district/category arguments mean "no filter".
type MemberRepository interface {
	Save(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, roster model.Roster, id string) error
	FindByID(ctx context.Context, roster model.Roster, id string) (*model.Member, error)
	FindByPhone(ctx context.Context, roster model.Roster, phone string) (*model.Member, error)
	List(ctx context.Context, roster model.Roster, district string, category model.Category) ([]model.Member, error)
	Count(ctx context.Context, roster model.Roster, district string, category model.Category) (int64, error)
	CountByDistrict(ctx context.Context, category model.Category) (map[string]int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository builds a GORM-backed repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func scoped(db *gorm.DB, roster model.Roster, district string, category model.Category) *gorm.DB {
	q := db.Where("roster = ?", roster)
	if district != "" {
		q = q.Where("district = ?", district)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return q
}

// Save upserts by (roster, id) so re-saving an existing member updates it in
// place instead of appending a duplicate.
func (r *memberRepository) Save(ctx context.Context, member *model.Member) error {
	db := r.db.WithContext(ctx)
	var existing model.Member
	err := db.Where("id = ? AND roster = ?", member.ID, member.Roster).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(member).Error
	}
	if err != nil {
		return err
	}
	member.CreatedAt = existing.CreatedAt
	return db.Save(member).Error
}

func (r *memberRepository) Delete(ctx context.Context, roster model.Roster, id string) error {
	return r.db.WithContext(ctx).Where("roster = ?", roster).Delete(&model.Member{}, "id = ?", id).Error
}

func (r *memberRepository) FindByID(ctx context.Context, roster model.Roster, id string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("id = ? AND roster = ?", id, roster).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByPhone(ctx context.Context, roster model.Roster, phone string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("phone = ? AND roster = ?", phone, roster).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) List(ctx context.Context, roster model.Roster, district string, category model.Category) ([]model.Member, error) {
	var members []model.Member
	q := scoped(r.db.WithContext(ctx), roster, district, category)
	if err := q.Order("joined_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) Count(ctx context.Context, roster model.Roster, district string, category model.Category) (int64, error) {
	var count int64
	q := scoped(r.db.WithContext(ctx).Model(&model.Member{}), roster, district, category)
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *memberRepository) CountByDistrict(ctx context.Context, category model.Category) (map[string]int64, error) {
	type row struct {
		District string
		Total    int64
	}
	var rows []row
	q := r.db.WithContext(ctx).Model(&model.Member{}).
		Select("district, COUNT(*) AS total").
		Where("roster = ?", model.RosterDistrict)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Group("district").Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.District] = r.Total
	}
	return counts, nil
}
