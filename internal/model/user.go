package model

import "time"

// Role is the privilege tier of an authenticated user.
type Role string

const (
	RoleMaster    Role = "MASTER"
	RoleStateHead Role = "STATE_HEAD"
	RoleCaptain   Role = "CAPTAIN"
	RoleMember    Role = "MEMBER"
)

// Category is the demographic cohort a regular user is scoped to.
type Category string

const (
	CategorySchoolBoys   Category = "School Boys"
	CategorySchoolGirls  Category = "School Girls"
	CategoryCollegeBoys  Category = "College Boys"
	CategoryCollegeGirls Category = "College Girls"
)

// Categories lists every cohort in display order.
var Categories = []Category{
	CategorySchoolBoys,
	CategorySchoolGirls,
	CategoryCollegeBoys,
	CategoryCollegeGirls,
}

// IsCategory reports whether c is one of the four fixed cohorts.
func IsCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// User is a registered account. Phone is the login key; the record stays
// unapproved until a Master or State Head approves it.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:64"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Phone        string    `json:"phone" gorm:"uniqueIndex;size:20;not null"`
	District     string    `json:"district" gorm:"size:64;not null"`
	Role         Role      `json:"role" gorm:"size:20;not null;default:'MEMBER'"`
	Category     Category  `json:"category" gorm:"size:20;not null"`
	PasswordHash string    `json:"-" gorm:"size:255"` // Never expose in JSON
	PhotoURL     string    `json:"photo_url,omitempty" gorm:"type:mediumtext"`
	IsApproved   bool      `json:"is_approved" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
