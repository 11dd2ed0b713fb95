package model

import "time"

// Roster identifies which member list a record belongs to. District rosters
// are partitioned by (district, category); the State and Master team rosters
// are single flat lists.
type Roster string

const (
	RosterDistrict Roster = "DISTRICT"
	RosterState    Roster = "STATE"
	RosterMaster   Roster = "MASTER"
)

// Member is a roster entry. Designation is a free-text label ("Member",
// "Captain", "Coordinator", ...) and is unrelated to the User role enum.
// A Member created by approving a User shares that User's ID but lives an
// independent lifecycle afterwards.
type Member struct {
	ID          string    `json:"id" gorm:"primaryKey;size:64"`
	Roster      Roster    `json:"roster" gorm:"size:16;not null;index:idx_scope;default:'DISTRICT'"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Phone       string    `json:"phone" gorm:"size:20;not null"`
	Designation string    `json:"designation" gorm:"size:64;not null;default:'Member'"`
	District    string    `json:"district" gorm:"size:64;index:idx_scope"`
	Category    Category  `json:"category" gorm:"size:20;index:idx_scope"`
	PhotoURL    string    `json:"photo_url,omitempty" gorm:"type:mediumtext"`
	JoinedAt    time.Time `json:"joined_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
