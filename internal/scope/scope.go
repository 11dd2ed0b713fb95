// Package scope holds the authorization model: a resolved login identity and
// the single place where role-based visibility and edit decisions are made.
// Services take an Identity explicitly; nothing reads ambient session state.
package scope

import "obtconnect/internal/model"

// Identity is the result of a successful credential resolution. It is carried
// in the JWT claims and rebuilt on every request.
type Identity struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Phone    string         `json:"phone"`
	District string         `json:"district"`
	Role     model.Role     `json:"role"`
	Category model.Category `json:"category"`
}

// IsPrivileged reports whether the identity crosses all category scopes.
func (id Identity) IsPrivileged() bool {
	return id.Role == model.RoleMaster || id.Role == model.RoleStateHead
}

// EffectiveCategory resolves the category filter for a read. Privileged
// identities may request any single category or none at all (all categories);
// everyone else is pinned to their own category no matter what was requested.
func (id Identity) EffectiveCategory(requested model.Category) (model.Category, bool) {
	if id.IsPrivileged() {
		return requested, requested != ""
	}
	return id.Category, true
}

// PinCategory returns the category a saved member must carry. Privileged
// identities keep the draft's category; a captain's writes are forced into
// the captain's own cohort so cross-category injection is impossible.
func (id Identity) PinCategory(draft model.Category) model.Category {
	if id.IsPrivileged() {
		return draft
	}
	return id.Category
}

// CanEditDistrict reports whether the identity may create, update or delete
// members of the given district roster. Plain members can only view.
func (id Identity) CanEditDistrict(district string) bool {
	switch id.Role {
	case model.RoleMaster, model.RoleStateHead:
		return true
	case model.RoleCaptain:
		return id.District == district
	default:
		return false
	}
}

// CanEditTeam reports whether the identity may mutate the State or Master
// team rosters. These bypass district/category scoping entirely.
func (id Identity) CanEditTeam() bool {
	return id.IsPrivileged()
}

// CanApprove reports whether the identity may approve or reject pending
// registrations.
func (id Identity) CanApprove() bool {
	return id.IsPrivileged()
}

// FromUser builds the identity for a regular registered user.
func FromUser(u *model.User) Identity {
	return Identity{
		ID:       u.ID,
		Name:     u.Name,
		Phone:    u.Phone,
		District: u.District,
		Role:     u.Role,
		Category: u.Category,
	}
}
