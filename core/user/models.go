package user

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/classboard/core"
)

// Role is the profile role as stored by the auth provider.
// Any other value is tolerated: such users only count towards totals.
type Role string

// Roles
const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

var Roles = []RoleInfo{
	{Name: "Student", Value: RoleStudent},
	{Name: "Admin", Value: RoleAdmin},
}

type RoleInfo struct {
	Name  string `json:"name"`
	Value Role   `json:"value"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}

type QueryFilter struct {
	Search      string    `query:"search"`
	Role        Role      `query:"role" validate:"omitempty,userrole"`
	CreatedFrom time.Time `query:"created_from"`
	CreatedTo   time.Time `query:"created_to" validate:"omitempty,gtefield=CreatedFrom"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Role == "" && qf.CreatedFrom.IsZero() && qf.CreatedTo.IsZero()
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Role = Role(core.CleanString(string(qf.Role), true /* lower */))
}

func (qf *QueryFilter) Validate(validate *validator.Validate) error {
	qf.Clean()
	return validate.Struct(qf)
}

// Match reports whether usr satisfies every set field of the filter.
// Search is a case-insensitive match on User.Name.
func (qf *QueryFilter) Match(usr User) bool {
	if qf == nil {
		return true
	}
	if qf.Search != "" && !containsFold(usr.Name, qf.Search) {
		return false
	}
	if qf.Role != "" && usr.Role != qf.Role {
		return false
	}
	if !qf.CreatedFrom.IsZero() && usr.CreatedAt.Before(qf.CreatedFrom) {
		return false
	}
	if !qf.CreatedTo.IsZero() && usr.CreatedAt.After(qf.CreatedTo) {
		return false
	}
	return true
}
