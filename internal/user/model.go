package user

import "time"

// Role controls what a profile may see and manage.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleUser   Role = "USER"
)

// CanManageNorms reports whether the role may create, edit, and delete norms.
func (r Role) CanManageNorms() bool {
	return r == RoleAdmin || r == RoleEditor
}

// CanManageUsers reports whether the role may administer profiles and areas.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleUser
}

// User is a profile in the organization. Area is a loose reference by name:
// it should match an area in the catalog, but a stale name is tolerated.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Role      Role      `json:"role"`
	Area      string    `json:"area"`
	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "profiles"
}

// normalize applies wire-record defaults after a remote read.
func (u *User) normalize() {
	if u.Role == "" {
		u.Role = RoleUser
	}
}

// CountAdmins returns the number of ADMIN profiles in the set.
func CountAdmins(users []User) int {
	count := 0
	for _, u := range users {
		if u.Role == RoleAdmin {
			count++
		}
	}
	return count
}
