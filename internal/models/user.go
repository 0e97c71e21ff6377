package models

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User accounts are created either with a password (register endpoint) or
// without one (OAuth sign-in). At least one of Username/Email is always set;
// both carry sparse unique indexes so absent values never collide.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name"`
	Username  *string   `json:"username,omitempty" gorm:"uniqueIndex"`
	Email     *string   `json:"email,omitempty" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	Role      Role      `json:"role" gorm:"type:varchar(16);not null;default:'user'"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsernameOrEmpty avoids nil checks at call sites that only need a display value.
func (u *User) UsernameOrEmpty() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}

func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
