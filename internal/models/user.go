package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
	// Compared with LOWER() on both sides everywhere; the unique index is
	// what keeps two concurrent registrations with the same email out.
	Email        string   `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt    time.Time
}

// SessionUser is the per-session copy of the logged-in user. Handlers and
// templates read this, never the row itself.
type SessionUser struct {
	ID    uint
	Name  string
	Email string
	Role  UserRole
}

func (u SessionUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanEdit reports whether the session user may view or change the account
// with the given id: their own account, or any account for admins.
func (u SessionUser) CanEdit(targetID uint) bool {
	return u.ID == targetID || u.Role == RoleAdmin
}

// CanDelete is stricter than CanEdit: admins only, and never themselves.
func (u SessionUser) CanDelete(targetID uint) bool {
	return u.Role == RoleAdmin && u.ID != targetID
}
