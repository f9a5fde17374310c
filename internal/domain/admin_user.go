package domain

import "time"

// AdminUser is an identity allowed to sign in to the admin panel.
// Authorization is kept separate: a user without an AdminRole record
// holds a credential but no admin access.
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdminRole is the single authorization record for a user.
type AdminRole struct {
	UserID    string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
