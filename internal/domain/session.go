package domain

import "time"

// AdminSession represents an authenticated admin principal. The token is
// opaque to every consumer except the identity backend that minted it.
type AdminSession struct {
	Token     string
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// SameAs reports whether two sessions refer to the same authenticated
// principal and credential. Used to suppress no-op state updates.
func (s *AdminSession) SameAs(other *AdminSession) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Token == other.Token && s.UserID == other.UserID
}
