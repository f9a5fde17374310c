package authority

import (
	"context"
	"errors"

	"github.com/rushikeshwankhede/admaxify-admin-service/internal/domain"
)

// Boundary errors returned by Backend implementations. The authority maps
// every backend failure to one of these or treats it as transient.
var (
	// ErrInvalidCredentials indicates the identifier/secret pair was rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionInvalid indicates the token no longer maps to a live session.
	ErrSessionInvalid = errors.New("session invalid or expired")
	// ErrNoRoleRecord indicates a valid identity with no authorization record.
	ErrNoRoleRecord = errors.New("no role record for user")
)

// Backend is the identity/data service the authority delegates to. It is
// treated as an opaque collaborator; implementations live elsewhere.
type Backend interface {
	// VerifyCredentials performs password sign-in and mints a session.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.AdminSession, error)
	// SessionFromToken restores the session a token refers to.
	SessionFromToken(ctx context.Context, token string) (*domain.AdminSession, error)
	// LookupRole fetches the single authorization record for a user.
	LookupRole(ctx context.Context, userID string) (domain.Role, error)
	// TouchLastLogin records a best-effort last-login timestamp.
	TouchLastLogin(ctx context.Context, userID string) error
	// InvalidateSession revokes a session server-side.
	InvalidateSession(ctx context.Context, token string) error
}

// TokenStore persists the session token between process runs so the
// authority can restore a session at startup.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryTokenStore keeps the token in memory only.
type MemoryTokenStore struct {
	token string
}

// NewMemoryTokenStore builds an empty store.
func NewMemoryTokenStore() *MemoryTokenStore { return &MemoryTokenStore{} }

// NewSeededTokenStore builds a store holding an existing token.
func NewSeededTokenStore(token string) *MemoryTokenStore { return &MemoryTokenStore{token: token} }

func (m *MemoryTokenStore) Load() (string, error) { return m.token, nil }

func (m *MemoryTokenStore) Save(token string) error {
	m.token = token
	return nil
}

func (m *MemoryTokenStore) Clear() error {
	m.token = ""
	return nil
}
