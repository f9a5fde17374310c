package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "admin_session:"

// SessionRecord is the server-side session state keyed by token jti.
// Deleting the record revokes every copy of the token.
type SessionRecord struct {
	JTI       string    `json:"jti"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore persists session records in Redis with a TTL matching the
// token expiry.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore builds a store over the shared Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(jti string) string {
	return sessionKeyPrefix + jti
}

// Create writes the record; the TTL expires it together with the token.
func (s *SessionStore) Create(ctx context.Context, rec SessionRecord) error {
	if rec.JTI == "" || rec.UserID == "" {
		return fmt.Errorf("session record missing jti or user_id")
	}
	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session record already expired")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return s.client.Set(ctx, sessionKey(rec.JTI), data, ttl).Err()
}

// Get returns the record, or nil when revoked or expired.
func (s *SessionStore) Get(ctx context.Context, jti string) (*SessionRecord, error) {
	val, err := s.client.Get(ctx, sessionKey(jti)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec SessionRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal session record: %w", err)
	}
	return &rec, nil
}

// Delete revokes the session.
func (s *SessionStore) Delete(ctx context.Context, jti string) error {
	return s.client.Del(ctx, sessionKey(jti)).Err()
}
