package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
)

// SessionStore is the single source of truth for live admin sessions and the
// logout blacklist. Session and token are created together on login and
// cleared together on logout.
type SessionStore struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{RDB: rdb, TTL: ttl}
}

func sessionKey(adminID string) string { return "admin:session:" + adminID }

func blacklistKey(jti string) string { return "auth:blacklist:" + jti }

// Set records a session hash for the admin, replacing any previous one.
func (s *SessionStore) Set(ctx context.Context, a *entity.Admin, sid string) error {
	key := sessionKey(a.ID)
	fields := map[string]any{
		"admin_id":   a.ID,
		"email":      a.Email,
		"name":       a.Name,
		"sid":        sid,
		"logged_in":  true,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	pipe := s.RDB.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.TTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns the session hash, or an empty map when no session exists.
func (s *SessionStore) Get(ctx context.Context, adminID string) (map[string]string, error) {
	return s.RDB.HGetAll(ctx, sessionKey(adminID)).Result()
}

// Clear removes the session hash.
func (s *SessionStore) Clear(ctx context.Context, adminID string) error {
	return s.RDB.Del(ctx, sessionKey(adminID)).Err()
}

// Blacklist voids a token id until its natural expiry.
func (s *SessionStore) Blacklist(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil // already expired, nothing to void
	}
	return s.RDB.Set(ctx, blacklistKey(jti), "1", ttl).Err()
}

// IsBlacklisted reports whether a token id has been voided by logout.
func (s *SessionStore) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := s.RDB.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
