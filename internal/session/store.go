// Package session keeps server-side login sessions in Redis and carries their
// ids to clients in a signed cookie.
package session

import (
	"context"       // Context for Redis operations
	"encoding/json" // Session record encoding
	"errors"        // Sentinel errors
	"fmt"           // Error wrapping
	"time"          // Session timestamps and TTL

	"github.com/google/uuid"       // Opaque session ids
	"github.com/redis/go-redis/v9" // Redis client
)

// ErrSessionNotFound is returned when a session id has no live record
var ErrSessionNotFound = errors.New("session not found")

// keyPrefix namespaces session records in Redis
const keyPrefix = "session:"

// Session is the server-side record behind a session cookie
type Session struct {
	ID        string    `json:"-"`          // Redis key suffix, not stored in the value
	UserID    uint      `json:"user_id"`    // Authenticated user
	CreatedAt time.Time `json:"created_at"` // Login time
}

// Store persists sessions
type Store interface {
	Create(ctx context.Context, userID uint) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RedisStore keeps sessions in Redis with a TTL
type RedisStore struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Session lifetime
}

// NewRedisStore returns a Redis backed session store
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

// Create stores a new session for userID under a random id
func (s *RedisStore) Create(ctx context.Context, userID uint) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	// SET with expiry, so abandoned sessions clean themselves up
	if err := s.rdb.Set(ctx, key(sess.ID), b, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// Get loads a session by id
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound // Expired or never issued
	} else if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.UserID == 0 {
		return nil, ErrSessionNotFound // Unreadable records are treated as gone
	}
	sess.ID = id
	return &sess, nil
}

// Delete removes a session and reports whether it was live
func (s *RedisStore) Delete(ctx context.Context, id string) (bool, error) {
	n, err := s.rdb.Del(ctx, key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return n > 0, nil
}

// Ping checks the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
