// Package session owns cart storage between requests: each browser
// session maps to one Redis value holding the shopper identity and the
// current cart.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agalyaece/e-commerce-website/internal/cart"
	"github.com/agalyaece/e-commerce-website/internal/config"
	"github.com/agalyaece/e-commerce-website/internal/logging"
)

const sessionKeyPrefix = "session:"

// Session is the per-browser state. The cart lives here and nowhere else;
// the engine receives it as a value and the handler saves it back.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	Cart       cart.Cart `json:"cart"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store persists sessions. Reads of a missing or expired session return a
// fresh empty one rather than an error.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions in Redis with a sliding TTL. Two concurrent
// requests for the same session race with last-write-wins semantics; that
// is accepted, normal browser use is one request at a time.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(cfg config.RedisConfig, ttl time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logging.NewLogger("session-store"),
	}
}

// Get loads a session, or returns a fresh empty one when the key is
// missing or expired.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return &Session{ID: id, Cart: cart.New(), CreatedAt: time.Now()}, nil
	}
	if err != nil {
		s.logger.Error("Session get error", logging.Fields{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	if sess.Cart == nil {
		sess.Cart = cart.New()
	}

	return &sess, nil
}

// Save writes the session back and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+sess.ID, data, s.ttl).Err(); err != nil {
		s.logger.Error("Session save error", logging.Fields{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return err
	}

	return nil
}

// Delete drops the session entirely.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

// Ping verifies the Redis connection, for readiness checks.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
