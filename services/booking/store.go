package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clearbook/models"
	"clearbook/utils"

	"github.com/go-redis/redis/v8"
)

// Key layout: pending sessions under "pending:<id>", completed snapshots
// under "completed:<id>". The pending key is written by the wizard and
// cleared exactly once, when scheduling completes.
const (
	pendingKeyPrefix   = "pending:"
	completedKeyPrefix = "completed:"

	// CompletedBookingTTL bounds how long the confirmation view stays readable.
	CompletedBookingTTL = 60 * time.Second
)

// SessionStore persists wizard state between steps.
type SessionStore interface {
	SaveSession(ctx context.Context, session *models.BookingSession, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SaveCompleted(ctx context.Context, sessionID string, record *models.CompletedBooking, ttl time.Duration) error
	GetCompleted(ctx context.Context, sessionID string) (*models.CompletedBooking, error)
}

// RedisSessionStore is the production store.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore uses the shared session cache client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{Client: utils.GetSessionCacheClient()}
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, session *models.BookingSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, pendingKeyPrefix+session.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, pendingKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, pendingKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) SaveCompleted(ctx context.Context, sessionID string, record *models.CompletedBooking, ttl time.Duration) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal completed booking: %w", err)
	}
	if err := s.Client.Set(ctx, completedKeyPrefix+sessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store completed booking: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) GetCompleted(ctx context.Context, sessionID string) (*models.CompletedBooking, error) {
	data, err := s.Client.Get(ctx, completedKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completed booking: %w", err)
	}
	var record models.CompletedBooking
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to parse completed booking: %w", err)
	}
	return &record, nil
}
