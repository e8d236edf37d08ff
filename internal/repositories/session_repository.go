package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"xetasuite/internal/models"
)

// SessionRepository stores sessions in Redis; the TTL on each key makes
// expiry enforcement free.
type SessionRepository struct {
	Client *redis.Client
}

const sessionKeyPrefix = "session:"

func (r *SessionRepository) SetSession(ctx context.Context, s models.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return models.ErrSessionNotFound
	}
	return r.Client.Set(ctx, sessionKeyPrefix+s.Token, data, ttl).Err()
}

func (r *SessionRepository) GetSession(ctx context.Context, token string) (models.Session, error) {
	data, err := r.Client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return models.Session{}, models.ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return models.Session{}, err
	}
	if s.Expired(time.Now()) {
		return models.Session{}, models.ErrSessionNotFound
	}
	return s, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, token string) error {
	return r.Client.Del(ctx, sessionKeyPrefix+token).Err()
}
