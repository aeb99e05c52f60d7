package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"reservation-system/internal/entities"
	apperrors "reservation-system/pkg/errors"

	"github.com/go-redis/redis/v8"
)

type FormSessionRepositoryInterface interface {
	Save(ctx context.Context, session *entities.FormSession) error
	Find(ctx context.Context, id string) (*entities.FormSession, error)
	Delete(ctx context.Context, id string) error
}

// RedisFormSessionRepository keeps reservation form sessions in Redis.
// The TTL doubles as the navigation-away reset: an abandoned draft
// simply expires.
type RedisFormSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFormSessionRepository(client *redis.Client, ttl time.Duration) FormSessionRepositoryInterface {
	return &RedisFormSessionRepository{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "form_session:" + id
}

func (r *RedisFormSessionRepository) Save(ctx context.Context, session *entities.FormSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(session.ID), data, r.ttl).Err()
}

func (r *RedisFormSessionRepository) Find(ctx context.Context, id string) (*entities.FormSession, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrFormSessionNotFound
		}
		return nil, err
	}
	var session entities.FormSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisFormSessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
