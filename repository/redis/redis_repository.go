package redis

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/muhammadheryan/hub-fulfillment/cmd/redis"
	"github.com/muhammadheryan/hub-fulfillment/model"
)

const (
	sessionPrefix = "session:"
	hubPrefix     = "hub:"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID string, session *model.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetHub(ctx context.Context, hubID uint64) (*model.Hub, error)
	SetHub(ctx context.Context, hub *model.Hub, ttl time.Duration) error
	InvalidateHub(ctx context.Context, hubID uint64) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key, empty string on miss
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if stderrors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// SetSession stores the session payload under the token id
func (r *redis) SetSession(ctx context.Context, sessionID string, session *model.Session, ttl time.Duration) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.SetWithTTL(ctx, sessionPrefix+sessionID, string(b), ttl)
}

// GetSession returns nil when the session is gone
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	val, err := r.Get(ctx, sessionPrefix+sessionID)
	if err != nil || val == "" {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, sessionPrefix+sessionID)
}

// GetHub returns nil on cache miss
func (r *redis) GetHub(ctx context.Context, hubID uint64) (*model.Hub, error) {
	val, err := r.Get(ctx, hubKey(hubID))
	if err != nil || val == "" {
		return nil, err
	}
	var hub model.Hub
	if err := json.Unmarshal([]byte(val), &hub); err != nil {
		return nil, err
	}
	return &hub, nil
}

func (r *redis) SetHub(ctx context.Context, hub *model.Hub, ttl time.Duration) error {
	b, err := json.Marshal(hub)
	if err != nil {
		return err
	}
	return r.SetWithTTL(ctx, hubKey(hub.ID), string(b), ttl)
}

func (r *redis) InvalidateHub(ctx context.Context, hubID uint64) error {
	return r.Delete(ctx, hubKey(hubID))
}

func hubKey(hubID uint64) string {
	return hubPrefix + strconv.FormatUint(hubID, 10)
}
