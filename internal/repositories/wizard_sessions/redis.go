package wizard_sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// DefaultTTL is how long an untouched session survives
const DefaultTTL = 24 * time.Hour

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	TTL          time.Duration
}

// NewRedisRepository creates a Redis-backed session repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = NewRealTimeProvider()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
		ttl:          ttl,
	}
}

// NewRedis creates a repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func sessionKey(id string) string {
	return fmt.Sprintf("wizard_session:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:wizard_session", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, session *wizard.Session) error {
	if err := validate(session); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to check wizard session existence")
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("wizard session '%s' already exists", session.ID).
			WithMeta("session_id", session.ID)
	}

	now := r.timeProvider.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	return r.set(ctx, session)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*wizard.Session, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("wizard session '%s' not found", id).
				WithMeta("session_id", id)
		}
		return nil, dnderr.Wrap(err, "failed to get wizard session from Redis")
	}

	var session wizard.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, dnderr.Wrap(err, "failed to unmarshal wizard session")
	}
	return &session, nil
}

func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) (*wizard.Session, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	id, err := r.client.Get(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("no wizard session for owner '%s'", ownerID).
				WithMeta("owner_id", ownerID)
		}
		return nil, dnderr.Wrap(err, "failed to get owner wizard session from Redis")
	}

	return r.Get(ctx, id)
}

func (r *redisRepo) Update(ctx context.Context, session *wizard.Session) error {
	if err := validate(session); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to check wizard session existence")
	}
	if exists == 0 {
		return dnderr.NotFoundf("wizard session '%s' not found", session.ID).
			WithMeta("session_id", session.ID)
	}

	session.UpdatedAt = r.timeProvider.Now()
	return r.set(ctx, session)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	session, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	activeID, err := r.client.Get(ctx, ownerKey(session.OwnerID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return dnderr.Wrap(err, "failed to get owner wizard session from Redis")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, sessionKey(id))
	if activeID == id {
		pipe.Del(ctx, ownerKey(session.OwnerID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to delete wizard session from Redis")
	}
	return nil
}

func (r *redisRepo) set(ctx context.Context, session *wizard.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal wizard session")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(session.ID), string(data), r.ttl)
	pipe.Set(ctx, ownerKey(session.OwnerID), session.ID, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to save wizard session to Redis")
	}
	return nil
}
