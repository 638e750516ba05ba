package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookeasy/pkg/cache"
)

// Repository is the session store. Sessions are transient by contract,
// so the only implementation rides on the TTL-bound cache.
type Repository interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

const sessionKeyPrefix = "bookeasy:appointments:session:"

type cacheRepository struct {
	store cache.Service
	ttl   time.Duration
}

// NewRepository creates a cache-backed session repository
func NewRepository(store cache.Service, ttl time.Duration) Repository {
	return &cacheRepository{store: store, ttl: ttl}
}

func (r *cacheRepository) Save(ctx context.Context, session *Session) error {
	if err := r.store.Set(ctx, sessionKeyPrefix+session.ID, session, r.ttl); err != nil {
		return fmt.Errorf("failed to save appointment session: %w", err)
	}
	return nil
}

func (r *cacheRepository) Get(ctx context.Context, id string) (*Session, error) {
	var session Session
	if err := r.store.Get(ctx, sessionKeyPrefix+id, &session); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load appointment session: %w", err)
	}
	return &session, nil
}

func (r *cacheRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete appointment session: %w", err)
	}
	return nil
}
