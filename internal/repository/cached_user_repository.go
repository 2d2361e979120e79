package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"users-api/internal/cache"
	"users-api/internal/entities"
)

const userCachePrefix = "users:"

// cachedUserRepository serves FindByID from the cache and evicts on writes.
// Cache failures are logged and fall through to the wrapped repository.
type cachedUserRepository struct {
	UserRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedUserRepository wraps repo with a read-through cache; a nil cache returns repo unchanged
func NewCachedUserRepository(repo UserRepository, c cache.Cache, ttl time.Duration) UserRepository {
	if c == nil {
		return repo
	}
	return &cachedUserRepository{UserRepository: repo, cache: c, ttl: ttl}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("%sid:%d", userCachePrefix, id)
}

func (r *cachedUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	key := userCacheKey(id)

	var cached entities.User
	err := r.cache.GetJSON(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("Warning: cache read failed for %s: %v", key, err)
	}

	user, err := r.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, key, user, r.ttl); err != nil {
		log.Printf("Warning: cache write failed for %s: %v", key, err)
	}
	return user, nil
}

func (r *cachedUserRepository) Upsert(ctx context.Context, user *entities.User) (*entities.User, error) {
	saved, err := r.UserRepository.Upsert(ctx, user)
	r.evict(ctx, user.ID)
	return saved, err
}

func (r *cachedUserRepository) Delete(ctx context.Context, id int64) error {
	err := r.UserRepository.Delete(ctx, id)
	r.evict(ctx, id)
	return err
}

func (r *cachedUserRepository) DeleteAll(ctx context.Context) error {
	if err := r.UserRepository.DeleteAll(ctx); err != nil {
		return err
	}
	if err := r.cache.DeleteByPrefix(ctx, userCachePrefix); err != nil {
		log.Printf("Warning: cache flush failed: %v", err)
	}
	return nil
}

func (r *cachedUserRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, userCacheKey(id)); err != nil {
		log.Printf("Warning: cache evict failed for user %d: %v", id, err)
	}
}
