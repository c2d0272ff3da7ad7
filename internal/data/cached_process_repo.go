package data

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/auth"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// DefaultCacheTTL bounds staleness for read-through cached upstream reads.
// Mutations invalidate eagerly, so the TTL only covers writes made outside
// this service.
const DefaultCacheTTL = 5 * time.Minute

// CachedProcessRepo wraps a ProcessRepository with read-through caching.
// Reads are served from Redis when present; every mutation evicts the acting
// user's cached entries. Cache failures degrade to upstream reads.
type CachedProcessRepo struct {
	inner  core.ProcessRepository
	cache  core.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

// CachedProcessRepoOptions bundles dependencies for NewCachedProcessRepo.
type CachedProcessRepoOptions struct {
	Inner  core.ProcessRepository
	Cache  core.CacheRepository
	TTL    time.Duration
	Logger *slog.Logger
}

// NewCachedProcessRepo creates a caching decorator over a process repository.
func NewCachedProcessRepo(opts CachedProcessRepoOptions) *CachedProcessRepo {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedProcessRepo{inner: opts.Inner, cache: opts.Cache, ttl: ttl, logger: logger}
}

var _ core.ProcessRepository = (*CachedProcessRepo)(nil)

// readThrough fetches the cached value for key, or loads and caches it.
// Anonymous requests (empty key) and cache failures go straight upstream.
func readThrough[T any](ctx context.Context, r *CachedProcessRepo, key string, load func() (T, error)) (T, error) {
	var zero T
	if key != "" {
		cached, err := r.cache.Get(ctx, key)
		if err != nil {
			r.logger.Warn("cache read failed", "key", key, "error", err)
		} else if cached != nil {
			var out T
			if err := json.Unmarshal(cached, &out); err == nil {
				return out, nil
			}
			r.logger.Warn("cache entry corrupt, refetching", "key", key)
		}
	}

	loaded, err := load()
	if err != nil {
		return zero, err
	}

	if key != "" {
		if encoded, err := json.Marshal(loaded); err == nil {
			if err := r.cache.Set(ctx, key, encoded, r.ttl); err != nil {
				r.logger.Warn("cache write failed", "key", key, "error", err)
			}
		}
	}
	return loaded, nil
}

// invalidateUser evicts every cached read belonging to the acting user.
func (r *CachedProcessRepo) invalidateUser(ctx context.Context) {
	userID := auth.UserIDFromContext(ctx)
	if userID == "" {
		return
	}
	if _, err := r.cache.DeleteByPrefix(ctx, core.UserCachePrefix(userID)); err != nil {
		r.logger.Warn("cache invalidation failed", "user_id", userID, "error", err)
	}
}

func (r *CachedProcessRepo) listKey(ctx context.Context) string {
	userID := auth.UserIDFromContext(ctx)
	if userID == "" {
		return ""
	}
	return core.ProcessListCacheKey(userID)
}

func (r *CachedProcessRepo) detailKey(ctx context.Context, id int64) string {
	userID := auth.UserIDFromContext(ctx)
	if userID == "" {
		return ""
	}
	return core.ProcessDetailCacheKey(userID, id)
}

// List returns the acting user's processes, served from cache when fresh.
func (r *CachedProcessRepo) List(ctx context.Context) ([]*model.Process, error) {
	return readThrough(ctx, r, r.listKey(ctx), func() ([]*model.Process, error) {
		return r.inner.List(ctx)
	})
}

// GetByID is a point read; it is not cached separately from the detail view.
func (r *CachedProcessRepo) GetByID(ctx context.Context, id int64) (*model.Process, error) {
	return r.inner.GetByID(ctx, id)
}

// GetDetail returns a process with stages, served from cache when fresh.
func (r *CachedProcessRepo) GetDetail(ctx context.Context, id int64) (*model.ProcessDetail, error) {
	return readThrough(ctx, r, r.detailKey(ctx, id), func() (*model.ProcessDetail, error) {
		return r.inner.GetDetail(ctx, id)
	})
}

// Create creates a process and evicts the user's cached reads.
func (r *CachedProcessRepo) Create(ctx context.Context, req *model.CreateProcessRequest) (*model.Process, error) {
	created, err := r.inner.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	r.invalidateUser(ctx)
	return created, nil
}

// Update updates a process and evicts the user's cached reads.
func (r *CachedProcessRepo) Update(ctx context.Context, id int64, req *model.UpdateProcessRequest) (*model.Process, error) {
	updated, err := r.inner.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	r.invalidateUser(ctx)
	return updated, nil
}

// Delete deletes a process and evicts the user's cached reads.
func (r *CachedProcessRepo) Delete(ctx context.Context, id int64) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidateUser(ctx)
	return nil
}

// SetPublic toggles sharing, evicting both the user's reads and the share
// entry so a disabled link stops resolving promptly.
func (r *CachedProcessRepo) SetPublic(ctx context.Context, id int64, public bool) (*model.Process, error) {
	updated, err := r.inner.SetPublic(ctx, id, public)
	if err != nil {
		return nil, err
	}
	r.invalidateUser(ctx)
	if updated.ShareID != nil {
		if _, err := r.cache.Delete(ctx, core.ShareCacheKey(*updated.ShareID)); err != nil {
			r.logger.Warn("share cache invalidation failed", "share_id", *updated.ShareID, "error", err)
		}
	}
	return updated, nil
}

// GetByShareID resolves a shared process, cached under the share id since
// anonymous viewers have no per-user namespace.
func (r *CachedProcessRepo) GetByShareID(ctx context.Context, shareID string) (*model.ProcessDetail, error) {
	return readThrough(ctx, r, core.ShareCacheKey(shareID), func() (*model.ProcessDetail, error) {
		return r.inner.GetByShareID(ctx, shareID)
	})
}
