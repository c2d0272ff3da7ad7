package data

import (
	"context"
	"log/slog"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/auth"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// CachedStageRepo wraps a StageRepository. Stage reads are always part of a
// process detail view upstream, so this decorator does not cache reads; its
// job is evicting the user's cached process entries on every stage mutation
// since those embed the stage list and the derived status.
type CachedStageRepo struct {
	inner  core.StageRepository
	cache  core.CacheRepository
	logger *slog.Logger
}

// CachedStageRepoOptions bundles dependencies for NewCachedStageRepo.
type CachedStageRepoOptions struct {
	Inner  core.StageRepository
	Cache  core.CacheRepository
	Logger *slog.Logger
}

// NewCachedStageRepo creates an invalidating decorator over a stage repository.
func NewCachedStageRepo(opts CachedStageRepoOptions) *CachedStageRepo {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedStageRepo{inner: opts.Inner, cache: opts.Cache, logger: logger}
}

var _ core.StageRepository = (*CachedStageRepo)(nil)

func (r *CachedStageRepo) invalidateUser(ctx context.Context) {
	userID := auth.UserIDFromContext(ctx)
	if userID == "" {
		return
	}
	if _, err := r.cache.DeleteByPrefix(ctx, core.UserCachePrefix(userID)); err != nil {
		r.logger.Warn("cache invalidation failed", "user_id", userID, "error", err)
	}
}

// ListByProcess passes through to the upstream repository.
func (r *CachedStageRepo) ListByProcess(ctx context.Context, processID int64) ([]*model.Stage, error) {
	return r.inner.ListByProcess(ctx, processID)
}

// Create adds a stage and evicts the user's cached process reads.
func (r *CachedStageRepo) Create(ctx context.Context, req *model.CreateStageRequest) (*model.Stage, error) {
	created, err := r.inner.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	r.invalidateUser(ctx)
	return created, nil
}

// Update updates a stage and evicts the user's cached process reads.
func (r *CachedStageRepo) Update(ctx context.Context, id int64, req *model.UpdateStageRequest) (*model.Stage, error) {
	updated, err := r.inner.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	r.invalidateUser(ctx)
	return updated, nil
}

// Delete removes a stage and evicts the user's cached process reads.
func (r *CachedStageRepo) Delete(ctx context.Context, id int64) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidateUser(ctx)
	return nil
}
