package data

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/auth"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// memCache is an in-memory CacheRepository for decorator tests.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (m *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[key], nil
}

func (m *memCache) Delete(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok, nil
}

func (m *memCache) DeleteByPrefix(_ context.Context, prefix string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
			n++
		}
	}
	return n, nil
}

func (m *memCache) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok, nil
}

func (m *memCache) SetIfNotExists(_ context.Context, key string, value []byte, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[key]; ok {
		return false, nil
	}
	m.entries[key] = value
	return true, nil
}

func (m *memCache) Health(context.Context) error { return nil }

var _ core.CacheRepository = (*memCache)(nil)

// stubProcessRepo counts upstream calls.
type stubProcessRepo struct {
	core.ProcessRepository
	listCalls   int
	detailCalls int
	processes   []*model.Process
	detail      *model.ProcessDetail
}

func (s *stubProcessRepo) List(context.Context) ([]*model.Process, error) {
	s.listCalls++
	return s.processes, nil
}

func (s *stubProcessRepo) GetDetail(context.Context, int64) (*model.ProcessDetail, error) {
	s.detailCalls++
	return s.detail, nil
}

func (s *stubProcessRepo) GetByShareID(context.Context, string) (*model.ProcessDetail, error) {
	s.detailCalls++
	return s.detail, nil
}

func (s *stubProcessRepo) Create(context.Context, *model.CreateProcessRequest) (*model.Process, error) {
	return &model.Process{ID: 9, Company: "New"}, nil
}

func (s *stubProcessRepo) SetPublic(context.Context, int64, bool) (*model.Process, error) {
	shareID := "sh-1"
	return &model.Process{ID: 1, IsPublic: true, ShareID: &shareID}, nil
}

func userCtx(userID string) context.Context {
	return auth.WithSession(context.Background(), &auth.Session{UserID: userID})
}

func TestCachedProcessRepo_ListReadThrough(t *testing.T) {
	stub := &stubProcessRepo{processes: []*model.Process{{ID: 1, Company: "Acme"}}}
	cache := newMemCache()
	repo := NewCachedProcessRepo(CachedProcessRepoOptions{Inner: stub, Cache: cache})

	ctx := userCtx("u1")

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stub.listCalls, "second read should come from cache")
	assert.Equal(t, first, second)
}

func TestCachedProcessRepo_AnonymousBypassesCache(t *testing.T) {
	stub := &stubProcessRepo{}
	repo := NewCachedProcessRepo(CachedProcessRepoOptions{Inner: stub, Cache: newMemCache()})

	_, err := repo.List(context.Background())
	require.NoError(t, err)
	_, err = repo.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stub.listCalls)
}

func TestCachedProcessRepo_MutationEvictsUser(t *testing.T) {
	stub := &stubProcessRepo{processes: []*model.Process{{ID: 1}}}
	cache := newMemCache()
	repo := NewCachedProcessRepo(CachedProcessRepoOptions{Inner: stub, Cache: cache})

	ctx := userCtx("u1")
	_, err := repo.List(ctx)
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.CreateProcessRequest{Company: "New"})
	require.NoError(t, err)

	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.listCalls, "list after mutation should refetch")
}

func TestCachedProcessRepo_MutationDoesNotEvictOtherUsers(t *testing.T) {
	stub := &stubProcessRepo{processes: []*model.Process{{ID: 1}}}
	cache := newMemCache()
	repo := NewCachedProcessRepo(CachedProcessRepoOptions{Inner: stub, Cache: cache})

	_, err := repo.List(userCtx("u1"))
	require.NoError(t, err)
	_, err = repo.List(userCtx("u2"))
	require.NoError(t, err)

	_, err = repo.Create(userCtx("u1"), &model.CreateProcessRequest{Company: "New"})
	require.NoError(t, err)

	_, err = repo.List(userCtx("u2"))
	require.NoError(t, err)
	assert.Equal(t, 2, stub.listCalls, "u2's cache entry should survive u1's mutation")
}

func TestCachedProcessRepo_SetPublicEvictsShareEntry(t *testing.T) {
	stub := &stubProcessRepo{detail: &model.ProcessDetail{Process: model.Process{ID: 1}}}
	cache := newMemCache()
	repo := NewCachedProcessRepo(CachedProcessRepoOptions{Inner: stub, Cache: cache})

	// Prime the share cache as an anonymous viewer.
	_, err := repo.GetByShareID(context.Background(), "sh-1")
	require.NoError(t, err)
	exists, err := cache.Exists(context.Background(), core.ShareCacheKey("sh-1"))
	require.NoError(t, err)
	require.True(t, exists)

	_, err = repo.SetPublic(userCtx("u1"), 1, false)
	require.NoError(t, err)

	exists, err = cache.Exists(context.Background(), core.ShareCacheKey("sh-1"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCachedStageRepo_MutationEvictsProcessReads(t *testing.T) {
	processStub := &stubProcessRepo{processes: []*model.Process{{ID: 1}}}
	cache := newMemCache()
	processes := NewCachedProcessRepo(CachedProcessRepoOptions{Inner: processStub, Cache: cache})
	stages := NewCachedStageRepo(CachedStageRepoOptions{Inner: &stubStageRepo{}, Cache: cache})

	ctx := userCtx("u1")
	_, err := processes.List(ctx)
	require.NoError(t, err)

	_, err = stages.Create(ctx, &model.CreateStageRequest{ProcessID: 1, Name: model.StageApplied})
	require.NoError(t, err)

	_, err = processes.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, processStub.listCalls)
}

type stubStageRepo struct {
	core.StageRepository
}

func (s *stubStageRepo) Create(context.Context, *model.CreateStageRequest) (*model.Stage, error) {
	return &model.Stage{ID: 1}, nil
}
