package analytics

import (
	"hash/fnv"
	"sync"

	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// Fingerprint hashes the identity and freshness of a process/stage set.
// Two inputs with identical ids, update timestamps, and stage contents hash
// identically, so memoized aggregations can skip recomputation.
func Fingerprint(details []model.ProcessDetail) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeInt := func(v int64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}

	writeInt(int64(len(details)))
	for _, d := range details {
		writeInt(d.ID)
		writeInt(d.UpdatedAt.UnixNano())
		writeInt(int64(len(d.Stages)))
		for _, s := range d.Stages {
			writeInt(s.ID)
			writeInt(s.UpdatedAt.UnixNano())
			writeInt(s.Date.UnixNano())
			writeInt(int64(s.Order))
			h.Write([]byte(s.Name))
		}
	}
	return h.Sum64()
}

// Memo caches the last result of a single aggregation keyed by input
// fingerprint, mirroring a render-layer useMemo: unchanged input returns the
// cached value without recomputing. Safe for concurrent use.
type Memo[T any] struct {
	compute func([]model.ProcessDetail) T

	mu    sync.Mutex
	key   uint64
	value T
	valid bool
}

// NewMemo wraps an aggregation function with single-entry memoization.
func NewMemo[T any](compute func([]model.ProcessDetail) T) *Memo[T] {
	return &Memo[T]{compute: compute}
}

// Get returns the memoized result for details, recomputing only when the
// input fingerprint changed since the previous call.
func (m *Memo[T]) Get(details []model.ProcessDetail) T {
	key := Fingerprint(details)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.valid && m.key == key {
		return m.value
	}
	m.value = m.compute(details)
	m.key = key
	m.valid = true
	return m.value
}
