package probe

import (
	"context"
	"os"
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

// Cache stores probe results keyed by file identity.
type Cache interface {
	Get(key string) (*ProbeResult, bool, error)
	Set(key string, pr *ProbeResult) error
}

// Cached wraps a Prober with a Cache. Keys combine path, size and
// modification time, so a rewritten file is probed again. Cache failures
// are not fatal: a failed read probes the file, a failed write is returned
// only through OnError.
type Cached struct {
	Inner   Prober
	Store   Cache
	OnError func(error)
}

func (c Cached) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	key, err := cacheKey(path)
	if err != nil {
		return c.Inner.Probe(ctx, path)
	}

	if pr, ok, err := c.Store.Get(key); err != nil {
		c.report(errors.Wrap(err, "probe cache read"))
	} else if ok {
		return pr, nil
	}

	pr, err := c.Inner.Probe(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := c.Store.Set(key, pr); err != nil {
		c.report(errors.Wrap(err, "probe cache write"))
	}
	return pr, nil
}

func (c Cached) report(err error) {
	if c.OnError != nil {
		c.OnError(err)
	}
}

func cacheKey(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return path + "|" + strconv.FormatInt(fi.Size(), 10) + "|" + strconv.FormatInt(fi.ModTime().UnixNano(), 10), nil
}

// MemoryCache is an in-process Cache safe for concurrent use.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*ProbeResult
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*ProbeResult)}
}

func (m *MemoryCache) Get(key string) (*ProbeResult, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pr, ok := m.entries[key]
	return pr, ok, nil
}

func (m *MemoryCache) Set(key string, pr *ProbeResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = pr
	return nil
}

// Len returns the number of cached entries.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
