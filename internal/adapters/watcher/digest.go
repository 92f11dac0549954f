package watcher

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
)

// DigestCache remembers the content digest of watched files, so that a write
// leaving the bytes unchanged does not trigger a regeneration.
type DigestCache struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]uint64
}

// NewDigestCache creates an empty cache.
func NewDigestCache() *DigestCache {
	return &DigestCache{digests: make(map[unique.Handle[string]]uint64)}
}

// Update hashes the file at path and reports whether its content differs from
// the last recorded digest. A file seen for the first time counts as changed.
// A missing file is forgotten and reported with fs.ErrNotExist.
func (c *DigestCache) Update(path string) (bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the watched request file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Forget(path)
		}
		return false, err
	}
	sum := xxhash.Sum64(data)

	c.mu.Lock()
	defer c.mu.Unlock()

	key := unique.Make(path)
	prev, ok := c.digests[key]
	c.digests[key] = sum
	return !ok || prev != sum, nil
}

// Forget drops the digest of path and reports whether one was recorded.
func (c *DigestCache) Forget(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := unique.Make(path)
	_, ok := c.digests[key]
	delete(c.digests, key)
	return ok
}
