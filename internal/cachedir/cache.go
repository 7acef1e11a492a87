// Package cachedir implements the on-disk response cache shared by the
// HTTP clients, and the tolerant cleanup that runs after a render.
package cachedir

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
)

// Cache stores raw response bodies keyed by request identity. Entries are
// plain files named by the SHA-256 of the key, so the directory can be
// inspected and wiped without any index.
type Cache struct {
	Dir string
}

// New returns a cache rooted at dir. The directory is created lazily on
// the first Put.
func New(dir string) *Cache {
	return &Cache{Dir: dir}
}

// Get returns the cached body for key, if present.
func (c *Cache) Get(key string) ([]byte, bool) {
	if c == nil || c.Dir == "" {
		return nil, false
	}
	b, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		return nil, false
	}
	return b, true
}

// Put stores body under key, overwriting any previous entry.
func (c *Cache) Put(key string, body []byte) error {
	if c == nil || c.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.entryPath(key), body, 0o644)
}

func (c *Cache) entryPath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.Dir, hex.EncodeToString(sum[:])+".json")
}
