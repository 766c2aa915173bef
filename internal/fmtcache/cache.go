// Package fmtcache persists a small msgpack-encoded index of
// path -> (contentHash, optionsHash) so a repeat run over an
// unchanged tree can skip reformatting entirely, grounded on the
// teacher's internal/driver/dcache.go disk-cache pattern. A cache
// miss always falls back to reformatting; this is a performance
// layer over the idempotence invariant, never a correctness
// dependency.
package fmtcache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

const schemaVersion uint16 = 1

// Entry records the content and options hash a path was last
// formatted with, so a later run can tell whether either changed.
type Entry struct {
	ContentHash string
	OptionsHash string
}

type diskPayload struct {
	Schema  uint16
	Entries map[string]Entry
}

// Cache is a thread-safe, single-file on-disk index.
type Cache struct {
	mu      sync.RWMutex
	path    string
	entries map[string]Entry
}

// Open loads (or initializes) the cache at path, typically
// "<root>/.cstyle-cache".
func Open(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[string]Entry)}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	defer f.Close()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return c, nil // a corrupt cache is treated as empty, never fatal
	}
	if payload.Schema == schemaVersion {
		c.entries = payload.Entries
	}
	return c, nil
}

// Lookup reports whether path was last formatted with the same
// content and options hash, meaning reformatting can be skipped.
func (c *Cache) Lookup(path, contentHash, optionsHash string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[path]
	return ok && e.ContentHash == contentHash && e.OptionsHash == optionsHash
}

// Put records path's latest content/options hash.
func (c *Cache) Put(path, contentHash, optionsHash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string]Entry)
	}
	c.entries[path] = Entry{ContentHash: contentHash, OptionsHash: optionsHash}
}

// Save atomically writes the cache back to disk.
func (c *Cache) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(c.path), "tmp-cstyle-cache-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	if err := msgpack.NewEncoder(f).Encode(diskPayload{Schema: schemaVersion, Entries: c.entries}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, c.path)
}

// HashContent returns the hex SHA-256 of content, used as the cache
// key component for a file's bytes.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// HashOptions returns the hex SHA-256 of the inline option text, so a
// changed set of formatting flags invalidates every cached entry.
func HashOptions(optionsText string) string {
	sum := sha256.Sum256([]byte(optionsText))
	return hex.EncodeToString(sum[:])
}
