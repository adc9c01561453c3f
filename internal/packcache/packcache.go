// Package packcache stores lowered packs on disk, keyed by a digest of
// the front-end dump they were produced from. Lowering is deterministic,
// so a digest hit can skip the whole pass.
package packcache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"glslpack/internal/pack"
)

// Schema version of the on-disk payload. Bump when the Pack layout or
// the payload framing changes; stale entries are treated as misses.
const schemaVersion uint16 = 1

// Digest identifies one cache entry: a SHA-256 over the dump bytes and
// the shader language version the dump was compiled as.
type Digest [sha256.Size]byte

// DigestFor computes the cache key for a dump.
func DigestFor(dump []byte, version int) Digest {
	h := sha256.New()
	var v [8]byte
	binary.LittleEndian.PutUint64(v[:], uint64(version))
	h.Write(v[:])
	h.Write(dump)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// IsZero reports whether the digest was never computed.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}

// Cache is a content-addressed pack store on the local filesystem.
// Safe for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type payload struct {
	Schema uint16
	Pack   *pack.Pack
}

// Open initializes the cache at the standard per-user location,
// honoring XDG_CACHE_HOME.
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenAt(filepath.Join(base, app))
}

// OpenAt initializes the cache rooted at an explicit directory.
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "packs", hex.EncodeToString(key[:])+".mp")
}

// Put writes a pack under the given key. The entry appears atomically:
// it is encoded into a temp file and renamed into place.
func (c *Cache) Put(key Digest, p *pack.Pack) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	dst := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(dst), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(&payload{Schema: schemaVersion, Pack: p}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), dst)
}

// Get loads the pack stored under the given key. A missing entry or an
// entry written by an older schema is a miss, not an error.
func (c *Cache) Get(key Digest) (*pack.Pack, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var pl payload
	if err := msgpack.NewDecoder(f).Decode(&pl); err != nil {
		return nil, false, err
	}
	if pl.Schema != schemaVersion || pl.Pack == nil {
		return nil, false, nil
	}
	return pl.Pack, true, nil
}

// DropAll invalidates every entry, useful after format changes. The
// directory is renamed aside first so readers never see a half-empty
// cache.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
