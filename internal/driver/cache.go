package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"quill/internal/diag"
)

// Current schema version - increment when DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest identifies a literal list file by its content.
type Digest [sha256.Size]byte

// ContentDigest hashes a file's raw content.
func ContentDigest(content []byte) Digest {
	return sha256.Sum256(content)
}

// DiskCache stores per-file check results keyed by content digest.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the serialized form of one FileResult.
type DiskPayload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	Path     string
	Literals int
	Records  []Record
	Diags    []diag.Diagnostic
}

func newDiskPayload(res *FileResult) *DiskPayload {
	return &DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Path:     res.Path,
		Literals: res.Literals,
		Records:  res.Records,
		Diags:    res.Bag.Items(),
	}
}

// restore rebuilds a FileResult from a cached payload. The stored path is
// replaced by the current one so moved files still report correctly.
func (p *DiskPayload) restore(path string, maxDiags int) *FileResult {
	bag := diag.NewBag(maxDiags)
	for _, d := range p.Diags {
		d.Path = path
		bag.Add(d)
	}
	records := make([]Record, len(p.Records))
	for i, r := range p.Records {
		r.Path = path
		records[i] = r
	}
	return &FileResult{
		Path:     path,
		Literals: p.Literals,
		Records:  records,
		Bag:      bag,
	}
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. Returns false
// on a miss and on payloads written by a different schema version.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}
