// Package cache is a content-addressed on-disk store for component meshes.
//
// Entries are CBOR files named by key. Caching never fails the caller:
// unreadable entries are misses and failed writes are only logged.
package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/rocketmesh/internal/logger"
	"github.com/Faultbox/rocketmesh/internal/mesh"
	"github.com/Faultbox/rocketmesh/pkg/math"
	"github.com/fxamacker/cbor/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const fileExt = ".cbor"

// Cache stores meshes under a directory.
type Cache struct {
	dir string
	enc cbor.EncMode

	lookups metric.Int64Counter
	stores  metric.Int64Counter
}

type blob struct {
	Version int        `cbor:"1,keyasint"`
	Key     string     `cbor:"2,keyasint"`
	Parts   []partBlob `cbor:"3,keyasint"`
}

type partBlob struct {
	Name     string     `cbor:"1,keyasint"`
	Vertices []float64  `cbor:"2,keyasint"` // x, y, z triples
	Faces    [][]uint32 `cbor:"3,keyasint"`
}

// New opens a cache rooted at dir, creating it if needed.
// Metrics go to the global OTel meter provider (no-op if not configured).
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	enc, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("creating cbor encoder: %w", err)
	}

	c := &Cache{dir: dir, enc: enc}

	m := meter()
	c.lookups, err = m.Int64Counter(
		"rocketmesh.cache.lookups",
		metric.WithDescription("Mesh cache lookups by result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating lookups counter: %w", err)
	}
	c.stores, err = m.Int64Counter(
		"rocketmesh.cache.stores",
		metric.WithDescription("Mesh cache writes by result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stores counter: %w", err)
	}

	return c, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+fileExt)
}

// Load returns the parts stored under key. Any failure is reported as a miss.
func (c *Cache) Load(key string) (*mesh.Parts, bool) {
	parts, err := c.load(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("mesh cache miss", zap.String("key", key))
		} else {
			logger.Warn("mesh cache entry unusable, regenerating", zap.String("key", key), zap.Error(err))
		}
		c.count(c.lookups, "miss")
		return nil, false
	}
	logger.Debug("mesh cache hit", zap.String("key", key))
	c.count(c.lookups, "hit")
	return parts, true
}

func (c *Cache) load(key string) (*mesh.Parts, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, err
	}

	var b blob
	if err := cbor.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	if b.Version != schemaVersion {
		return nil, fmt.Errorf("schema version %d, want %d", b.Version, schemaVersion)
	}
	if b.Key != key {
		return nil, fmt.Errorf("entry holds key %s", b.Key)
	}
	return decodeParts(b.Parts)
}

// Store persists parts under key. Errors are logged and dropped.
func (c *Cache) Store(key string, parts *mesh.Parts) {
	if err := c.store(key, parts); err != nil {
		logger.Warn("mesh cache store failed", zap.String("key", key), zap.Error(err))
		c.count(c.stores, "error")
		return
	}
	c.count(c.stores, "ok")
}

func (c *Cache) store(key string, parts *mesh.Parts) error {
	data, err := c.enc.Marshal(blob{
		Version: schemaVersion,
		Key:     key,
		Parts:   encodeParts(parts),
	})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(c.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// Last rename wins.
	return os.Rename(tmp.Name(), c.path(key))
}

// Clear removes every stored entry and any leftover temp files.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading cache dir: %w", err)
	}

	var errs []error
	removed := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !(strings.HasSuffix(name, fileExt) || strings.HasSuffix(name, ".tmp")) {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	logger.Info("mesh cache cleared", zap.String("dir", c.dir), zap.Int("removed", removed))
	return errors.Join(errs...)
}

// Len returns the number of stored entries.
func (c *Cache) Len() (int, error) {
	matches, err := filepath.Glob(filepath.Join(c.dir, "*"+fileExt))
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

func (c *Cache) count(counter metric.Int64Counter, result string) {
	counter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("result", result)))
}

func encodeParts(parts *mesh.Parts) []partBlob {
	out := make([]partBlob, 0, parts.Len())
	parts.Each(func(name string, m *mesh.Mesh) {
		pb := partBlob{
			Name:     name,
			Vertices: make([]float64, 0, 3*len(m.Vertices)),
			Faces:    make([][]uint32, len(m.Faces)),
		}
		for _, v := range m.Vertices {
			pb.Vertices = append(pb.Vertices, v.X, v.Y, v.Z)
		}
		for i, f := range m.Faces {
			pb.Faces[i] = []uint32(f)
		}
		out = append(out, pb)
	})
	return out
}

func decodeParts(blobs []partBlob) (*mesh.Parts, error) {
	parts := mesh.NewParts()
	for _, pb := range blobs {
		if len(pb.Vertices)%3 != 0 {
			return nil, fmt.Errorf("part %s: truncated vertex data", pb.Name)
		}
		m := &mesh.Mesh{
			Vertices: make([]math.Vec3, len(pb.Vertices)/3),
			Faces:    make([]mesh.Face, len(pb.Faces)),
		}
		for i := range m.Vertices {
			v := math.Vec3{X: pb.Vertices[3*i], Y: pb.Vertices[3*i+1], Z: pb.Vertices[3*i+2]}
			if !v.IsFinite() {
				return nil, fmt.Errorf("part %s: vertex %d is not finite", pb.Name, i)
			}
			m.Vertices[i] = v
		}
		for i, f := range pb.Faces {
			for _, idx := range f {
				if int(idx) >= len(m.Vertices) {
					return nil, fmt.Errorf("part %s: face index %d out of range", pb.Name, idx)
				}
			}
			m.Faces[i] = mesh.Face(f)
		}
		parts.Set(pb.Name, m)
	}
	return parts, nil
}
