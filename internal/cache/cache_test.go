package cache

import (
	gomath "math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/internal/mesh"
	"github.com/Faultbox/rocketmesh/pkg/math"
)

func newCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(filepath.Join(t.TempDir(), "meshes"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func noseParts(t *testing.T) (string, *mesh.Parts) {
	t.Helper()
	g, err := geometry.NewNoseConeGeometry(0.381, 0.0777875, "Von Karman", 0.0777875)
	if err != nil {
		t.Fatalf("NewNoseConeGeometry: %v", err)
	}
	m, err := mesh.NoseCone(g)
	if err != nil {
		t.Fatalf("NoseCone: %v", err)
	}
	parts := mesh.NewParts()
	parts.Set(mesh.PartNoseCone, m)
	return Key("nosecone", g.Fields()), parts
}

func TestRoundTrip(t *testing.T) {
	c := newCache(t)
	key, parts := noseParts(t)

	c.Store(key, parts)
	got, ok := c.Load(key)
	if !ok {
		t.Fatal("expected cache hit after store")
	}
	// Vertex for vertex, face for face
	if !got.ApproxEqual(parts, 0) {
		t.Error("loaded mesh differs from stored mesh")
	}
}

func TestRoundTripFinSet(t *testing.T) {
	c := newCache(t)
	g, _ := geometry.NewFinGeometry(3, 0.2, 0.1, 0.1, 0.05, 0.05)
	parts := mesh.FinSet(g)
	key := Key("fins", g.Fields())

	c.Store(key, parts)
	got, ok := c.Load(key)
	if !ok {
		t.Fatal("expected cache hit after store")
	}
	if !got.ApproxEqual(parts, 0) {
		t.Error("loaded fin set differs from stored fin set")
	}
	names := got.Names()
	if len(names) != 3 || names[0] != "fin_1" || names[2] != "fin_3" {
		t.Errorf("part order not preserved: %v", names)
	}
}

func TestLoadMissing(t *testing.T) {
	c := newCache(t)
	if _, ok := c.Load(Key("tail", map[string]string{"length": "1"})); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestLoadCorrupt(t *testing.T) {
	c := newCache(t)
	key, parts := noseParts(t)
	c.Store(key, parts)

	if err := os.WriteFile(c.path(key), []byte("not cbor at all"), 0644); err != nil {
		t.Fatalf("corrupting entry: %v", err)
	}
	if _, ok := c.Load(key); ok {
		t.Error("corrupt entry should be a miss")
	}
}

func TestLoadMismatchedKey(t *testing.T) {
	c := newCache(t)
	key, parts := noseParts(t)
	c.Store(key, parts)

	other := Key("nosecone", map[string]string{"length": "2"})
	if err := os.Rename(c.path(key), c.path(other)); err != nil {
		t.Fatalf("renaming entry: %v", err)
	}
	if _, ok := c.Load(other); ok {
		t.Error("entry stored under another key should be a miss")
	}
}

func TestLoadRejectsNonFiniteVertex(t *testing.T) {
	c := newCache(t)
	parts := mesh.NewParts()
	parts.Set(mesh.PartTail, &mesh.Mesh{
		Vertices: []math.Vec3{{X: 1}, {Y: gomath.NaN()}, {Z: 1}},
		Faces:    []mesh.Face{{0, 1, 2}},
	})
	key := Key("tail", map[string]string{"length": "nan"})

	c.Store(key, parts)
	if _, ok := c.Load(key); ok {
		t.Error("entry with a NaN vertex should be a miss")
	}
}

func TestStoreFailureIsSilent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	// A cache whose directory is a regular file cannot store anything.
	c := &Cache{dir: blocker}
	c2 := newCache(t)
	c.enc, c.lookups, c.stores = c2.enc, c2.lookups, c2.stores

	key, parts := noseParts(t)
	c.Store(key, parts)
	if _, ok := c.Load(key); ok {
		t.Error("expected miss after failed store")
	}
}

func TestClear(t *testing.T) {
	c := newCache(t)
	key, parts := noseParts(t)
	c.Store(key, parts)
	c.Store(Key("other", nil), parts)

	// Unrelated files survive
	keep := filepath.Join(c.Dir(), "README")
	if err := os.WriteFile(keep, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if n, _ := c.Len(); n != 2 {
		t.Fatalf("expected 2 entries, got %d", n)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, _ := c.Len(); n != 0 {
		t.Errorf("expected 0 entries after clear, got %d", n)
	}
	if _, ok := c.Load(key); ok {
		t.Error("expected miss after clear")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("clear removed an unrelated file: %v", err)
	}
}

func TestKey(t *testing.T) {
	a := map[string]string{"length": "0.381", "base_radius": "0.0778", "kind": "Von Karman"}
	b := map[string]string{"kind": "Von Karman", "base_radius": "0.0778", "length": "0.381"}

	ka := Key("nosecone", a)
	if len(ka) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(ka))
	}
	if ka != Key("nosecone", b) {
		t.Error("field order must not change the key")
	}
	if ka == Key("tail", a) {
		t.Error("component must be part of the key")
	}

	b["length"] = "0.382"
	if ka == Key("nosecone", b) {
		t.Error("changed value must change the key")
	}
}

func TestKeyStable(t *testing.T) {
	// Identical values across runs map to identical keys.
	g, _ := geometry.NewTailGeometry(0.0777875, 0.0635, 0.0508, 0.0777875)
	k1 := Key("tail", g.Fields())
	g2, _ := geometry.NewTailGeometry(0.0777875, 0.0635, 0.0508, 0.0777875)
	if k2 := Key("tail", g2.Fields()); k1 != k2 {
		t.Errorf("keys differ for identical records: %s vs %s", k1, k2)
	}
}
