// Package export hands finished meshes to file writers.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/rocketmesh/internal/mesh"
	"github.com/Faultbox/rocketmesh/pkg/math"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// minArea is the smallest triangle kept; the nose tip produces slivers
// with no area, which have no normal to write.
const minArea = 1e-18

// Write saves m to path, picking the format from the extension.
func Write(path string, m *mesh.Mesh) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		return STL(path, m)
	default:
		return fmt.Errorf("unsupported export format %q", ext)
	}
}

// STL writes m as a binary STL file.
func STL(path string, m *mesh.Mesh) error {
	tris := Triangles(m)
	if len(tris) == 0 {
		return fmt.Errorf("nothing to export: mesh has no triangles")
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Triangles converts m into sdfx triangles, dropping zero-area ones.
func Triangles(m *mesh.Mesh) []*sdf.Triangle3 {
	src := m.Triangles()
	out := make([]*sdf.Triangle3, 0, len(src))
	for _, t := range src {
		if t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Length()/2 <= minArea {
			continue
		}
		out = append(out, &sdf.Triangle3{toV3(t[0]), toV3(t[1]), toV3(t[2])})
	}
	return out
}

func toV3(v math.Vec3) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}
