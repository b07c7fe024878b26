package mesh

import (
	gomath "math"

	"github.com/Faultbox/rocketmesh/pkg/math"
)

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of polygon faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// TriangleCount returns the number of triangles after fan triangulation.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.Faces {
		if len(f) >= 3 {
			n += len(f) - 2
		}
	}
	return n
}

// Bounds returns the axis-aligned bounding box. An empty mesh has zero bounds.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: math.Vec3{X: gomath.Inf(1), Y: gomath.Inf(1), Z: gomath.Inf(1)},
		Max: math.Vec3{X: gomath.Inf(-1), Y: gomath.Inf(-1), Z: gomath.Inf(-1)},
	}
	for _, v := range m.Vertices {
		updateBounds(&b, v)
	}
	return b
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		Vertices: make([]math.Vec3, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(out.Vertices, m.Vertices)
	for i, f := range m.Faces {
		out.Faces[i] = append(Face(nil), f...)
	}
	return out
}

// Transform returns a copy of the mesh with every vertex transformed by t.
// Face winding is reversed when t mirrors, so outward faces stay outward.
func (m *Mesh) Transform(t math.Mat4) *Mesh {
	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = t.TransformVec3(v)
	}
	if t.Determinant3() < 0 {
		for _, f := range out.Faces {
			for l, r := 0, len(f)-1; l < r; l, r = l+1, r-1 {
				f[l], f[r] = f[r], f[l]
			}
		}
	}
	return out
}

// Triangles fan-triangulates every face. Faces with fewer than 3 vertices
// or out-of-range indices are skipped.
func (m *Mesh) Triangles() [][3]math.Vec3 {
	tris := make([][3]math.Vec3, 0, m.TriangleCount())
	for _, f := range m.Faces {
		if len(f) < 3 || !m.validFace(f) {
			continue
		}
		v0 := m.Vertices[f[0]]
		for k := 1; k+1 < len(f); k++ {
			tris = append(tris, [3]math.Vec3{v0, m.Vertices[f[k]], m.Vertices[f[k+1]]})
		}
	}
	return tris
}

func (m *Mesh) validFace(f Face) bool {
	for _, idx := range f {
		if int(idx) >= len(m.Vertices) {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether both meshes have the same topology and
// vertices within tol of each other.
func (m *Mesh) ApproxEqual(other *Mesh, tol float64) bool {
	if len(m.Vertices) != len(other.Vertices) || len(m.Faces) != len(other.Faces) {
		return false
	}
	for i := range m.Vertices {
		if !m.Vertices[i].ApproxEqual(other.Vertices[i], tol) {
			return false
		}
	}
	for i := range m.Faces {
		if len(m.Faces[i]) != len(other.Faces[i]) {
			return false
		}
		for j := range m.Faces[i] {
			if m.Faces[i][j] != other.Faces[i][j] {
				return false
			}
		}
	}
	return true
}

// Merge concatenates meshes into one, re-indexing faces.
func Merge(meshes ...*Mesh) *Mesh {
	out := &Mesh{}
	for _, m := range meshes {
		if m == nil {
			continue
		}
		base := uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, f := range m.Faces {
			nf := make(Face, len(f))
			for i, idx := range f {
				nf[i] = idx + base
			}
			out.Faces = append(out.Faces, nf)
		}
	}
	return out
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min.X = gomath.Min(b.Min.X, p.X)
	b.Min.Y = gomath.Min(b.Min.Y, p.Y)
	b.Min.Z = gomath.Min(b.Min.Z, p.Z)
	b.Max.X = gomath.Max(b.Max.X, p.X)
	b.Max.Y = gomath.Max(b.Max.Y, p.Y)
	b.Max.Z = gomath.Max(b.Max.Z, p.Z)
}
