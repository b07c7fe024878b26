package mesh

import (
	gomath "math"

	"github.com/Faultbox/rocketmesh/pkg/math"
)

// ring returns AngularDivisions points of the given radius at station z,
// starting on +X and running counter-clockwise seen from +Z.
func ring(radius, z float64) []math.Vec3 {
	pts := make([]math.Vec3, AngularDivisions)
	for i := range pts {
		pts[i] = math.Vec2{X: z, Y: radius}.Revolve(angleOf(i))
	}
	return pts
}

func angleOf(i int) float64 {
	return 2 * gomath.Pi * float64(i) / AngularDivisions
}

// appendFan closes the ring starting at base with a triangle fan anchored on
// its first vertex. up selects the facing direction (+Z or -Z).
func appendFan(m *Mesh, base uint32, up bool) {
	for k := uint32(1); k+1 < AngularDivisions; k++ {
		if up {
			m.Faces = append(m.Faces, Face{base, base + k, base + k + 1})
		} else {
			m.Faces = append(m.Faces, Face{base, base + k + 1, base + k})
		}
	}
}

// capPolygon returns one polygon covering the ring starting at base.
func capPolygon(base uint32, up bool) Face {
	f := make(Face, AngularDivisions)
	for k := range f {
		if up {
			f[k] = base + uint32(k)
		} else {
			f[k] = base + uint32(AngularDivisions-1-k)
		}
	}
	return f
}

// Frustum builds a truncated cone with the top ring at station 0 and the
// bottom ring at +length. When capped, each ring with a non-zero radius is
// closed by a single polygon.
func Frustum(topRadius, bottomRadius, length float64, capped bool) *Mesh {
	m := &Mesh{}
	m.Vertices = append(m.Vertices, ring(topRadius, 0)...)
	m.Vertices = append(m.Vertices, ring(bottomRadius, length)...)

	const a = AngularDivisions
	for i := uint32(0); i < a; i++ {
		next := (i + 1) % a
		m.Faces = append(m.Faces,
			Face{i, next, a + next},
			Face{i, a + next, a + i},
		)
	}

	if capped {
		if topRadius > 0 {
			m.Faces = append(m.Faces, capPolygon(0, false))
		}
		if bottomRadius > 0 {
			m.Faces = append(m.Faces, capPolygon(a, true))
		}
	}
	return m
}

// Cylinder builds a cylinder spanning stations 0 to +length.
func Cylinder(radius, length float64, capped bool) *Mesh {
	return Frustum(radius, radius, length, capped)
}

// BodyTube builds the open body tube centred on the origin.
func BodyTube(radius, length float64) *Mesh {
	return Cylinder(radius, length, false).Transform(math.TranslateZ(-length / 2))
}

// Disk builds a flat disk at station z as a ring closed by a triangle fan.
func Disk(radius, z float64, up bool) *Mesh {
	m := &Mesh{Vertices: ring(radius, z)}
	appendFan(m, 0, up)
	return m
}
