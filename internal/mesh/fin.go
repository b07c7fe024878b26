package mesh

import (
	gomath "math"
	"strconv"

	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/pkg/math"
)

// Fin builds one fin as an extruded trapezoid in the XZ plane, root on the
// body surface at X=RocketRadius, leading edge of the root at station 0.
func Fin(g geometry.FinGeometry) *Mesh {
	r := g.RocketRadius
	tip := r + g.Span
	h := FinThickness / 2

	// root LE, root TE, tip TE, tip LE
	outline := [4][2]float64{
		{r, 0},
		{r, g.RootChord},
		{tip, g.SweepLength + g.TipChord},
		{tip, g.SweepLength},
	}

	m := &Mesh{Vertices: make([]math.Vec3, 0, 8)}
	for _, y := range []float64{-h, h} {
		for _, p := range outline {
			m.Vertices = append(m.Vertices, math.Vec3{X: p[0], Y: y, Z: p[1]})
		}
	}

	m.Faces = []Face{
		{0, 1, 2, 3}, // front
		{4, 5, 6, 7}, // back
		{0, 3, 7, 4}, // leading edge
		{0, 1, 5, 4}, // root
		{3, 2, 6, 7}, // tip
		{1, 2, 6, 5}, // trailing edge
	}
	return m
}

// FinAngle returns the rotation about Z of fin i (1-based) in an n-fin set.
func FinAngle(i, n int) float64 {
	return float64(i-1) * 2 * gomath.Pi / float64(n)
}

// FinName returns the part name of fin i (1-based).
func FinName(i int) string {
	return FinPrefix + strconv.Itoa(i)
}

// FinSet builds Count copies of the canonical fin, evenly spaced about Z.
func FinSet(g geometry.FinGeometry) *Parts {
	fin := Fin(g)
	parts := NewParts()
	for i := 1; i <= g.Count; i++ {
		rot := math.QuatFromAxisAngle(math.Vec3{Z: 1}, FinAngle(i, g.Count))
		parts.Set(FinName(i), fin.Transform(rot.ToMat4()))
	}
	return parts
}
