package mesh

import (
	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/internal/profile"
)

// NoseCone builds the nose as a surface of revolution with the tip at
// station 0 and the base disk at +length.
//
// Vertices are grouped per angle: vertex i*AxialSamples+j is angular step i,
// axial sample j. The base ring follows as AngularDivisions extra vertices.
func NoseCone(g geometry.NoseConeGeometry) (*Mesh, error) {
	profilePts, err := profile.Sample(g, AxialSamples)
	if err != nil {
		return nil, err
	}

	const n = AxialSamples
	m := &Mesh{}
	for i := 0; i < AngularDivisions; i++ {
		angle := angleOf(i)
		for _, p := range profilePts {
			m.Vertices = append(m.Vertices, p.Revolve(angle))
		}
	}

	for i := uint32(0); i < AngularDivisions; i++ {
		next := (i + 1) % AngularDivisions
		for j := uint32(0); j < n-1; j++ {
			p1 := i*n + j
			p2 := next*n + j
			p3 := next*n + j + 1
			p4 := i*n + j + 1
			m.Faces = append(m.Faces, Face{p1, p2, p3}, Face{p1, p3, p4})
		}
	}

	// Base disk at exactly the base radius
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, ring(g.BaseRadius, g.Length)...)
	appendFan(m, base, true)

	return m, nil
}
