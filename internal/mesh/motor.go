package mesh

import (
	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/pkg/math"
)

// Motor builds the three motor parts with the nozzle base at station 0:
// the casing runs to +CasingLength, the nozzle apex sits at
// -NozzleDivergenceLength.
func Motor(g geometry.MotorGeometry) *Parts {
	parts := NewParts()
	parts.Set(PartMotorCasing, Cylinder(g.CasingOuterRadius, g.CasingLength, true))
	parts.Set(PartMotorNozzle, Nozzle(g.NozzleRadius, g.NozzleDivergenceLength))
	parts.Set(PartMotorClosure, Disk(g.CasingOuterRadius, g.CasingLength, true))
	return parts
}

// Nozzle builds a cone whose capped base ring of exitRadius lies at
// station 0 and whose apex lies at -length.
func Nozzle(exitRadius, length float64) *Mesh {
	m := &Mesh{Vertices: ring(exitRadius, 0)}
	apex := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, math.Vec3{Z: -length})

	for i := uint32(0); i < AngularDivisions; i++ {
		next := (i + 1) % AngularDivisions
		m.Faces = append(m.Faces, Face{i, apex, next})
	}
	m.Faces = append(m.Faces, capPolygon(0, true))
	return m
}
