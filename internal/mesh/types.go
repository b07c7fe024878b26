// Package mesh builds component polygon surfaces in their canonical pose:
// reference end at local station 0 on the Z axis, body extending toward +Z.
package mesh

import "github.com/Faultbox/rocketmesh/pkg/math"

// Fixed resolution per component class.
const (
	AngularDivisions = 24
	AxialSamples     = 50
	FinThickness     = 0.003 // 3mm
)

// Face is a polygon given as indices into Mesh.Vertices.
type Face []uint32

// Mesh is a polygon surface: a vertex list and triangle/quad/polygon faces.
type Mesh struct {
	Vertices []math.Vec3
	Faces    []Face
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}
