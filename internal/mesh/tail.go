package mesh

import "github.com/Faultbox/rocketmesh/internal/geometry"

// Tail builds the boat tail frustum, top face at station 0 and bottom
// face at +Length, both capped.
func Tail(g geometry.TailGeometry) *Mesh {
	return Frustum(g.TopRadius, g.BottomRadius, g.Length, true)
}
