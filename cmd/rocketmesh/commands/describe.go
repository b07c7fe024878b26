package commands

import "github.com/Faultbox/rocketmesh/internal/geometry"

// describe lists the records of the present components.
func describe(g geometry.Assembly) []string {
	var out []string
	if g.NoseCone != nil {
		out = append(out, g.NoseCone.String())
	}
	if g.Fins != nil {
		out = append(out, g.Fins.String())
	}
	if g.Tail != nil {
		out = append(out, g.Tail.String())
	}
	if g.Motor != nil {
		out = append(out, g.Motor.String())
	}
	return out
}
