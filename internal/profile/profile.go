// Package profile provides the nose cone shape families as closed-form
// radius functions of a normalized axial station.
package profile

import (
	gomath "math"
	"strings"

	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/internal/logger"
	"github.com/Faultbox/rocketmesh/pkg/math"
	"go.uber.org/zap"
)

// Kind is a nose cone shape family.
type Kind int

const (
	Unknown Kind = iota
	VonKarman
	Conical
	TangentOgive
	Parabolic
	Elliptical
)

// ParabolicK is the fixed parabolic shape parameter.
const ParabolicK = 0.5

// Func maps a normalized station u in [0,1] (0 at the tip) to a radius,
// for a nose of the given length and base radius.
type Func func(u, length, baseRadius float64) float64

var aliases = map[string]Kind{
	"von karman":    VonKarman,
	"vonkarman":     VonKarman,
	"von_karman":    VonKarman,
	"haack":         VonKarman,
	"conical":       Conical,
	"cone":          Conical,
	"ogive":         TangentOgive,
	"tangent ogive": TangentOgive,
	"tangent":       TangentOgive,
	"parabolic":     Parabolic,
	"elliptical":    Elliptical,
	"ellipse":       Elliptical,
}

// table is the fixed dispatch table; Unknown is deliberately absent.
var table = map[Kind]Func{
	VonKarman:    vonKarman,
	Conical:      conical,
	TangentOgive: tangentOgive,
	Parabolic:    parabolic,
	Elliptical:   elliptical,
}

var names = map[Kind]string{
	Unknown:      "unknown",
	VonKarman:    "von karman",
	Conical:      "conical",
	TangentOgive: "tangent ogive",
	Parabolic:    "parabolic",
	Elliptical:   "elliptical",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind maps a shape tag to a Kind, case-insensitively.
func ParseKind(tag string) Kind {
	return aliases[strings.ToLower(strings.TrimSpace(tag))]
}

// For returns the profile function for a shape tag. Unknown tags log a
// warning and fall back to conical.
func For(tag string) (Kind, Func) {
	k := Resolve(tag)
	return k, table[k]
}

// Resolve returns the family for tag, logging a warning and falling back
// to conical for unknown tags.
func Resolve(tag string) Kind {
	k := ParseKind(tag)
	if _, ok := table[k]; ok {
		return k
	}
	logger.Warn("unknown nose cone kind, using conical", zap.String("kind", tag))
	return Conical
}

// Sample evaluates the nose profile at n evenly spaced stations from tip
// (u=0) to base (u=1). X is the axial station, Y the radius.
func Sample(g geometry.NoseConeGeometry, n int) ([]math.Vec2, error) {
	_, f := For(g.Kind)
	if n < 2 {
		n = 2
	}
	pts := make([]math.Vec2, n)
	for j := 0; j < n; j++ {
		u := float64(j) / float64(n-1)
		r := f(u, g.Length, g.BaseRadius)
		if gomath.IsNaN(r) || gomath.IsInf(r, 0) || r < 0 {
			return nil, &geometry.DataError{
				Component: "nosecone",
				Field:     "kind",
				Value:     g.Kind,
				Reason:    "profile produced an invalid radius",
			}
		}
		pts[j] = math.Vec2{X: u * g.Length, Y: r}
	}
	return pts, nil
}

func vonKarman(u, _, r float64) float64 {
	theta := gomath.Acos(clamp(1-2*u, -1, 1))
	return r / gomath.Sqrt(gomath.Pi) * gomath.Sqrt(gomath.Max(0, theta-gomath.Sin(2*theta)/2))
}

func conical(u, _, r float64) float64 {
	return r * u
}

func tangentOgive(u, l, r float64) float64 {
	rho := (r*r + l*l) / (2 * r)
	d := l * (1 - u)
	return gomath.Max(0, r-(rho-gomath.Sqrt(gomath.Max(0, rho*rho-d*d))))
}

func parabolic(u, _, r float64) float64 {
	return r * gomath.Pow(u, 1-ParabolicK)
}

func elliptical(u, _, r float64) float64 {
	return r * gomath.Sqrt(gomath.Max(0, 1-(u-1)*(u-1)))
}

func clamp(v, lo, hi float64) float64 {
	return gomath.Max(lo, gomath.Min(hi, v))
}
