// Package assembly places canonical-pose component meshes into the rocket
// model's shared axial frame, using only the positions the model declares.
package assembly

import (
	gomath "math"

	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/internal/logger"
	"github.com/Faultbox/rocketmesh/internal/mesh"
	"github.com/Faultbox/rocketmesh/pkg/math"
	"go.uber.org/zap"
)

// MinBodyLength is the shortest body tube that is emitted.
const MinBodyLength = 0.01

// MeshSource produces canonical-pose component meshes.
type MeshSource interface {
	NoseCone(g geometry.NoseConeGeometry) (*mesh.Mesh, error)
	Tail(g geometry.TailGeometry) (*mesh.Mesh, error)
	Fins(g geometry.FinGeometry) (*mesh.Parts, error)
	Motor(g geometry.MotorGeometry) (*mesh.Parts, error)
}

// Direct builds every mesh on request.
type Direct struct{}

func (Direct) NoseCone(g geometry.NoseConeGeometry) (*mesh.Mesh, error) { return mesh.NoseCone(g) }
func (Direct) Tail(g geometry.TailGeometry) (*mesh.Mesh, error)         { return mesh.Tail(g), nil }
func (Direct) Fins(g geometry.FinGeometry) (*mesh.Parts, error)         { return mesh.FinSet(g), nil }
func (Direct) Motor(g geometry.MotorGeometry) (*mesh.Parts, error)      { return mesh.Motor(g), nil }

// Model is a positioned rocket: named parts in one shared frame.
type Model struct {
	Parts       *mesh.Parts
	Polarity    geometry.Polarity
	TotalLength float64 // Copied from the geometry record
}

// Assemble positions every present component. Absent components are skipped.
//
// Part order: nosecone, tail, fin_1..fin_n, body, motor_casing,
// motor_nozzle, motor_closure.
func Assemble(g geometry.Assembly, src MeshSource) (*Model, error) {
	aft := g.Polarity.Aft()

	// Canonical poses extend toward +Z. Aft-extending components are turned
	// half way about X when aft is -Z.
	aftward := orientation(aft)
	forward := orientation(-aft)

	parts := mesh.NewParts()

	if g.NoseCone != nil {
		m, err := src.NoseCone(*g.NoseCone)
		if err != nil {
			return nil, err
		}
		parts.Set(mesh.PartNoseCone, m.Transform(place(g.NoseConePosition, aftward)))
	}

	if g.Tail != nil {
		m, err := src.Tail(*g.Tail)
		if err != nil {
			return nil, err
		}
		parts.Set(mesh.PartTail, m.Transform(place(g.TailPosition, aftward)))
	}

	if g.Fins != nil {
		fins, err := src.Fins(*g.Fins)
		if err != nil {
			return nil, err
		}
		parts.AddAll(fins.Transform(place(g.FinsPosition, aftward)))
	}

	if g.NoseCone != nil && g.Tail != nil {
		noseBase := g.NoseConePosition + aft*g.NoseCone.Length
		tailTop := g.TailPosition
		length := gomath.Abs(tailTop - noseBase)
		if length > MinBodyLength {
			center := (noseBase + tailTop) / 2
			body := mesh.BodyTube(g.Radius, length)
			parts.Set(mesh.PartBody, body.Transform(place(center, aftward)))
		} else {
			logger.Debug("skipping degenerate body tube", zap.Float64("length", length))
		}
	}

	if g.Motor != nil {
		motor, err := src.Motor(*g.Motor)
		if err != nil {
			return nil, err
		}
		// The casing runs forward from the nozzle base.
		parts.AddAll(motor.Transform(place(g.NozzleStation(), forward)))
	}

	return &Model{
		Parts:       parts,
		Polarity:    g.Polarity,
		TotalLength: g.TotalLength,
	}, nil
}

// orientation maps canonical +Z onto the given axial direction.
func orientation(dir float64) math.Mat4 {
	if dir < 0 {
		return math.HalfTurnX()
	}
	return math.Identity()
}

func place(station float64, orient math.Mat4) math.Mat4 {
	return math.TranslateZ(station).Mul(orient)
}
