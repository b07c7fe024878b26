package geometry

import (
	"fmt"

	"github.com/Faultbox/rocketmesh/internal/logger"
	"go.uber.org/zap"
)

// Extract builds the assembly record from the rocket model's current state.
// The rocket's coordinate system is carried through, never assumed.
func Extract(r Rocket, d MotorDefaults) (Assembly, error) {
	polarity, err := ParsePolarity(r.CoordinateSystem())
	if err != nil {
		return Assembly{}, err
	}

	a := Assembly{
		Radius:   r.Radius(),
		Polarity: polarity,
	}

	if m := r.Motor(); m != nil {
		mg, err := NewMotorGeometry(
			m.GrainOuterRadius(),
			m.GrainInitialInnerRadius(),
			m.GrainInitialHeight(),
			m.NozzleRadius(),
			m.ThroatRadius(),
			m.NozzlePosition(),
			d,
		)
		if err != nil {
			return Assembly{}, fmt.Errorf("extracting motor: %w", err)
		}
		a.Motor = &mg
		a.MotorPosition = r.MotorPosition()
	}

	for i, ps := range r.Surfaces() {
		switch s := ps.Surface.(type) {
		case NoseCone:
			g, err := NewNoseConeGeometry(s.Length(), s.BaseRadius(), s.Kind(), s.RocketRadius())
			if err != nil {
				return Assembly{}, fmt.Errorf("extracting nose cone: %w", err)
			}
			a.NoseCone = &g
			a.NoseConePosition = ps.Position
		case TrapezoidalFins:
			g, err := NewFinGeometry(s.N(), s.RootChord(), s.TipChord(), s.Span(), s.SweepLength(), s.RocketRadius())
			if err != nil {
				return Assembly{}, fmt.Errorf("extracting fins: %w", err)
			}
			a.Fins = &g
			a.FinsPosition = ps.Position
		case Tail:
			g, err := NewTailGeometry(s.TopRadius(), s.BottomRadius(), s.Length(), s.RocketRadius())
			if err != nil {
				return Assembly{}, fmt.Errorf("extracting tail: %w", err)
			}
			a.Tail = &g
			a.TailPosition = ps.Position
		default:
			logger.Debug("ignoring unsupported aerodynamic surface",
				zap.Int("index", i),
				zap.String("type", fmt.Sprintf("%T", ps.Surface)))
		}
	}

	return NewAssembly(a)
}

// NewAssembly validates the rocket-level fields and derives TotalLength.
func NewAssembly(a Assembly) (Assembly, error) {
	if a.Polarity != TailToNose && a.Polarity != NoseToTail {
		return Assembly{}, &DataError{Component: "rocket", Field: "coordinate_system", Value: a.Polarity.String(), Reason: "polarity not set"}
	}
	c := check{component: "rocket"}
	c.positive("radius", a.Radius)
	if a.Motor != nil {
		c.finite("motor_position", a.MotorPosition)
	}
	if a.NoseCone != nil {
		c.finite("nosecone_position", a.NoseConePosition)
	}
	if a.Fins != nil {
		c.finite("fins_position", a.FinsPosition)
	}
	if a.Tail != nil {
		c.finite("tail_position", a.TailPosition)
	}
	if err := c.result(); err != nil {
		return Assembly{}, err
	}

	a.TotalLength = a.span()
	return a, nil
}
