// Package geometry holds the immutable dimensional records extracted from a
// rocket model, one per component plus a whole-assembly record.
//
// Every record is validated when it is built. Positions are carried in the
// source model's own axial convention; see Polarity.
package geometry

import (
	"fmt"
	"strings"
)

// MotorDefaults are the casing and nozzle dimensions the source model does not carry.
type MotorDefaults struct {
	CasingThickness         float64
	CasingMargin            float64 // Casing length beyond the grain
	NozzleConvergenceLength float64
	NozzleDivergenceLength  float64
}

// DefaultMotorDefaults returns the stock fallback dimensions.
func DefaultMotorDefaults() MotorDefaults {
	return MotorDefaults{
		CasingThickness:         0.005,
		CasingMargin:            0.1,
		NozzleConvergenceLength: 0.05,
		NozzleDivergenceLength:  0.10,
	}
}

// MotorGeometry describes a solid motor.
type MotorGeometry struct {
	GrainOuterRadius float64
	GrainInnerRadius float64
	GrainHeight      float64
	NozzleRadius     float64 // Exit radius
	ThroatRadius     float64
	// NozzlePosition is the offset from the motor's forward reference to
	// the nozzle base, along the motor's local +axis.
	NozzlePosition float64

	// Derived from MotorDefaults
	CasingThickness         float64
	CasingOuterRadius       float64
	CasingLength            float64
	NozzleConvergenceLength float64
	NozzleDivergenceLength  float64
}

// NewMotorGeometry builds and validates a motor record.
func NewMotorGeometry(grainOuter, grainInner, grainHeight, nozzleRadius, throatRadius, nozzlePosition float64, d MotorDefaults) (MotorGeometry, error) {
	c := check{component: "motor"}
	c.positive("grain_outer_radius", grainOuter)
	c.nonNegative("grain_inner_radius", grainInner)
	c.positive("grain_height", grainHeight)
	c.positive("nozzle_radius", nozzleRadius)
	c.nonNegative("throat_radius", throatRadius)
	c.finite("nozzle_position", nozzlePosition)
	c.positive("casing_thickness", d.CasingThickness)
	c.positive("casing_margin", d.CasingMargin)
	c.nonNegative("nozzle_convergence_length", d.NozzleConvergenceLength)
	c.nonNegative("nozzle_divergence_length", d.NozzleDivergenceLength)
	if c.err == nil && grainInner >= grainOuter {
		c.fail("grain_inner_radius", grainInner, "must be smaller than grain_outer_radius")
	}
	if err := c.result(); err != nil {
		return MotorGeometry{}, err
	}

	return MotorGeometry{
		GrainOuterRadius:        grainOuter,
		GrainInnerRadius:        grainInner,
		GrainHeight:             grainHeight,
		NozzleRadius:            nozzleRadius,
		ThroatRadius:            throatRadius,
		NozzlePosition:          nozzlePosition,
		CasingThickness:         d.CasingThickness,
		CasingOuterRadius:       grainOuter + d.CasingThickness,
		CasingLength:            grainHeight + d.CasingMargin,
		NozzleConvergenceLength: d.NozzleConvergenceLength,
		NozzleDivergenceLength:  d.NozzleDivergenceLength,
	}, nil
}

// String returns a human-readable summary.
func (m MotorGeometry) String() string {
	return fmt.Sprintf("motor: grain outer_r=%.4fm inner_r=%.4fm h=%.4fm, casing outer_r=%.4fm length=%.4fm, nozzle exit_r=%.4fm throat_r=%.4fm offset=%.4fm",
		m.GrainOuterRadius, m.GrainInnerRadius, m.GrainHeight,
		m.CasingOuterRadius, m.CasingLength,
		m.NozzleRadius, m.ThroatRadius, m.NozzlePosition)
}

// NoseConeGeometry describes a nose cone.
type NoseConeGeometry struct {
	Length       float64
	BaseRadius   float64
	Kind         string // Raw shape family tag, e.g. "Von Karman"
	RocketRadius float64
}

// NewNoseConeGeometry builds and validates a nose cone record.
func NewNoseConeGeometry(length, baseRadius float64, kind string, rocketRadius float64) (NoseConeGeometry, error) {
	c := check{component: "nosecone"}
	c.positive("length", length)
	c.positive("base_radius", baseRadius)
	c.nonNegative("rocket_radius", rocketRadius)
	if err := c.result(); err != nil {
		return NoseConeGeometry{}, err
	}
	return NoseConeGeometry{
		Length:       length,
		BaseRadius:   baseRadius,
		Kind:         kind,
		RocketRadius: rocketRadius,
	}, nil
}

func (n NoseConeGeometry) String() string {
	return fmt.Sprintf("nosecone: length=%.4fm base_r=%.4fm kind=%q rocket_r=%.4fm",
		n.Length, n.BaseRadius, n.Kind, n.RocketRadius)
}

// FinGeometry describes a set of identical trapezoidal fins.
type FinGeometry struct {
	Count        int
	RootChord    float64
	TipChord     float64
	Span         float64
	SweepLength  float64 // Root leading edge to tip leading edge, axially
	RocketRadius float64
}

// NewFinGeometry builds and validates a fin set record.
func NewFinGeometry(count int, rootChord, tipChord, span, sweep, rocketRadius float64) (FinGeometry, error) {
	c := check{component: "fins"}
	if count < 1 {
		c.fail("n", float64(count), "must be at least 1")
	}
	c.positive("root_chord", rootChord)
	c.nonNegative("tip_chord", tipChord)
	c.nonNegative("span", span)
	c.nonNegative("sweep_length", sweep)
	c.nonNegative("rocket_radius", rocketRadius)
	if err := c.result(); err != nil {
		return FinGeometry{}, err
	}
	return FinGeometry{
		Count:        count,
		RootChord:    rootChord,
		TipChord:     tipChord,
		Span:         span,
		SweepLength:  sweep,
		RocketRadius: rocketRadius,
	}, nil
}

func (f FinGeometry) String() string {
	return fmt.Sprintf("fins: n=%d root=%.4fm tip=%.4fm span=%.4fm sweep=%.4fm rocket_r=%.4fm",
		f.Count, f.RootChord, f.TipChord, f.Span, f.SweepLength, f.RocketRadius)
}

// TailGeometry describes a boat tail or transition frustum.
type TailGeometry struct {
	TopRadius    float64 // Forward face
	BottomRadius float64 // Aft face
	Length       float64
	RocketRadius float64
}

// NewTailGeometry builds and validates a tail record.
func NewTailGeometry(topRadius, bottomRadius, length, rocketRadius float64) (TailGeometry, error) {
	c := check{component: "tail"}
	c.nonNegative("top_radius", topRadius)
	c.nonNegative("bottom_radius", bottomRadius)
	c.positive("length", length)
	c.nonNegative("rocket_radius", rocketRadius)
	if err := c.result(); err != nil {
		return TailGeometry{}, err
	}
	return TailGeometry{
		TopRadius:    topRadius,
		BottomRadius: bottomRadius,
		Length:       length,
		RocketRadius: rocketRadius,
	}, nil
}

func (t TailGeometry) String() string {
	return fmt.Sprintf("tail: top_r=%.4fm bottom_r=%.4fm length=%.4fm rocket_r=%.4fm",
		t.TopRadius, t.BottomRadius, t.Length, t.RocketRadius)
}

// Assembly is the whole-rocket record. Component pointers are nil when the
// component is absent; the records behind them are never modified.
//
// Positions are in the source model's convention:
// motor forward reference, nose tip, fin root leading edge, tail top face.
type Assembly struct {
	Radius   float64
	Polarity Polarity

	Motor         *MotorGeometry
	MotorPosition float64

	NoseCone         *NoseConeGeometry
	NoseConePosition float64

	Fins         *FinGeometry
	FinsPosition float64

	Tail         *TailGeometry
	TailPosition float64

	TotalLength float64
}

// NozzleStation returns the absolute station of the motor's nozzle base:
// the motor reference moved aft by the nozzle offset.
func (a Assembly) NozzleStation() float64 {
	if a.Motor == nil {
		return a.MotorPosition
	}
	return a.MotorPosition + a.Polarity.Aft()*a.Motor.NozzlePosition
}

// Extents returns the lowest and highest station covered by any component.
// ok is false when the assembly has no components.
func (a Assembly) Extents() (lo, hi float64, ok bool) {
	aft := a.Polarity.Aft()
	var stations []float64
	if a.NoseCone != nil {
		stations = append(stations, a.NoseConePosition, a.NoseConePosition+aft*a.NoseCone.Length)
	}
	if a.Fins != nil {
		stations = append(stations, a.FinsPosition, a.FinsPosition+aft*a.Fins.RootChord)
	}
	if a.Tail != nil {
		stations = append(stations, a.TailPosition, a.TailPosition+aft*a.Tail.Length)
	}
	if a.Motor != nil {
		noz := a.NozzleStation()
		stations = append(stations,
			noz,
			noz-aft*a.Motor.CasingLength,
			noz+aft*a.Motor.NozzleDivergenceLength,
		)
	}
	if len(stations) == 0 {
		return 0, 0, false
	}
	lo, hi = stations[0], stations[0]
	for _, s := range stations[1:] {
		lo = min(lo, s)
		hi = max(hi, s)
	}
	return lo, hi, true
}

// span is max-min over all component extents, zero for an empty assembly.
func (a Assembly) span() float64 {
	lo, hi, ok := a.Extents()
	if !ok {
		return 0
	}
	return hi - lo
}

func (a Assembly) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rocket: radius=%.4fm total_length=%.4fm coordinate_system=%s\n", a.Radius, a.TotalLength, a.Polarity)
	if a.NoseCone != nil {
		fmt.Fprintf(&b, "  %s @ %.4fm\n", a.NoseCone, a.NoseConePosition)
	}
	if a.Fins != nil {
		fmt.Fprintf(&b, "  %s @ %.4fm\n", a.Fins, a.FinsPosition)
	}
	if a.Tail != nil {
		fmt.Fprintf(&b, "  %s @ %.4fm\n", a.Tail, a.TailPosition)
	}
	if a.Motor != nil {
		fmt.Fprintf(&b, "  %s @ %.4fm\n", a.Motor, a.MotorPosition)
	}
	return b.String()
}
