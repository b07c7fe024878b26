package geometry

// Rocket is the external rocket model geometry is extracted from.
type Rocket interface {
	Radius() float64
	// CoordinateSystem returns "tail_to_nose" or "nose_to_tail".
	CoordinateSystem() string
	// Motor returns nil when no motor is installed.
	Motor() Motor
	// MotorPosition is the station of the motor's forward reference.
	MotorPosition() float64
	Surfaces() []PositionedSurface
}

// PositionedSurface is an aerodynamic surface and its axial station.
// Surface is matched against NoseCone, TrapezoidalFins and Tail; anything else is ignored.
type PositionedSurface struct {
	Surface  any
	Position float64
}

// Motor is a solid motor as described by the rocket model.
type Motor interface {
	GrainOuterRadius() float64
	GrainInitialInnerRadius() float64
	GrainInitialHeight() float64
	NozzleRadius() float64
	ThroatRadius() float64
	NozzlePosition() float64
}

// NoseCone is a nose cone surface.
type NoseCone interface {
	Length() float64
	BaseRadius() float64
	Kind() string
	RocketRadius() float64
}

// TrapezoidalFins is a fin set surface.
type TrapezoidalFins interface {
	N() int
	RootChord() float64
	TipChord() float64
	Span() float64
	SweepLength() float64
	RocketRadius() float64
}

// Tail is a boat tail surface.
type Tail interface {
	TopRadius() float64
	BottomRadius() float64
	Length() float64
	RocketRadius() float64
}
