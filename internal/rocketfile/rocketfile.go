// Package rocketfile reads a rocket description from YAML so the mesh
// pipeline can run without a flight-dynamics model.
package rocketfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/Faultbox/rocketmesh/internal/geometry"
	"gopkg.in/yaml.v3"
)

// ErrNoRadius is returned for a description without a body radius.
var ErrNoRadius = errors.New("rocket radius is required")

// File is the on-disk rocket description. Lengths are in metres, positions
// are axial stations in the rocket's own coordinate system.
type File struct {
	Name             string      `yaml:"name,omitempty"`
	Radius           float64     `yaml:"radius"`
	CoordinateSystem string      `yaml:"coordinate_system"`
	Motor            *MotorSpec  `yaml:"motor,omitempty"`
	NoseCone         *NoseSpec   `yaml:"nose_cone,omitempty"`
	Fins             *FinsSpec   `yaml:"fins,omitempty"`
	Tail             *TailSpec   `yaml:"tail,omitempty"`
	Extra            []ExtraPart `yaml:"extra,omitempty"`
}

// MotorSpec describes a solid motor.
type MotorSpec struct {
	Position                float64 `yaml:"position"`
	GrainOuterRadius        float64 `yaml:"grain_outer_radius"`
	GrainInitialInnerRadius float64 `yaml:"grain_initial_inner_radius"`
	GrainInitialHeight      float64 `yaml:"grain_initial_height"`
	NozzleRadius            float64 `yaml:"nozzle_radius"`
	ThroatRadius            float64 `yaml:"throat_radius"`
	NozzlePosition          float64 `yaml:"nozzle_position"`
}

// NoseSpec describes a nose cone.
type NoseSpec struct {
	Position   float64 `yaml:"position"`
	Length     float64 `yaml:"length"`
	BaseRadius float64 `yaml:"base_radius"`
	Kind       string  `yaml:"kind"`
}

// FinsSpec describes a trapezoidal fin set.
type FinsSpec struct {
	Position    float64 `yaml:"position"`
	N           int     `yaml:"n"`
	RootChord   float64 `yaml:"root_chord"`
	TipChord    float64 `yaml:"tip_chord"`
	Span        float64 `yaml:"span"`
	SweepLength float64 `yaml:"sweep_length"`
}

// TailSpec describes a boat tail.
type TailSpec struct {
	Position     float64 `yaml:"position"`
	TopRadius    float64 `yaml:"top_radius"`
	BottomRadius float64 `yaml:"bottom_radius"`
	Length       float64 `yaml:"length"`
}

// ExtraPart is a surface the mesh pipeline does not render, such as rail
// buttons. It is passed through so extraction can skip it.
type ExtraPart struct {
	Kind     string  `yaml:"kind"`
	Position float64 `yaml:"position"`
}

// Load reads and parses a rocket description.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rocket file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a rocket description.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rocket file: %w", err)
	}
	if f.Radius == 0 {
		return nil, ErrNoRadius
	}
	return &f, nil
}

// Rocket adapts the description to the extraction input.
func (f *File) Rocket() geometry.Rocket {
	return rocket{f: f}
}

type rocket struct {
	f *File
}

func (r rocket) Radius() float64          { return r.f.Radius }
func (r rocket) CoordinateSystem() string { return r.f.CoordinateSystem }

func (r rocket) Motor() geometry.Motor {
	if r.f.Motor == nil {
		return nil
	}
	return motor{r.f.Motor}
}

func (r rocket) MotorPosition() float64 {
	if r.f.Motor == nil {
		return 0
	}
	return r.f.Motor.Position
}

func (r rocket) Surfaces() []geometry.PositionedSurface {
	var out []geometry.PositionedSurface
	if n := r.f.NoseCone; n != nil {
		out = append(out, geometry.PositionedSurface{Surface: noseCone{n, r.f.Radius}, Position: n.Position})
	}
	if fs := r.f.Fins; fs != nil {
		out = append(out, geometry.PositionedSurface{Surface: fins{fs, r.f.Radius}, Position: fs.Position})
	}
	if t := r.f.Tail; t != nil {
		out = append(out, geometry.PositionedSurface{Surface: tail{t, r.f.Radius}, Position: t.Position})
	}
	for _, e := range r.f.Extra {
		out = append(out, geometry.PositionedSurface{Surface: e, Position: e.Position})
	}
	return out
}

type motor struct{ s *MotorSpec }

func (m motor) GrainOuterRadius() float64        { return m.s.GrainOuterRadius }
func (m motor) GrainInitialInnerRadius() float64 { return m.s.GrainInitialInnerRadius }
func (m motor) GrainInitialHeight() float64      { return m.s.GrainInitialHeight }
func (m motor) NozzleRadius() float64            { return m.s.NozzleRadius }
func (m motor) ThroatRadius() float64            { return m.s.ThroatRadius }
func (m motor) NozzlePosition() float64          { return m.s.NozzlePosition }

type noseCone struct {
	s      *NoseSpec
	radius float64
}

func (n noseCone) Length() float64       { return n.s.Length }
func (n noseCone) BaseRadius() float64   { return n.s.BaseRadius }
func (n noseCone) Kind() string          { return n.s.Kind }
func (n noseCone) RocketRadius() float64 { return n.radius }

type fins struct {
	s      *FinsSpec
	radius float64
}

func (f fins) N() int                { return f.s.N }
func (f fins) RootChord() float64    { return f.s.RootChord }
func (f fins) TipChord() float64     { return f.s.TipChord }
func (f fins) Span() float64         { return f.s.Span }
func (f fins) SweepLength() float64  { return f.s.SweepLength }
func (f fins) RocketRadius() float64 { return f.radius }

type tail struct {
	s      *TailSpec
	radius float64
}

func (t tail) TopRadius() float64    { return t.s.TopRadius }
func (t tail) BottomRadius() float64 { return t.s.BottomRadius }
func (t tail) Length() float64       { return t.s.Length }
func (t tail) RocketRadius() float64 { return t.radius }
