package geometry

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type testMotor struct{}

func (testMotor) GrainOuterRadius() float64        { return 0.049 }
func (testMotor) GrainInitialInnerRadius() float64 { return 0.0245 }
func (testMotor) GrainInitialHeight() float64      { return 0.732 }
func (testMotor) NozzleRadius() float64            { return 0.03675 }
func (testMotor) ThroatRadius() float64            { return 0.0245 }
func (testMotor) NozzlePosition() float64          { return 0.351 }

type testNose struct{ length float64 }

func (n testNose) Length() float64     { return n.length }
func (testNose) BaseRadius() float64   { return 0.0777875 }
func (testNose) Kind() string          { return "Von Karman" }
func (testNose) RocketRadius() float64 { return 0.0777875 }

type testFins struct{}

func (testFins) N() int                { return 4 }
func (testFins) RootChord() float64    { return 0.3048 }
func (testFins) TipChord() float64     { return 0.01905 }
func (testFins) Span() float64         { return 0.1524 }
func (testFins) SweepLength() float64  { return 0.254 }
func (testFins) RocketRadius() float64 { return 0.0777875 }

type testTail struct{}

func (testTail) TopRadius() float64    { return 0.0777875 }
func (testTail) BottomRadius() float64 { return 0.0635 }
func (testTail) Length() float64       { return 0.0508 }
func (testTail) RocketRadius() float64 { return 0.0777875 }

type testRocket struct {
	coord    string
	motor    Motor
	surfaces []PositionedSurface
}

func (r testRocket) Radius() float64               { return 0.0777875 }
func (r testRocket) CoordinateSystem() string      { return r.coord }
func (r testRocket) Motor() Motor                  { return r.motor }
func (r testRocket) MotorPosition() float64        { return -2.562 }
func (r testRocket) Surfaces() []PositionedSurface { return r.surfaces }

func v10() testRocket {
	return testRocket{
		coord: "tail_to_nose",
		motor: testMotor{},
		surfaces: []PositionedSurface{
			{Surface: testNose{length: 0.381}, Position: 0},
			{Surface: testFins{}, Position: -2.592},
			{Surface: testTail{}, Position: -2.8964},
		},
	}
}

func TestExtractV10(t *testing.T) {
	a, err := Extract(v10(), DefaultMotorDefaults())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if a.Polarity != TailToNose {
		t.Errorf("expected tail_to_nose, got %s", a.Polarity)
	}
	if a.Motor == nil || a.NoseCone == nil || a.Fins == nil || a.Tail == nil {
		t.Fatal("expected all four components")
	}
	if a.FinsPosition != -2.592 || a.TailPosition != -2.8964 {
		t.Errorf("positions not carried through: fins %v, tail %v", a.FinsPosition, a.TailPosition)
	}

	if math.Abs(a.Motor.CasingOuterRadius-0.054) > 1e-12 {
		t.Errorf("casing outer radius: got %v, want 0.054", a.Motor.CasingOuterRadius)
	}
	if math.Abs(a.Motor.CasingLength-0.832) > 1e-12 {
		t.Errorf("casing length: got %v, want 0.832", a.Motor.CasingLength)
	}
	if math.Abs(a.NozzleStation()-(-2.913)) > 1e-12 {
		t.Errorf("nozzle station: got %v, want -2.913", a.NozzleStation())
	}

	// Nose tip at 0 is the top, nozzle apex at -2.913 - 0.10 the bottom
	if math.Abs(a.TotalLength-3.013) > 1e-9 {
		t.Errorf("total length: got %v, want 3.013", a.TotalLength)
	}
}

func TestExtractAbsentComponents(t *testing.T) {
	r := testRocket{
		coord:    "nose_to_tail",
		surfaces: []PositionedSurface{{Surface: testNose{length: 0.5}, Position: 0}},
	}
	a, err := Extract(r, DefaultMotorDefaults())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if a.Motor != nil || a.Fins != nil || a.Tail != nil {
		t.Error("absent components should stay nil")
	}
	if a.TotalLength != 0.5 {
		t.Errorf("total length: got %v, want 0.5", a.TotalLength)
	}
}

func TestExtractIgnoresUnknownSurface(t *testing.T) {
	r := v10()
	r.surfaces = append(r.surfaces, PositionedSurface{Surface: "rail button", Position: -1})
	if _, err := Extract(r, DefaultMotorDefaults()); err != nil {
		t.Fatalf("unknown surface should be ignored, got %v", err)
	}
}

func TestExtractInvalid(t *testing.T) {
	tests := []struct {
		name      string
		rocket    testRocket
		defaults  MotorDefaults
		component string
		field     string
	}{
		{
			name:      "unknown coordinate system",
			rocket:    testRocket{coord: "sideways"},
			defaults:  DefaultMotorDefaults(),
			component: "rocket",
			field:     "coordinate_system",
		},
		{
			name: "zero nose length",
			rocket: testRocket{
				coord:    "tail_to_nose",
				surfaces: []PositionedSurface{{Surface: testNose{length: 0}}},
			},
			defaults:  DefaultMotorDefaults(),
			component: "nosecone",
			field:     "length",
		},
		{
			name: "NaN nose length",
			rocket: testRocket{
				coord:    "tail_to_nose",
				surfaces: []PositionedSurface{{Surface: testNose{length: math.NaN()}}},
			},
			defaults:  DefaultMotorDefaults(),
			component: "nosecone",
			field:     "length",
		},
		{
			name:      "zero casing margin",
			rocket:    testRocket{coord: "tail_to_nose", motor: testMotor{}},
			defaults:  MotorDefaults{CasingThickness: 0.005},
			component: "motor",
			field:     "casing_margin",
		},
		{
			name: "NaN surface position",
			rocket: testRocket{
				coord:    "tail_to_nose",
				surfaces: []PositionedSurface{{Surface: testTail{}, Position: math.Inf(-1)}},
			},
			defaults:  DefaultMotorDefaults(),
			component: "rocket",
			field:     "tail_position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.rocket, tt.defaults)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
			var de *DataError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DataError, got %T", err)
			}
			if de.Component != tt.component || de.Field != tt.field {
				t.Errorf("expected %s.%s, got %s.%s", tt.component, tt.field, de.Component, de.Field)
			}
		})
	}
}

func TestRecordValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		field string
	}{
		{"fin count", func() error { _, err := NewFinGeometry(0, 0.3, 0.1, 0.1, 0, 0.05); return err }, "n"},
		{"fin root chord", func() error { _, err := NewFinGeometry(3, 0, 0.1, 0.1, 0, 0.05); return err }, "root_chord"},
		{"fin span", func() error { _, err := NewFinGeometry(3, 0.3, 0.1, -0.1, 0, 0.05); return err }, "span"},
		{"tail length", func() error { _, err := NewTailGeometry(0.05, 0.04, 0, 0.05); return err }, "length"},
		{"tail radius", func() error { _, err := NewTailGeometry(-0.05, 0.04, 0.1, 0.05); return err }, "top_radius"},
		{"nose base radius", func() error { _, err := NewNoseConeGeometry(0.3, 0, "ogive", 0.05); return err }, "base_radius"},
		{"grain radii", func() error {
			_, err := NewMotorGeometry(0.02, 0.03, 0.5, 0.02, 0.01, 0.1, DefaultMotorDefaults())
			return err
		}, "grain_inner_radius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			var de *DataError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DataError, got %v", err)
			}
			if de.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, de.Field)
			}
		})
	}
}

func TestEqualTailRadiiAllowed(t *testing.T) {
	if _, err := NewTailGeometry(0.05, 0.05, 0.1, 0.05); err != nil {
		t.Errorf("equal radii should be a valid cylinder, got %v", err)
	}
}

func TestParsePolarity(t *testing.T) {
	tests := []struct {
		tag     string
		want    Polarity
		aft     float64
		wantErr bool
	}{
		{"tail_to_nose", TailToNose, -1, false},
		{"nose_to_tail", NoseToTail, 1, false},
		{" Nose_To_Tail ", NoseToTail, 1, false},
		{"", 0, 0, true},
		{"nose-leads", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParsePolarity(tt.tag)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.tag)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want || got.Aft() != tt.aft {
				t.Errorf("got %s aft %v, want %s aft %v", got, got.Aft(), tt.want, tt.aft)
			}
		})
	}
}

func TestPolaritySwapPreservesTotalLength(t *testing.T) {
	a, err := Extract(v10(), DefaultMotorDefaults())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	b := a
	b.Polarity = NoseToTail
	b.MotorPosition = -a.MotorPosition
	b.NoseConePosition = -a.NoseConePosition
	b.FinsPosition = -a.FinsPosition
	b.TailPosition = -a.TailPosition
	b, err = NewAssembly(b)
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}

	if math.Abs(a.TotalLength-b.TotalLength) > 1e-12 {
		t.Errorf("total length changed: %v vs %v", a.TotalLength, b.TotalLength)
	}
	if math.Abs(a.NozzleStation()+b.NozzleStation()) > 1e-12 {
		t.Errorf("nozzle stations should mirror: %v vs %v", a.NozzleStation(), b.NozzleStation())
	}
	alo, ahi, _ := a.Extents()
	blo, bhi, _ := b.Extents()
	if math.Abs(alo+bhi) > 1e-12 || math.Abs(ahi+blo) > 1e-12 {
		t.Errorf("extents should mirror: [%v, %v] vs [%v, %v]", alo, ahi, blo, bhi)
	}
}

func TestEmptyAssembly(t *testing.T) {
	a, err := NewAssembly(Assembly{Radius: 0.05, Polarity: TailToNose})
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}
	if a.TotalLength != 0 {
		t.Errorf("empty assembly total length: got %v", a.TotalLength)
	}
}

func TestFields(t *testing.T) {
	n, _ := NewNoseConeGeometry(0.381, 0.0778, "Von Karman", 0.0778)
	f := n.Fields()
	if f["length"] != "0.381" || f["base_radius"] != "0.0778" || f["kind"] != "Von Karman" {
		t.Errorf("unexpected nose fields: %v", f)
	}

	m, _ := NewMotorGeometry(0.049, 0.0245, 0.732, 0.03675, 0.0245, 0.351, DefaultMotorDefaults())
	if len(m.Fields()) != 11 {
		t.Errorf("motor should expose 11 fields, got %d", len(m.Fields()))
	}
}

func TestString(t *testing.T) {
	a, err := Extract(v10(), DefaultMotorDefaults())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	s := a.String()
	for _, want := range []string{"tail_to_nose", "nosecone:", "fins: n=4", "tail:", "motor:"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
