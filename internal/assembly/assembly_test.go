package assembly

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/internal/mesh"
	"github.com/Faultbox/rocketmesh/pkg/math"
)

const tol = 1e-9

func v10(t *testing.T) geometry.Assembly {
	t.Helper()
	const radius = 0.0777875

	motor, err := geometry.NewMotorGeometry(0.049, 0.0245, 0.732, 0.03675, 0.0245, 0.351, geometry.DefaultMotorDefaults())
	if err != nil {
		t.Fatalf("motor: %v", err)
	}
	nose, err := geometry.NewNoseConeGeometry(0.381, radius, "Von Karman", radius)
	if err != nil {
		t.Fatalf("nose: %v", err)
	}
	fins, err := geometry.NewFinGeometry(4, 0.3048, 0.01905, 0.1524, 0.254, radius)
	if err != nil {
		t.Fatalf("fins: %v", err)
	}
	tail, err := geometry.NewTailGeometry(radius, 0.0635, 0.0508, radius)
	if err != nil {
		t.Fatalf("tail: %v", err)
	}

	a, err := geometry.NewAssembly(geometry.Assembly{
		Radius:           radius,
		Polarity:         geometry.TailToNose,
		Motor:            &motor,
		MotorPosition:    -2.562,
		NoseCone:         &nose,
		NoseConePosition: 0,
		Fins:             &fins,
		FinsPosition:     -2.592,
		Tail:             &tail,
		TailPosition:     -2.8964,
	})
	if err != nil {
		t.Fatalf("assembly: %v", err)
	}
	return a
}

func bounds(t *testing.T, m *Model, name string) mesh.Bounds {
	t.Helper()
	part, ok := m.Parts.Get(name)
	if !ok {
		t.Fatalf("missing part %s", name)
	}
	return part.Bounds()
}

func TestAssembleV10(t *testing.T) {
	g := v10(t)
	m, err := Assemble(g, Direct{})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	want := []string{"nosecone", "tail", "fin_1", "fin_2", "fin_3", "fin_4", "body", "motor_casing", "motor_nozzle", "motor_closure"}
	names := m.Parts.Names()
	if len(names) != len(want) {
		t.Fatalf("parts: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("part %d: got %s, want %s", i, names[i], want[i])
		}
	}

	if m.TotalLength != g.TotalLength {
		t.Errorf("total length should be copied: got %v, want %v", m.TotalLength, g.TotalLength)
	}

	tests := []struct {
		part     string
		min, max float64
	}{
		{"nosecone", -0.381, 0},
		{"tail", -2.8964 - 0.0508, -2.8964},
		{"fin_1", -2.592 - 0.3048, -2.592},
		{"body", -2.8964, -0.381},
		{"motor_casing", -2.913, -2.913 + 0.832},
		{"motor_nozzle", -2.913 - 0.10, -2.913},
	}
	for _, tt := range tests {
		t.Run(tt.part, func(t *testing.T) {
			b := bounds(t, m, tt.part)
			if gomath.Abs(b.Min.Z-tt.min) > tol || gomath.Abs(b.Max.Z-tt.max) > tol {
				t.Errorf("Z span: got [%v, %v], want [%v, %v]", b.Min.Z, b.Max.Z, tt.min, tt.max)
			}
		})
	}
}

func TestNozzleBaseStation(t *testing.T) {
	m, err := Assemble(v10(t), Direct{})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	nozzle, _ := m.Parts.Get(mesh.PartMotorNozzle)

	// The exit ring is the nozzle base
	for _, v := range nozzle.Vertices[:mesh.AngularDivisions] {
		if gomath.Abs(v.Z-(-2.913)) > tol {
			t.Fatalf("nozzle base at %v, want -2.913", v.Z)
		}
	}
}

func TestNoseTipAtPosition(t *testing.T) {
	m, err := Assemble(v10(t), Direct{})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	nose, _ := m.Parts.Get(mesh.PartNoseCone)
	tip := nose.Vertices[0]
	if tip.Radial() > tol || gomath.Abs(tip.Z) > tol {
		t.Errorf("nose tip at %v, want origin", tip)
	}
}

func TestPolaritySymmetry(t *testing.T) {
	a := v10(t)

	b := a
	b.Polarity = geometry.NoseToTail
	b.MotorPosition = -a.MotorPosition
	b.NoseConePosition = -a.NoseConePosition
	b.FinsPosition = -a.FinsPosition
	b.TailPosition = -a.TailPosition
	b, err := geometry.NewAssembly(b)
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}

	ma, err := Assemble(a, Direct{})
	if err != nil {
		t.Fatalf("Assemble a: %v", err)
	}
	mb, err := Assemble(b, Direct{})
	if err != nil {
		t.Fatalf("Assemble b: %v", err)
	}

	if gomath.Abs(ma.TotalLength-mb.TotalLength) > tol {
		t.Errorf("total length changed: %v vs %v", ma.TotalLength, mb.TotalLength)
	}

	// Mirroring b about the origin reproduces a, part for part.
	mirrored := mb.Parts.Transform(math.HalfTurnX())
	if !ma.Parts.ApproxEqual(mirrored, 1e-12) {
		t.Error("swapped polarity with negated positions should mirror the assembly")
	}
}

func TestAbsentComponentsSkipped(t *testing.T) {
	g := v10(t)
	g.NoseCone = nil
	g.Fins = nil
	g, err := geometry.NewAssembly(g)
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}

	m, err := Assemble(g, Direct{})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := []string{"tail", "motor_casing", "motor_nozzle", "motor_closure"}
	names := m.Parts.Names()
	if len(names) != len(want) {
		t.Fatalf("parts: got %v, want %v", names, want)
	}
	if _, ok := m.Parts.Get(mesh.PartBody); ok {
		t.Error("body tube needs both nose cone and tail")
	}
}

func TestDegenerateBodySkipped(t *testing.T) {
	g := v10(t)
	// Tail top placed 5mm below the nose base
	g.TailPosition = -0.381 - 0.005
	g, err := geometry.NewAssembly(g)
	if err != nil {
		t.Fatalf("NewAssembly: %v", err)
	}
	m, err := Assemble(g, Direct{})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if _, ok := m.Parts.Get(mesh.PartBody); ok {
		t.Error("body tube shorter than the minimum should be omitted")
	}
}

type failingSource struct{ Direct }

var errBuild = errors.New("build failed")

func (failingSource) Motor(geometry.MotorGeometry) (*mesh.Parts, error) { return nil, errBuild }

func TestSourceErrorPropagates(t *testing.T) {
	_, err := Assemble(v10(t), failingSource{})
	if !errors.Is(err, errBuild) {
		t.Errorf("expected build error, got %v", err)
	}
}

// The motor is placed by its nozzle: whatever the polarity, the casing runs
// forward (toward the nose) from the nozzle base and the nozzle cone aft.
func TestMotorCasingExtendsForward(t *testing.T) {
	tailToNose := v10(t)
	noseToTail := tailToNose
	noseToTail.Polarity = geometry.NoseToTail
	noseToTail.MotorPosition = -tailToNose.MotorPosition
	noseToTail.NoseConePosition = -tailToNose.NoseConePosition
	noseToTail.FinsPosition = -tailToNose.FinsPosition
	noseToTail.TailPosition = -tailToNose.TailPosition

	tests := []struct {
		name   string
		g      geometry.Assembly
		nozzle float64
	}{
		{"tail_to_nose", tailToNose, -2.913},
		{"nose_to_tail", noseToTail, 2.913},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Assemble(tt.g, Direct{})
			if err != nil {
				t.Fatalf("Assemble: %v", err)
			}
			aft := tt.g.Polarity.Aft()
			casingLen := tt.g.Motor.CasingLength
			div := tt.g.Motor.NozzleDivergenceLength

			if gomath.Abs(tt.g.NozzleStation()-tt.nozzle) > tol {
				t.Fatalf("nozzle station: got %v, want %v", tt.g.NozzleStation(), tt.nozzle)
			}

			// Forward is -aft.
			casing := bounds(t, m, mesh.PartMotorCasing)
			wantLo := min(tt.nozzle, tt.nozzle-aft*casingLen)
			wantHi := max(tt.nozzle, tt.nozzle-aft*casingLen)
			if gomath.Abs(casing.Min.Z-wantLo) > tol || gomath.Abs(casing.Max.Z-wantHi) > tol {
				t.Errorf("casing spans [%v, %v], want [%v, %v]", casing.Min.Z, casing.Max.Z, wantLo, wantHi)
			}

			closure := bounds(t, m, mesh.PartMotorClosure)
			if gomath.Abs(closure.Min.Z-(tt.nozzle-aft*casingLen)) > tol {
				t.Errorf("closure at %v, want forward end %v", closure.Min.Z, tt.nozzle-aft*casingLen)
			}

			nozzle := bounds(t, m, mesh.PartMotorNozzle)
			apex := tt.nozzle + aft*div
			if gomath.Abs(min(nozzle.Min.Z, nozzle.Max.Z)-min(apex, tt.nozzle)) > tol ||
				gomath.Abs(max(nozzle.Min.Z, nozzle.Max.Z)-max(apex, tt.nozzle)) > tol {
				t.Errorf("nozzle spans [%v, %v], want apex at %v", nozzle.Min.Z, nozzle.Max.Z, apex)
			}

			// The casing sits on the nose side of the nozzle, like the nose itself.
			nose := bounds(t, m, mesh.PartNoseCone)
			if (nose.Max.Z-tt.nozzle)*(casing.Max.Z+casing.Min.Z-2*tt.nozzle) <= 0 {
				t.Error("casing should extend from the nozzle toward the nose")
			}
		})
	}
}
