package viewer

import "github.com/Faultbox/rocketmesh/internal/geometry"

// PartInfo holds mesh statistics for one part.
type PartInfo struct {
	Name     string `yaml:"name"`
	Vertices int    `yaml:"vertices"`
	Faces    int    `yaml:"faces"`
}

// MeshInfo holds mesh statistics for a selection.
type MeshInfo struct {
	Components    int        `yaml:"components"`
	Parts         []PartInfo `yaml:"parts"`
	TotalVertices int        `yaml:"total_vertices"`
	TotalFaces    int        `yaml:"total_faces"`
}

// MeshInfo reports per-part and total vertex and face counts.
func (v *Viewer) MeshInfo(selection ...string) (MeshInfo, error) {
	parts, err := v.Select(selection...)
	if err != nil {
		return MeshInfo{}, err
	}

	info := MeshInfo{Components: parts.Len()}
	for _, name := range parts.Names() {
		m, _ := parts.Get(name)
		pi := PartInfo{Name: name, Vertices: m.VertexCount(), Faces: m.FaceCount()}
		info.Parts = append(info.Parts, pi)
		info.TotalVertices += pi.Vertices
		info.TotalFaces += pi.Faces
	}
	return info, nil
}

// Presence records which components the rocket carries.
type Presence struct {
	Motor    bool `yaml:"motor"`
	NoseCone bool `yaml:"nosecone"`
	Fins     bool `yaml:"fins"`
	Tail     bool `yaml:"tail"`
}

// AssemblyInfo summarizes the rocket's layout.
type AssemblyInfo struct {
	TotalLength      float64  `yaml:"total_length"`
	BodyRadius       float64  `yaml:"body_radius"`
	MotorPosition    float64  `yaml:"motor_position"`
	NozzleStation    float64  `yaml:"nozzle_station"`
	NoseConePosition float64  `yaml:"nosecone_position"`
	FinsPosition     float64  `yaml:"fins_position"`
	TailPosition     float64  `yaml:"tail_position"`
	CoordinateSystem string   `yaml:"coordinate_system"`
	FlightReady      bool     `yaml:"flight_simulation_ready"`
	Components       Presence `yaml:"components"`
}

// AssemblyInfo reports positions and presence from the extracted geometry.
// Flight simulation expects tail_to_nose coordinates.
func (v *Viewer) AssemblyInfo() (AssemblyInfo, error) {
	g, err := v.Geometry()
	if err != nil {
		return AssemblyInfo{}, err
	}
	return AssemblyInfo{
		TotalLength:      g.TotalLength,
		BodyRadius:       g.Radius,
		MotorPosition:    g.MotorPosition,
		NozzleStation:    g.NozzleStation(),
		NoseConePosition: g.NoseConePosition,
		FinsPosition:     g.FinsPosition,
		TailPosition:     g.TailPosition,
		CoordinateSystem: g.Polarity.String(),
		FlightReady:      g.Polarity == geometry.TailToNose,
		Components: Presence{
			Motor:    g.Motor != nil,
			NoseCone: g.NoseCone != nil,
			Fins:     g.Fins != nil,
			Tail:     g.Tail != nil,
		},
	}, nil
}
