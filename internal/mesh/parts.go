package mesh

import "github.com/Faultbox/rocketmesh/pkg/math"

// Part names produced by the builders and the assembler.
const (
	PartNoseCone     = "nosecone"
	PartBody         = "body"
	PartTail         = "tail"
	PartMotorCasing  = "motor_casing"
	PartMotorNozzle  = "motor_nozzle"
	PartMotorClosure = "motor_closure"
	FinPrefix        = "fin_"
)

// Parts is an ordered mapping from part name to mesh. Iteration follows
// insertion order; re-setting a name keeps its original position.
type Parts struct {
	names  []string
	meshes map[string]*Mesh
}

// NewParts creates an empty part set.
func NewParts() *Parts {
	return &Parts{meshes: make(map[string]*Mesh)}
}

// Set adds or replaces a named part.
func (p *Parts) Set(name string, m *Mesh) {
	if _, ok := p.meshes[name]; !ok {
		p.names = append(p.names, name)
	}
	p.meshes[name] = m
}

// Get returns the named part.
func (p *Parts) Get(name string) (*Mesh, bool) {
	m, ok := p.meshes[name]
	return m, ok
}

// Names returns part names in insertion order.
func (p *Parts) Names() []string {
	return append([]string(nil), p.names...)
}

// Len returns the number of parts.
func (p *Parts) Len() int {
	return len(p.names)
}

// Each calls fn for every part in order.
func (p *Parts) Each(fn func(name string, m *Mesh)) {
	for _, n := range p.names {
		fn(n, p.meshes[n])
	}
}

// AddAll appends every part of other, in its order.
func (p *Parts) AddAll(other *Parts) {
	other.Each(p.Set)
}

// Transform returns a new part set with every mesh transformed by t.
func (p *Parts) Transform(t math.Mat4) *Parts {
	out := NewParts()
	p.Each(func(name string, m *Mesh) {
		out.Set(name, m.Transform(t))
	})
	return out
}

// Merged concatenates all parts into one mesh, in order.
func (p *Parts) Merged() *Mesh {
	ms := make([]*Mesh, 0, len(p.names))
	p.Each(func(_ string, m *Mesh) {
		ms = append(ms, m)
	})
	return Merge(ms...)
}

// ApproxEqual reports whether both sets hold the same names in the same
// order with approximately equal meshes.
func (p *Parts) ApproxEqual(other *Parts, tol float64) bool {
	if p.Len() != other.Len() {
		return false
	}
	for i, n := range p.names {
		if other.names[i] != n {
			return false
		}
		if !p.meshes[n].ApproxEqual(other.meshes[n], tol) {
			return false
		}
	}
	return true
}
