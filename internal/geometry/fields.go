package geometry

import "strconv"

// Fields returns every parameter of the record, rendered canonically.
// Map order is irrelevant; consumers sort by name.
func (m MotorGeometry) Fields() map[string]string {
	return map[string]string{
		"grain_outer_radius":        formatValue(m.GrainOuterRadius),
		"grain_inner_radius":        formatValue(m.GrainInnerRadius),
		"grain_height":              formatValue(m.GrainHeight),
		"nozzle_radius":             formatValue(m.NozzleRadius),
		"throat_radius":             formatValue(m.ThroatRadius),
		"nozzle_position":           formatValue(m.NozzlePosition),
		"casing_thickness":          formatValue(m.CasingThickness),
		"casing_outer_radius":       formatValue(m.CasingOuterRadius),
		"casing_length":             formatValue(m.CasingLength),
		"nozzle_convergence_length": formatValue(m.NozzleConvergenceLength),
		"nozzle_divergence_length":  formatValue(m.NozzleDivergenceLength),
	}
}

// Fields returns every parameter of the record, rendered canonically.
func (n NoseConeGeometry) Fields() map[string]string {
	return map[string]string{
		"length":        formatValue(n.Length),
		"base_radius":   formatValue(n.BaseRadius),
		"kind":          n.Kind,
		"rocket_radius": formatValue(n.RocketRadius),
	}
}

// Fields returns every parameter of the record, rendered canonically.
func (f FinGeometry) Fields() map[string]string {
	return map[string]string{
		"n":             strconv.Itoa(f.Count),
		"root_chord":    formatValue(f.RootChord),
		"tip_chord":     formatValue(f.TipChord),
		"span":          formatValue(f.Span),
		"sweep_length":  formatValue(f.SweepLength),
		"rocket_radius": formatValue(f.RocketRadius),
	}
}

// Fields returns every parameter of the record, rendered canonically.
func (t TailGeometry) Fields() map[string]string {
	return map[string]string{
		"top_radius":    formatValue(t.TopRadius),
		"bottom_radius": formatValue(t.BottomRadius),
		"length":        formatValue(t.Length),
		"rocket_radius": formatValue(t.RocketRadius),
	}
}
