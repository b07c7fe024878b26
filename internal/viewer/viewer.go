// Package viewer is the query surface over the mesh pipeline: extract the
// geometry of a rocket model, generate and select its positioned parts,
// report on them and export them.
//
// A Viewer is not safe for concurrent use.
package viewer

import (
	"fmt"

	"github.com/Faultbox/rocketmesh/internal/assembly"
	"github.com/Faultbox/rocketmesh/internal/cache"
	"github.com/Faultbox/rocketmesh/internal/export"
	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/internal/logger"
	"github.com/Faultbox/rocketmesh/internal/mesh"
	"github.com/Faultbox/rocketmesh/internal/selector"
	"go.uber.org/zap"
)

// Option configures a Viewer.
type Option func(*Viewer)

// WithCache enables the on-disk mesh cache.
func WithCache(c *cache.Cache) Option {
	return func(v *Viewer) {
		v.cache = c
	}
}

// WithMotorDefaults overrides the fallback casing and nozzle dimensions.
func WithMotorDefaults(d geometry.MotorDefaults) Option {
	return func(v *Viewer) {
		v.defaults = d
	}
}

// Viewer renders one rocket model.
type Viewer struct {
	src      geometry.Rocket
	defaults geometry.MotorDefaults
	cache    *cache.Cache

	geom  *geometry.Assembly
	model *assembly.Model
}

// New creates a viewer for the rocket model.
func New(src geometry.Rocket, opts ...Option) *Viewer {
	v := &Viewer{
		src:      src,
		defaults: geometry.DefaultMotorDefaults(),
	}
	for _, opt := range opts {
		opt(v)
	}

	if p, err := geometry.ParsePolarity(src.CoordinateSystem()); err == nil && p == geometry.NoseToTail {
		logger.Warn("rocket uses nose_to_tail coordinates: +Z points from nose to tail, "+
			"which is not suitable for flight simulation; prefer tail_to_nose",
			zap.String("coordinate_system", p.String()))
	}
	return v
}

// Geometry extracts the assembly record once and returns it on later calls.
func (v *Viewer) Geometry() (geometry.Assembly, error) {
	if v.geom == nil {
		g, err := geometry.Extract(v.src, v.defaults)
		if err != nil {
			return geometry.Assembly{}, fmt.Errorf("extracting geometry: %w", err)
		}
		v.geom = &g
	}
	return *v.geom, nil
}

// Generate returns the positioned model. Without force the previous result
// is returned as is; with force every mesh is rebuilt and re-cached.
func (v *Viewer) Generate(force bool) (*assembly.Model, error) {
	if !force && v.model != nil {
		return v.model, nil
	}

	g, err := v.Geometry()
	if err != nil {
		return nil, err
	}

	var src assembly.MeshSource = assembly.Direct{}
	if v.cache != nil {
		src = cachedSource{cache: v.cache, refresh: force}
	}

	m, err := assembly.Assemble(g, src)
	if err != nil {
		return nil, fmt.Errorf("generating mesh: %w", err)
	}
	logger.Debug("generated rocket mesh",
		zap.Int("parts", m.Parts.Len()),
		zap.Bool("forced", force),
		zap.Float64("total_length", m.TotalLength))

	v.model = m
	return m, nil
}

// Reset drops the extracted geometry and generated model, so the next call
// reads the rocket model again.
func (v *Viewer) Reset() {
	v.geom = nil
	v.model = nil
}

// Select returns the parts matching the selection; see selector.Select.
// No selection means all parts.
func (v *Viewer) Select(selection ...string) (*mesh.Parts, error) {
	m, err := v.Generate(false)
	if err != nil {
		return nil, err
	}
	if len(selection) == 0 {
		selection = []string{selector.All}
	}
	return selector.Select(m.Parts, selection...), nil
}

// Export merges the selected parts and writes them to path.
func (v *Viewer) Export(path string, selection ...string) error {
	parts, err := v.Select(selection...)
	if err != nil {
		return err
	}
	if parts.Len() == 0 {
		return fmt.Errorf("selection %v matches no parts", selection)
	}
	if err := export.Write(path, parts.Merged()); err != nil {
		return err
	}
	logger.Info("rocket model saved", zap.String("path", path), zap.Strings("parts", parts.Names()))
	return nil
}
