package viewer

import (
	"github.com/Faultbox/rocketmesh/internal/assembly"
	"github.com/Faultbox/rocketmesh/internal/cache"
	"github.com/Faultbox/rocketmesh/internal/geometry"
	"github.com/Faultbox/rocketmesh/internal/logger"
	"github.com/Faultbox/rocketmesh/internal/mesh"
	"github.com/Faultbox/rocketmesh/internal/profile"
	"go.uber.org/zap"
)

// cachedSource puts the mesh cache in front of the builders.
// With refresh set, stored entries are ignored and overwritten.
type cachedSource struct {
	cache   *cache.Cache
	refresh bool
	build   assembly.Direct
}

func (s cachedSource) NoseCone(g geometry.NoseConeGeometry) (*mesh.Mesh, error) {
	built := false
	m, err := s.single(mesh.PartNoseCone, g.Fields(), func() (*mesh.Mesh, error) {
		built = true
		return s.build.NoseCone(g)
	})
	if err == nil && !built {
		// Building resolves the profile; a cached mesh still reports an unknown kind.
		profile.Resolve(g.Kind)
	}
	return m, err
}

func (s cachedSource) Tail(g geometry.TailGeometry) (*mesh.Mesh, error) {
	return s.single(mesh.PartTail, g.Fields(), func() (*mesh.Mesh, error) {
		return s.build.Tail(g)
	})
}

func (s cachedSource) Fins(g geometry.FinGeometry) (*mesh.Parts, error) {
	return s.parts("fins", g.Fields(), func() (*mesh.Parts, error) {
		return s.build.Fins(g)
	})
}

func (s cachedSource) Motor(g geometry.MotorGeometry) (*mesh.Parts, error) {
	return s.parts("motor", g.Fields(), func() (*mesh.Parts, error) {
		return s.build.Motor(g)
	})
}

func (s cachedSource) parts(component string, fields map[string]string, build func() (*mesh.Parts, error)) (*mesh.Parts, error) {
	key := cache.Key(component, fields)
	if !s.refresh {
		if p, ok := s.cache.Load(key); ok {
			logger.Debug("using cached component mesh", zap.String("component", component))
			return p, nil
		}
	}
	p, err := build()
	if err != nil {
		return nil, err
	}
	s.cache.Store(key, p)
	return p, nil
}

// single stores a one-mesh component as a one-part set under its part name.
func (s cachedSource) single(name string, fields map[string]string, build func() (*mesh.Mesh, error)) (*mesh.Mesh, error) {
	p, err := s.parts(name, fields, func() (*mesh.Parts, error) {
		m, err := build()
		if err != nil {
			return nil, err
		}
		p := mesh.NewParts()
		p.Set(name, m)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if m, ok := p.Get(name); ok {
		return m, nil
	}
	// An entry without the expected part is as good as a miss.
	return cachedSource{cache: s.cache, refresh: true}.single(name, fields, build)
}
