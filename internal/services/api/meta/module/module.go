// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"context"
	"time"

	"freightdesk/internal/core/version"
	modkit "freightdesk/internal/modkit"
	"freightdesk/internal/modkit/httpkit"
	"freightdesk/internal/modkit/module"
	str "freightdesk/internal/platform/strings"

	metahttp "freightdesk/internal/services/api/meta/http"
)

// Module serves /meta
type Module struct {
	built     modkit.Built
	deps      modkit.Deps
	startedAt time.Time
}

// New constructs a meta module. Readiness checks that the vocabulary loads
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	return &Module{
		built:     modkit.Build([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...),
		deps:      deps,
		startedAt: time.Now(),
	}
}

// Builder adapts New to modkit.Builder
func Builder(deps modkit.Deps, opts ...modkit.Option) (modkit.Module, error) {
	return New(deps, opts...), nil
}

// MountRoutes mounts /health, /ready, /version and /service
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Checks: []metahttp.Check{{
				Name: "vocabulary",
				Fn: func(context.Context) error {
					_, err := m.deps.Vocabulary()
					return err
				},
			}},
			Modules: module.Names,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix is the route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
