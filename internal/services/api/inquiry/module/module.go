// Package module wires the inquiry API into HTTP via modkit
package module

import (
	"freightdesk/internal/core/vocab"
	"freightdesk/internal/modkit"
	"freightdesk/internal/modkit/httpkit"
	"freightdesk/internal/modkit/swaggerkit"
	"freightdesk/internal/platform/strings"

	"freightdesk/internal/services/api/inquiry/domain"
	inquiryhttp "freightdesk/internal/services/api/inquiry/http"
	"freightdesk/internal/services/api/inquiry/service"
)

// Module implements the inquiry module
type Module struct {
	built    modkit.Built
	opts     Options
	ports    Ports
	jsonOpts httpkit.JSONOptions
}

// New constructs the inquiry module. overrides win over CORE_INQUIRY_* where non-zero.
// VocabPath replaces the vocabulary from deps; modkit.WithPorts(Ports{...}) skips
// building the service entirely
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build([]modkit.Option{modkit.WithName("inquiry"), modkit.WithPrefix("/inquiries")}, opts...)
	o := overrides.merge(FromConfig(deps.Cfg))

	m := &Module{
		built:    b,
		opts:     o,
		jsonOpts: httpkit.JSONOptions{MaxBytes: o.MaxBodyBytes, DisallowUnknown: true},
	}
	if p, ok := b.Ports.(Ports); ok && p.Service != nil {
		m.ports = p
	} else {
		svc, err := buildService(deps, o)
		if err != nil {
			return nil, err
		}
		m.ports = Ports{Service: svc}
	}

	if b.SwaggerOn {
		swaggerkit.Register(swaggerkit.Tag("Inquiries", "Free-text shipment inquiry extraction"))
	}
	return m, nil
}

// Builder adapts New to modkit.Builder, reading options from deps.Cfg only
func Builder(deps modkit.Deps, opts ...modkit.Option) (modkit.Module, error) {
	return New(deps, Options{}, opts...)
}

func buildService(deps modkit.Deps, o Options) (*service.Service, error) {
	voc, err := deps.Vocabulary()
	if o.VocabPath != "" {
		voc, err = vocab.LoadFile(o.VocabPath)
	}
	if err != nil {
		return nil, err
	}
	svc, err := service.New(voc, service.Options{
		DefaultVariant:    o.DefaultVariant,
		MaxContainerLines: o.MaxContainerLines,
	})
	if err != nil {
		return nil, err
	}
	deps.Logger().Info().
		Str("default_variant", svc.DefaultVariant()).
		Int("max_container_lines", o.MaxContainerLines).
		Str("vocab_path", o.VocabPath).
		Int("carriers", len(voc.Carriers)).
		Msg("inquiry module ready")
	return svc, nil
}

// MountRoutes mounts /extract, /prefill and /variants under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		inquiryhttp.Register(rr, m.ports.Service, m.jsonOpts)
	})
}

// Name is the module name
func (m *Module) Name() string { return strings.MustString(m.built.Name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return strings.MustPrefix(m.built.Prefix) }

// Options are the resolved module options
func (m *Module) Options() Options { return m.opts }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Service is the extraction port this module serves
func (m *Module) Service() domain.ServicePort { return m.ports.Service }
