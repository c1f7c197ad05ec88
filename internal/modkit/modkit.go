package modkit

import (
	"freightdesk/internal/modkit/module"
)

// Module is what the API mount loop needs from a module
type Module = module.Module

// Builder constructs a Module from shared deps; an error aborts startup
type Builder func(Deps, ...Option) (Module, error)

// BuildAll runs the builders in order, handing each the common options, and
// registers every module's ports under its name
func BuildAll(deps Deps, common []Option, builders ...Builder) ([]Module, error) {
	out := make([]Module, 0, len(builders))
	for _, b := range builders {
		m, err := b(deps, common...)
		if err != nil {
			return nil, err
		}
		module.Register(m.Name(), m.Ports())
		out = append(out, m)
	}
	return out, nil
}
