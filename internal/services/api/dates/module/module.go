// Package module wires date normalization into the API
package module

import (
	modkit "airreviews/internal/modkit"
	"airreviews/internal/modkit/httpkit"
	str "airreviews/internal/platform/strings"
	dateshttp "airreviews/internal/services/api/dates/http"
)

// Module implements the dates API module
type Module struct {
	b modkit.Built
}

// New constructs the module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("api.dates"), modkit.WithPrefix("/dates")}, opts...)...)
	return &Module{b: b}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { dateshttp.Register(rr) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Ports returns nil
func (m *Module) Ports() any { return nil }
