// Package module wires review cleaning into the API using modkit
package module

import (
	modkit "airreviews/internal/modkit"
	"airreviews/internal/modkit/httpkit"
	str "airreviews/internal/platform/strings"
	reviewshttp "airreviews/internal/services/api/reviews/http"
	"airreviews/internal/services/reviews/domain"
)

// Ports are what this module needs from the reviews service module
type Ports struct {
	Cleaner domain.Cleaner
}

// Module implements the reviews API module
type Module struct {
	b     modkit.Built
	ports Ports
}

// New constructs the module. Pass the cleaner with modkit.WithPorts(Ports{...})
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("api.reviews"), modkit.WithPrefix("/reviews")}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Cleaner == nil {
		panic("api reviews module requires Ports with a Cleaner")
	}
	return &Module{b: b, ports: p}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { reviewshttp.Register(rr, m.ports.Cleaner) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
