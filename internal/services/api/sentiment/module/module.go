// Package module wires sentiment scoring into the API
package module

import (
	modkit "airreviews/internal/modkit"
	"airreviews/internal/modkit/httpkit"
	str "airreviews/internal/platform/strings"
	sentimenthttp "airreviews/internal/services/api/sentiment/http"
)

// Module implements the sentiment API module
type Module struct {
	b    modkit.Built
	deps modkit.Deps
}

// New constructs the module; deps.Lexicon must be loaded
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	if deps.Lexicon == nil {
		panic("api sentiment module requires a loaded lexicon")
	}
	b := modkit.Build(append([]modkit.Option{modkit.WithName("api.sentiment"), modkit.WithPrefix("/sentiment")}, opts...)...)
	return &Module{b: b, deps: deps}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { sentimenthttp.Register(rr, m.deps.Lexicon.Lexicon) })
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Ports returns nil; scoring is not shared with other modules
func (m *Module) Ports() any { return nil }
