// Package module implements the reviews service module
package module

import (
	"airreviews/internal/modkit"
	phttp "airreviews/internal/platform/net/http"
	"airreviews/internal/services/reviews/domain"
	"airreviews/internal/services/reviews/service"
)

// Ports exposed by the reviews module
type Ports struct {
	Cleaner domain.Cleaner
	Runner  domain.Runner
}

// Module implements the reviews service module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New constructs the reviews module. deps.Lexicon must already be loaded
func New(deps modkit.Deps, opts Options) *Module {
	if deps.Lexicon == nil {
		panic("reviews module requires a loaded lexicon")
	}
	svc := service.New(deps.Lexicon.Lexicon, service.Config{Columns: opts.Columns})

	m := &Module{deps: deps, opts: opts}
	m.ports = Ports{
		Cleaner: svc,
		Runner:  svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "reviews" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Options returns the options the module was built with
func (m *Module) Options() Options { return m.opts }

// MountRoutes satisfies modkit.Module; HTTP routes live in the api reviews module
func (m *Module) MountRoutes(phttp.Router) {}
