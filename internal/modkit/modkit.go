package modkit

import (
	"airreviews/internal/modkit/module"
	phttp "airreviews/internal/platform/net/http"
)

// Module is the common surface for modules; see module.Module
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// MountAll registers each module's ports under its name and mounts its routes on r
func MountAll(r phttp.Router, mods ...Module) {
	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
		m.MountRoutes(r)
	}
}
