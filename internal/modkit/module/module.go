// Package module defines the minimal contract for a modkit module
package module

import (
	phttp "airreviews/internal/platform/net/http"
)

// Module is what modkit composes. Service modules without HTTP routes implement
// MountRoutes as a no-op and are still registered for their ports
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
