// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"airreviews/internal/core/lexicon"
	"airreviews/internal/core/version"
	"airreviews/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Lexicon     *lexicon.Snapshot
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/lexicon", h.lexicon)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"airreviews-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// LexiconResponse describes the lexicon the server scores with
type LexiconResponse struct {
	Size     int           `json:"size"      example:"2477"`
	Source   string        `json:"source"`
	LoadedAt string        `json:"loaded_at" example:"2025-09-03T13:00:00Z"`
	Stats    lexicon.Stats `json:"stats"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// @Summary Loaded lexicon provenance
// @Tags Meta
// @Produce json
// @Success 200 {object} LexiconResponse "ok"
// @Router /meta/lexicon [get]
func (h *handlers) lexicon(_ *http.Request) (any, error) {
	snap := h.deps.Lexicon
	if snap == nil {
		return LexiconResponse{}, nil
	}
	return LexiconResponse{
		Size:     snap.Size(),
		Source:   snap.Source,
		LoadedAt: snap.LoadedAt.UTC().Format(time.RFC3339),
		Stats:    snap.Stats,
	}, nil
}
