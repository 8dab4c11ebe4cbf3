package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	docs "airreviews/internal/services/api/docs"
)

// SpecMutator lets modules adjust the parsed spec before it is served
type SpecMutator func(map[string]any)

var (
	mutMu    sync.Mutex
	mutators []SpecMutator

	// seam
	docReader = func() string { return docs.SwaggerInfo.ReadDoc() }
)

// Register adds a spec mutator. Nil is ignored
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mutMu.Lock()
	mutators = append(mutators, m)
	mutMu.Unlock()
}

// Options tune the served document
type Options struct {
	// BaseURL is the OAS3 server url, default /api/v1
	BaseURL string
	// TitleSuffix is appended to info.title, e.g. an environment name
	TitleSuffix string
}

func serveDocJSON(o Options) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		prepare(spec, o)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// prepare normalizes the version, servers and error envelopes, then runs mutators
func prepare(spec map[string]any, o Options) {
	if o.BaseURL == "" {
		o.BaseURL = "/api/v1"
	}
	ensureOpenAPI(spec, o.BaseURL)

	if o.TitleSuffix != "" {
		if info, ok := spec["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + o.TitleSuffix
			}
		}
	}

	ensureSchema(spec, "ErrorResponse", errorSchema)
	addDefaultResponses(spec, map[string]any{
		"400": errorResponse("Bad Request", 400, 4, "text is a required field", "text"),
		"500": errorResponse("Internal Server Error", 500, 1, "panic recovered", ""),
	})

	mutMu.Lock()
	ms := append([]SpecMutator(nil), mutators...)
	mutMu.Unlock()
	for _, m := range ms {
		m(spec)
	}
}

// ensureOpenAPI lifts swagger 2 and OAS 3.1 to 3.0.3 (the bundled UI renders 3.0) and adds servers
func ensureOpenAPI(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		delete(spec, "basePath")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer", "format": "int32"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer", "format": "int32"},
		"error":       map[string]any{"type": "string"},
		"field":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
	"required": []any{"status_code", "status"},
}

func ensureSchema(spec map[string]any, name string, schema map[string]any) {
	comps := child(spec, "components")
	schemas := child(comps, "schemas")
	if _, ok := schemas[name]; !ok {
		schemas[name] = schema
	}
}

func errorResponse(desc string, status, code int, msg, field string) map[string]any {
	ex := map[string]any{
		"status_code": status,
		"status":      desc,
		"code":        code,
		"error":       msg,
		"request_id":  "host/abc-000001",
	}
	if field != "" {
		ex["field"] = field
	}
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": ex,
			},
		},
	}
}

// addDefaultResponses adds each status response to every operation that lacks it
func addDefaultResponses(spec map[string]any, defaults map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			resps := child(op, "responses")
			for status, resp := range defaults {
				if _, exists := resps[status]; !exists {
					resps[status] = resp
				}
			}
		}
	}
}

// child returns m[key] as a map, creating it when missing or of another type
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}
