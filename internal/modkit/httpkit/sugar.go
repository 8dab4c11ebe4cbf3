package httpkit

import (
	"net/http"

	phttp "airreviews/internal/platform/net/http"
)

// Get mounts a body-less handler under GET; the result is wrapped in the envelope
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// PostJSON mounts a handler whose body is decoded and validated into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}
