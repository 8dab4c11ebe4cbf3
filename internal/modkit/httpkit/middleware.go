package httpkit

import (
	"net/http"
	"time"

	"airreviews/internal/platform/config"
	"airreviews/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// Slow marks requests slower than this as warnings in the access log
	Slow time.Duration
	// Quiet paths log at debug (probes, docs)
	Quiet []string
	// Throttle caps in-flight requests; <=0 disables
	Throttle int
	Timeout  time.Duration
	CORS     middleware.CORSOptions
}

// StackFromConfig reads SLOW, QUIET, THROTTLE, TIMEOUT and CORS_ORIGINS from cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		Slow:     cfg.MayDuration("SLOW", 500*time.Millisecond),
		Quiet:    cfg.MayCSV("QUIET", []string{"/api/v1/meta/health"}),
		Throttle: cfg.MayInt("THROTTLE", 0),
		Timeout:  cfg.MayDuration("TIMEOUT", 30*time.Second),
		CORS: middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		},
	}
}

// CommonStack returns the middleware slice applied to the versioned API scope.
// Request ids, recovery and compression live on the root router (middleware.Defaults)
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	mw := []func(http.Handler) http.Handler{
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Quiet: o.Quiet}),
		middleware.CORS(o.CORS),
		middleware.StripSlashes(),
		middleware.AllowContentType("application/json"),
	}
	if o.Throttle > 0 {
		mw = append(mw, middleware.Throttle(o.Throttle))
	}
	if o.Timeout > 0 {
		mw = append(mw, middleware.Timeout(o.Timeout))
	}
	return mw
}
