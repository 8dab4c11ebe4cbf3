// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service. version, commit and date are set at build time:
//
//	-ldflags "-X 'airreviews/internal/core/version.version=v0.1.0'
//	-X 'airreviews/internal/core/version.commit=abcd' -X 'airreviews/internal/core/version.date=2025-09-02'"
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// UserAgent is sent with outbound requests (lexicon downloads)
func UserAgent() string { return "airreviews/" + version }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
