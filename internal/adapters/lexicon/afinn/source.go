package afinn

import (
	"time"

	"airreviews/internal/core/lexicon"
)

// SourceOptions selects and tunes a lexicon source
type SourceOptions struct {
	// Location is an http(s) URL or a local path
	Location string
	// CacheDir enables the on disk cache for URLs when set
	CacheDir string
	Timeout  time.Duration
	MaxAge   time.Duration
}

// NewSource picks FileSource for paths, CachedFetcher for URLs when a cache dir is set,
// HTTPFetcher otherwise
func NewSource(o SourceOptions) lexicon.Source {
	if !IsURL(o.Location) {
		return FileSource{Path: o.Location}
	}
	base := NewHTTPFetcher(o.Location, o.Timeout)
	if o.CacheDir == "" {
		return base
	}
	return NewCachedFetcher(o.CacheDir, base, WithMaxAge(o.MaxAge))
}
