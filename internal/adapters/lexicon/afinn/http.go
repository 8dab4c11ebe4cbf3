package afinn

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"airreviews/internal/core/lexicon"
	"airreviews/internal/core/version"
	perr "airreviews/internal/platform/errors"
)

// DefaultURL is the AFINN-111 list published with the afinn project
const DefaultURL = "https://raw.githubusercontent.com/fnielsen/afinn/master/afinn/data/AFINN-111.txt"

const defaultHTTPTO = 30 * time.Second

// HTTPFetcher downloads a lexicon with a plain GET
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

var _ lexicon.Source = (*HTTPFetcher)(nil)

// NewHTTPFetcher builds a fetcher for url. A zero timeout uses the 30s default
func NewHTTPFetcher(url string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultHTTPTO
	}
	return &HTTPFetcher{URL: url, Client: &http.Client{Timeout: timeout}}
}

// Name returns the URL
func (f *HTTPFetcher) Name() string { return f.URL }

// Open issues the GET and returns the body on 200
func (f *HTTPFetcher) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := newRequest(ctx, f.URL)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "afinn: fetch %s", f.URL)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, unexpectedStatus(resp.StatusCode, f.URL)
	}
	return resp.Body, nil
}

func newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "afinn: bad url %q", url)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "text/plain")
	return req, nil
}

func unexpectedStatus(code int, url string) error {
	if code == http.StatusNotFound {
		return perr.NotFoundf("afinn: %s not found", url)
	}
	return perr.Unavailablef("afinn: unexpected status %d for %s", code, url)
}

// IsURL reports whether spec names an http(s) resource rather than a local path
func IsURL(spec string) bool {
	return strings.HasPrefix(spec, "http://") || strings.HasPrefix(spec, "https://")
}
