package afinn

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"airreviews/internal/core/lexicon"
	perr "airreviews/internal/platform/errors"
	"airreviews/internal/platform/logger"
)

// CachedFetcher downloads a lexicon once and keeps it on disk with a .meta sidecar.
// Within maxAge of the last check the local copy is served as is; after that it is
// revalidated with If-None-Match / If-Modified-Since. When the host cannot be reached
// or answers with an error the stale copy is served
type CachedFetcher struct {
	dir    string
	url    string
	client *http.Client
	maxAge time.Duration
}

var _ lexicon.Source = (*CachedFetcher)(nil)

// cacheMeta is a tiny sidecar json with fields we actually use
type cacheMeta struct {
	ETag         string    `json:"etag,omitempty"`
	LastModified string    `json:"last_modified,omitempty"`
	Size         int64     `json:"size,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
	LastChecked  time.Time `json:"last_checked"`
}

// CachedOption configures the fetcher
type CachedOption func(*CachedFetcher)

// WithMaxAge serves the cached copy without revalidation for d after the last check.
// Zero revalidates on every Open
func WithMaxAge(d time.Duration) CachedOption {
	return func(c *CachedFetcher) { c.maxAge = d }
}

var now = time.Now // seam

// NewCachedFetcher builds a caching fetcher for base.URL under dir. base's client is reused
func NewCachedFetcher(dir string, base *HTTPFetcher, opts ...CachedOption) *CachedFetcher {
	c := &CachedFetcher{
		dir:    dir,
		url:    base.URL,
		client: base.Client,
		maxAge: 24 * time.Hour,
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: defaultHTTPTO}
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Name returns the upstream URL
func (c *CachedFetcher) Name() string { return c.url }

// Path returns the cache file location for the configured URL
func (c *CachedFetcher) Path() string { return filepath.Join(c.dir, cacheName(c.url)) }

// Open returns a reader over the cached or freshly downloaded lexicon
func (c *CachedFetcher) Open(ctx context.Context) (io.ReadCloser, error) {
	p := c.Path()
	metaPath := p + ".meta"
	log := logger.C(ctx).With().Str("component", "afinn").Str("url", c.url).Logger()

	if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
		meta, _ := loadMeta(metaPath)
		if meta != nil && c.maxAge > 0 && now().Sub(meta.LastChecked) < c.maxAge {
			log.Debug().Str("path", p).Msg("lexicon cache fresh")
			return openFile(p)
		}
		rc, err := c.revalidate(ctx, p, metaPath, meta)
		if err == nil {
			return rc, nil
		}
		log.Warn().Err(err).Str("path", p).Msg("lexicon revalidation failed; serving stale copy")
		return openFile(p)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "afinn: create cache dir %s", c.dir)
	}
	req, err := newRequest(ctx, c.url)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "afinn: fetch %s", c.url)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, unexpectedStatus(resp.StatusCode, c.url)
	}
	log.Info().Str("path", p).Msg("lexicon downloaded")
	return c.store(resp, p, metaPath)
}

// revalidate issues a conditional GET. 304 refreshes LastChecked and serves the local copy,
// 200 overwrites it
func (c *CachedFetcher) revalidate(ctx context.Context, p, metaPath string, meta *cacheMeta) (io.ReadCloser, error) {
	req, err := newRequest(ctx, c.url)
	if err != nil {
		return nil, err
	}
	if meta != nil {
		if meta.ETag != "" {
			req.Header.Set("If-None-Match", meta.ETag)
		}
		if meta.LastModified != "" {
			req.Header.Set("If-Modified-Since", meta.LastModified)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "afinn: revalidate %s", c.url)
	}

	switch resp.StatusCode {
	case http.StatusNotModified:
		_ = resp.Body.Close()
		if meta == nil {
			meta = &cacheMeta{}
		}
		meta.LastChecked = now().UTC()
		_ = saveMeta(metaPath, meta)
		return openFile(p)
	case http.StatusOK:
		return c.store(resp, p, metaPath)
	default:
		_ = resp.Body.Close()
		return nil, unexpectedStatus(resp.StatusCode, c.url)
	}
}

// store writes the body to p through a .part file and rename, then writes the sidecar
func (c *CachedFetcher) store(resp *http.Response, p, metaPath string) (io.ReadCloser, error) {
	defer func() { _ = resp.Body.Close() }()

	tmp := p + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "afinn: create %s", tmp)
	}
	n, werr := io.Copy(out, resp.Body)
	cerr := out.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmp)
		if werr == nil {
			werr = cerr
		}
		return nil, perr.Wrapf(werr, perr.ErrorCodeUnavailable, "afinn: download %s", c.url)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "afinn: rename %s", tmp)
	}

	ts := now().UTC()
	_ = saveMeta(metaPath, &cacheMeta{
		ETag:         strings.TrimSpace(resp.Header.Get("ETag")),
		LastModified: strings.TrimSpace(resp.Header.Get("Last-Modified")),
		Size:         n,
		FetchedAt:    ts,
		LastChecked:  ts,
	})
	return openFile(p)
}

func openFile(p string) (io.ReadCloser, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "afinn: open cache %s", p)
	}
	return f, nil
}

// cacheName derives a stable file name from the URL: base name plus a short hash
// so two lists with the same base name do not collide
func cacheName(raw string) string {
	base := "lexicon.txt"
	if u, err := url.Parse(raw); err == nil {
		if b := path.Base(u.Path); b != "" && b != "." && b != "/" {
			base = b
		}
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(raw))
	return fmt.Sprintf("%08x-%s", h.Sum32(), base)
}

// loadMeta reads a sidecar json file
func loadMeta(p string) (*cacheMeta, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var m cacheMeta
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// saveMeta writes the sidecar json atomically
func saveMeta(p string, m *cacheMeta) error {
	tmp := p + ".part"
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}
