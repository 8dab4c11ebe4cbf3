package afinn

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"airreviews/internal/core/lexicon"
	perr "airreviews/internal/platform/errors"
	kit "airreviews/internal/platform/testkit"
)

const body = "good\t3\nbad\t-3\n"

// upstream serves body with an ETag and answers 304 on a matching If-None-Match.
// status overrides the response code when non zero
type upstream struct {
	hits        atomic.Int32
	conditional atomic.Int32
	status      atomic.Int32
	body        atomic.Value
}

func newUpstream(t *testing.T) (*upstream, *httptest.Server) {
	t.Helper()
	u := &upstream{}
	u.body.Store(body)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		if r.Header.Get("User-Agent") == "" {
			t.Errorf("missing user agent")
		}
		if s := u.status.Load(); s != 0 {
			w.WriteHeader(int(s))
			return
		}
		b := u.body.Load().(string)
		etag := `"` + b[:4] + `"`
		if r.Header.Get("If-None-Match") != "" {
			u.conditional.Add(1)
			if r.Header.Get("If-None-Match") == etag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		w.Header().Set("ETag", etag)
		w.Header().Set("Last-Modified", "Wed, 01 Jan 2025 00:00:00 GMT")
		_, _ = io.WriteString(w, b)
	}))
	t.Cleanup(srv.Close)
	return u, srv
}

func read(t *testing.T, src lexicon.Source) string {
	t.Helper()
	rc, err := src.Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(b)
}

func TestHTTPFetcher(t *testing.T) {
	u, srv := newUpstream(t)
	f := NewHTTPFetcher(srv.URL+"/AFINN-111.txt", 0)
	if f.Client.Timeout != defaultHTTPTO {
		t.Fatalf("default timeout not applied")
	}
	if got := read(t, f); got != body {
		t.Fatalf("body %q", got)
	}
	if f.Name() != srv.URL+"/AFINN-111.txt" {
		t.Fatalf("name %q", f.Name())
	}

	u.status.Store(http.StatusNotFound)
	if _, err := f.Open(context.Background()); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("404 should map to not found, got %v", err)
	}
	u.status.Store(http.StatusBadGateway)
	if _, err := f.Open(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("502 should map to unavailable, got %v", err)
	}
}

func TestHTTPFetcher_Unreachable(t *testing.T) {
	_, srv := newUpstream(t)
	addr := srv.URL
	srv.Close()
	if _, err := NewHTTPFetcher(addr, time.Second).Open(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestCachedFetcher_DownloadThenFresh(t *testing.T) {
	u, srv := newUpstream(t)
	dir := filepath.Join(t.TempDir(), "cache")
	c := NewCachedFetcher(dir, NewHTTPFetcher(srv.URL+"/AFINN-111.txt", time.Second), WithMaxAge(time.Hour))

	if got := read(t, c); got != body {
		t.Fatalf("first read %q", got)
	}
	if got := read(t, c); got != body {
		t.Fatalf("second read %q", got)
	}
	if u.hits.Load() != 1 {
		t.Fatalf("fresh cache should not hit upstream again, hits=%d", u.hits.Load())
	}
	if _, err := os.Stat(c.Path() + ".meta"); err != nil {
		t.Fatalf("meta sidecar missing: %v", err)
	}
	if _, err := os.Stat(c.Path() + ".part"); !os.IsNotExist(err) {
		t.Fatalf("part file left behind")
	}
	if filepath.Base(c.Path())[9:] != "AFINN-111.txt" {
		t.Fatalf("unexpected cache name %s", c.Path())
	}
}

func TestCachedFetcher_RevalidateNotModified(t *testing.T) {
	kit.Serial(t)
	clock := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	kit.Swap(t, &now, func() time.Time { return clock })

	u, srv := newUpstream(t)
	c := NewCachedFetcher(t.TempDir(), NewHTTPFetcher(srv.URL+"/AFINN-111.txt", time.Second), WithMaxAge(time.Minute))
	read(t, c)

	clock = clock.Add(2 * time.Minute)
	if got := read(t, c); got != body {
		t.Fatalf("revalidated read %q", got)
	}
	if u.conditional.Load() != 1 || u.hits.Load() != 2 {
		t.Fatalf("expected one conditional request, hits=%d conditional=%d", u.hits.Load(), u.conditional.Load())
	}

	// 304 refreshed LastChecked, so the next read within max age stays local
	clock = clock.Add(30 * time.Second)
	read(t, c)
	if u.hits.Load() != 2 {
		t.Fatalf("expected no upstream hit after 304 refresh, hits=%d", u.hits.Load())
	}
}

func TestCachedFetcher_RevalidateChanged(t *testing.T) {
	u, srv := newUpstream(t)
	c := NewCachedFetcher(t.TempDir(), NewHTTPFetcher(srv.URL+"/AFINN-111.txt", time.Second), WithMaxAge(0))
	read(t, c)

	u.body.Store("great\t3\n")
	if got := read(t, c); got != "great\t3\n" {
		t.Fatalf("changed upstream should replace cache, got %q", got)
	}
	if got := kit.ReadFile(t, c.Path()); got != "great\t3\n" {
		t.Fatalf("cache file not overwritten: %q", got)
	}
}

func TestCachedFetcher_StaleFallback(t *testing.T) {
	u, srv := newUpstream(t)
	c := NewCachedFetcher(t.TempDir(), NewHTTPFetcher(srv.URL+"/AFINN-111.txt", time.Second), WithMaxAge(0))
	read(t, c)

	u.status.Store(http.StatusServiceUnavailable)
	if got := read(t, c); got != body {
		t.Fatalf("expected stale copy, got %q", got)
	}

	srv.Close()
	if got := read(t, c); got != body {
		t.Fatalf("expected stale copy when host is down, got %q", got)
	}
}

func TestCachedFetcher_ColdMissFails(t *testing.T) {
	u, srv := newUpstream(t)
	u.status.Store(http.StatusInternalServerError)
	c := NewCachedFetcher(t.TempDir(), NewHTTPFetcher(srv.URL+"/AFINN-111.txt", time.Second))
	if _, err := c.Open(context.Background()); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("cold miss with upstream error should fail, got %v", err)
	}
	if _, err := os.Stat(c.Path()); !os.IsNotExist(err) {
		t.Fatalf("nothing should be cached")
	}
}

func TestFileSource(t *testing.T) {
	p := kit.WriteFile(t, "afinn.txt", body)
	if got := read(t, FileSource{Path: p}); got != body {
		t.Fatalf("file read %q", got)
	}
	_, err := FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")}.Open(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing file should be not found, got %v", err)
	}
}

func TestNewSource(t *testing.T) {
	cases := []struct {
		name string
		opts SourceOptions
		want string
	}{
		{"path", SourceOptions{Location: "./afinn.txt"}, "afinn.FileSource"},
		{"url", SourceOptions{Location: DefaultURL}, "*afinn.HTTPFetcher"},
		{"cached url", SourceOptions{Location: DefaultURL, CacheDir: t.TempDir()}, "*afinn.CachedFetcher"},
	}
	for _, c := range cases {
		src := NewSource(c.opts)
		if got := typeName(src); got != c.want {
			t.Fatalf("%s: got %s want %s", c.name, got, c.want)
		}
		if src.Name() != c.opts.Location {
			t.Fatalf("%s: name %q", c.name, src.Name())
		}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case FileSource:
		return "afinn.FileSource"
	case *HTTPFetcher:
		return "*afinn.HTTPFetcher"
	case *CachedFetcher:
		return "*afinn.CachedFetcher"
	}
	return "unknown"
}

func TestLoadThroughCache(t *testing.T) {
	_, srv := newUpstream(t)
	snap, err := lexicon.Load(context.Background(), NewSource(SourceOptions{
		Location: srv.URL + "/AFINN-111.txt",
		CacheDir: t.TempDir(),
		Timeout:  time.Second,
		MaxAge:   time.Hour,
	}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Lexicon["good"] != 3 || snap.Lexicon["bad"] != -3 {
		t.Fatalf("unexpected lexicon %v", snap.Lexicon)
	}
}
