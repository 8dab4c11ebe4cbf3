package module

import (
	"context"
	"reflect"
	"testing"
	"time"

	"airreviews/internal/adapters/lexicon/afinn"
	"airreviews/internal/core/lexicon"
	"airreviews/internal/modkit"
	"airreviews/internal/modkit/module"
	"airreviews/internal/platform/config"
	perr "airreviews/internal/platform/errors"
	kit "airreviews/internal/platform/testkit"
	"airreviews/internal/services/reviews/domain"
)

func TestFromConfig_Defaults(t *testing.T) {
	o := FromConfig(config.New().Prefix("RVT_"))
	if !reflect.DeepEqual(o.Columns, domain.DefaultColumns()) {
		t.Fatalf("columns = %+v", o.Columns)
	}
	if o.Run.Encoding != "utf-8" || o.Run.SkipInvalid {
		t.Fatalf("run = %+v", o.Run)
	}
	if o.Lexicon.Source != afinn.DefaultURL || o.Lexicon.Timeout != 30*time.Second || o.Lexicon.MaxAge != 24*time.Hour {
		t.Fatalf("lexicon = %+v", o.Lexicon)
	}
	if err := o.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestFromConfig_Env(t *testing.T) {
	t.Setenv("RVT_CORE_CLEAN_IN", "in.csv")
	t.Setenv("RVT_CORE_CLEAN_OUT", "out.csv")
	t.Setenv("RVT_CORE_CLEAN_ENCODING", "Windows-1252")
	t.Setenv("RVT_CORE_CLEAN_SKIP_INVALID", "true")
	t.Setenv("RVT_CORE_CLEAN_BODY_COLUMN", "Text")
	t.Setenv("RVT_CORE_CLEAN_RENAME", "Text=Review Text")
	t.Setenv("RVT_CORE_LEXICON_SOURCE", "/srv/afinn.txt")
	t.Setenv("RVT_CORE_LEXICON_CACHE_DIR", "/var/cache/airreviews")
	t.Setenv("RVT_CORE_LEXICON_TIMEOUT", "5s")

	o := FromConfig(config.New().Prefix("RVT_"))
	want := domain.RunInput{In: "in.csv", Out: "out.csv", Encoding: "windows-1252", SkipInvalid: true}
	if o.Run != want {
		t.Fatalf("run = %+v, want %+v", o.Run, want)
	}
	if o.Columns.Body != "Text" || !reflect.DeepEqual(o.Columns.Rename, map[string]string{"Text": "Review Text"}) {
		t.Fatalf("columns = %+v", o.Columns)
	}
	so := o.Lexicon.SourceOptions()
	if so.Location != "/srv/afinn.txt" || so.CacheDir != "/var/cache/airreviews" || so.Timeout != 5*time.Second {
		t.Fatalf("source options = %+v", so)
	}
}

func TestFromConfig_BadEncodingPanics(t *testing.T) {
	t.Setenv("RVT_CORE_CLEAN_ENCODING", "ebcdic")
	kit.MustPanic(t, func() { _ = FromConfig(config.New().Prefix("RVT_")) })
}

func TestValidate(t *testing.T) {
	base := FromConfig(config.New().Prefix("RVT_"))
	cases := []struct {
		name  string
		mut   func(*Options)
		field string
	}{
		{"no date column", func(o *Options) { o.Columns.Date = "" }, "date_column"},
		{"no sentiment column", func(o *Options) { o.Columns.Sentiment = "" }, "sentiment_column"},
		{"bad lexicon url", func(o *Options) { o.Lexicon.Source = "ftp://example.org/afinn" }, "source"},
		{"empty lexicon", func(o *Options) { o.Lexicon.Source = "" }, "source"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o := base
			c.mut(&o)
			err := o.Validate()
			e, ok := perr.As(err)
			if !ok || e.Code() != perr.ErrorCodeValidation {
				t.Fatalf("err = %v, want validation", err)
			}
			if e.Field() != c.field {
				t.Fatalf("field = %q, want %q", e.Field(), c.field)
			}
		})
	}
}

func TestNew(t *testing.T) {
	kit.MustPanic(t, func() { _ = New(modkit.Deps{}, Options{}) })

	deps := modkit.Deps{Lexicon: &lexicon.Snapshot{Lexicon: lexicon.Lexicon{"good": 3}}}
	m := New(deps, Options{Columns: domain.DefaultColumns()})
	if m.Name() != "reviews" {
		t.Fatalf("Name = %q", m.Name())
	}
	kit.MustNotPanic(t, func() { m.MountRoutes(nil) })

	c := module.MustPortsOf[domain.Cleaner](m)
	got, err := c.Clean(context.Background(), domain.Input{Date: "2nd March 2024", Body: "good"})
	if err != nil || got.Sentiment != 3 || got.Date.String() != "2024-03-02" {
		t.Fatalf("Clean = %+v, %v", got, err)
	}
	if _, ok := module.PortsOf[domain.Runner](m); !ok {
		t.Fatal("Runner port missing")
	}
}
