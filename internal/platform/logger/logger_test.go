package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	kit "airreviews/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"trace", "trace"},
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"WARNING", "warn"},
		{"error", "error"},
		{"fatal", "fatal"},
		{"panic", "panic"},
		{"", "info"},
		{"  loud ", "info"},
	}
	for _, c := range cases {
		if got := strings.ToLower(parseLevel(c.in).String()); got != c.want {
			t.Fatalf("parseLevel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "airreviews-clean")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "3")

	o := FromEnv()
	if o.Level != "debug" || o.Format != "json" {
		t.Fatalf("level/format not lowered: %+v", o)
	}
	if o.Service != "airreviews-clean" || !o.WithCaller || o.SampleEvery != 3 {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestInit_Named_C(t *testing.T) {
	var buf bytes.Buffer

	Init(Options{
		Level:        "debug",
		Format:       "json",
		Service:      "svc-a",
		Writer:       &buf,
		StaticFields: map[string]string{"build": "test"},
	})

	// sampling may already be set by a previous Init in the process; force N=1
	rv := Get().Sample(&zerolog.BasicSampler{N: 1})
	rv.Info().Msg("root-msg")

	nv := Named("lexicon").Sample(&zerolog.BasicSampler{N: 1})
	nv.Info().Msg("named-msg")

	ctx := WithRequest(WithRun(context.Background(), "run-123"), "req-9")
	cv := C(ctx).Sample(&zerolog.BasicSampler{N: 1})
	cv.Info().Msg("ctx-msg")

	out := buf.String()
	kit.MustContain(t, out, "root-msg")
	kit.MustContain(t, out, "named-msg")
	kit.MustContain(t, out, `"component":"lexicon"`)
	kit.MustContain(t, out, `"run_id":"run-123"`)
	kit.MustContain(t, out, `"request_id":"req-9"`)
	kit.MustContain(t, out, `"build":"test"`)
}

func TestWithRun_EmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	if WithRun(ctx, "") != ctx {
		t.Fatalf("empty run id should return ctx unchanged")
	}
	if RunID(WithRun(ctx, "abc")) != "abc" {
		t.Fatalf("RunID did not round trip")
	}
	if Named("") != Get() {
		t.Fatalf("Named(\"\") should return the root logger")
	}
}
