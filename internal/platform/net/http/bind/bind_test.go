package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "airreviews/internal/platform/errors"
	kit "airreviews/internal/platform/testkit"
)

type scoreReq struct {
	Text string `json:"text" validate:"required,max=20"`
}

type sourceOpts struct {
	Source string `json:"source" validate:"url_or_path"`
	Limit  int    `json:"limit" validate:"min=1"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"good flight"}`))
	got, err := ParseJSON[scoreReq](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "good flight" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		code  perr.ErrorCode
		field string
		msg   string
	}{
		{"empty body", "", perr.ErrorCodeJSON, "", "empty body"},
		{"malformed", `{"text":`, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"unknown field", `{"text":"x","extra":1}`, perr.ErrorCodeJSON, "", "unknown field"},
		{"trailing data", `{"text":"x"} {"text":"y"}`, perr.ErrorCodeJSON, "", "trailing"},
		{"required", `{}`, perr.ErrorCodeValidation, "text", "text is a required field"},
		{"max", `{"text":"this review is far too long"}`, perr.ErrorCodeValidation, "text", "text must be at most 20"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(c.body))
			_, err := ParseJSON[scoreReq](req)
			if perr.CodeOf(err) != c.code {
				t.Fatalf("code = %v want %v (%v)", perr.CodeOf(err), c.code, err)
			}
			kit.MustContain(t, err.Error(), c.msg)
			if c.field != "" {
				if e, _ := perr.As(err); e.Field() != c.field {
					t.Fatalf("field = %q want %q", e.Field(), c.field)
				}
			}
		})
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"good flight"}`))
	_, err := ParseJSON[scoreReq](req, JSONOptions{MaxBytes: 5, DisallowUnknown: true})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected truncated body to fail as JSON error, got %v", err)
	}
}

func TestParseJSON_JSONMoreSeam(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"ok"}`))
	if _, err := ParseJSON[scoreReq](req); err == nil || !strings.Contains(err.Error(), "trailing") {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestValidateStruct(t *testing.T) {
	if err := ValidateStruct(sourceOpts{Source: "https://example.com/AFINN-111.txt", Limit: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateStruct(sourceOpts{Source: "ftp://example.com/x", Limit: 1})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	kit.MustContain(t, err.Error(), "source must be an http(s) URL or a file path")

	err = ValidateStruct(sourceOpts{Source: "./afinn.txt", Limit: 0})
	kit.MustContain(t, err.Error(), "limit must be at least 1")

	// non-struct input is a programmer error but still maps to Validation
	if !perr.IsCode(ValidateStruct(42), perr.ErrorCodeValidation) {
		t.Fatalf("expected validation code for invalid input")
	}
}

func TestIsURLOrPath(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/afinn.txt":   true,
		"http://localhost:8080/afinn.txt": true,
		"/var/lib/airreviews/afinn.txt":   true,
		"afinn.txt":                       true,
		"":                                false,
		"   ":                             false,
		"ftp://host/afinn.txt":            false,
		"https://":                        false,
	}
	for in, want := range cases {
		if got := IsURLOrPath(in); got != want {
			t.Errorf("IsURLOrPath(%q) = %v want %v", in, got, want)
		}
	}
}

func TestValidationFieldAndMessage_NonValidatorError(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should yield empty pair")
	}
	if f, m := ValidationFieldAndMessage(perr.InvalidArgf("plain")); f != "" || m != "plain" {
		t.Fatalf("unexpected pair %q %q", f, m)
	}
}
