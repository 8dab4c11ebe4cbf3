package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "airreviews/internal/platform/errors"
	pnet "airreviews/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]any{"score": 1}, "req-1")

	if status != http.StatusOK {
		t.Fatalf("status %d want %d", status, http.StatusOK)
	}
	if w.StatusCode != http.StatusOK || w.Status != http.StatusText(http.StatusOK) {
		t.Fatalf("wire status mismatch: %+v", w)
	}
	if w.RequestID != "req-1" {
		t.Fatalf("req id %q want %q", w.RequestID, "req-1")
	}
	if got, ok := w.Data.(map[string]any)["score"]; !ok || got != 1 {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestNoContent(t *testing.T) {
	status, w := pnet.NoContent("req-2")
	if status != http.StatusNoContent || w.Data != nil || w.RequestID != "req-2" {
		t.Fatalf("unexpected no content envelope: %d %+v", status, w)
	}
}

func TestError(t *testing.T) {
	t.Run("nil error is OK", func(t *testing.T) {
		status, w := pnet.Error(nil, "r")
		if status != http.StatusOK || w.Error != "" {
			t.Fatalf("nil error should map to OK: %d %+v", status, w)
		}
	})

	t.Run("project error keeps code, field and message only", func(t *testing.T) {
		err := perr.WithField(
			perr.Wrap(errors.New("strconv: bad"), perr.ErrorCodeInvalidDate, `invalid day "xxth"`),
			"date",
		)
		status, w := pnet.Error(err, "r-3")
		if status != http.StatusUnprocessableEntity {
			t.Fatalf("status %d want 422", status)
		}
		if w.Code != perr.ErrorCodeInvalidDate || w.Field != "date" {
			t.Fatalf("unexpected wire: %+v", w)
		}
		if w.Error != `invalid day "xxth"` {
			t.Fatalf("cause leaked into message: %q", w.Error)
		}
	})

	t.Run("foreign error is unknown 500", func(t *testing.T) {
		status, w := pnet.Error(errors.New("boom"), "")
		if status != http.StatusInternalServerError || w.Code != perr.ErrorCodeUnknown || w.Error != "boom" {
			t.Fatalf("unexpected wire: %d %+v", status, w)
		}
	})
}
