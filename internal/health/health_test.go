package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ForceConstant/lyrical-mcp/internal/cmudict"
)

func TestHealthz_AlwaysOK(t *testing.T) {
	t.Parallel()

	failing := Checker{
		Name:  "always-down",
		Check: func(context.Context) error { return errors.New("nope") },
	}
	h := New(failing)

	rec := httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 even with failing checkers", rec.Code)
	}
}

func TestReadyz_AllPass(t *testing.T) {
	t.Parallel()

	dict, err := cmudict.Default()
	if err != nil {
		t.Fatalf("failed to load embedded dictionary: %v", err)
	}
	h := New(Dictionary(dict))

	rec := httptest.NewRecorder()
	h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body)
	}

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal body: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
	if body.Checks["dictionary"] != "ok" {
		t.Errorf("dictionary check = %q, want ok", body.Checks["dictionary"])
	}
}

func TestReadyz_FailingChecker(t *testing.T) {
	t.Parallel()

	// A nil dictionary is the not-loaded case.
	h := New(Dictionary(nil))

	rec := httptest.NewRecorder()
	h.Readyz(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "fail") {
		t.Errorf("body should report the failure: %s", rec.Body)
	}
}

func TestDictionaryChecker_EmptyDict(t *testing.T) {
	t.Parallel()

	empty, _, err := cmudict.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse empty dictionary: %v", err)
	}
	if err := Dictionary(empty).Check(context.Background()); err == nil {
		t.Error("an empty dictionary must fail readiness")
	}
}

func TestRegister_Routes(t *testing.T) {
	t.Parallel()

	dict, err := cmudict.Default()
	if err != nil {
		t.Fatalf("failed to load embedded dictionary: %v", err)
	}
	mux := http.NewServeMux()
	New(Dictionary(dict)).Register(mux)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}
