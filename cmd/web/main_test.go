package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLandingHandler(t *testing.T) {
	h := landingHandler("ssh -p {{.SSHPort}} {{.SSHHost}}", "play.example.com", "2222")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "ssh -p 2222 play.example.com") {
		t.Errorf("body = %q", body)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
