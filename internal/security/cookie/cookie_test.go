package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtract_Present(t *testing.T) {
	tr := NewTransport("session", "/api/v1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/user", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok-123"})

	token, ok := tr.Extract(req)
	if !ok {
		t.Fatalf("expected cookie to be found")
	}
	if token != "tok-123" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestExtract_Absent(t *testing.T) {
	tr := NewTransport("session", "/api/v1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	if _, ok := tr.Extract(req); ok {
		t.Fatalf("expected anonymous state for request without cookie")
	}

	// An unrelated cookie does not count.
	req.AddCookie(&http.Cookie{Name: "other", Value: "x"})
	if _, ok := tr.Extract(req); ok {
		t.Fatalf("expected anonymous state for request with unrelated cookie")
	}
}

func TestExtract_EmptyValue(t *testing.T) {
	tr := NewTransport("session", "/api/v1")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: ""})

	if _, ok := tr.Extract(req); ok {
		t.Fatalf("cleared cookie must read as anonymous")
	}
}

func TestAttach_ScopesToAPIPath(t *testing.T) {
	tr := NewTransport("session", "/api/v1")

	rec := httptest.NewRecorder()
	tr.Attach(rec, "tok-456")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "session" || c.Value != "tok-456" {
		t.Fatalf("unexpected cookie %s=%s", c.Name, c.Value)
	}
	if c.Path != "/api/v1" {
		t.Fatalf("expected path /api/v1, got %q", c.Path)
	}
}

func TestClear_EmptiesValue(t *testing.T) {
	tr := NewTransport("session", "/api/v1")

	rec := httptest.NewRecorder()
	tr.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Value != "" {
		t.Fatalf("expected empty value, got %q", c.Value)
	}
	if c.Path != "/api/v1" {
		t.Fatalf("expected path /api/v1, got %q", c.Path)
	}
}
