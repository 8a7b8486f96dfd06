package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/core/ports"
)

func pageForQuery(t *testing.T, rawQuery string) ports.PageRequest {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/products?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	return pageFromQuery(e.NewContext(req, rec))
}

func TestPageFromQuery_Defaults(t *testing.T) {
	page := pageForQuery(t, "")
	if page.PageNumber != 0 || page.PageSize != 10 {
		t.Fatalf("defaults = %+v", page)
	}
}

func TestPageFromQuery_ClampsOversizedPage(t *testing.T) {
	page := pageForQuery(t, "pageSize=1000")
	if page.PageSize != maxPageSize {
		t.Fatalf("pageSize = %d, want clamp to %d", page.PageSize, maxPageSize)
	}

	// The envelope must report the clamped size and derive the page math
	// from it, not from what the client asked for.
	env := envelope([]struct{}{}, page, 250)
	if env.PageSize != maxPageSize {
		t.Fatalf("envelope page_size = %d", env.PageSize)
	}
	if env.TotalPages != 3 {
		t.Fatalf("total_pages = %d, want 3 for 250 elements at size 100", env.TotalPages)
	}
	if env.LastPage {
		t.Fatalf("page 0 of 3 reported as last")
	}
}

func TestPageFromQuery_IgnoresBadValues(t *testing.T) {
	page := pageForQuery(t, "pageNumber=-2&pageSize=abc")
	if page.PageNumber != 0 || page.PageSize != 10 {
		t.Fatalf("bad inputs should fall back to defaults, got %+v", page)
	}
}
