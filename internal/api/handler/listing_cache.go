package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/api/metrics"
	"github.com/velostore/commerce-api/internal/core/ports"
)

// listingCache fronts the public listing endpoints with the catalog cache.
// The cache key is the request path plus its query string, so every
// page/size/sort combination caches independently. Failures degrade to a
// miss; a broken cache never breaks a listing.
type listingCache struct {
	cache ports.CatalogCache
}

func newListingCache(cache ports.CatalogCache) *listingCache {
	return &listingCache{cache: cache}
}

func (lc *listingCache) key(c echo.Context) string {
	key := c.Request().URL.Path
	if q := c.Request().URL.RawQuery; q != "" {
		key += "?" + q
	}
	return key
}

func (lc *listingCache) lookup(c echo.Context) ([]byte, bool) {
	body, ok := lc.cache.Get(c.Request().Context(), lc.key(c))
	if ok {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return body, true
	}
	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	return nil, false
}

// respond renders the envelope and stores the rendered body for later hits.
func (lc *listingCache) respond(c echo.Context, env pageEnvelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}
	lc.cache.Set(c.Request().Context(), lc.key(c), body)
	return c.JSONBlob(http.StatusOK, body)
}
