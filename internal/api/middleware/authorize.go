package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/velostore/commerce-api/internal/api/metrics"
	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/security/policy"
)

// Authorize consults the static route table before any handler executes.
// It is the fail-closed counterpart to Authenticate: an anonymous context on
// a non-public route, or a missing role on a gated one, short-circuits to
// the error handler without touching business logic.
func Authorize(table *policy.Table) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, _ := Principal(c)
			if err := table.Evaluate(c.Request().URL.Path, p); err != nil {
				if errors.Is(err, domain.ErrInsufficientRole) {
					metrics.AuthzDenialsTotal.WithLabelValues("forbidden").Inc()
				} else {
					metrics.AuthzDenialsTotal.WithLabelValues("unauthenticated").Inc()
				}
				return err
			}
			return next(c)
		}
	}
}
