package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/velostore/commerce-api/internal/api/metrics"
	"github.com/velostore/commerce-api/internal/core/domain"
	"github.com/velostore/commerce-api/internal/core/ports"
	"github.com/velostore/commerce-api/internal/security/cookie"
	"github.com/velostore/commerce-api/internal/security/token"
)

const principalKey = "principal"

// Authenticate extracts the session cookie, verifies the token, loads the
// user's roles and installs a Principal into the request context. It runs
// once per request and never rejects one: a missing cookie, a failed
// verification, an unknown subject or a credential store failure all leave
// the context anonymous and continue down the chain. Rejection is the
// authorization middleware's job.
func Authenticate(codec *token.Codec, transport *cookie.Transport, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := transport.Extract(c.Request())
			if !ok {
				return next(c)
			}

			subject, err := codec.Verify(raw)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyLabel(err)).Inc()
				log.Warn().Err(err).
					Str("path", c.Request().URL.Path).
					Msg("session token rejected, continuing anonymous")
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if errors.Is(err, domain.ErrUserNotFound) {
				metrics.TokenVerificationsTotal.WithLabelValues("unknown_subject").Inc()
				log.Warn().
					Str("subject", subject).
					Msg("token subject has no account, continuing anonymous")
				return next(c)
			}
			if err != nil {
				// A store failure is not an unknown subject.
				metrics.TokenVerificationsTotal.WithLabelValues("lookup_failed").Inc()
				log.Error().Err(err).
					Str("subject", subject).
					Msg("credential store lookup failed, continuing anonymous")
				return next(c)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(principalKey, &domain.Principal{Username: user.Username, Roles: user.Roles})
			return next(c)
		}
	}
}

// Principal returns the authenticated identity for this request, if any.
func Principal(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok && p != nil
}

func verifyLabel(err error) string {
	switch {
	case errors.Is(err, token.ErrMalformed):
		return "malformed"
	case errors.Is(err, token.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, token.ErrExpired):
		return "expired"
	default:
		return "unsupported"
	}
}
