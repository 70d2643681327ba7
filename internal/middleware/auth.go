package middleware

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"newsapi/internal/auth"
	apperrors "newsapi/internal/errors"
	"newsapi/internal/repository"
)

// Authenticate verifies the Authorization bearer token and stores the decoded
// claims on the context. A request with no token at all is rejected with 403
// before the handler chain continues; a malformed, forged or expired token
// yields 401.
func Authenticate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, echojwt.ErrJWTMissing) {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrAccessDenied.Error())
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrInvalidToken.Error())
		},
	})
}

// RequireAdmin admits the request only when the authenticated user's role is
// ADMIN. The role is read from the store on every request, so role changes
// bind on the next request without re-login. Must run after Authenticate.
func RequireAdmin(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrAccessDenied.Error())
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil || !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrAdminRequired.Error())
			}
			return next(c)
		}
	}
}

// ClaimsFromContext returns the typed claims attached by Authenticate.
func ClaimsFromContext(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}
