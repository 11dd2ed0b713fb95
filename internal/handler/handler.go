package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"obtconnect/internal/auth"
	apperrors "obtconnect/internal/errors"
	"obtconnect/internal/scope"
)

// identityFrom rebuilds the caller's identity from the validated JWT that
// the echo-jwt middleware stored on the context.
func identityFrom(c echo.Context) (scope.Identity, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return scope.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return scope.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	return claims.Identity, nil
}

// httpError maps a domain error onto an echo HTTP error with a stable code.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
