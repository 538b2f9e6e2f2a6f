package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/api/middleware"
	"github.com/99minutos/auth-service/internal/core/domain"
)

// ctxClaims returns the claims stored by the Auth middleware. A missing
// username means the route was mounted without Auth, which is a 401.
func ctxClaims(c echo.Context) (*domain.TokenClaims, error) {
	claims, ok := middleware.Claims(c)
	if !ok || claims.Username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
