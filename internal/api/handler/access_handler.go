package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/core/domain"
)

// AccessHandler serves endpoints whose only job is to show who may reach them.
type AccessHandler struct{}

func NewAccessHandler() *AccessHandler {
	return &AccessHandler{}
}

type meResponse struct {
	Username  string        `json:"userName"`
	UserID    string        `json:"userId"`
	FirstName string        `json:"firstName,omitempty"`
	LastName  string        `json:"lastName,omitempty"`
	Roles     []domain.Role `json:"roles"`
	TokenID   string        `json:"tokenId"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

type accessResponse struct {
	Scope    string `json:"scope"`
	Username string `json:"userName,omitempty"`
}

// Me returns the claims of the caller's token.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  Response
// @Router       /api/auth/me [get]
func (h *AccessHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	roles := claims.Roles
	if roles == nil {
		roles = []domain.Role{}
	}
	return c.JSON(http.StatusOK, meResponse{
		Username:  claims.Username,
		UserID:    claims.UserID,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Roles:     roles,
		TokenID:   claims.TokenID,
		ExpiresAt: claims.ExpiresAt,
	})
}

// Public is reachable without a token.
//
// @Summary      Public endpoint
// @Tags         access
// @Produce      json
// @Success      200  {object}  accessResponse
// @Router       /api/access/public [get]
func (h *AccessHandler) Public(c echo.Context) error {
	return c.JSON(http.StatusOK, accessResponse{Scope: "public"})
}

// ForRole returns a handler for a route gated on role.
//
// @Summary      Role-gated endpoint
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string  true  "customer, creator or admin"
// @Success      200   {object}  accessResponse
// @Failure      401   {object}  Response
// @Failure      403   {object}  Response
// @Router       /api/access/{role} [get]
func (h *AccessHandler) ForRole(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := ctxClaims(c)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, accessResponse{Scope: role.String(), Username: claims.Username})
	}
}
