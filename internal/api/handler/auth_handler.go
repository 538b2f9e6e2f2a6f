package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-service/internal/api/metrics"
	"github.com/99minutos/auth-service/internal/core/domain"
	"github.com/99minutos/auth-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username  string `json:"userName"  validate:"required,max=256"`
	Password  string `json:"password"  validate:"required"`
	Email     string `json:"email"     validate:"omitempty,max=256"`
	FirstName string `json:"firstName" validate:"max=256"`
	LastName  string `json:"lastName"  validate:"max=256"`
}

type loginRequest struct {
	Username string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updatePermissionRequest struct {
	Username string `json:"userName" validate:"required"`
}

// SeedRoles creates the CUSTOMER, CREATOR and ADMIN roles.
//
// @Summary      Seed roles
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Response
// @Failure      500  {object}  Response
// @Router       /api/auth/seed-roles [post]
func (h *AuthHandler) SeedRoles(c echo.Context) error {
	res, err := h.authService.SeedRoles(c.Request().Context())
	if err != nil {
		metrics.RoleSeedingTotal.WithLabelValues(metrics.ResultError).Inc()
		return err
	}

	if res.Created {
		metrics.RoleSeedingTotal.WithLabelValues("created").Inc()
	} else {
		metrics.RoleSeedingTotal.WithLabelValues("already_done").Inc()
	}
	return c.JSON(http.StatusOK, success(res.Message))
}

// Register creates an account with the CUSTOMER role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      409   {object}  Response
// @Failure      500   {object}  Response
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("bad_request").Inc()
		return err
	}

	res, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	metrics.RegistrationsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(res.Message))
}

// Login checks credentials and returns a bearer token valid for one hour.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.LoginsTotal.WithLabelValues("bad_request").Inc()
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	metrics.TokensIssuedTotal.Inc()

	// message mirrors token.
	expires := res.ExpiresAt
	return c.JSON(http.StatusOK, Response{
		IsSuccess: true,
		Message:   res.Token,
		Token:     res.Token,
		ExpiresAt: &expires,
	})
}

// MakeCreator grants the CREATOR role.
//
// @Summary      Grant CREATOR
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePermissionRequest  true  "Target user"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Failure      403   {object}  Response
// @Router       /api/auth/make-creator [post]
func (h *AuthHandler) MakeCreator(c echo.Context) error {
	return h.grant(c, domain.RoleCreator, h.authService.MakeCreator)
}

// MakeAdmin grants the ADMIN role.
//
// @Summary      Grant ADMIN
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePermissionRequest  true  "Target user"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Failure      403   {object}  Response
// @Router       /api/auth/make-admin [post]
func (h *AuthHandler) MakeAdmin(c echo.Context) error {
	return h.grant(c, domain.RoleAdmin, h.authService.MakeAdmin)
}

func (h *AuthHandler) grant(c echo.Context, role domain.Role, fn func(context.Context, string) (*ports.Confirmation, error)) error {
	var req updatePermissionRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RoleGrantsTotal.WithLabelValues(role.String(), "bad_request").Inc()
		return err
	}

	res, err := fn(c.Request().Context(), req.Username)
	metrics.RoleGrantsTotal.WithLabelValues(role.String(), metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(res.Message))
}
