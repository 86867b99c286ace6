package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crediya/user-service/internal/api/metrics"
	"github.com/crediya/user-service/internal/core/ports"
	"github.com/crediya/user-service/internal/pkg/token"
)

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
	Name   string `json:"name,omitempty"`
	Token  string `json:"token"`
}

// AuthHandler handles login and token introspection. It owns the two
// capabilities the authentication use case consumes: the token service as
// issuer and bcrypt as password verifier.
type AuthHandler struct {
	auth   ports.AuthService
	tokens *token.Service
}

func NewAuthHandler(auth ports.AuthService, tokens *token.Service) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

// Login handles POST /api/v1/auth/login.
//
// @Summary      Authenticate and obtain a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	auth, err := h.auth.Login(c.Request().Context(), req.Email, req.Password, h.tokens.Issue, verifyPassword)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{
		UserID: auth.UserID,
		RoleID: auth.RoleID,
		Name:   auth.Name,
		Token:  auth.Token,
	})
}

// Validate handles POST /api/v1/auth/validate — introspects the bearer token
// and echoes its identity claims.
//
// @Summary      Validate a session token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object}  authResponse
// @Failure      401 {object}  errorResponse
// @Router       /api/v1/auth/validate [post]
func (h *AuthHandler) Validate(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid authorization header")
	}

	raw := parts[1]
	if !h.tokens.IsValid(raw) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	claims, err := h.tokens.Parse(raw)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{
		UserID: claims.UserID,
		RoleID: claims.RoleID,
		Token:  raw,
	})
}
