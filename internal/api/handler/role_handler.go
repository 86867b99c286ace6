package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crediya/user-service/internal/core/domain"
	"github.com/crediya/user-service/internal/core/ports"
)

// RoleHandler handles the role management endpoints. All of them are
// admin-only; the policy is attached at the router.
type RoleHandler struct {
	roles ports.RoleService
}

func NewRoleHandler(roles ports.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// Create handles POST /api/v1/roles.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequest  true  "Role details"
// @Success      201   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roles.Create(c.Request().Context(), ports.RoleInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRoleResponse(role))
}

// Update handles PUT /api/v1/roles/:id.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Role id"
// @Param        body  body      roleRequest  true  "Updated role details"
// @Success      200   {object}  roleResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roles.Update(c.Request().Context(), c.Param("id"), ports.RoleInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// Get handles GET /api/v1/roles/:id.
//
// @Summary      Get a role by id
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Role id"
// @Success      200 {object}  roleResponse
// @Failure      404 {object}  errorResponse
// @Router       /api/v1/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.roles.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// List handles GET /api/v1/roles.
//
// @Summary      List all roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object}  roleListResponse
// @Router       /api/v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roles.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		items = append(items, toRoleResponse(r))
	}
	return c.JSON(http.StatusOK, roleListResponse{Items: items, Total: len(items)})
}

// Delete handles DELETE /api/v1/roles/:id.
//
// @Summary      Delete a role
// @Tags         roles
// @Security     BearerAuth
// @Param        id  path  string  true  "Role id"
// @Success      204
// @Failure      404 {object}  errorResponse
// @Router       /api/v1/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.roles.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toRoleResponse(r *domain.Role) roleResponse {
	return roleResponse{ID: r.ID, Name: r.Name, Description: r.Description}
}
