package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/server/http/dto"
)

// UserHandler manages the admin account endpoints.
type UserHandler struct {
	facade UserAdminFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserAdminFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/admin/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.ListUsers(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}
	c.JSON(http.StatusOK, resp)
}

// Ban handles POST /api/admin/users/:id/ban.
func (h *UserHandler) Ban(c *gin.Context) {
	var req dto.BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	if err := h.facade.BanUser(c.Request.Context(), CurrentUser(c), c.Param("id"), req.Reason, req.Details); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Unban handles POST /api/admin/users/:id/unban.
func (h *UserHandler) Unban(c *gin.Context) {
	if err := h.facade.UnbanUser(c.Request.Context(), CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// SetRole handles POST /api/admin/users/:id/role.
func (h *UserHandler) SetRole(c *gin.Context) {
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	if err := h.facade.SetUserRole(c.Request.Context(), CurrentUser(c), c.Param("id"), model.Role(req.Role)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
