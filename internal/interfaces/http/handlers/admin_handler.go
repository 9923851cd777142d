package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"earnhub.backend/internal/domain/repositories"
	"earnhub.backend/internal/interfaces/http/response"
	"earnhub.backend/pkg/utils"
)

// AdminHandler handles user administration endpoints
type AdminHandler struct {
	userRepo repositories.UserRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userRepo repositories.UserRepository) *AdminHandler {
	return &AdminHandler{userRepo: userRepo}
}

// ListUsers lists users with optional search and pagination
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	users, total, err := h.userRepo.List(c.Request.Context(), c.Query("search"), params.CalculateOffset(), params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// BlockUser blocks a user account
// POST /api/v1/admin/users/:id/block
func (h *AdminHandler) BlockUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if err := h.userRepo.SetBlocked(c.Request.Context(), id, true); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User blocked successfully"})
}

// UnblockUser unblocks a user account
// POST /api/v1/admin/users/:id/unblock
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	if err := h.userRepo.SetBlocked(c.Request.Context(), id, false); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User unblocked successfully"})
}
