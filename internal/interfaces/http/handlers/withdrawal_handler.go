package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"earnhub.backend/internal/domain/entities"
	"earnhub.backend/internal/interfaces/http/middleware"
	"earnhub.backend/internal/interfaces/http/response"
	"earnhub.backend/internal/usecases"
)

// WithdrawalHandler handles withdrawal endpoints
type WithdrawalHandler struct {
	withdrawalUsecase *usecases.WithdrawalUsecase
	settingsUsecase   *usecases.SettingsUsecase
}

// NewWithdrawalHandler creates a new withdrawal handler
func NewWithdrawalHandler(withdrawalUsecase *usecases.WithdrawalUsecase, settingsUsecase *usecases.SettingsUsecase) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalUsecase: withdrawalUsecase,
		settingsUsecase:   settingsUsecase,
	}
}

// Request files a withdrawal request for the current user
// POST /api/v1/withdrawals
func (h *WithdrawalHandler) Request(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input entities.RequestWithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.withdrawalUsecase.Request(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListMine lists the current user's withdrawal requests
// GET /api/v1/withdrawals
func (h *WithdrawalHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	withdrawals, err := h.withdrawalUsecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawals)
}

// ListPending lists requests awaiting review
// GET /api/v1/admin/withdrawals
func (h *WithdrawalHandler) ListPending(c *gin.Context) {
	withdrawals, err := h.withdrawalUsecase.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, withdrawals)
}

// Approve finalizes a pending request
// POST /api/v1/admin/withdrawals/:id/approve
func (h *WithdrawalHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid withdrawal id"})
		return
	}

	withdrawal, err := h.withdrawalUsecase.Approve(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": withdrawal.Status})
}

// Reject cancels a pending request and refunds the reservation
// POST /api/v1/admin/withdrawals/:id/reject
func (h *WithdrawalHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid withdrawal id"})
		return
	}

	resp, err := h.withdrawalUsecase.Reject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetToggle returns the global withdrawal toggle
// GET /api/v1/admin/withdrawal-status
func (h *WithdrawalHandler) GetToggle(c *gin.Context) {
	enabled, err := h.settingsUsecase.WithdrawalEnabled(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

// SetToggle flips the global withdrawal toggle
// POST /api/v1/admin/withdrawal-status
func (h *WithdrawalHandler) SetToggle(c *gin.Context) {
	var input struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.settingsUsecase.SetWithdrawalEnabled(c.Request.Context(), input.Enabled); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"enabled": input.Enabled})
}
