package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"earnhub.backend/internal/interfaces/http/middleware"
	"earnhub.backend/internal/interfaces/http/response"
	"earnhub.backend/internal/usecases"
)

// ReferralHandler handles referral endpoints
type ReferralHandler struct {
	referralUsecase *usecases.ReferralUsecase
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralUsecase *usecases.ReferralUsecase) *ReferralHandler {
	return &ReferralHandler{referralUsecase: referralUsecase}
}

// GetInfo returns the current user's referral code, balance, and referred users
// GET /api/v1/referrals
func (h *ReferralHandler) GetInfo(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	info, err := h.referralUsecase.GetReferralInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// WithdrawBalance transfers the accumulated referral balance into the spendable balance
// POST /api/v1/referrals/withdraw
func (h *ReferralHandler) WithdrawBalance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	balance, err := h.referralUsecase.WithdrawReferralBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Referral balance transferred",
		"newBalance": balance,
	})
}
