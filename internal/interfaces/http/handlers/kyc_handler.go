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

// KYCHandler handles identity verification endpoints
type KYCHandler struct {
	kycUsecase *usecases.KYCUsecase
}

// NewKYCHandler creates a new KYC handler
func NewKYCHandler(kycUsecase *usecases.KYCUsecase) *KYCHandler {
	return &KYCHandler{kycUsecase: kycUsecase}
}

// Submit stores the current user's KYC fields
// POST /api/v1/kyc/submit
func (h *KYCHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input entities.SubmitKYCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.kycUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Approve approves a user's submission and releases their frozen balance
// POST /api/v1/admin/kyc/:userId/approve
func (h *KYCHandler) Approve(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	resp, err := h.kycUsecase.Approve(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Reject rejects a user's submission
// POST /api/v1/admin/kyc/:userId/reject
func (h *KYCHandler) Reject(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	resp, err := h.kycUsecase.Reject(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPending lists users awaiting review
// GET /api/v1/admin/kyc/pending
func (h *KYCHandler) ListPending(c *gin.Context) {
	users, err := h.kycUsecase.ListPendingSubmissions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	submissions := make([]gin.H, 0, len(users))
	for _, user := range users {
		submissions = append(submissions, gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"fullname":    user.KYCData.FullName,
			"idType":      user.KYCData.IDType,
			"idNumber":    user.KYCData.IDNumber,
			"idDocument":  user.KYCData.IDDocument,
			"submittedAt": user.KYCData.SubmittedAt,
		})
	}

	c.JSON(http.StatusOK, submissions)
}
