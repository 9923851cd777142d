package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"earnhub.backend/internal/domain/entities"
	"earnhub.backend/internal/interfaces/http/middleware"
	"earnhub.backend/internal/interfaces/http/response"
	"earnhub.backend/internal/usecases"
	"earnhub.backend/pkg/logger"
	"earnhub.backend/pkg/redis"
)

// AuthHandler handles authentication and profile endpoints
type AuthHandler struct {
	authUsecase  *usecases.AuthUsecase
	sessionStore *redis.SessionStore
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase, sessionStore *redis.SessionStore) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		sessionStore: sessionStore,
	}
}

// storeSession keeps the issued token pair server-side, keyed by user ID.
// Session storage is best-effort: a Redis outage must not fail a login.
func (h *AuthHandler) storeSession(c *gin.Context, resp *entities.AuthResponse) {
	if h.sessionStore == nil || resp.User == nil {
		return
	}
	err := h.sessionStore.CreateSession(c.Request.Context(), resp.User.ID.String(), &redis.SessionData{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, redis.SessionTTL)
	if err != nil {
		logger.Warn(c.Request.Context(), "Failed to store session", zap.Error(err))
	}
}

// Register handles account creation
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.storeSession(c, resp)
	c.JSON(http.StatusCreated, resp)
}

// Login handles email/password login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.storeSession(c, resp)
	c.JSON(http.StatusOK, resp)
}

// GoogleSignIn handles sign-in with a pre-verified Google identity
// POST /api/v1/auth/google
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var input entities.GoogleSignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.GoogleSignIn(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.storeSession(c, resp)
	c.JSON(http.StatusOK, resp)
}

// Logout drops the server-side session for the current user
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if h.sessionStore != nil {
		if err := h.sessionStore.DeleteSession(c.Request.Context(), userID.String()); err != nil {
			logger.Warn(c.Request.Context(), "Failed to delete session", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetMe returns the current user
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, err := h.authUsecase.GetMe(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the current user's display fields
// PUT /api/v1/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.UpdateProfile(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
