package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"earnhub.backend/internal/interfaces/http/handlers"
	"earnhub.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	taskHandler       *handlers.TaskHandler
	kycHandler        *handlers.KYCHandler
	referralHandler   *handlers.ReferralHandler
	withdrawalHandler *handlers.WithdrawalHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/google", d.authHandler.GoogleSignIn)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.PUT("/profile", d.authMiddleware, d.authHandler.UpdateProfile)
		}

		// Task routes (protected)
		tasks := v1.Group("/tasks")
		tasks.Use(d.authMiddleware)
		{
			tasks.GET("", d.taskHandler.ListTasks)
			tasks.GET("/stats", d.taskHandler.GetStats)
			tasks.POST("/:taskId/complete", d.taskHandler.CompleteTask)
		}

		// KYC routes (protected)
		kyc := v1.Group("/kyc")
		kyc.Use(d.authMiddleware)
		{
			kyc.POST("/submit", d.kycHandler.Submit)
		}

		// Referral routes (protected)
		referrals := v1.Group("/referrals")
		referrals.Use(d.authMiddleware)
		{
			referrals.GET("", d.referralHandler.GetInfo)
			referrals.POST("/withdraw", d.referralHandler.WithdrawBalance)
		}

		// Withdrawal routes (protected)
		withdrawals := v1.Group("/withdrawals")
		withdrawals.Use(d.authMiddleware)
		{
			withdrawals.POST("", d.withdrawalHandler.Request)
			withdrawals.GET("", d.withdrawalHandler.ListMine)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.POST("/users/:id/block", d.adminHandler.BlockUser)
			admin.POST("/users/:id/unblock", d.adminHandler.UnblockUser)

			admin.POST("/tasks", d.taskHandler.CreateTask)
			admin.DELETE("/tasks/:id", d.taskHandler.DeleteTask)

			admin.GET("/kyc/pending", d.kycHandler.ListPending)
			admin.POST("/kyc/:userId/approve", d.kycHandler.Approve)
			admin.POST("/kyc/:userId/reject", d.kycHandler.Reject)

			admin.GET("/withdrawals", d.withdrawalHandler.ListPending)
			admin.POST("/withdrawals/:id/approve", d.withdrawalHandler.Approve)
			admin.POST("/withdrawals/:id/reject", d.withdrawalHandler.Reject)

			admin.GET("/withdrawal-status", d.withdrawalHandler.GetToggle)
			admin.POST("/withdrawal-status", d.withdrawalHandler.SetToggle)
		}
	}
}
