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

// TaskHandler handles task catalog and completion endpoints
type TaskHandler struct {
	taskUsecase *usecases.TaskUsecase
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskUsecase *usecases.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// ListTasks lists the task catalog
// GET /api/v1/tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskUsecase.ListTasks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CompleteTask credits the reward for a task to the current user
// POST /api/v1/tasks/:taskId/complete
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	result, err := h.taskUsecase.CompleteTask(c.Request.Context(), userID, c.Param("taskId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStats returns the current user's daily stats
// GET /api/v1/tasks/stats
func (h *TaskHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	stats, err := h.taskUsecase.GetStats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// CreateTask adds a task to the catalog
// POST /api/v1/admin/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input entities.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// DeleteTask removes a task from the catalog
// DELETE /api/v1/admin/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return
	}

	if err := h.taskUsecase.DeleteTask(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
