package entities

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a catalog entry users can complete for a reward
type Task struct {
	ID          uuid.UUID `json:"id"`
	TaskID      string    `json:"taskId"`
	Title       string    `json:"title"`
	Reward      float64   `json:"reward"`
	Frequency   string    `json:"frequency"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	ImageURL    string    `json:"image"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTaskInput represents input for creating a catalog task
type CreateTaskInput struct {
	TaskID      string  `json:"taskId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Reward      float64 `json:"reward" binding:"required,gt=0"`
	Frequency   string  `json:"frequency"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	ImageURL    string  `json:"image"`
}

// CompleteTaskResult represents the outcome of a successful task completion
type CompleteTaskResult struct {
	TodaysProfit  float64 `json:"todaysProfit"`
	TotalProfit   float64 `json:"totalProfit"`
	TaskCount     int     `json:"taskCount"`
	Balance       float64 `json:"balance"`
	FreezeBalance float64 `json:"freezeBalance"`
}
