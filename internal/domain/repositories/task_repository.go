package repositories

import (
	"context"

	"github.com/google/uuid"
	"earnhub.backend/internal/domain/entities"
)

// TaskRepository defines task catalog operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByTaskID(ctx context.Context, taskID string) (*entities.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*entities.Task, error)
}
