package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/infrastructure/models"
)

// TaskRepository implements task catalog operations
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new catalog task
func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	m := &models.Task{
		ID:          task.ID,
		TaskID:      task.TaskID,
		Title:       task.Title,
		Reward:      task.Reward,
		Frequency:   task.Frequency,
		Description: task.Description,
		Link:        task.Link,
		ImageURL:    task.ImageURL,
		IsActive:    task.IsActive,
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	task.ID = m.ID
	task.CreatedAt = m.CreatedAt
	task.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByTaskID gets a catalog task by its public task id
func (r *TaskRepository) GetByTaskID(ctx context.Context, taskID string) (*entities.Task, error) {
	var m models.Task
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("task_id = ?", taskID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTaskEntity(&m), nil
}

// Delete soft deletes a catalog task
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all catalog tasks
func (r *TaskRepository) List(ctx context.Context) ([]*entities.Task, error) {
	var ms []models.Task
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	var out []*entities.Task
	for i := range ms {
		out = append(out, toTaskEntity(&ms[i]))
	}
	return out, nil
}

func toTaskEntity(m *models.Task) *entities.Task {
	return &entities.Task{
		ID:          m.ID,
		TaskID:      m.TaskID,
		Title:       m.Title,
		Reward:      m.Reward,
		Frequency:   m.Frequency,
		Description: m.Description,
		Link:        m.Link,
		ImageURL:    m.ImageURL,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
