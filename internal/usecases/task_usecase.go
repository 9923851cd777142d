package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/domain/repositories"
	"earnhub.backend/pkg/logger"
)

// TaskUsecase handles the task catalog and the reward ledger: daily
// rollover, once-per-day crediting, and KYC-gated routing of rewards.
type TaskUsecase struct {
	userRepo repositories.UserRepository
	taskRepo repositories.TaskRepository
	uow      repositories.UnitOfWork
}

// NewTaskUsecase creates a new task usecase
func NewTaskUsecase(
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	uow repositories.UnitOfWork,
) *TaskUsecase {
	return &TaskUsecase{
		userRepo: userRepo,
		taskRepo: taskRepo,
		uow:      uow,
	}
}

// CompleteTask credits the catalog reward for taskID to the user, once
// per calendar day per task. The whole transition runs as one atomic
// read-modify-write on the user row.
func (u *TaskUsecase) CompleteTask(ctx context.Context, userID uuid.UUID, taskID string) (*entities.CompleteTaskResult, error) {
	task, err := u.taskRepo.GetByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsActive || task.Reward <= 0 {
		return nil, domainerrors.ErrNotFound
	}

	var result *entities.CompleteTaskResult
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if user.IsBlocked {
			return domainerrors.ErrAccountBlocked
		}

		today := entities.DateOf(time.Now())
		user.TaskStats.RollDayIfNeeded(today)

		if user.TaskStats.CompletedToday(task.TaskID, today) {
			return domainerrors.ErrTaskAlreadyDone
		}

		user.TaskStats.TodaysProfit += task.Reward
		user.TaskStats.TotalProfit += task.Reward
		user.TaskStats.TaskCount++
		user.TaskStats.CompletedTasks[task.TaskID] = today

		// Routing is decided by the KYC state at completion time: approved
		// users earn spendable balance, everyone else earns frozen balance.
		if user.KYCStatus == entities.KYCStatusApproved {
			user.Balance += task.Reward
		} else {
			user.FreezeBalance += task.Reward
		}

		if err := u.userRepo.Save(txCtx, user); err != nil {
			return err
		}

		result = &entities.CompleteTaskResult{
			TodaysProfit:  user.TaskStats.TodaysProfit,
			TotalProfit:   user.TaskStats.TotalProfit,
			TaskCount:     user.TaskStats.TaskCount,
			Balance:       user.Balance,
			FreezeBalance: user.FreezeBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetStats returns the user's daily stats, rolled over lazily so a
// dashboard read after midnight does not show yesterday's counters.
func (u *TaskUsecase) GetStats(ctx context.Context, userID uuid.UUID) (*entities.TaskStats, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := user.TaskStats
	stats.RollDayIfNeeded(entities.DateOf(time.Now()))
	return &stats, nil
}

// ResetLaggingUsers resets the daily counters of every user whose stored
// date is behind today. Each user is reset in its own transaction with the
// row locked, so the sweep cannot race a concurrent task completion, and
// rerunning it is a no-op.
func (u *TaskUsecase) ResetLaggingUsers(ctx context.Context, batch int) (int, error) {
	today := entities.DateOf(time.Now())

	ids, err := u.userRepo.ListStaleIDs(ctx, today, batch)
	if err != nil {
		return 0, err
	}

	reset := 0
	for _, id := range ids {
		err := u.uow.Do(ctx, func(txCtx context.Context) error {
			user, err := u.userRepo.GetForUpdate(txCtx, id)
			if err != nil {
				return err
			}
			if !user.TaskStats.RollDayIfNeeded(today) {
				return nil
			}
			return u.userRepo.Save(txCtx, user)
		})
		if err != nil {
			logger.Error(ctx, "daily reset failed for user", zap.String("user_id", id.String()), zap.Error(err))
			continue
		}
		reset++
	}
	return reset, nil
}

// CreateTask adds a task to the catalog (admin only)
func (u *TaskUsecase) CreateTask(ctx context.Context, input *entities.CreateTaskInput) (*entities.Task, error) {
	task := &entities.Task{
		TaskID:      input.TaskID,
		Title:       input.Title,
		Reward:      input.Reward,
		Frequency:   input.Frequency,
		Description: input.Description,
		Link:        input.Link,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}
	if err := u.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task from the catalog (admin only)
func (u *TaskUsecase) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return u.taskRepo.Delete(ctx, id)
}

// ListTasks lists all catalog tasks
func (u *TaskUsecase) ListTasks(ctx context.Context) ([]*entities.Task, error) {
	return u.taskRepo.List(ctx)
}
