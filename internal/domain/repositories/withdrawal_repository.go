package repositories

import (
	"context"

	"github.com/google/uuid"
	"earnhub.backend/internal/domain/entities"
)

// WithdrawalRepository defines withdrawal request operations. GetForUpdate
// locks the request row so the pending check and the terminal transition
// cannot interleave between two administrators.
type WithdrawalRepository interface {
	Create(ctx context.Context, w *entities.Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.WithdrawalStatus) error
	ListByStatus(ctx context.Context, status entities.WithdrawalStatus) ([]*entities.Withdrawal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error)
}
