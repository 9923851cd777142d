package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/infrastructure/models"
)

// WithdrawalRepository implements withdrawal request operations
type WithdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository creates a new withdrawal repository
func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create creates a new withdrawal request
func (r *WithdrawalRepository) Create(ctx context.Context, w *entities.Withdrawal) error {
	m := &models.Withdrawal{
		ID:            w.ID,
		UserID:        w.UserID,
		Bank:          w.Bank,
		AccountName:   w.AccountName,
		AccountNumber: w.AccountNumber,
		Amount:        w.Amount,
		ReceiptID:     w.ReceiptID,
		Status:        string(w.Status),
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	w.ID = m.ID
	w.CreatedAt = m.CreatedAt
	w.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a withdrawal request by ID
func (r *WithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	var m models.Withdrawal
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toWithdrawalEntity(&m), nil
}

// GetForUpdate gets a withdrawal request, locking the row for the
// remainder of the surrounding transaction.
func (r *WithdrawalRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m models.Withdrawal
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toWithdrawalEntity(&m), nil
}

// UpdateStatus moves a request to a terminal state
func (r *WithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.WithdrawalStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Withdrawal{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByStatus lists requests in a given state, newest first
func (r *WithdrawalRepository) ListByStatus(ctx context.Context, status entities.WithdrawalStatus) ([]*entities.Withdrawal, error) {
	var ms []models.Withdrawal
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return toWithdrawalEntities(ms), nil
}

// ListByUser lists a user's requests, newest first
func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error) {
	var ms []models.Withdrawal
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return toWithdrawalEntities(ms), nil
}

func toWithdrawalEntity(m *models.Withdrawal) *entities.Withdrawal {
	return &entities.Withdrawal{
		ID:            m.ID,
		UserID:        m.UserID,
		Bank:          m.Bank,
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
		Amount:        m.Amount,
		ReceiptID:     m.ReceiptID,
		Status:        entities.WithdrawalStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toWithdrawalEntities(ms []models.Withdrawal) []*entities.Withdrawal {
	var out []*entities.Withdrawal
	for i := range ms {
		out = append(out, toWithdrawalEntity(&ms[i]))
	}
	return out
}
