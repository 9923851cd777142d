package repositories

import (
	"context"

	"github.com/google/uuid"
	"earnhub.backend/internal/domain/entities"
)

// UserRepository defines user data operations. GetForUpdate must lock the
// row for the remainder of the surrounding transaction so that every
// ledger transition is a single atomic read-modify-write.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*entities.User, error)
	GetByReferralCode(ctx context.Context, code string) (*entities.User, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.User, error)
	Save(ctx context.Context, user *entities.User) error
	UpdateProfile(ctx context.Context, id uuid.UUID, fullName, profilePicture string) error
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	List(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error)
	ListByKYCStatus(ctx context.Context, status entities.KYCStatus) ([]*entities.User, error)
	ListByReferredCode(ctx context.Context, code string) ([]*entities.User, error)
	// ListStaleIDs returns ids of users whose daily stats were last reset
	// for a date before today. Used by the daily sweep.
	ListStaleIDs(ctx context.Context, today string, limit int) ([]uuid.UUID, error)
}
