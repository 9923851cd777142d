package handlers

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/interfaces/http/middleware"
)

type stubUserRepo struct {
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getForUpdateFn func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	saveFn         func(ctx context.Context, user *entities.User) error
	listFn         func(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error)
	setBlockedFn   func(ctx context.Context, id uuid.UUID, blocked bool) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *entities.User) error { return nil }

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*entities.User, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getForUpdateFn != nil {
		return s.getForUpdateFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubUserRepo) Save(ctx context.Context, user *entities.User) error {
	if s.saveFn != nil {
		return s.saveFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, profilePicture string) error {
	return nil
}

func (s *stubUserRepo) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	if s.setBlockedFn != nil {
		return s.setBlockedFn(ctx, id, blocked)
	}
	return nil
}

func (s *stubUserRepo) List(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, search, offset, limit)
	}
	return []*entities.User{}, 0, nil
}

func (s *stubUserRepo) ListByKYCStatus(ctx context.Context, status entities.KYCStatus) ([]*entities.User, error) {
	return []*entities.User{}, nil
}

func (s *stubUserRepo) ListByReferredCode(ctx context.Context, code string) ([]*entities.User, error) {
	return []*entities.User{}, nil
}

func (s *stubUserRepo) ListStaleIDs(ctx context.Context, today string, limit int) ([]uuid.UUID, error) {
	return nil, nil
}

type stubTaskRepo struct {
	getByTaskIDFn func(ctx context.Context, taskID string) (*entities.Task, error)
	listFn        func(ctx context.Context) ([]*entities.Task, error)
}

func (s *stubTaskRepo) Create(ctx context.Context, task *entities.Task) error { return nil }

func (s *stubTaskRepo) GetByTaskID(ctx context.Context, taskID string) (*entities.Task, error) {
	if s.getByTaskIDFn != nil {
		return s.getByTaskIDFn(ctx, taskID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stubTaskRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubTaskRepo) List(ctx context.Context) ([]*entities.Task, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.Task{}, nil
}

type stubWithdrawalRepo struct {
	createFn func(ctx context.Context, w *entities.Withdrawal) error
}

func (s *stubWithdrawalRepo) Create(ctx context.Context, w *entities.Withdrawal) error {
	if s.createFn != nil {
		return s.createFn(ctx, w)
	}
	return nil
}

func (s *stubWithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *stubWithdrawalRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	return nil, domainerrors.ErrNotFound
}

func (s *stubWithdrawalRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.WithdrawalStatus) error {
	return nil
}

func (s *stubWithdrawalRepo) ListByStatus(ctx context.Context, status entities.WithdrawalStatus) ([]*entities.Withdrawal, error) {
	return []*entities.Withdrawal{}, nil
}

func (s *stubWithdrawalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error) {
	return []*entities.Withdrawal{}, nil
}

type stubSettingRepo struct {
	values map[string]string
}

func newStubSettingRepo() *stubSettingRepo {
	return &stubSettingRepo{values: map[string]string{}}
}

func (s *stubSettingRepo) Get(ctx context.Context, key string) (*entities.Setting, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &entities.Setting{Key: key, Value: value}, nil
}

func (s *stubSettingRepo) Upsert(ctx context.Context, setting *entities.Setting) error {
	s.values[setting.Key] = setting.Value
	return nil
}

type stubUOW struct{}

func (stubUOW) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// authedRouter builds a test router that injects the given identity the
// way the auth middleware would after validating a token.
func authedRouter(t *testing.T, userID uuid.UUID) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	})
	return r
}
