package usecases_test

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// serialUOW runs each transaction under one mutex, so whole
// read-modify-write cycles serialize the way row-locked transactions
// do. Tests exercising ledger transitions use it with the in-memory
// fakes below instead of a real database.
type serialUOW struct {
	mu sync.Mutex
}

func (u *serialUOW) Do(ctx context.Context, f func(context.Context) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByGoogleID(ctx context.Context, googleID string) (*entities.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, profilePicture string) error {
	return m.Called(ctx, id, fullName, profilePicture).Error(0)
}

func (m *MockUserRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	return m.Called(ctx, id, blocked).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, search, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ListByKYCStatus(ctx context.Context, status entities.KYCStatus) ([]*entities.User, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) ListByReferredCode(ctx context.Context, code string) ([]*entities.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) ListStaleIDs(ctx context.Context, today string, limit int) ([]uuid.UUID, error) {
	args := m.Called(ctx, today, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// Mock TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entities.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTaskRepository) GetByTaskID(ctx context.Context, taskID string) (*entities.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTaskRepository) List(ctx context.Context) ([]*entities.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Task), args.Error(1)
}

// Mock WithdrawalRepository
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) Create(ctx context.Context, w *entities.Withdrawal) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.WithdrawalStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockWithdrawalRepository) ListByStatus(ctx context.Context, status entities.WithdrawalStatus) ([]*entities.Withdrawal, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Withdrawal), args.Error(1)
}

// Mock SettingRepository
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context, key string) (*entities.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Setting), args.Error(1)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, setting *entities.Setting) error {
	return m.Called(ctx, setting).Error(0)
}

// memUserRepo is a thread-safe in-memory UserRepository. GetForUpdate
// takes the store lock until the copy is saved back, mimicking a locked
// row closely enough to test ledger transitions, including concurrent
// ones.
type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entities.User
}

func newMemUserRepo(users ...*entities.User) *memUserRepo {
	r := &memUserRepo{users: map[uuid.UUID]*entities.User{}}
	for _, u := range users {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		r.users[u.ID] = cloneUser(u)
	}
	return r
}

func cloneUser(u *entities.User) *entities.User {
	c := *u
	c.TaskStats.CompletedTasks = map[string]string{}
	for k, v := range u.TaskStats.CompletedTasks {
		c.TaskStats.CompletedTasks[k] = v
	}
	return &c
}

func (r *memUserRepo) get(id uuid.UUID) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *memUserRepo) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return domainerrors.ErrAlreadyExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memUserRepo) GetByGoogleID(_ context.Context, googleID string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.GoogleID.Valid && u.GoogleID.String == googleID {
			return cloneUser(u), nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memUserRepo) GetByReferralCode(_ context.Context, code string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ReferralCode == code {
			return cloneUser(u), nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memUserRepo) GetForUpdate(_ context.Context, id uuid.UUID) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *memUserRepo) Save(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, fullName, profilePicture string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if fullName != "" {
		u.FullName = fullName
	}
	if profilePicture != "" {
		u.ProfilePicture = profilePicture
	}
	return nil
}

func (r *memUserRepo) SetBlocked(_ context.Context, id uuid.UUID, blocked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.IsBlocked = blocked
	return nil
}

func (r *memUserRepo) List(_ context.Context, search string, offset, limit int) ([]*entities.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.User
	for _, u := range r.users {
		if search == "" || strings.Contains(u.Email, search) || strings.Contains(u.FullName, search) {
			out = append(out, cloneUser(u))
		}
	}
	return out, int64(len(out)), nil
}

func (r *memUserRepo) ListByKYCStatus(_ context.Context, status entities.KYCStatus) ([]*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.User
	for _, u := range r.users {
		if u.KYCStatus == status {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *memUserRepo) ListByReferredCode(_ context.Context, code string) ([]*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.User
	for _, u := range r.users {
		if u.ReferredByCode.Valid && u.ReferredByCode.String == code {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *memUserRepo) ListStaleIDs(_ context.Context, today string, limit int) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []uuid.UUID
	for id, u := range r.users {
		if u.TaskStats.TodayDate != today {
			out = append(out, id)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

// memWithdrawalRepo is a thread-safe in-memory WithdrawalRepository
type memWithdrawalRepo struct {
	mu          sync.Mutex
	withdrawals map[uuid.UUID]*entities.Withdrawal
}

func newMemWithdrawalRepo() *memWithdrawalRepo {
	return &memWithdrawalRepo{withdrawals: map[uuid.UUID]*entities.Withdrawal{}}
}

func (r *memWithdrawalRepo) Create(_ context.Context, w *entities.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	c := *w
	r.withdrawals[w.ID] = &c
	return nil
}

func (r *memWithdrawalRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	c := *w
	return &c, nil
}

func (r *memWithdrawalRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.Withdrawal, error) {
	return r.GetByID(ctx, id)
}

func (r *memWithdrawalRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.WithdrawalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	w.Status = status
	return nil
}

func (r *memWithdrawalRepo) ListByStatus(_ context.Context, status entities.WithdrawalStatus) ([]*entities.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Withdrawal
	for _, w := range r.withdrawals {
		if w.Status == status {
			c := *w
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memWithdrawalRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entities.Withdrawal
	for _, w := range r.withdrawals {
		if w.UserID == userID {
			c := *w
			out = append(out, &c)
		}
	}
	return out, nil
}

// memSettingRepo is an in-memory SettingRepository
type memSettingRepo struct {
	mu       sync.Mutex
	settings map[string]string
}

func newMemSettingRepo() *memSettingRepo {
	return &memSettingRepo{settings: map[string]string{}}
}

func (r *memSettingRepo) Get(_ context.Context, key string) (*entities.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.settings[key]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &entities.Setting{Key: key, Value: value}, nil
}

func (r *memSettingRepo) Upsert(_ context.Context, setting *entities.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[setting.Key] = setting.Value
	return nil
}
