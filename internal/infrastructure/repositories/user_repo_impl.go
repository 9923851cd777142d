package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m, err := toUserModel(user)
	if err != nil {
		return err
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

// GetByGoogleID gets a user by Google identity
func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*entities.User, error) {
	return r.getOne(ctx, "google_id = ?", googleID)
}

// GetByReferralCode gets a user by their referral code
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	return r.getOne(ctx, "referral_code = ?", code)
}

// GetForUpdate gets a user by ID, locking the row for the remainder of
// the surrounding transaction.
func (r *UserRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	// SQLite serializes writers on its own; FOR UPDATE is postgres-only syntax.
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m models.User
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m)
}

// Save persists the user's ledger, KYC, and daily-stats fields. Meant to
// be called on a row previously loaded with GetForUpdate inside a
// UnitOfWork transaction.
func (r *UserRepository) Save(ctx context.Context, user *entities.User) error {
	completed, err := json.Marshal(user.TaskStats.CompletedTasks)
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"balance":              user.Balance,
		"freeze_balance":       user.FreezeBalance,
		"referral_balance":     user.ReferralBalance,
		"referral_bonus_total": user.ReferralBonusTotal,
		"kyc_status":           string(user.KYCStatus),
		"kyc_full_name":        user.KYCData.FullName,
		"kyc_id_type":          user.KYCData.IDType,
		"kyc_id_number":        user.KYCData.IDNumber,
		"kyc_id_document":      user.KYCData.IDDocument,
		"is_blocked":           user.IsBlocked,
		"today_date":           user.TaskStats.TodayDate,
		"todays_profit":        user.TaskStats.TodaysProfit,
		"total_profit":         user.TaskStats.TotalProfit,
		"task_count":           user.TaskStats.TaskCount,
		"completed_tasks":      string(completed),
		"updated_at":           time.Now(),
	}
	if user.KYCData.SubmittedAt.Valid {
		updates["kyc_submitted_at"] = user.KYCData.SubmittedAt.Time
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateProfile updates display fields only
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, profilePicture string) error {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if fullName != "" {
		updates["full_name"] = fullName
	}
	if profilePicture != "" {
		updates["profile_picture"] = profilePicture
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetBlocked flips the account block flag
func (r *UserRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_blocked": blocked, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users with an optional search filter and pagination
func (r *UserRepository) List(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var userModels []models.User
	if err := query.Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users, err := toUserEntities(userModels)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListByKYCStatus lists users in a given KYC state
func (r *UserRepository) ListByKYCStatus(ctx context.Context, status entities.KYCStatus) ([]*entities.User, error) {
	var userModels []models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("kyc_status = ?", string(status)).
		Order("kyc_submitted_at ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}
	return toUserEntities(userModels)
}

// ListByReferredCode lists users who signed up with the given referral code
func (r *UserRepository) ListByReferredCode(ctx context.Context, code string) ([]*entities.User, error) {
	var userModels []models.User
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("referred_by_code = ?", code).
		Order("created_at ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}
	return toUserEntities(userModels)
}

// ListStaleIDs returns ids of users whose daily stats lag behind today
func (r *UserRepository) ListStaleIDs(ctx context.Context, today string, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("today_date <> ? OR today_date IS NULL", today)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *UserRepository) getOne(ctx context.Context, cond string, arg interface{}) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where(cond, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m)
}

func toUserModel(user *entities.User) (*models.User, error) {
	completed, err := json.Marshal(user.TaskStats.CompletedTasks)
	if err != nil {
		return nil, err
	}
	m := &models.User{
		ID:                 user.ID,
		FullName:           user.FullName,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		GoogleID:           user.GoogleID.Ptr(),
		ProfilePicture:     user.ProfilePicture,
		Role:               string(user.Role),
		ReferralCode:       user.ReferralCode,
		ReferredByCode:     user.ReferredByCode.Ptr(),
		Balance:            user.Balance,
		FreezeBalance:      user.FreezeBalance,
		ReferralBalance:    user.ReferralBalance,
		ReferralBonusTotal: user.ReferralBonusTotal,
		KYCStatus:          string(user.KYCStatus),
		KYCFullName:        user.KYCData.FullName,
		KYCIDType:          user.KYCData.IDType,
		KYCIDNumber:        user.KYCData.IDNumber,
		KYCIDDocument:      user.KYCData.IDDocument,
		KYCSubmittedAt:     user.KYCData.SubmittedAt.Ptr(),
		IsBlocked:          user.IsBlocked,
		TodayDate:          user.TaskStats.TodayDate,
		TodaysProfit:       user.TaskStats.TodaysProfit,
		TotalProfit:        user.TaskStats.TotalProfit,
		TaskCount:          user.TaskStats.TaskCount,
		CompletedTasks:     string(completed),
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return m, nil
}

func toUserEntity(m *models.User) (*entities.User, error) {
	completed := map[string]string{}
	if m.CompletedTasks != "" {
		if err := json.Unmarshal([]byte(m.CompletedTasks), &completed); err != nil {
			return nil, err
		}
	}
	return &entities.User{
		ID:                 m.ID,
		FullName:           m.FullName,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		GoogleID:           null.StringFromPtr(m.GoogleID),
		ProfilePicture:     m.ProfilePicture,
		Role:               entities.UserRole(m.Role),
		ReferralCode:       m.ReferralCode,
		ReferredByCode:     null.StringFromPtr(m.ReferredByCode),
		Balance:            m.Balance,
		FreezeBalance:      m.FreezeBalance,
		ReferralBalance:    m.ReferralBalance,
		ReferralBonusTotal: m.ReferralBonusTotal,
		KYCStatus:          entities.KYCStatus(m.KYCStatus),
		KYCData: entities.KYCData{
			FullName:    m.KYCFullName,
			IDType:      m.KYCIDType,
			IDNumber:    m.KYCIDNumber,
			IDDocument:  m.KYCIDDocument,
			SubmittedAt: null.TimeFromPtr(m.KYCSubmittedAt),
		},
		IsBlocked: m.IsBlocked,
		TaskStats: entities.TaskStats{
			TodayDate:      m.TodayDate,
			TodaysProfit:   m.TodaysProfit,
			TotalProfit:    m.TotalProfit,
			TaskCount:      m.TaskCount,
			CompletedTasks: completed,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func toUserEntities(userModels []models.User) ([]*entities.User, error) {
	var users []*entities.User
	for i := range userModels {
		u, err := toUserEntity(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
