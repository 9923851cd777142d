package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/infrastructure/models"
)

// SettingRepository implements admin setting operations
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get gets a setting by key
func (r *SettingRepository) Get(ctx context.Context, key string) (*entities.Setting, error) {
	var m models.Setting
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Setting{Key: m.Key, Value: m.Value, UpdatedAt: m.UpdatedAt}, nil
}

// Upsert creates or replaces a setting by key
func (r *SettingRepository) Upsert(ctx context.Context, setting *entities.Setting) error {
	m := &models.Setting{Key: setting.Key, Value: setting.Value, UpdatedAt: time.Now()}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(m).Error
}
