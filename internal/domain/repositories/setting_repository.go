package repositories

import (
	"context"

	"earnhub.backend/internal/domain/entities"
)

// SettingRepository defines admin setting operations
type SettingRepository interface {
	Get(ctx context.Context, key string) (*entities.Setting, error)
	Upsert(ctx context.Context, setting *entities.Setting) error
}
