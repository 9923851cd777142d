package usecases

import (
	"context"
	"errors"
	"strconv"

	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/domain/repositories"
)

// SettingsUsecase handles the admin key/value toggle store
type SettingsUsecase struct {
	settingRepo repositories.SettingRepository
}

// NewSettingsUsecase creates a new settings usecase
func NewSettingsUsecase(settingRepo repositories.SettingRepository) *SettingsUsecase {
	return &SettingsUsecase{settingRepo: settingRepo}
}

// Get returns the stored value for key, or the default when unset
func (u *SettingsUsecase) Get(ctx context.Context, key, defaultValue string) (string, error) {
	setting, err := u.settingRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return defaultValue, nil
		}
		return "", err
	}
	return setting.Value, nil
}

// Set upserts a value by key
func (u *SettingsUsecase) Set(ctx context.Context, key, value string) error {
	return u.settingRepo.Upsert(ctx, &entities.Setting{Key: key, Value: value})
}

// WithdrawalEnabled reports the global withdrawal toggle. Unset means
// disabled.
func (u *SettingsUsecase) WithdrawalEnabled(ctx context.Context) (bool, error) {
	value, err := u.Get(ctx, entities.SettingWithdrawalEnabled, "false")
	if err != nil {
		return false, err
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, nil
	}
	return enabled, nil
}

// SetWithdrawalEnabled flips the global withdrawal toggle
func (u *SettingsUsecase) SetWithdrawalEnabled(ctx context.Context, enabled bool) error {
	return u.Set(ctx, entities.SettingWithdrawalEnabled, strconv.FormatBool(enabled))
}
