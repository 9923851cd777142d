package usecases

import (
	"context"

	"github.com/google/uuid"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/domain/repositories"
)

// ReferralUsecase handles the referral balance bucket
type ReferralUsecase struct {
	userRepo repositories.UserRepository
	uow      repositories.UnitOfWork
}

// NewReferralUsecase creates a new referral usecase
func NewReferralUsecase(userRepo repositories.UserRepository, uow repositories.UnitOfWork) *ReferralUsecase {
	return &ReferralUsecase{userRepo: userRepo, uow: uow}
}

// WithdrawReferralBalance transfers the whole accumulated referral
// balance into the spendable balance. One-shot: there is no partial
// transfer. Returns the new balance.
func (u *ReferralUsecase) WithdrawReferralBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	var balance float64
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if user.ReferralBalance <= 0 {
			return domainerrors.ErrNoReferralBalance
		}

		user.Balance += user.ReferralBalance
		user.ReferralBalance = 0

		if err := u.userRepo.Save(txCtx, user); err != nil {
			return err
		}
		balance = user.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// GetReferralInfo returns the user's code, pending referral balance, and
// the users who signed up with their code.
func (u *ReferralUsecase) GetReferralInfo(ctx context.Context, userID uuid.UUID) (*entities.ReferralInfoResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	referred, err := u.userRepo.ListByReferredCode(ctx, user.ReferralCode)
	if err != nil {
		return nil, err
	}

	resp := &entities.ReferralInfoResponse{
		ReferralCode:    user.ReferralCode,
		ReferralBalance: user.ReferralBalance,
		Referred:        []entities.ReferredUser{},
	}
	for _, r := range referred {
		resp.Referred = append(resp.Referred, entities.ReferredUser{
			FullName: r.FullName,
			Email:    r.Email,
		})
	}
	return resp, nil
}
