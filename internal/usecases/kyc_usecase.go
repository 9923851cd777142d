package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/domain/repositories"
)

// KYCUsecase handles identity verification transitions and the
// freeze-balance release that approval triggers.
type KYCUsecase struct {
	userRepo repositories.UserRepository
	uow      repositories.UnitOfWork
}

// NewKYCUsecase creates a new KYC usecase
func NewKYCUsecase(userRepo repositories.UserRepository, uow repositories.UnitOfWork) *KYCUsecase {
	return &KYCUsecase{userRepo: userRepo, uow: uow}
}

// Submit stores the user's KYC fields and moves them to pending. Allowed
// from any non-approved state, which covers resubmission after rejection.
func (u *KYCUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitKYCInput) (*entities.KYCStatusResponse, error) {
	var resp *entities.KYCStatusResponse
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if user.KYCStatus == entities.KYCStatusApproved {
			return domainerrors.ErrAlreadyExists
		}

		user.KYCData = entities.KYCData{
			FullName:    input.FullName,
			IDType:      input.IDType,
			IDNumber:    input.IDNumber,
			IDDocument:  input.IDDocument,
			SubmittedAt: null.TimeFrom(time.Now()),
		}
		user.KYCStatus = entities.KYCStatusPending

		if err := u.userRepo.Save(txCtx, user); err != nil {
			return err
		}
		resp = statusResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Approve marks the user verified and releases the frozen balance into
// the spendable balance in the same transaction. The sum of the two
// buckets is unchanged by the transition. Calling it again once approved
// and drained is a no-op, not an error.
func (u *KYCUsecase) Approve(ctx context.Context, userID uuid.UUID) (*entities.KYCStatusResponse, error) {
	var resp *entities.KYCStatusResponse
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		if user.KYCStatus == entities.KYCStatusApproved && user.FreezeBalance == 0 {
			resp = statusResponse(user)
			return nil
		}

		user.Balance += user.FreezeBalance
		user.FreezeBalance = 0
		user.KYCStatus = entities.KYCStatusApproved

		if err := u.userRepo.Save(txCtx, user); err != nil {
			return err
		}
		resp = statusResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Reject marks the user's submission rejected
func (u *KYCUsecase) Reject(ctx context.Context, userID uuid.UUID) (*entities.KYCStatusResponse, error) {
	var resp *entities.KYCStatusResponse
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		user.KYCStatus = entities.KYCStatusRejected
		if err := u.userRepo.Save(txCtx, user); err != nil {
			return err
		}
		resp = statusResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListPendingSubmissions lists users awaiting review (admin only)
func (u *KYCUsecase) ListPendingSubmissions(ctx context.Context) ([]*entities.User, error) {
	return u.userRepo.ListByKYCStatus(ctx, entities.KYCStatusPending)
}

func statusResponse(user *entities.User) *entities.KYCStatusResponse {
	return &entities.KYCStatusResponse{
		KYCStatus:     user.KYCStatus,
		Balance:       user.Balance,
		FreezeBalance: user.FreezeBalance,
	}
}
