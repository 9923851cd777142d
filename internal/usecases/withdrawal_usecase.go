package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/domain/repositories"
)

// WithdrawalUsecase handles the withdrawal request lifecycle. Funds are
// reserved by deducting the balance when the request is filed; approval
// never deducts again and rejection refunds the reservation.
type WithdrawalUsecase struct {
	userRepo        repositories.UserRepository
	withdrawalRepo  repositories.WithdrawalRepository
	settingsUsecase *SettingsUsecase
	uow             repositories.UnitOfWork
}

// NewWithdrawalUsecase creates a new withdrawal usecase
func NewWithdrawalUsecase(
	userRepo repositories.UserRepository,
	withdrawalRepo repositories.WithdrawalRepository,
	settingsUsecase *SettingsUsecase,
	uow repositories.UnitOfWork,
) *WithdrawalUsecase {
	return &WithdrawalUsecase{
		userRepo:        userRepo,
		withdrawalRepo:  withdrawalRepo,
		settingsUsecase: settingsUsecase,
		uow:             uow,
	}
}

// Request files a withdrawal. The balance check and the deduction happen
// on a locked user row, so two concurrent requests cannot both be backed
// by the same funds.
func (u *WithdrawalUsecase) Request(ctx context.Context, userID uuid.UUID, input *entities.RequestWithdrawalInput) (*entities.RequestWithdrawalResponse, error) {
	enabled, err := u.settingsUsecase.WithdrawalEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, domainerrors.ErrWithdrawalsDisabled
	}

	var resp *entities.RequestWithdrawalResponse
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}
		if user.KYCStatus != entities.KYCStatusApproved {
			return domainerrors.ErrKYCNotApproved
		}
		if user.Balance < input.Amount {
			return domainerrors.ErrInsufficientBalance
		}

		user.Balance -= input.Amount
		if err := u.userRepo.Save(txCtx, user); err != nil {
			return err
		}

		withdrawal := &entities.Withdrawal{
			UserID:        userID,
			Bank:          input.Bank,
			AccountName:   input.AccountName,
			AccountNumber: input.AccountNumber,
			Amount:        input.Amount,
			ReceiptID:     newReceiptID(),
			Status:        entities.WithdrawalStatusPending,
		}
		if err := u.withdrawalRepo.Create(txCtx, withdrawal); err != nil {
			return err
		}

		resp = &entities.RequestWithdrawalResponse{
			RequestID: withdrawal.ID,
			ReceiptID: withdrawal.ReceiptID,
			Status:    withdrawal.Status,
			Balance:   user.Balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Approve finalizes a pending request (admin only). The amount was
// already deducted at request time, so the balance is left alone here.
func (u *WithdrawalUsecase) Approve(ctx context.Context, requestID uuid.UUID) (*entities.Withdrawal, error) {
	var approved *entities.Withdrawal
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		withdrawal, err := u.withdrawalRepo.GetForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}
		if withdrawal.Status != entities.WithdrawalStatusPending {
			return domainerrors.ErrAlreadyProcessed
		}

		if err := u.withdrawalRepo.UpdateStatus(txCtx, requestID, entities.WithdrawalStatusApproved); err != nil {
			return err
		}
		withdrawal.Status = entities.WithdrawalStatusApproved
		approved = withdrawal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// Reject cancels a pending request and refunds the reservation (admin
// only). Refund and status change commit together, so the request cannot
// end up rejected without the money back or vice versa.
func (u *WithdrawalUsecase) Reject(ctx context.Context, requestID uuid.UUID) (*entities.RejectWithdrawalResponse, error) {
	var resp *entities.RejectWithdrawalResponse
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		withdrawal, err := u.withdrawalRepo.GetForUpdate(txCtx, requestID)
		if err != nil {
			return err
		}
		if withdrawal.Status != entities.WithdrawalStatusPending {
			return domainerrors.ErrAlreadyProcessed
		}

		user, err := u.userRepo.GetForUpdate(txCtx, withdrawal.UserID)
		if err != nil {
			return err
		}
		user.Balance += withdrawal.Amount
		if err := u.userRepo.Save(txCtx, user); err != nil {
			return err
		}

		if err := u.withdrawalRepo.UpdateStatus(txCtx, requestID, entities.WithdrawalStatusRejected); err != nil {
			return err
		}

		resp = &entities.RejectWithdrawalResponse{
			Status:         entities.WithdrawalStatusRejected,
			RefundedAmount: withdrawal.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListPending lists requests awaiting review (admin only)
func (u *WithdrawalUsecase) ListPending(ctx context.Context) ([]*entities.Withdrawal, error) {
	return u.withdrawalRepo.ListByStatus(ctx, entities.WithdrawalStatusPending)
}

// ListByUser lists a user's own requests
func (u *WithdrawalUsecase) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Withdrawal, error) {
	return u.withdrawalRepo.ListByUser(ctx, userID)
}

func newReceiptID() string {
	return fmt.Sprintf("RCPT-%06d", time.Now().UnixMilli()%1000000)
}
