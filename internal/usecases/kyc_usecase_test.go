package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/usecases"
)

func submitInput() *entities.SubmitKYCInput {
	return &entities.SubmitKYCInput{
		FullName:   "Jane Roe",
		IDType:     "passport",
		IDNumber:   "A1234567",
		IDDocument: "uploads/doc-1",
	}
}

func TestKYCUsecase_Submit_MovesToPending(t *testing.T) {
	user := newLedgerUser(entities.KYCStatusRejected)
	userRepo := newMemUserRepo(user)
	uc := usecases.NewKYCUsecase(userRepo, &serialUOW{})

	resp, err := uc.Submit(context.Background(), user.ID, submitInput())
	require.NoError(t, err)
	assert.Equal(t, entities.KYCStatusPending, resp.KYCStatus)

	stored, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", stored.KYCData.FullName)
	assert.True(t, stored.KYCData.SubmittedAt.Valid)
}

func TestKYCUsecase_Submit_RejectedWhenAlreadyApproved(t *testing.T) {
	user := newLedgerUser(entities.KYCStatusApproved)
	userRepo := newMemUserRepo(user)
	uc := usecases.NewKYCUsecase(userRepo, &serialUOW{})

	_, err := uc.Submit(context.Background(), user.ID, submitInput())
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestKYCUsecase_Approve_DrainsFreezeIntoBalance(t *testing.T) {
	user := newLedgerUser(entities.KYCStatusPending)
	user.Balance = 20
	user.FreezeBalance = 180
	userRepo := newMemUserRepo(user)
	uc := usecases.NewKYCUsecase(userRepo, &serialUOW{})

	resp, err := uc.Approve(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, entities.KYCStatusApproved, resp.KYCStatus)
	assert.Equal(t, 200.0, resp.Balance)
	assert.Equal(t, 0.0, resp.FreezeBalance)

	// The transition moved money between buckets without creating any.
	stored, err := userRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, stored.Balance+stored.FreezeBalance)
}

func TestKYCUsecase_Approve_RepeatIsNoOp(t *testing.T) {
	user := newLedgerUser(entities.KYCStatusPending)
	user.FreezeBalance = 75
	userRepo := newMemUserRepo(user)
	uc := usecases.NewKYCUsecase(userRepo, &serialUOW{})

	first, err := uc.Approve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, first.Balance)

	second, err := uc.Approve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 75.0, second.Balance)
	assert.Equal(t, 0.0, second.FreezeBalance)
}

func TestKYCUsecase_Approve_ReleasesFreezeEarnedAfterApproval(t *testing.T) {
	// Freeze can reappear if rewards landed between approval attempts.
	// A second approve call must drain it again.
	user := newLedgerUser(entities.KYCStatusApproved)
	user.Balance = 50
	user.FreezeBalance = 30
	userRepo := newMemUserRepo(user)
	uc := usecases.NewKYCUsecase(userRepo, &serialUOW{})

	resp, err := uc.Approve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, resp.Balance)
	assert.Equal(t, 0.0, resp.FreezeBalance)
}

func TestKYCUsecase_Reject(t *testing.T) {
	user := newLedgerUser(entities.KYCStatusPending)
	user.FreezeBalance = 60
	userRepo := newMemUserRepo(user)
	uc := usecases.NewKYCUsecase(userRepo, &serialUOW{})

	resp, err := uc.Reject(context.Background(), user.ID)
	require.NoError(t, err)

	// Rejection keeps earnings frozen.
	assert.Equal(t, entities.KYCStatusRejected, resp.KYCStatus)
	assert.Equal(t, 60.0, resp.FreezeBalance)
	assert.Equal(t, 0.0, resp.Balance)
}

func TestKYCUsecase_Approve_UnknownUser(t *testing.T) {
	uc := usecases.NewKYCUsecase(newMemUserRepo(), &serialUOW{})

	_, err := uc.Approve(context.Background(), newLedgerUser(entities.KYCStatusPending).ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestKYCUsecase_ListPendingSubmissions(t *testing.T) {
	pending := newLedgerUser(entities.KYCStatusPending)
	pending.Email = "pending@mail.com"
	approved := newLedgerUser(entities.KYCStatusApproved)
	approved.Email = "approved@mail.com"
	userRepo := newMemUserRepo(pending, approved)

	uc := usecases.NewKYCUsecase(userRepo, &serialUOW{})

	users, err := uc.ListPendingSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "pending@mail.com", users[0].Email)
}
