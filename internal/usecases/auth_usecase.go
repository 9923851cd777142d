package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"earnhub.backend/internal/domain/entities"
	domainerrors "earnhub.backend/internal/domain/errors"
	"earnhub.backend/internal/domain/repositories"
	"earnhub.backend/pkg/crypto"
	"earnhub.backend/pkg/jwt"
	"earnhub.backend/pkg/logger"
)

// AuthUsecase handles registration, login, and profile reads. Signup is
// also where a referrer earns their bonus.
type AuthUsecase struct {
	userRepo      repositories.UserRepository
	uow           repositories.UnitOfWork
	jwtService    *jwt.JWTService
	referralBonus float64
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	referralBonus float64,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		uow:           uow,
		jwtService:    jwtService,
		referralBonus: referralBonus,
	}
}

// Register creates an account. When the supplied referral code resolves
// to an existing user, that referrer is credited the fixed bonus in the
// same transaction; an unresolvable code is stored as given and earns
// nothing, without failing the registration.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	referralCode, err := crypto.GenerateReferralCode()
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
		ReferralCode: referralCode,
		KYCStatus:    entities.KYCStatusPending,
		TaskStats: entities.TaskStats{
			TodayDate:      entities.DateOf(time.Now()),
			CompletedTasks: map[string]string{},
		},
	}
	if input.ReferralCode != "" {
		user.ReferredByCode = null.StringFrom(input.ReferralCode)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		if input.ReferralCode == "" {
			return nil
		}
		return u.creditReferrer(txCtx, input.ReferralCode)
	})
	if err != nil {
		return nil, err
	}

	return u.buildAuthResponse(user)
}

// Login authenticates a user by email and password
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, domainerrors.ErrAccountBlocked
	}

	return u.buildAuthResponse(user)
}

// GoogleSignIn signs in a pre-verified Google identity, creating the
// account on first contact. Token verification happens in the handler's
// collaborator, not here.
func (u *AuthUsecase) GoogleSignIn(ctx context.Context, input *entities.GoogleSignInInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		if user.IsBlocked {
			return nil, domainerrors.ErrAccountBlocked
		}
		return u.buildAuthResponse(user)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	referralCode, err := crypto.GenerateReferralCode()
	if err != nil {
		return nil, err
	}

	user = &entities.User{
		FullName:       input.Name,
		Email:          input.Email,
		GoogleID:       null.StringFrom(input.GoogleID),
		ProfilePicture: input.Picture,
		Role:           entities.UserRoleUser,
		ReferralCode:   referralCode,
		KYCStatus:      entities.KYCStatusPending,
		TaskStats: entities.TaskStats{
			TodayDate:      entities.DateOf(time.Now()),
			CompletedTasks: map[string]string{},
		},
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.buildAuthResponse(user)
}

// GetMe returns the current user
func (u *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// UpdateProfile updates display fields of the current user
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) error {
	return u.userRepo.UpdateProfile(ctx, userID, input.FullName, input.ProfilePicture)
}

func (u *AuthUsecase) creditReferrer(ctx context.Context, code string) error {
	referrer, err := u.userRepo.GetByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			// Unresolvable codes grant nothing but never fail the signup.
			logger.Warn(ctx, "referral code did not resolve", zap.String("code", code))
			return nil
		}
		return err
	}

	locked, err := u.userRepo.GetForUpdate(ctx, referrer.ID)
	if err != nil {
		return err
	}
	locked.ReferralBalance += u.referralBonus
	locked.ReferralBonusTotal += u.referralBonus
	return u.userRepo.Save(ctx, locked)
}

func (u *AuthUsecase) buildAuthResponse(user *entities.User) (*entities.AuthResponse, error) {
	tokens, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         user,
	}, nil
}
