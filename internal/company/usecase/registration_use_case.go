package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"orderfellow/internal/domain"
	"orderfellow/internal/dto"
	apperrors "orderfellow/internal/errors"
)

const (
	otpTTL     = 10 * time.Minute
	bcryptCost = 10
)

type CompanyRepository interface {
	FindByEmail(ctx context.Context, businessEmail string) (*domain.Company, error)
	FindByID(ctx context.Context, id uint) (*domain.Company, error)
	Insert(ctx context.Context, company domain.Company) (uint, error)
	MarkEmailVerified(ctx context.Context, id uint) error
	UpdateKycSubmission(ctx context.Context, id uint, registrationNumber, address, contactName, contactPhone string) error
	UpdateKycStatus(ctx context.Context, id uint, status string) error
}

type OtpNotifier interface {
	SendOtpEmail(email string, otpCode string)
}

type RegistrationUseCase struct {
	companyRepo CompanyRepository
	notifier    OtpNotifier
	logger      *zap.Logger
	now         func() time.Time
}

func NewRegistrationUseCase(companyRepo CompanyRepository, notifier OtpNotifier, logger *zap.Logger) *RegistrationUseCase {
	return &RegistrationUseCase{
		companyRepo: companyRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *RegistrationUseCase) Register(ctx context.Context, req dto.RegisterRequest) (uint, error) {
	var details []apperrors.ValidationDetail
	if req.CompanyName == "" {
		details = append(details, apperrors.ValidationDetail{Field: "company_name", Message: "company_name is required"})
	}
	if req.BusinessEmail == "" {
		details = append(details, apperrors.ValidationDetail{Field: "business_email", Message: "business_email is required"})
	}
	if req.Password == "" {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password is required"})
	}
	if len(details) > 0 {
		return 0, apperrors.NewValidationError("Missing required fields", details...)
	}

	_, err := uc.companyRepo.FindByEmail(ctx, req.BusinessEmail)
	if err == nil {
		return 0, apperrors.NewConflictError("Email already registered")
	}
	if _, ok := apperrors.IsNotFoundError(err); !ok {
		return 0, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	otpCode, err := generateOtp()
	if err != nil {
		return 0, fmt.Errorf("generating otp: %w", err)
	}
	otpExpiresAt := uc.now().Add(otpTTL)

	companyID, err := uc.companyRepo.Insert(ctx, domain.Company{
		CompanyName:   req.CompanyName,
		BusinessEmail: req.BusinessEmail,
		PasswordHash:  string(passwordHash),
		OtpCode:       &otpCode,
		OtpExpiresAt:  &otpExpiresAt,
	})
	if err != nil {
		return 0, err
	}

	uc.logger.Info("company registered",
		zap.Uint("companyId", companyID),
		zap.String("businessEmail", req.BusinessEmail))

	uc.notifier.SendOtpEmail(req.BusinessEmail, otpCode)

	return companyID, nil
}

func (uc *RegistrationUseCase) VerifyOtp(ctx context.Context, req dto.VerifyOtpRequest) error {
	if req.BusinessEmail == "" || req.OtpCode == "" {
		return apperrors.NewValidationError("Missing email or OTP")
	}

	company, err := uc.companyRepo.FindByEmail(ctx, req.BusinessEmail)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return apperrors.NewNotFoundError("Company not found")
		}
		return err
	}

	if company.EmailVerified {
		return apperrors.NewValidationError("Email already verified")
	}

	if !company.HasOtp() {
		return apperrors.NewValidationError("No OTP found for this account")
	}

	if uc.now().After(*company.OtpExpiresAt) {
		return apperrors.NewValidationError("OTP has expired")
	}

	if *company.OtpCode != req.OtpCode {
		return apperrors.NewValidationError("Invalid OTP")
	}

	if err := uc.companyRepo.MarkEmailVerified(ctx, company.ID); err != nil {
		return err
	}

	uc.logger.Info("email verified", zap.Uint("companyId", company.ID))

	return nil
}

// generateOtp returns a uniform random 6-digit code in [100000, 999999].
func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
