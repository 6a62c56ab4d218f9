package usecase

import (
	"context"

	"go.uber.org/zap"

	"orderfellow/internal/domain"
	"orderfellow/internal/dto"
	apperrors "orderfellow/internal/errors"
)

type KycUseCase struct {
	companyRepo CompanyRepository
	logger      *zap.Logger
}

func NewKycUseCase(companyRepo CompanyRepository, logger *zap.Logger) *KycUseCase {
	return &KycUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *KycUseCase) SubmitKyc(ctx context.Context, req dto.SubmitKycRequest) error {
	var details []apperrors.ValidationDetail
	if req.BusinessEmail == "" {
		details = append(details, apperrors.ValidationDetail{Field: "business_email", Message: "business_email is required"})
	}
	if req.BusinessRegistrationNumber == "" {
		details = append(details, apperrors.ValidationDetail{Field: "business_registration_number", Message: "business_registration_number is required"})
	}
	if req.BusinessAddress == "" {
		details = append(details, apperrors.ValidationDetail{Field: "business_address", Message: "business_address is required"})
	}
	if req.ContactPersonName == "" {
		details = append(details, apperrors.ValidationDetail{Field: "contact_person_name", Message: "contact_person_name is required"})
	}
	if req.ContactPersonPhone == "" {
		details = append(details, apperrors.ValidationDetail{Field: "contact_person_phone", Message: "contact_person_phone is required"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("Missing required KYC fields", details...)
	}

	company, err := uc.companyRepo.FindByEmail(ctx, req.BusinessEmail)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return apperrors.NewNotFoundError("Company not found")
		}
		return err
	}

	if !company.EmailVerified {
		return apperrors.NewValidationError("Email not verified")
	}

	// Resubmission while pending or rejected overwrites the fields and
	// triggers a fresh review. Only an approved company is blocked.
	if company.KycStatus != nil && *company.KycStatus == domain.KycStatusApproved {
		return apperrors.NewValidationError("KYC already approved")
	}

	if err := uc.companyRepo.UpdateKycSubmission(ctx, company.ID,
		req.BusinessRegistrationNumber, req.BusinessAddress,
		req.ContactPersonName, req.ContactPersonPhone); err != nil {
		return err
	}

	uc.logger.Info("kyc submitted", zap.Uint("companyId", company.ID))

	return nil
}

func (uc *KycUseCase) ApproveKyc(ctx context.Context, companyID uint) error {
	return uc.decideKyc(ctx, companyID, domain.KycStatusApproved, "KYC already approved")
}

// RejectKyc rejects a company regardless of its current state, including
// an already approved one. Only a repeat rejection is blocked.
func (uc *KycUseCase) RejectKyc(ctx context.Context, companyID uint) error {
	return uc.decideKyc(ctx, companyID, domain.KycStatusRejected, "KYC already rejected")
}

func (uc *KycUseCase) decideKyc(ctx context.Context, companyID uint, targetStatus string, alreadyMsg string) error {
	company, err := uc.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return apperrors.NewNotFoundError("Company not found")
		}
		return err
	}

	if company.KycStatus != nil && *company.KycStatus == targetStatus {
		return apperrors.NewConflictError(alreadyMsg)
	}

	if err := uc.companyRepo.UpdateKycStatus(ctx, company.ID, targetStatus); err != nil {
		return err
	}

	uc.logger.Info("kyc decision recorded",
		zap.Uint("companyId", company.ID),
		zap.String("kycStatus", targetStatus))

	return nil
}
