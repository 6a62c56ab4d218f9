package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderfellow/internal/dto"
	apperrors "orderfellow/internal/errors"
)

type RegistrationUseCase interface {
	Register(ctx context.Context, req dto.RegisterRequest) (uint, error)
	VerifyOtp(ctx context.Context, req dto.VerifyOtpRequest) error
}

type KycUseCase interface {
	SubmitKyc(ctx context.Context, req dto.SubmitKycRequest) error
	ApproveKyc(ctx context.Context, companyID uint) error
	RejectKyc(ctx context.Context, companyID uint) error
}

type Controller struct {
	registration RegistrationUseCase
	kyc          KycUseCase
	logger       *zap.Logger
}

func NewController(registration RegistrationUseCase, kyc KycUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		registration: registration,
		kyc:          kyc,
		logger:       logger,
	}
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	companyID, err := c.registration.Register(r.Context(), req)
	if err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.RegisterResponse{
		Message:   "Company registered. Please verify OTP sent to email.",
		CompanyID: companyID,
	})
}

func (c *Controller) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.VerifyOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	if err := c.registration.VerifyOtp(r.Context(), req); err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Email verified successfully"})
}

func (c *Controller) SubmitKyc(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.SubmitKycRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	if err := c.kyc.SubmitKyc(r.Context(), req); err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "KYC submitted and pending approval"})
}

func (c *Controller) ApproveKyc(w http.ResponseWriter, r *http.Request) {
	c.decideKyc(w, r, c.kyc.ApproveKyc, "KYC approved")
}

func (c *Controller) RejectKyc(w http.ResponseWriter, r *http.Request) {
	c.decideKyc(w, r, c.kyc.RejectKyc, "KYC rejected")
}

func (c *Controller) decideKyc(w http.ResponseWriter, r *http.Request, decide func(context.Context, uint) error, successMsg string) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	companyIDStr := chi.URLParam(r, "company_id")
	companyID, err := strconv.ParseUint(companyIDStr, 10, 64)
	if err != nil {
		logger.Warn("invalid company_id in path", zap.String("companyId", companyIDStr))
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "company_id must be a positive integer"})
		return
	}

	if err := decide(r.Context(), uint(companyID)); err != nil {
		c.writeError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.MessageResponse{Message: successMsg})
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *Controller) writeError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Details: ve.Details})
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
