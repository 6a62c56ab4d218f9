package company

import (
	"database/sql"

	"go.uber.org/zap"

	"orderfellow/internal/company/controller"
	"orderfellow/internal/company/repository"
	"orderfellow/internal/company/usecase"
)

func NewModule(db *sql.DB, notifier usecase.OtpNotifier, logger *zap.Logger) *controller.Controller {
	companyRepo := repository.NewMySQLCompanyRepository(db)

	registrationUC := usecase.NewRegistrationUseCase(companyRepo, notifier, logger)
	kycUC := usecase.NewKycUseCase(companyRepo, logger)

	return controller.NewController(registrationUC, kycUC, logger)
}
