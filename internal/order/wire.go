package order

import (
	"database/sql"

	"go.uber.org/zap"

	companyrepo "orderfellow/internal/company/repository"
	"orderfellow/internal/order/controller"
	orderrepo "orderfellow/internal/order/repository"
	"orderfellow/internal/order/service"
	"orderfellow/internal/order/usecase"
)

func NewModule(db *sql.DB, notifier usecase.OrderNotifier, logger *zap.Logger) *controller.Controller {
	companyRepo := companyrepo.NewMySQLCompanyRepository(db)
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	eventRepo := orderrepo.NewMySQLStatusEventRepository(db)

	ledger := service.NewLedgerService(db, orderRepo, eventRepo, logger)

	webhookUC := usecase.NewWebhookUseCase(companyRepo, orderRepo, ledger, notifier, logger)
	lookupUC := usecase.NewLookupUseCase(orderRepo, eventRepo, logger)

	return controller.NewController(webhookUC, lookupUC, logger)
}
