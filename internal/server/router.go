package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	companyctrl "orderfellow/internal/company/controller"
	"orderfellow/internal/config"
	orderctrl "orderfellow/internal/order/controller"
)

func NewRouter(cfg *config.Config, companyController *companyctrl.Controller, orderController *orderctrl.Controller, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Order Fellow API running"))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", companyController.Register)
		r.Post("/verify-otp", companyController.VerifyOtp)
	})

	r.Post("/kyc/submit", companyController.SubmitKyc)

	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireSecret("X-Admin-Secret", cfg.Auth.AdminSecret, "Unauthorized admin"))
		r.Post("/kyc/{company_id}/approve", companyController.ApproveKyc)
		r.Post("/kyc/{company_id}/reject", companyController.RejectKyc)
	})

	r.Route("/webhooks", func(r chi.Router) {
		r.Use(RequireSecret("X-Webhook-Secret", cfg.Webhook.Secret, "Invalid webhook secret"))
		r.Use(httprate.LimitByIP(cfg.Webhook.RateLimit, cfg.Webhook.RateLimitWindow))
		r.Post("/orders", orderController.CreateOrder)
		r.Post("/status-updates", orderController.RecordStatusUpdate)
	})

	r.Get("/orders/{external_order_id}", orderController.GetOrder)

	return r
}
