package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/unifin/campus_finance_app/internal/core/ports/services"
	"github.com/unifin/campus_finance_app/internal/middleware"
	"github.com/unifin/campus_finance_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check route, outside auth
	r.GET("/healthz", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerWalletRoutes(v1, services.Wallet, services.Ledger)
	registerPeriodRoutes(v1, services.Period)
	registerLedgerRoutes(v1, services.Ledger, services.Reversal)
	registerAdvanceRoutes(v1, services.Advance)

	registerPaymentRoutes(v1, services.Payment)
	registerTransferRoutes(v1, services.Transfer)
	registerPayrollRoutes(v1, services.Payroll)
	registerExpenseRoutes(v1, services.Expense)
	registerRefundRoutes(v1, services.Refund)
	registerInvestmentRoutes(v1, services.Investment)
}
