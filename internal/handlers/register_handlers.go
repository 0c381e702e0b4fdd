package handlers

import (
	"github.com/akale-dev/pf_ledger_app/internal/core/domain"
	portssvc "github.com/akale-dev/pf_ledger_app/internal/core/ports/services"
	"github.com/akale-dev/pf_ledger_app/internal/middleware"
	"github.com/akale-dev/pf_ledger_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	registerValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, services, limiterInstance)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the ledger route registration
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	registerLedgerRoutes(v1, services.Ledger, middleware.RateLimit(limiterInstance))
}

// registerValidations installs the custom binding validations used by the
// request DTOs.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accountkind", func(fl validator.FieldLevel) bool {
			return domain.AccountKind(fl.Field().String()).IsValid()
		})
	}
}
