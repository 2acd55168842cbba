// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/elnet/electronics-network/internal/config"
	"github.com/elnet/electronics-network/internal/handlers"
	"github.com/elnet/electronics-network/internal/metrics"
	"github.com/elnet/electronics-network/internal/middleware"
	"github.com/elnet/electronics-network/internal/models"
	"github.com/elnet/electronics-network/internal/services"
	"github.com/elnet/electronics-network/internal/utils"
)

// Initialize builds the route table. storage may be disabled, in which case
// debt reports are returned without being uploaded.
func Initialize(db *gorm.DB, cfg *config.Config, storageService *services.StorageService) *gin.Engine {
	// Initialize services
	userService := services.NewUserService(db)
	manufacturerService := services.NewManufacturerService(db)
	retailNetworkService := services.NewRetailNetworkService(db)
	entrepreneurService := services.NewEntrepreneurService(db)
	productService := services.NewProductService(db)
	transactionService := services.NewTransactionService(db)
	supplierService := services.NewSupplierService(db)
	ledgerService := services.NewLedgerService(db)
	reportService := services.NewReportService(db, storageService)

	paginator := utils.NewPaginator(cfg.Pagination.PageSize, cfg.Pagination.MaxPageSize)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService, paginator)
	manufacturerHandler := handlers.NewManufacturerHandler(manufacturerService, paginator)
	retailNetworkHandler := handlers.NewRetailNetworkHandler(retailNetworkService, paginator)
	entrepreneurHandler := handlers.NewEntrepreneurHandler(entrepreneurService, paginator)
	productHandler := handlers.NewProductHandler(productService, supplierService, paginator)
	transactionHandler := handlers.NewTransactionHandler(transactionService, paginator)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, supplierService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	if cfg.Metrics.Enabled {
		r.Use(metrics.GinMiddleware())
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(limiter.Middleware())
	}
	r.Use(middleware.AuditLogMiddleware(db))

	r.GET("/health", healthHandler.Check)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// API v1 routes, all authenticated
	v1 := r.Group("/v1")
	v1.Use(middleware.AuthRequired(userService))
	{
		parties := []struct {
			path    string
			kind    models.PartyKind
			handler crudHandler
		}{
			{"/manufacturers", models.PartyKindManufacturer, manufacturerHandler},
			{"/retail_networks", models.PartyKindRetailNetwork, retailNetworkHandler},
			{"/individual_entrepreneurs", models.PartyKindIndividualEntrepreneur, entrepreneurHandler},
		}
		for _, p := range parties {
			group := v1.Group(p.path)
			registerCRUD(group, p.handler)
			group.GET("/:id/debt", ledgerHandler.TotalDebt(p.kind))
			group.GET("/:id/supplier", ledgerHandler.Supplier(p.kind))
		}

		products := v1.Group("/products")
		registerCRUD(products, productHandler)
		products.GET("/:id/supplier_levels", productHandler.SupplierLevels)

		registerCRUD(v1.Group("/transactions"), transactionHandler)

		v1.GET("/users/me", userHandler.Me)

		// Superuser routes
		admin := v1.Group("")
		admin.Use(middleware.SuperuserRequired())
		{
			admin.POST("/debts/clear", ledgerHandler.ClearDebt)
			admin.POST("/reports/debts", reportHandler.DebtReport)

			users := admin.Group("/users")
			{
				users.GET("", userHandler.List)
				users.POST("", userHandler.Create)
				users.GET("/:id", userHandler.Get)
				users.PUT("/:id", userHandler.Update)
			}
		}
	}

	return r
}

// crudHandler is the surface shared by every registry resource.
type crudHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerCRUD(group *gin.RouterGroup, h crudHandler) {
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}
