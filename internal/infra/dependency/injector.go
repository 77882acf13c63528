// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pennywise/backend/config"
	"github.com/pennywise/backend/internal/application/usecase/budget"
	"github.com/pennywise/backend/internal/application/usecase/category"
	"github.com/pennywise/backend/internal/application/usecase/dashboard"
	"github.com/pennywise/backend/internal/application/usecase/seed"
	"github.com/pennywise/backend/internal/application/usecase/transaction"
	"github.com/pennywise/backend/internal/application/usecase/user"
	infradb "github.com/pennywise/backend/internal/infra/db"
	"github.com/pennywise/backend/internal/infra/server/router"
	"github.com/pennywise/backend/internal/integration/adapters"
	"github.com/pennywise/backend/internal/integration/entrypoint/controller"
	"github.com/pennywise/backend/internal/integration/entrypoint/middleware"
	"github.com/pennywise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case the seed endpoint runs unthrottled.
func NewInjector(cfg *config.Config, database *infradb.Database, redisClient *redis.Client) *Injector {
	db := database.DB()

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	seedRepo := persistence.NewSeedRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create user use cases
	syncUserUseCase := user.NewSyncUserUseCase(userRepo, cfg.Auth.OwnerOpenID)
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, categoryRepo, transactionRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create dashboard use cases
	getStatsUseCase := dashboard.NewGetStatsUseCase(dashboardRepo)
	getCategorySpendingUseCase := dashboard.NewGetCategorySpendingUseCase(dashboardRepo)

	// Create seed use case
	seedUserDataUseCase := seed.NewSeedUserDataUseCase(categoryRepo, seedRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)

	userController := controller.NewUserController(
		syncUserUseCase,
		getProfileUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getStatsUseCase,
		getCategorySpendingUseCase,
	)

	seedController := controller.NewSeedController(seedUserDataUseCase)

	// Create middleware
	// Test environments seed repeatedly, so they get a wider window.
	var seedRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		seedRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, "seed", 1000, 1*time.Minute)
	} else {
		seedRateLimiter = middleware.NewRateLimiter(redisClient, "seed")
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		userController,
		categoryController,
		transactionController,
		budgetController,
		dashboardController,
		seedController,
		seedRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
