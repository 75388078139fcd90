package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BuddyBoardApp/petcare-scheduler/internal/audit"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/auth"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/config"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/handlers"
	infraRepo "github.com/BuddyBoardApp/petcare-scheduler/internal/infra/repository"
	"github.com/BuddyBoardApp/petcare-scheduler/internal/middleware"
	ucService "github.com/BuddyBoardApp/petcare-scheduler/internal/usecase/service"
	ucTask "github.com/BuddyBoardApp/petcare-scheduler/internal/usecase/task"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createServiceUC := ucService.NewCreateService(schedulingRepo, auditDispatcher)
	updateServiceUC := ucService.NewUpdateService(schedulingRepo, auditDispatcher)
	deleteServiceUC := ucService.NewDeleteService(schedulingRepo, auditDispatcher)
	upcomingServicesUC := ucService.NewListUpcomingServices(schedulingRepo)

	createTaskUC := ucTask.NewCreateTask(schedulingRepo, auditDispatcher)
	updateTaskUC := ucTask.NewUpdateTask(schedulingRepo, auditDispatcher)
	deleteTaskUC := ucTask.NewDeleteTask(schedulingRepo, auditDispatcher)
	pendingTasksUC := ucTask.NewListPendingTasks(schedulingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, hasher, tokens)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)

	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher)
	providerHandler := handlers.NewProviderHandler(db, auditDispatcher)

	serviceHandler := handlers.NewServiceHandler(
		db,
		createServiceUC,
		updateServiceUC,
		deleteServiceUC,
		upcomingServicesUC,
	)

	taskHandler := handlers.NewTaskHandler(
		db,
		createTaskUC,
		updateTaskUC,
		deleteTaskUC,
		pendingTasksUC,
	)

	notificationHandler := handlers.NewNotificationHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/users", userHandler.List)
			secured.GET("/users/:id", userHandler.Get)

			secured.GET("/customers", customerHandler.List)
			secured.POST("/customers", customerHandler.Create)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.PUT("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)

			secured.GET("/providers", providerHandler.List)
			secured.POST("/providers", providerHandler.Create)
			secured.GET("/providers/:id", providerHandler.Get)
			secured.PUT("/providers/:id", providerHandler.Update)
			secured.DELETE("/providers/:id", providerHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/upcoming", serviceHandler.Upcoming)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// TASKS
			// ------------------------------
			secured.GET("/tasks", taskHandler.List)
			secured.POST("/tasks", taskHandler.Create)
			secured.GET("/tasks/pending", taskHandler.Pending)
			secured.GET("/tasks/:id", taskHandler.Get)
			secured.PUT("/tasks/:id", taskHandler.Update)
			secured.DELETE("/tasks/:id", taskHandler.Delete)

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/notifications", notificationHandler.List)
			secured.POST("/notifications", notificationHandler.Create)
			secured.GET("/notifications/unread", notificationHandler.Unread)
			secured.GET("/notifications/:id", notificationHandler.Get)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.DELETE("/notifications/:id", notificationHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
