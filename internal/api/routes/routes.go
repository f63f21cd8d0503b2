package routes

import (
	"time"

	"vacation-manager-backend/internal/api/handlers"
	"vacation-manager-backend/internal/api/middleware"
	"vacation-manager-backend/internal/auth"
	"vacation-manager-backend/internal/config"
	"vacation-manager-backend/internal/database"
	"vacation-manager-backend/internal/database/models"
	"vacation-manager-backend/internal/identity"
	"vacation-manager-backend/internal/repository"
	"vacation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	txRunner := database.NewTxRunner(db)

	// Repositories and the identity store
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)
	roleStore := identity.NewRoleStore(db)

	// Services
	roleSync := service.NewRoleSyncService(userRepo, roleStore)
	employeeService := service.NewEmployeeService(userRepo, teamRepo, roleStore, roleSync, txRunner, validate)
	teamService := service.NewTeamService(teamRepo, userRepo, roleSync, txRunner, validate)
	projectService := service.NewProjectService(projectRepo, teamRepo, txRunner, validate)
	policy := service.NewHolidayAccessPolicy()
	holidayService := service.NewHolidayService(holidayRepo, userRepo, roleStore, policy, validate)

	// Auth
	authService := auth.NewService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryMin)*time.Minute, userRepo)
	authMiddleware := auth.NewMiddleware(authService, roleStore)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, holidayService)
	teamHandler := handlers.NewTeamHandler(teamService)
	projectHandler := handlers.NewProjectHandler(projectService)
	holidayHandler := handlers.NewHolidayHandler(holidayService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	router.POST("/api/auth/login", authHandler.Login)

	// API v1 routes, everything behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	requireCEO := authMiddleware.RequireRole(models.RoleCEO)

	{
		// Employee routes; roster changes are a CEO concern
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", requireCEO, employeeHandler.CreateEmployee)
			employees.GET("/unassigned", employeeHandler.ListUnassignedEmployees)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", requireCEO, employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", requireCEO, employeeHandler.DeleteEmployee)
			employees.GET("/:id/holidays", employeeHandler.GetEmployeeHolidays)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", requireCEO, teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.DELETE("/:id", requireCEO, teamHandler.DeleteTeam)
			teams.PUT("/:id/leader", requireCEO, teamHandler.ChangeLeader)
			teams.PUT("/:id/members/:userId", requireCEO, teamHandler.AddMember)
			teams.DELETE("/:id/members/:userId", requireCEO, teamHandler.RemoveMember)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", requireCEO, projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", requireCEO, projectHandler.UpdateProject)
			projects.DELETE("/:id", requireCEO, projectHandler.DeleteProject)
			projects.PUT("/:id/teams/:teamId", requireCEO, projectHandler.AssignTeam)
			projects.DELETE("/:id/teams/:teamId", requireCEO, projectHandler.UnassignTeam)
		}

		// Holiday routes; per-request authority lives in the service policy
		holidays := v1.Group("/holidays")
		{
			holidays.GET("", holidayHandler.ListMyHolidays)
			holidays.POST("", holidayHandler.CreateHoliday)
			holidays.GET("/pending", holidayHandler.ListPendingHolidays)
			holidays.GET("/:id", holidayHandler.GetHoliday)
			holidays.PUT("/:id", holidayHandler.UpdateHoliday)
			holidays.DELETE("/:id", holidayHandler.DeleteHoliday)
			holidays.POST("/:id/approve", holidayHandler.ApproveHoliday)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
