package routes

import (
	"resource-planner-backend/internal/api/handlers"
	"resource-planner-backend/internal/api/middleware"
	"resource-planner-backend/internal/auth"
	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/repository"
	"resource-planner-backend/internal/service"

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

	validator := validator.New()

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	timeEntryRepo := repository.NewTimeEntryRepository(db)
	userRepo := repository.NewUserRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)

	// Initialize services
	memberService := service.NewMemberService(memberRepo, teamRepo, validator)
	teamService := service.NewTeamService(teamRepo, memberRepo, validator)
	allocationService := service.NewAllocationService(allocationRepo, memberRepo, teamRepo, validator)
	timeEntryService := service.NewTimeEntryService(timeEntryRepo, allocationRepo, memberRepo, validator)
	utilizationService := service.NewUtilizationService(memberRepo, timeEntryRepo)
	userService := service.NewUserService(userRepo)
	snapshotService := service.NewSnapshotService(db)

	authService := auth.NewAuthService(userRepo, invitationRepo, cfg.JWTSecret)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewMemberHandler(memberService, allocationService)
	teamHandler := handlers.NewTeamHandler(teamService)
	allocationHandler := handlers.NewAllocationHandler(allocationService)
	timeEntryHandler := handlers.NewTimeEntryHandler(timeEntryService)
	utilizationHandler := handlers.NewUtilizationHandler(utilizationService)
	userHandler := handlers.NewUserHandler(userService, authService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/validate", authHandler.Validate)
		authGroup.GET("/invited", authHandler.Invited)
	}

	// API v1 routes, all behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
			members.GET("/:id/allocations", memberHandler.GetMemberAllocations)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/members", teamHandler.GetTeamWithMembers)
		}

		allocations := v1.Group("/allocations")
		{
			allocations.GET("", allocationHandler.ListAllocations)
			allocations.POST("", allocationHandler.CreateAllocation)
			allocations.GET("/:id", allocationHandler.GetAllocation)
			allocations.PUT("/:id", allocationHandler.UpdateAllocation)
			allocations.DELETE("/:id", allocationHandler.DeleteAllocation)
		}

		timeEntries := v1.Group("/time-entries")
		{
			timeEntries.GET("", timeEntryHandler.ListTimeEntries)
			timeEntries.POST("", timeEntryHandler.CreateTimeEntry)
			timeEntries.DELETE("/:id", timeEntryHandler.DeleteTimeEntry)
		}

		v1.GET("/utilization", utilizationHandler.GetUtilization)

		snapshot := v1.Group("/snapshot")
		{
			snapshot.GET("", snapshotHandler.Export)
			snapshot.PUT("", snapshotHandler.Import)
		}

		// Admin-only routes
		admin := v1.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.GET("/users", userHandler.ListUsers)
			admin.PUT("/users/:id/admin", userHandler.SetAdmin)
			admin.DELETE("/users/:id/admin", userHandler.RemoveAdmin)
			admin.GET("/invitations", userHandler.ListInvitations)
			admin.POST("/invitations", userHandler.SendInvitation)
			admin.DELETE("/invitations/:email", userHandler.RevokeInvitation)
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
