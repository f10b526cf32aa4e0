package routes

import (
	"fmt"

	"ministry-portal-backend/internal/api/handlers"
	"ministry-portal-backend/internal/api/middleware"
	"ministry-portal-backend/internal/auth"
	"ministry-portal-backend/internal/catalog"
	"ministry-portal-backend/internal/config"
	"ministry-portal-backend/internal/repository"
	"ministry-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// uploadsPrefix is where files under UPLOAD_DIR are served
const uploadsPrefix = "/uploads"

// Dependencies are the collaborators built outside the router
type Dependencies struct {
	Version string
	Catalog *catalog.Catalog
	// Analyzer is nil when no Gemini key is configured
	Analyzer service.DocumentAnalyzer
	Mailer   service.Mailer
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	validator := validator.New()
	cat := deps.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	followUpRepo := repository.NewFollowUpRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	calendarFileRepo := repository.NewCalendarFileRepository(db)

	// Auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Services
	files := service.NewLocalFileStore(cfg.UploadDir, uploadsPrefix)
	mailer := deps.Mailer
	if mailer == nil {
		mailer = service.NewZeptoMailer(cfg)
	}
	memberService := service.NewMemberService(userRepo, files, cat, validator)
	eventService := service.NewEventService(eventRepo, userRepo, cat, validator)
	draftService := service.NewDraftService(eventRepo, memberService, eventService, cat, cfg.DraftTTL())
	activityService := service.NewActivityService(activityRepo, userRepo, validator)
	resourceService := service.NewResourceService(resourceRepo, files, validator)
	followUpService := service.NewFollowUpService(followUpRepo, validator)
	invitationService := service.NewInvitationService(invitationRepo, userRepo, mailer, authService, validator, cfg.AppBaseURL, cfg.AllowedOrigins, cfg.InviteTTL())
	documentService := service.NewDocumentService(deps.Analyzer, calendarFileRepo, cfg.MaxUploadBytes())

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, deps.Version, map[string]bool{
		"mail":              cfg.ZeptoMailToken != "",
		"document_analysis": deps.Analyzer != nil,
	})
	calendarHandler := handlers.NewCalendarHandler(eventService, cat)
	draftHandler := handlers.NewDraftHandler(draftService)
	memberHandler := handlers.NewMemberHandler(memberService)
	activityHandler := handlers.NewActivityHandler(activityService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	followUpHandler := handlers.NewFollowUpHandler(followUpService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	documentHandler := handlers.NewDocumentHandler(documentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Static(uploadsPrefix, cfg.UploadDir)

	// Public auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/setup", authHandler.SetupAdmin)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/validate", authHandler.ValidateToken)
		authGroup.GET("/invitations/verify", invitationHandler.Verify)
		authGroup.POST("/register", invitationHandler.Register)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	admin := authMiddleware.RequireAdmin()

	{
		calendar := v1.Group("/calendar")
		{
			calendar.GET("/catalog", calendarHandler.GetCatalog)
			calendar.GET("/events", calendarHandler.ListEvents)
			calendar.POST("/events", calendarHandler.CreateEvent)
			calendar.POST("/events/recurring", calendarHandler.CreateRecurringEvents)
			calendar.GET("/events/:id", calendarHandler.GetEvent)
			calendar.PUT("/events/:id", calendarHandler.UpdateEvent)
			calendar.DELETE("/events/:id", calendarHandler.DeleteEvent)
			calendar.GET("/month", calendarHandler.GetMonthGrid)
			calendar.GET("/export.ics", calendarHandler.ExportICS)

			drafts := calendar.Group("/drafts")
			{
				drafts.POST("", draftHandler.OpenDraft)
				drafts.GET("/:id", draftHandler.GetDraft)
				drafts.DELETE("/:id", draftHandler.CloseDraft)
				drafts.PUT("/:id/date", draftHandler.SetDate)
				drafts.PUT("/:id/event-type", draftHandler.SetEventType)
				drafts.PUT("/:id/roles/:kind", draftHandler.ProposeRole)
				drafts.POST("/:id/resolve", draftHandler.ResolveConflict)
				drafts.DELETE("/:id/conflict", draftHandler.CancelConflict)
				drafts.POST("/:id/members/:memberId", draftHandler.ToggleMember)
				drafts.PUT("/:id/exception-mode", draftHandler.SetExceptionMode)
				drafts.POST("/:id/submit", draftHandler.SubmitDraft)
			}
		}

		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id/supervisor", admin, memberHandler.UpdateSupervisor)
			members.PUT("/:id/staff", admin, memberHandler.UpdateStaff)
			members.DELETE("/:id", admin, memberHandler.DeleteMember)
		}

		profile := v1.Group("/profile")
		{
			profile.GET("", memberHandler.GetProfile)
			profile.PUT("", memberHandler.UpdateProfile)
			profile.POST("/avatar", memberHandler.UploadAvatar)
		}

		activities := v1.Group("/activities")
		{
			activities.GET("", activityHandler.ListActivities)
			activities.POST("", activityHandler.CreateActivity)
			activities.PUT("/:id/status", activityHandler.UpdateStatus)
			activities.DELETE("/:id", activityHandler.DeleteActivity)
			activities.POST("/:id/updates", activityHandler.AddUpdate)
		}

		resources := v1.Group("/resources")
		{
			resources.GET("", resourceHandler.ListResources)
			resources.POST("", resourceHandler.CreateResource)
			resources.POST("/upload", resourceHandler.UploadFile)
			resources.DELETE("/:id", resourceHandler.DeleteResource)
		}

		followUps := v1.Group("/follow-ups")
		{
			followUps.GET("", followUpHandler.ListFollowUps)
			followUps.POST("", followUpHandler.CreateFollowUp)
			followUps.PUT("/:id/status", followUpHandler.UpdateStatus)
			followUps.DELETE("/:id", followUpHandler.DeleteFollowUp)
		}

		v1.POST("/invitations", admin, invitationHandler.Invite)

		documents := v1.Group("/documents")
		{
			documents.GET("", documentHandler.ListCalendarFiles)
			documents.POST("/analyze", documentHandler.AnalyzeDocument)
		}
	}

	return router, nil
}
