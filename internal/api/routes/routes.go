package routes

import (
	"voteverse-backend/internal/api/handlers"
	"voteverse-backend/internal/api/middleware"
	"voteverse-backend/internal/auth"
	"voteverse-backend/internal/config"
	"voteverse-backend/internal/i18n"
	"voteverse-backend/internal/logger"
	"voteverse-backend/internal/metrics"
	"voteverse-backend/internal/registry"
	"voteverse-backend/internal/repository"
	"voteverse-backend/internal/service"
	"voteverse-backend/internal/storage"
	"voteverse-backend/internal/voice"
	"voteverse-backend/internal/voting"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the external resources opened by the caller
type Dependencies struct {
	Blobs      storage.Store
	Registry   *registry.Registry // nil when no registry is configured
	Translator *i18n.Translator
	Metrics    *metrics.Metrics
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(deps.Metrics))

	validate := validator.New()

	// Initialize repositories
	voterRepo := repository.NewVoterRepository(db)
	electionRepo := repository.NewElectionRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	voiceSampleRepo := repository.NewVoiceSampleRepository(db)
	attemptRepo := repository.NewVerificationAttemptRepository(db)

	// Registry sync needs a nil interface, not a nil *Registry, when unconfigured
	var registrySource service.RegistrySource
	if deps.Registry != nil {
		registrySource = deps.Registry
	}

	// Initialize services
	voterService := service.NewVoterService(voterRepo, validate)
	electionService := service.NewElectionService(electionRepo, validate)
	positionService := service.NewPositionService(positionRepo, electionRepo, validate)
	candidateService := service.NewCandidateService(candidateRepo, voterRepo, positionRepo, deps.Blobs, validate)
	voteService := service.NewVoteService(voteRepo, voterRepo, candidateRepo, positionRepo, electionRepo, deps.Metrics, validate)
	resultsService := service.NewResultsService(candidateRepo, positionRepo, electionRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, validate)
	voiceSampleService := service.NewVoiceSampleService(voiceSampleRepo, voterRepo, deps.Blobs, cfg.VoiceMaxUploadBytes)
	verificationService := service.NewVerificationService(
		attemptRepo,
		voterRepo,
		voiceSampleService,
		voice.NewHTTPVerifier(cfg.VoiceVerifierURL, cfg.VoiceVerifierTimeout),
		deps.Translator,
		deps.Metrics,
		service.VerificationConfig{
			MaxAttempts: cfg.VoiceMaxAttempts,
			Window:      cfg.VoiceAttemptWindow,
			MaxBytes:    cfg.VoiceMaxUploadBytes,
		},
	)
	registrySyncService := service.NewRegistrySyncService(registrySource, voterRepo, deps.Metrics)

	dispatcher := voice.NewDispatcher(cfg.VoicePassphrase)
	sessionService := service.NewVotingSessionService(
		voting.NewStore(),
		dispatcher,
		voterRepo,
		electionRepo,
		positionRepo,
		candidateRepo,
		voteService,
		verificationService,
		deps.Translator,
		deps.Metrics,
		service.VotingSessionConfig{
			Passphrase:       cfg.VoicePassphrase,
			RecordingSeconds: cfg.VoiceRecordingSecs,
		},
	)

	// Initialize auth
	authenticator := auth.NewAuthenticator(cfg)
	if authenticator == nil {
		logger.New().Warn("LDAP is not configured, logins will be rejected")
	}
	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTTTL, authenticator, voterRepo)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	if deps.Registry != nil {
		healthHandler.WithDependency("registry", deps.Registry)
	}
	voterHandler := handlers.NewVoterHandler(voterService, voteService)
	electionHandler := handlers.NewElectionHandler(electionService, positionService)
	positionHandler := handlers.NewPositionHandler(positionService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	voteHandler := handlers.NewVoteHandler(voteService)
	resultsHandler := handlers.NewResultsHandler(resultsService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	voiceHandler := handlers.NewVoiceHandler(voiceSampleService, verificationService, dispatcher, deps.Metrics)
	votingHandler := handlers.NewVotingHandler(sessionService)
	adminHandler := handlers.NewAdminHandler(registrySyncService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Login is the only unauthenticated API endpoint
	v1.POST("/auth/login", authHandler.Login)

	api := v1.Group("")
	api.Use(authMiddleware.RequireAuth())
	admin := api.Group("")
	admin.Use(authMiddleware.RequireAdmin())

	{
		api.GET("/auth/me", authHandler.Me)

		// Voter routes
		api.GET("/voters/:id", voterHandler.GetVoter)
		api.PATCH("/voters/:id/contacts", voterHandler.UpdateContacts)
		api.GET("/voters/:id/votes", voterHandler.GetVoterVotes)
		admin.GET("/voters", voterHandler.ListVoters)
		admin.POST("/voters", voterHandler.CreateVoter)
		admin.GET("/voters/reg/:regNo", voterHandler.GetVoterByRegNo)
		admin.PUT("/voters/:id", voterHandler.UpdateVoter)
		admin.DELETE("/voters/:id", voterHandler.DeleteVoter)

		// Election routes
		api.GET("/elections", electionHandler.ListElections)
		api.GET("/elections/active", electionHandler.GetActiveElection)
		api.GET("/elections/:id", electionHandler.GetElection)
		api.GET("/elections/:id/positions", electionHandler.GetElectionPositions)
		admin.POST("/elections", electionHandler.CreateElection)
		admin.PUT("/elections/:id/status", electionHandler.UpdateElectionStatus)
		admin.DELETE("/elections/:id", electionHandler.DeleteElection)

		// Position routes
		api.GET("/positions", positionHandler.ListPositions)
		api.GET("/positions/:id", positionHandler.GetPosition)
		api.GET("/positions/name/:name", positionHandler.GetPositionByName)
		api.GET("/positions/level/:level", positionHandler.GetPositionsByLevel)
		admin.POST("/positions", positionHandler.CreatePosition)
		admin.PUT("/positions/:id", positionHandler.UpdatePosition)
		admin.DELETE("/positions/:id", positionHandler.DeletePosition)

		// Candidate routes
		api.GET("/candidates", candidateHandler.ListCandidates)
		api.GET("/candidates/approved", candidateHandler.ListApprovedCandidates)
		api.GET("/candidates/active", candidateHandler.ListActiveCandidates)
		api.GET("/candidates/position/:positionId", candidateHandler.ListCandidatesByPosition)
		api.GET("/candidates/:id", candidateHandler.GetCandidate)
		api.GET("/candidates/:id/image", candidateHandler.GetCandidateImage)
		admin.POST("/candidates", candidateHandler.RegisterCandidate)
		admin.PUT("/candidates/:id", candidateHandler.UpdateCandidate)
		admin.POST("/candidates/:id/approve", candidateHandler.ApproveCandidate)
		admin.PUT("/candidates/:id/status", candidateHandler.SetCandidateStatus)
		admin.PUT("/candidates/:id/image", candidateHandler.UploadCandidateImage)
		admin.DELETE("/candidates/:id", candidateHandler.DeleteCandidate)

		// Vote routes
		api.POST("/votes", voteHandler.CastVote)
		api.GET("/votes/me", voteHandler.MyVotes)
		api.GET("/votes/verify/:hash", voteHandler.VerifyVote)

		// Results routes
		api.GET("/results/position/:id", resultsHandler.PositionResults)
		api.GET("/results/position/:id/all", resultsHandler.PositionResultsAll)
		api.GET("/results/candidate/:id", resultsHandler.CandidateResult)
		api.GET("/results/election/:id", resultsHandler.ElectionResults)

		// Feedback routes
		api.POST("/feedback", feedbackHandler.SubmitFeedback)
		admin.GET("/feedback", feedbackHandler.ListFeedback)
		admin.GET("/feedback/:id", feedbackHandler.GetFeedback)
		admin.DELETE("/feedback/:id", feedbackHandler.DeleteFeedback)

		// Voice routes
		api.POST("/voice/samples", voiceHandler.UploadSample)
		api.GET("/voice/samples/status", voiceHandler.SampleStatus)
		api.DELETE("/voice/samples", voiceHandler.DeleteSample)
		api.POST("/voice/verify", voiceHandler.Verify)
		api.POST("/voice/commands", voiceHandler.Commands)

		// Voting session routes
		api.POST("/voting/session", votingHandler.StartSession)
		api.GET("/voting/session", votingHandler.GetSession)
		api.DELETE("/voting/session", votingHandler.CancelSession)
		api.POST("/voting/session/select", votingHandler.Select)
		api.POST("/voting/session/next", votingHandler.Next)
		api.POST("/voting/session/previous", votingHandler.Previous)
		api.POST("/voting/session/confirm", votingHandler.Confirm)
		api.POST("/voting/session/verify", votingHandler.Verify)
		api.POST("/voting/session/command", votingHandler.Command)

		// Admin routes
		admin.POST("/admin/registry/sync", adminHandler.SyncRegistry)
	}

	return router, nil
}
