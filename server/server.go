package server

import (
	"net/http"

	"mealprep-server/auth"
	"mealprep-server/confs"
	"mealprep-server/db"
	"mealprep-server/handlers"
	httpHandler "mealprep-server/handlers/http"
	"mealprep-server/planner"
	"mealprep-server/repositories"
	"mealprep-server/usecases"
	"mealprep-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", httpHandler.AuthTokenHeader}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	planRepo := repositories.NewMealPlanPgRepository(s.db)

	// Immutable engine pieces, built once and injected
	tokens := auth.NewTokenService(s.cfg.JWTSecret)
	generator := planner.NewGenerator(planner.NewCatalog())

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, tokens)
	planUseCase := usecases.NewMealPlanUseCase(planRepo, userRepo, generator)

	// WebSocket manager for the live plan feed
	manager := ws.NewManager()
	feedHandler := handlers.NewPlanFeedHandler(manager, tokens)

	// Initialize handlers
	authMiddleware := httpHandler.NewAuthMiddleware(tokens)
	authHandler := httpHandler.NewAuthHandler(userUseCase)
	planHandler := httpHandler.NewMealPlanHandler(planUseCase, manager)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("", authMiddleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Meal plan routes (owner-scoped, all protected)
		meals := api.Group("/meals", authMiddleware.RequireAuth())
		{
			meals.POST("/generate", planHandler.Generate)
			meals.GET("/my-plans", planHandler.MyPlans)
			meals.GET("/:id", planHandler.GetPlan)
		}

		// Plan feed management
		api.GET("/feed/connected", feedHandler.GetConnectedUsers)
	}

	s.app.GET("/ws/plans", feedHandler.HandlePlanFeedWS)

	// Unknown routes get the uniform not-found envelope
	s.app.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	if err := s.app.Run("0.0.0.0:" + s.cfg.Port); err != nil {
		panic(err)
	}
}
