package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/softmindsol/stone-identifier-be/internal/config"
	"github.com/softmindsol/stone-identifier-be/internal/domains/collection"
	"github.com/softmindsol/stone-identifier-be/internal/domains/embedding"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/internal/domains/suggestion"
	"github.com/softmindsol/stone-identifier-be/internal/domains/user"
	"github.com/softmindsol/stone-identifier-be/internal/handlers"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// Dependencies groups everything the HTTP layer needs.
type Dependencies struct {
	Logger  *Logger.Logger
	Configs *config.Settings

	UserService       user.UserService
	GemService        gem.GemService
	CollectionService collection.CollectionService
	SuggestionService suggestion.SuggestionService
	EmbeddingService  embedding.EmbeddingService
}

// NewServerDependencies bundles services for route registration.
func NewServerDependencies(
	userService user.UserService,
	gemService gem.GemService,
	collectionService collection.CollectionService,
	suggestionService suggestion.SuggestionService,
	embeddingService embedding.EmbeddingService,
	logger *Logger.Logger,
	cfg *config.Settings,
) Dependencies {
	return Dependencies{
		Logger:            logger,
		Configs:           cfg,
		UserService:       userService,
		GemService:        gemService,
		CollectionService: collectionService,
		SuggestionService: suggestionService,
		EmbeddingService:  embeddingService,
	}
}

// InitializeRoutes registers all HTTP routes on the gin engine.
func InitializeRoutes(cfg *config.Settings, r *gin.Engine, dep Dependencies) {
	r.Use(handlers.CORSMiddleware())
	r.Use(handlers.RequestLoggerMiddleware(dep.Logger))
	r.Use(handlers.ErrorHandlerMiddleware(dep.Logger))

	r.GET("/", func(ctx *gin.Context) { ctx.JSON(200, gin.H{"message": "Server healthy"}) })
	r.GET("/health", func(ctx *gin.Context) { ctx.JSON(200, gin.H{"status": "ok"}) })

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	userHandler := handlers.NewUserHandler(dep.UserService, dep.Logger)
	gemHandler := handlers.NewGemHandler(dep.GemService, dep.Logger)
	collectionHandler := handlers.NewCollectionHandler(dep.CollectionService, dep.Logger)
	suggestionHandler := handlers.NewSuggestionHandler(dep.SuggestionService, dep.Logger)
	embeddingHandler := handlers.NewEmbeddingHandler(dep.EmbeddingService, dep.Logger)

	authRequired := handlers.AuthMiddleware(dep.UserService, dep.Logger)

	auth := r.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
		auth.POST("/refresh", userHandler.RefreshToken)
		auth.POST("/forgot-password", userHandler.ForgotPassword)
		auth.POST("/verify-reset-code", userHandler.VerifyResetCode)
		auth.POST("/reset-password", userHandler.ResetPassword)
	}

	userGroup := r.Group("/user", authRequired)
	{
		userGroup.GET("/profile", userHandler.GetProfile)
		userGroup.PUT("/profile", userHandler.UpdateProfile)
		userGroup.DELETE("/account", userHandler.DeleteAccount)
	}

	gems := r.Group("/gems", authRequired)
	{
		gems.POST("/identify", gemHandler.Identify)
		gems.GET("/:id", gemHandler.GetGemstone)
	}

	collections := r.Group("/collections", authRequired)
	{
		collections.GET("", collectionHandler.List)
		collections.GET("/wishlist", collectionHandler.ListWishlist)
		collections.GET("/stats", collectionHandler.GetStats)
		collections.POST("/gemstone/:gemstoneId", collectionHandler.SaveGemstone)
		collections.GET("/:id", collectionHandler.Get)
		collections.PUT("/:id", collectionHandler.Update)
		collections.DELETE("/:id", collectionHandler.Delete)
		collections.POST("/:id/wishlist", collectionHandler.ToggleWishlist)
	}

	suggestions := r.Group("/suggestions", authRequired)
	{
		suggestions.POST("/stone", suggestionHandler.SubmitStoneFeedback)
		suggestions.POST("/app", suggestionHandler.SubmitAppFeedback)
		suggestions.GET("/mine", suggestionHandler.ListMine)
	}

	aiStone := r.Group("/ai-stone", authRequired)
	{
		aiStone.POST("/embeddings/generate", embeddingHandler.GenerateAll)
		aiStone.POST("/embeddings/gems/:id", embeddingHandler.UpdateOne)
	}
}
