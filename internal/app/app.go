package app

import (
	"context"
	"time"

	"github.com/go-redis/redis"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/softmindsol/stone-identifier-be/internal/config"
	"github.com/softmindsol/stone-identifier-be/internal/domains/collection"
	"github.com/softmindsol/stone-identifier-be/internal/domains/embedding"
	"github.com/softmindsol/stone-identifier-be/internal/domains/gem"
	"github.com/softmindsol/stone-identifier-be/internal/domains/suggestion"
	"github.com/softmindsol/stone-identifier-be/internal/domains/user"
	aistoneRepo "github.com/softmindsol/stone-identifier-be/internal/repository/aistone"
	collectionRepo "github.com/softmindsol/stone-identifier-be/internal/repository/collection"
	gemRepo "github.com/softmindsol/stone-identifier-be/internal/repository/gem"
	suggestionRepo "github.com/softmindsol/stone-identifier-be/internal/repository/suggestion"
	userRepo "github.com/softmindsol/stone-identifier-be/internal/repository/user"
	"github.com/softmindsol/stone-identifier-be/internal/runtime/vision"
	"github.com/softmindsol/stone-identifier-be/internal/server"
	"github.com/softmindsol/stone-identifier-be/pkg/Logger"
)

// App represents the application with all its dependencies
type App struct {
	Config *config.Settings
	Logger *Logger.Logger
	DB     *gorm.DB
	RC     *redis.Client

	// repos
	UserRepo       user.UserRepository
	GemRepo        gem.GemstoneRepository
	CollectionRepo collection.CollectionRepository
	SuggestionRepo suggestion.SuggestionRepository
	EmbeddingStore embedding.EmbeddingStore

	// services
	UserService       user.UserService
	GemService        gem.GemService
	CollectionService collection.CollectionService
	SuggestionService suggestion.SuggestionService
	EmbeddingService  embedding.EmbeddingService

	ServerDeps server.Dependencies
	cron       *cron.Cron
}

// NewApp creates a new application instance with all dependencies properly wired
func NewApp(cfg *config.Settings, logger *Logger.Logger, db *gorm.DB, rc *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		RC:     rc,
	}

	if err := app.setupDependencies(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupDependencies initializes all application dependencies
func (a *App) setupDependencies() error {
	// Repositories. The gem repo is wrapped with a Redis detail cache.
	a.UserRepo = userRepo.NewGormUserRepo(a.DB)
	a.GemRepo = gemRepo.NewCachedGemRepo(gemRepo.NewGormGemRepo(a.DB), a.RC, a.Logger)
	a.CollectionRepo = collectionRepo.NewGormCollectionRepo(a.DB)
	a.SuggestionRepo = suggestionRepo.NewGormSuggestionRepo(a.DB)
	a.EmbeddingStore = aistoneRepo.NewGormEmbeddingStore(a.DB)

	// AI runtime components
	identifier, err := vision.NewGeminiIdentifier(a.Config.Gemini, a.Logger)
	if err != nil {
		return err
	}
	embedder, err := NewEmbedderFromConfig(a.Config, a.Logger)
	if err != nil {
		return err
	}

	// JWT settings from config
	jwtSecret := a.Config.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "default-secret-key-change-in-production"
		a.Logger.Warn("JWT secret not configured, using default (not secure for production)")
	}

	tokenTTLHours := a.Config.Auth.TokenTTLHours
	if tokenTTLHours == 0 {
		tokenTTLHours = 24
	}
	tokenTTL := time.Duration(tokenTTLHours) * time.Hour

	// Services
	a.UserService = user.NewUserService(a.UserRepo, user.NewLogMailer(a.Logger), a.Logger, jwtSecret, tokenTTL)
	a.GemService = gem.NewGemService(a.GemRepo, identifier, a.Logger)
	a.CollectionService = collection.NewCollectionService(a.CollectionRepo, a.GemRepo, a.Logger)
	a.SuggestionService = suggestion.NewSuggestionService(a.SuggestionRepo, a.GemRepo, a.Logger)
	a.EmbeddingService = embedding.NewEmbeddingService(a.GemRepo, a.EmbeddingStore, embedder, embedding.NewFixedPacer(), a.Logger)

	a.ServerDeps = server.NewServerDependencies(
		a.UserService,
		a.GemService,
		a.CollectionService,
		a.SuggestionService,
		a.EmbeddingService,
		a.Logger,
		a.Config,
	)

	return nil
}

// StartScheduler registers the periodic bulk embedding run when a cron
// expression is configured. Without one the job only runs via the endpoint.
func (a *App) StartScheduler() error {
	spec := a.Config.Embedding.Cron
	if spec == "" {
		a.Logger.Info("embedding cron disabled")
		return nil
	}

	a.cron = cron.New()
	_, err := a.cron.AddFunc(spec, func() {
		stats, err := a.EmbeddingService.RunBulkGeneration(context.Background())
		if err != nil {
			a.Logger.Errorf("scheduled embedding run failed: %v", err)
			return
		}
		a.Logger.Infof("scheduled embedding run done: processed=%d created=%d updated=%d errors=%d skipped=%d",
			stats.Processed, stats.Created, stats.Updated, stats.Errors, stats.Skipped)
	})
	if err != nil {
		return err
	}

	a.cron.Start()
	a.Logger.Infof("embedding cron scheduled: %s", spec)
	return nil
}

// StopScheduler stops the cron runner, waiting for a running job to finish.
func (a *App) StopScheduler() {
	if a.cron != nil {
		<-a.cron.Stop().Done()
	}
}

// GetServerDependencies returns the server dependencies
func (a *App) GetServerDependencies() server.Dependencies {
	return a.ServerDeps
}
