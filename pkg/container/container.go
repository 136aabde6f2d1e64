package container

import (
	"context"
	"fmt"

	"circuithub-backend/internal/config"
	infraCache "circuithub-backend/internal/infrastructure/cache"
	"circuithub-backend/internal/infrastructure/database"
	"circuithub-backend/internal/infrastructure/queue"
	"circuithub-backend/internal/infrastructure/storage"
	"circuithub-backend/pkg/cache"
	"circuithub-backend/pkg/jwt"
	"circuithub-backend/pkg/logger"

	analyticsHandler "circuithub-backend/internal/domains/analytics/handler"
	analyticsRepo "circuithub-backend/internal/domains/analytics/repository"
	analyticsService "circuithub-backend/internal/domains/analytics/service"
	authHandler "circuithub-backend/internal/domains/auth/handler"
	authService "circuithub-backend/internal/domains/auth/service"
	categoryHandler "circuithub-backend/internal/domains/category/handler"
	categoryRepo "circuithub-backend/internal/domains/category/repository"
	categoryService "circuithub-backend/internal/domains/category/service"
	commentHandler "circuithub-backend/internal/domains/comment/handler"
	commentRepo "circuithub-backend/internal/domains/comment/repository"
	commentService "circuithub-backend/internal/domains/comment/service"
	tutorialHandler "circuithub-backend/internal/domains/tutorial/handler"
	tutorialRepo "circuithub-backend/internal/domains/tutorial/repository"
	tutorialService "circuithub-backend/internal/domains/tutorial/service"
	uploadHandler "circuithub-backend/internal/domains/upload/handler"
)

// ========================================
// CONTAINER
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the process lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Queue      *queue.Client
	JWTManager *jwt.Manager

	// Repositories
	CategoryRepo  categoryRepo.RepositoryInterface
	TutorialRepo  tutorialRepo.RepositoryInterface
	CommentRepo   commentRepo.RepositoryInterface
	AnalyticsRepo analyticsRepo.RepositoryInterface

	// Services
	CategoryService  categoryService.ServiceInterface
	TutorialService  tutorialService.ServiceInterface
	CommentService   commentService.ServiceInterface
	AnalyticsService analyticsService.ServiceInterface
	AuthService      authService.ServiceInterface

	// Handlers
	CategoryHandler  *categoryHandler.CategoryHandler
	TutorialHandler  *tutorialHandler.TutorialHandler
	CommentHandler   *commentHandler.CommentHandler
	AnalyticsHandler *analyticsHandler.AnalyticsHandler
	AuthHandler      *authHandler.AuthHandler
	UploadHandler    *uploadHandler.UploadHandler
}

// NewContainer builds the whole graph in dependency order: config, then
// infrastructure, then repositories, services and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// ========================================
	// INFRASTRUCTURE
	// ========================================

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Connected to PostgreSQL", map[string]interface{}{"host": dbConfig.Host})

	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}
	logger.Info("Connected to Redis", map[string]interface{}{"host": cfg.Redis.Host})

	c.Storage, err = storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}

	c.Queue = queue.NewClient(cfg.Redis)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// ========================================
	// REPOSITORIES
	// ========================================

	c.CategoryRepo = categoryRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.TutorialRepo = tutorialRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.CommentRepo = commentRepo.NewPostgresRepository(c.DB.Pool)
	c.AnalyticsRepo = analyticsRepo.NewPostgresRepository(c.DB.Pool)

	// ========================================
	// SERVICES
	// ========================================

	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.TutorialService = tutorialService.NewTutorialService(c.TutorialRepo, c.CategoryRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.TutorialRepo)
	c.AnalyticsService = analyticsService.NewAnalyticsService(
		c.AnalyticsRepo,
		c.TutorialRepo,
		c.Queue,
		cfg.Analytics.DefaultWindowDays,
	)
	c.AuthService = authService.NewAuthService(cfg.Admin, c.JWTManager, cfg.JWT.ExpiryHours)

	// ========================================
	// HANDLERS
	// ========================================

	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.TutorialHandler = tutorialHandler.NewTutorialHandler(c.TutorialService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.AnalyticsHandler = analyticsHandler.NewAnalyticsHandler(c.AnalyticsService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.Storage)

	return c, nil
}

// Cleanup closes everything that holds a connection, in reverse order.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			logger.Error("failed to close queue client", err)
		}
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}
}
