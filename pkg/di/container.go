package di

import (
	"fmt"

	"tasklist-api/application/serviceimpl"
	"tasklist-api/domain/ports"
	"tasklist-api/domain/repositories"
	"tasklist-api/domain/services"
	natspkg "tasklist-api/infrastructure/nats"
	"tasklist-api/infrastructure/postgres"
	redispkg "tasklist-api/infrastructure/redis"
	"tasklist-api/infrastructure/storage"
	"tasklist-api/interfaces/api/handlers"
	"tasklist-api/pkg/config"
	"tasklist-api/pkg/logger"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client         // Redis client สำหรับ session cache (optional)
	NATSClient     *natspkg.Client          // NATS connection + JetStream (optional)
	EventPublisher ports.EventPublisherPort // Publish lifecycle events
	SessionCache   ports.SessionCachePort   // Port/Adapter pattern
	Storage        ports.StoragePort        // Avatar storage (S3-compatible)

	// Repositories
	UserRepository    repositories.UserRepository
	AccountRepository repositories.AccountRepository
	SessionRepository repositories.SessionRepository
	ListRepository    repositories.ListRepository
	TaskRepository    repositories.TaskRepository

	// Services
	UserService services.UserService
	ListService services.ListService
	TaskService services.TaskService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	// ถ้า Redis ใช้ไม่ได้ session lookup จะไป DB ตรงๆ
	if c.Config.Redis.Enabled {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (session cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.SessionCache = redispkg.NewSessionCache(redisClient)
			logger.Info("Redis session cache initialized", "url", c.Config.Redis.URL)
		}
	}

	// Initialize NATS Client + JetStream (optional)
	if c.Config.NATS.Enabled {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS client initialization failed (events disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			c.EventPublisher = natspkg.NewEventPublisher(natsClient)
			logger.Info("NATS event publisher initialized", "url", c.Config.NATS.URL)
		}
	}

	// Initialize Storage (Port/Adapter pattern)
	if err := c.initStorage(); err != nil {
		return err
	}

	return nil
}

// initStorage สร้าง S3-compatible storage adapter สำหรับ avatar uploads
func (c *Container) initStorage() error {
	if c.Config.Storage.S3.Endpoint == "" {
		logger.Warn("Avatar storage disabled (S3_ENDPOINT not configured)")
		return nil
	}

	s3Config := storage.S3StorageConfig{
		Endpoint:  c.Config.Storage.S3.Endpoint,
		AccessKey: c.Config.Storage.S3.AccessKey,
		SecretKey: c.Config.Storage.S3.SecretKey,
		Bucket:    c.Config.Storage.S3.Bucket,
		UseSSL:    c.Config.Storage.S3.UseSSL,
		Region:    c.Config.Storage.S3.Region,
		PublicURL: c.Config.Storage.S3.PublicURL,
	}
	s3Storage, err := storage.NewS3Storage(s3Config)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 storage: %w", err)
	}
	c.Storage = s3Storage
	logger.Info("S3 Storage initialized",
		"endpoint", c.Config.Storage.S3.Endpoint,
		"bucket", c.Config.Storage.S3.Bucket,
	)
	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.AccountRepository = postgres.NewAccountRepository(c.DB)
	c.SessionRepository = postgres.NewSessionRepository(c.DB)
	c.ListRepository = postgres.NewListRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(
		c.UserRepository,
		c.AccountRepository,
		c.SessionRepository,
		c.SessionCache,
		c.Storage,
		c.Config.JWT.Secret,
		c.Config.Google.ClientID,
		c.Config.Google.RedirectURL,
	)
	c.ListService = serviceimpl.NewListService(c.ListRepository, c.TaskRepository, c.EventPublisher)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.ListRepository, c.EventPublisher)

	logger.Info("Services initialized",
		"session_cache", c.SessionCache != nil,
		"events", c.EventPublisher != nil,
	)
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Close NATS connection
	if c.NATSClient != nil {
		c.NATSClient.Close()
		logger.Info("NATS connection closed")
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:   c.UserService,
		ListService:   c.ListService,
		TaskService:   c.TaskService,
		GoogleConfig:  c.Config.Google,
		MaxAvatarSize: c.Config.Storage.MaxAvatarSize,
		DB:            c.DB,
		RedisClient:   c.RedisClient,
	}
}
