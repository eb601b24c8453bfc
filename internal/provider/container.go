package provider

import (
	"context"
	"time"

	"github.com/fanxi-showcase/internal/authz"
	"github.com/fanxi-showcase/internal/cache"
	"github.com/fanxi-showcase/internal/config"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/models"
	"github.com/fanxi-showcase/internal/queue"
	"github.com/fanxi-showcase/internal/repository"
	"github.com/fanxi-showcase/internal/service"

	"gorm.io/gorm"
)

const (
	defaultBoardTTL   = 5 * time.Minute
	defaultContentTTL = 10 * time.Minute
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	QueueClient *queue.Client

	// Repositories
	AdminRepo           repository.AdminRepository
	ProductRepo         repository.ProductRepository
	CategoryRepo        repository.CategoryRepository
	FeaturedProductRepo repository.FeaturedProductRepository
	BackgroundImageRepo repository.BackgroundImageRepository
	ContentRepo         repository.ContentRepository
	ServiceCheckRepo    repository.ServiceCheckRepository

	// Services
	AuthzService           *authz.Service
	CacheNotifier          *service.CacheNotifier
	AuthService            *service.AuthService
	AdminAccountService    *service.AdminAccountService
	CaptchaService         *service.CaptchaService
	UploadService          *service.UploadService
	CatalogService         *service.CatalogService
	ProductService         *service.ProductService
	CategoryService        *service.CategoryService
	FeaturedSlotService    *service.FeaturedSlotService
	BackgroundImageService *service.BackgroundImageService
	ContentService         *service.ContentService
	MonitorService         *service.MonitorService
}

// NewContainer 初始化容器，数据库需已通过 models.InitDB 打开
func NewContainer(cfg *config.Config) *Container {
	return NewContainerWithDB(cfg, models.DB)
}

// NewContainerWithDB 使用指定数据库初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		DB:          db,
		QueueClient: queueClient,
	}
	c.initRepositories()
	c.initServices()
	return c
}

// Close 释放外部连接
func (c *Container) Close() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}

func (c *Container) initRepositories() {
	db := c.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.FeaturedProductRepo = repository.NewFeaturedProductRepository(db)
	c.BackgroundImageRepo = repository.NewBackgroundImageRepository(db)
	c.ContentRepo = repository.NewContentRepository(db)
	c.ServiceCheckRepo = repository.NewServiceCheckRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(c.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.CacheNotifier = service.NewCacheNotifier(c.QueueClient)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.AdminAccountService = service.NewAdminAccountService(c.AdminRepo, c.AuthService, c.AuthzService)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UploadService = service.NewUploadService(c.Config.Upload)
	c.CatalogService = service.NewCatalogService(c.ProductRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo, c.FeaturedProductRepo, c.CacheNotifier)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.CacheNotifier)
	c.FeaturedSlotService = service.NewFeaturedSlotService(
		c.FeaturedProductRepo,
		c.ProductRepo,
		c.CacheNotifier,
		ttlOrDefault(c.Config.Cache.BoardTTLSeconds, defaultBoardTTL),
	)
	c.BackgroundImageService = service.NewBackgroundImageService(c.BackgroundImageRepo, c.CacheNotifier)
	c.ContentService = service.NewContentService(
		c.ContentRepo,
		c.CacheNotifier,
		ttlOrDefault(c.Config.Cache.ContentTTLSeconds, defaultContentTTL),
	)
	c.MonitorService = service.NewMonitorService(c.Config.Monitor, c.ServiceCheckRepo, func(ctx context.Context) error {
		return models.Ping(c.DB.WithContext(ctx))
	})
}

func ttlOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
