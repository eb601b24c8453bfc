package router

import (
	"sort"
	"strings"

	"github.com/fanxi-showcase/internal/authz"
	"github.com/fanxi-showcase/internal/config"
	adminhandlers "github.com/fanxi-showcase/internal/http/handlers/admin"
	publichandlers "github.com/fanxi-showcase/internal/http/handlers/public"
	"github.com/fanxi-showcase/internal/http/response"
	"github.com/fanxi-showcase/internal/logger"
	"github.com/fanxi-showcase/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	adminLoginRule := NewRateLimitRule(rateBucketAdminLogin, cfg.Security.LoginRateLimit, "error.login_too_many")
	captchaRule := NewRateLimitRule(rateBucketCaptchaImage, cfg.Security.CaptchaRateLimit, "")

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 上传图片静态访问
	if c.UploadService != nil {
		r.Static(c.UploadService.URLPrefix(), c.UploadService.Dir())
	}

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/categories/:id", publicHandler.GetCategory)
			public.GET("/featured-products", publicHandler.GetFeaturedProducts)
			public.GET("/background-images", publicHandler.GetBackgroundImages)
			public.GET("/background-images/:id", publicHandler.GetBackgroundImage)
			public.GET("/about-us", publicHandler.GetAboutUs)
			public.GET("/footer-info", publicHandler.GetFooterInfo)
			public.GET("/top-info", publicHandler.GetTopInfo)
			public.GET("/captcha/config", publicHandler.GetCaptchaConfig)
			public.GET("/captcha/image", RateLimitMiddleware(captchaRule, KeyByIP), publicHandler.GetImageCaptcha)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(adminLoginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)

			// 仅需登录：本人信息与账号（权限在服务层校验）
			self := admin.Group("")
			self.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				self.GET("/me", adminHandler.GetMe)
				self.POST("/logout", adminHandler.AdminLogout)
				self.PUT("/password", adminHandler.UpdateAdminPassword)
				self.GET("/authz/me", adminHandler.GetAuthzMe)

				self.GET("/admins", adminHandler.GetAdmins)
				self.POST("/admins", adminHandler.CreateAdmin)
				self.GET("/admins/:id", adminHandler.GetAdmin)
				self.PUT("/admins/:id", adminHandler.UpdateAdmin)
				self.DELETE("/admins/:id", adminHandler.DeleteAdmin)
			}

			// 需要 RBAC 的接口
			authorized := admin.Group("")
			authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				// 产品管理
				authorized.GET("/products", adminHandler.GetAdminProducts)
				authorized.GET("/products/:id", adminHandler.GetAdminProduct)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.PATCH("/products/:id/active", adminHandler.ToggleProductActive)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				// 分类管理
				authorized.GET("/categories", adminHandler.GetAdminCategories)
				authorized.GET("/categories/:id", adminHandler.GetAdminCategory)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				// 精选位
				authorized.GET("/featured-products", adminHandler.GetAdminFeaturedSlots)
				authorized.GET("/featured-products/positions", adminHandler.GetFeaturedPositions)
				authorized.GET("/featured-products/:id", adminHandler.GetAdminFeaturedSlot)
				authorized.POST("/featured-products", adminHandler.CreateFeaturedSlot)
				authorized.PUT("/featured-products/:id", adminHandler.UpdateFeaturedSlot)
				authorized.DELETE("/featured-products/:id", adminHandler.DeleteFeaturedSlot)

				// 背景图
				authorized.GET("/background-images", adminHandler.GetAdminBackgroundImages)
				authorized.GET("/background-images/:id", adminHandler.GetAdminBackgroundImage)
				authorized.POST("/background-images", adminHandler.CreateBackgroundImage)
				authorized.PUT("/background-images/:id", adminHandler.UpdateBackgroundImage)
				authorized.DELETE("/background-images/:id", adminHandler.DeleteBackgroundImage)

				// 单例内容
				authorized.GET("/about-us", adminHandler.GetAdminAboutUs)
				authorized.POST("/about-us", adminHandler.CreateAboutUs)
				authorized.PUT("/about-us", adminHandler.UpdateAboutUs)
				authorized.GET("/footer-info", adminHandler.GetAdminFooterInfo)
				authorized.PUT("/footer-info", adminHandler.UpdateFooterInfo)
				authorized.GET("/top-info", adminHandler.GetAdminTopInfo)
				authorized.POST("/top-info", adminHandler.CreateTopInfo)
				authorized.PUT("/top-info", adminHandler.UpdateTopInfo)

				// 文件上传
				authorized.POST("/upload", adminHandler.UploadFile)

				// 权限管理
				authorized.GET("/authz/roles", adminHandler.ListAuthzRoles)
				authorized.PUT("/authz/admins/:id/roles", adminHandler.SetAdminRoles)
				authorized.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
					response.Success(ctx, buildAdminPermissionCatalog(r))
				})

				// 服务巡检
				authorized.GET("/monitor/report", adminHandler.GetMonitorReport)
			}
		}
	}

	// 健康检查
	r.GET("/health", publicHandler.Health)

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		if item.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	if segments[1] == "authz" {
		return "authz"
	}
	return segments[1]
}
