package constants

// 精选位常量
const (
	FeaturedSlotMinPosition = 1
	FeaturedSlotMaxPosition = 6
	FeaturedSlotCount       = FeaturedSlotMaxPosition - FeaturedSlotMinPosition + 1
)

// 内容语言常量
const (
	LangZH = "zh"
	LangEN = "en"
)

// 商品排序字段
const (
	ProductSortID         = "id"
	ProductSortPrice      = "price"
	ProductSortSalesCount = "sales_count"
	ProductSortCreatedAt  = "created_at"
)

// 排序方向
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// 分页限制
const (
	CatalogDefaultPageSize = 10
	CatalogMaxPageSize     = 100
	AdminDefaultPageSize   = 20
)

// 队列名称
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型
const (
	TaskCatalogCacheWarm = "catalog:cache_warm"
	TaskUploadCleanup    = "upload:cleanup"
)

// 缓存预热范围
const (
	CacheScopeBoard   = "board"
	CacheScopeContent = "content"
)

// 管理端内置角色
const (
	RoleEditor = "editor"
)

// 验证码
const (
	CaptchaSceneAdminLogin = "admin_login"
	CaptchaProviderNone    = "none"
	CaptchaProviderImage   = "image"
)

// 服务巡检状态
const (
	ServiceStatusUp       = "UP"
	ServiceStatusDown     = "DOWN"
	ServiceStatusDegraded = "DEGRADED"
	ServiceStatusError    = "ERROR"
)

// 服务巡检对象
const (
	ServiceCheckAPI      = "api_health"
	ServiceCheckDatabase = "database"
	ServiceCheckRedis    = "redis"
)

// 上传场景
const (
	UploadSceneProduct    = "product"
	UploadSceneCategory   = "category"
	UploadSceneBackground = "background"
	UploadSceneContent    = "content"
	UploadSceneCommon     = "common"
)
