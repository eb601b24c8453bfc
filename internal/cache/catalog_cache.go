package cache

import (
	"context"
	"time"
)

// 展示数据缓存 key，缓存内容为未本地化的模型数据
const (
	featuredBoardKey = "catalog:featured_board"
	contentKeyPrefix = "content:"
)

// 单例内容类型
const (
	ContentAboutUs    = "about_us"
	ContentFooterInfo = "footer_info"
	ContentTopInfoBar = "top_info"
)

// ContentKinds 全部单例内容类型
var ContentKinds = []string{ContentAboutUs, ContentFooterInfo, ContentTopInfoBar}

// ContentKey 单例内容缓存 key
func ContentKey(kind string) string {
	return contentKeyPrefix + kind
}

// GetFeaturedBoard 读取精选面板缓存
func GetFeaturedBoard(ctx context.Context, dest interface{}) (bool, error) {
	return GetJSON(ctx, featuredBoardKey, dest)
}

// SetFeaturedBoard 写入精选面板缓存
func SetFeaturedBoard(ctx context.Context, value interface{}, ttl time.Duration) error {
	return SetJSON(ctx, featuredBoardKey, value, ttl)
}

// InvalidateFeaturedBoard 清理精选面板缓存
func InvalidateFeaturedBoard(ctx context.Context) error {
	return Del(ctx, featuredBoardKey)
}

// GetContent 读取单例内容缓存
func GetContent(ctx context.Context, kind string, dest interface{}) (bool, error) {
	return GetJSON(ctx, ContentKey(kind), dest)
}

// SetContent 写入单例内容缓存
func SetContent(ctx context.Context, kind string, value interface{}, ttl time.Duration) error {
	return SetJSON(ctx, ContentKey(kind), value, ttl)
}

// InvalidateContent 清理指定内容缓存
func InvalidateContent(ctx context.Context, kind string) error {
	return Del(ctx, ContentKey(kind))
}
