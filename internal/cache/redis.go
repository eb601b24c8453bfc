package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fanxi-showcase/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "fx"
	initPingTimeout  = 3 * time.Second
)

// store 当前生效的 Redis 连接与 key 前缀
type store struct {
	client *redis.Client
	prefix string
}

func (s *store) key(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return s.prefix
	}
	return s.prefix + ":" + key
}

var current atomic.Pointer[store]

// InitRedis 初始化 Redis 客户端；连接失败时保持禁用，展示数据直接读库
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + strconv.Itoa(port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	ctx, cancel := context.WithTimeout(context.Background(), initPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("redis %s:%d unreachable: %w", host, port, err)
	}
	if old := current.Swap(&store{client: client, prefix: prefix}); old != nil {
		_ = old.client.Close()
	}
	return nil
}

// Enabled 判断缓存是否启用
func Enabled() bool {
	return current.Load() != nil
}

// GetJSON 读取 JSON 缓存，未命中返回 false
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	s := current.Load()
	if s == nil {
		return false, nil
	}
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// 结构变更后的旧数据按未命中处理
		_ = s.client.Del(ctx, s.key(key)).Err()
		return false, nil
	}
	return true, nil
}

// SetJSON 写入 JSON 缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s := current.Load()
	if s == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(key), payload, ttl).Err()
}

// Del 删除缓存（支持多个 key）
func Del(ctx context.Context, keys ...string) error {
	s := current.Load()
	if s == nil || len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, key := range keys {
		full = append(full, s.key(key))
	}
	return s.client.Del(ctx, full...).Err()
}

// Ping 检查 Redis 连通性，未启用时返回 false
func Ping(ctx context.Context) (bool, error) {
	s := current.Load()
	if s == nil {
		return false, nil
	}
	return true, s.client.Ping(ctx).Err()
}

// Close 关闭 Redis 客户端
func Close() error {
	s := current.Swap(nil)
	if s == nil {
		return nil
	}
	return s.client.Close()
}
