package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrWindowReply 限流脚本返回格式异常
var ErrWindowReply = errors.New("unexpected rate window reply")

// WindowHit 固定窗口计数结果
type WindowHit struct {
	Count      int64
	RetryAfter time.Duration
}

var windowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateKey 限流计数 key
func RateKey(bucket, subject string) string {
	return "rate:" + bucket + ":" + subject
}

// HitWindow 在固定窗口内累加一次计数，未启用 Redis 时返回 false
func HitWindow(ctx context.Context, key string, window time.Duration) (WindowHit, bool, error) {
	s := current.Load()
	if s == nil {
		return WindowHit{}, false, nil
	}
	seconds := int64(window / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	result, err := windowScript.Run(ctx, s.client, []string{s.key(key)}, seconds).Result()
	if err != nil {
		return WindowHit{}, true, err
	}
	values, ok := result.([]interface{})
	if !ok || len(values) < 2 {
		return WindowHit{}, true, ErrWindowReply
	}
	count, ok := toInt64(values[0])
	if !ok {
		return WindowHit{}, true, ErrWindowReply
	}
	ttl, _ := toInt64(values[1])
	if ttl < 1 {
		ttl = seconds
	}
	return WindowHit{Count: count, RetryAfter: time.Duration(ttl) * time.Second}, true, nil
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
