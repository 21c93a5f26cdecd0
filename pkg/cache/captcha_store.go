package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"admin_scaffold_v1_202608/pkg/logger"
)

// ==================== 验证码存储 ====================

// Store 验证码值的短时存储，key 由客户端或服务端生成。
// 与 base64Captcha.Store 签名一致，可直接挂进验证码驱动。
type Store interface {
	Set(id string, value string) error
	Get(id string, clear bool) string
	Verify(id, answer string, clear bool) bool
}

// ==================== Redis 实现 ====================

const captchaKeyPrefix = "captcha:"

// RedisStore Redis 验证码存储，靠 TTL 自动过期
type RedisStore struct {
	client  *redis.Client
	expires time.Duration
}

// NewRedisStore 创建 Redis 验证码存储
func NewRedisStore(client *redis.Client, expires time.Duration) *RedisStore {
	if expires <= 0 {
		expires = 5 * time.Minute
	}
	return &RedisStore{client: client, expires: expires}
}

// Set 写入验证码值
func (s *RedisStore) Set(id string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return s.client.Set(ctx, captchaKeyPrefix+id, value, s.expires).Err()
}

// Get 读取验证码值，clear 为真时用完即焚
func (s *RedisStore) Get(id string, clear bool) string {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	key := captchaKeyPrefix + id
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.L().Warn("读取验证码缓存失败", zap.Error(err))
		}
		return ""
	}
	if clear {
		s.client.Del(ctx, key)
	}
	return val
}

// Verify 校验验证码
func (s *RedisStore) Verify(id, answer string, clear bool) bool {
	v := s.Get(id, clear)
	return v != "" && v == answer
}

// ==================== 内存实现 ====================

// MemoryStore sync.Map 验证码存储，未配置 Redis 时的进程内兜底
type MemoryStore struct {
	items   sync.Map
	expires time.Duration
}

// memoryItem 内部结构，包含值和过期时间
type memoryItem struct {
	value      string
	expiration int64
}

// NewMemoryStore 创建内存验证码存储
func NewMemoryStore(expires time.Duration) *MemoryStore {
	if expires <= 0 {
		expires = 5 * time.Minute
	}
	return &MemoryStore{expires: expires}
}

// Set 写入验证码值
func (s *MemoryStore) Set(id string, value string) error {
	s.items.Store(id, memoryItem{
		value:      value,
		expiration: time.Now().Add(s.expires).Unix(),
	})
	return nil
}

// Get 读取验证码值并检查过期，clear 为真时用完即焚
func (s *MemoryStore) Get(id string, clear bool) string {
	val, ok := s.items.Load(id)
	if !ok {
		return ""
	}

	item := val.(memoryItem)

	// 懒删除
	if time.Now().Unix() > item.expiration {
		s.items.Delete(id)
		return ""
	}

	if clear {
		s.items.Delete(id)
	}
	return item.value
}

// Verify 校验验证码
func (s *MemoryStore) Verify(id, answer string, clear bool) bool {
	v := s.Get(id, clear)
	return v != "" && v == answer
}
