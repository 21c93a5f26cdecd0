package middleware

import (
	"sync"
	"time"
)

// ==================== LoginLimiter 登录限流器 ====================

// LoginLimiter 登录/验证码接口冷却限流器
// 防止同一来源高频撞库或刷验证码
type LoginLimiter struct {
	locks sync.Map // key -> *lockEntry
}

// lockEntry 锁条目
type lockEntry struct {
	lastTime time.Time
	mu       sync.Mutex
}

// 全局限流器实例
var globalLimiter = &LoginLimiter{}

// GetLoginLimiter 获取全局限流器
func GetLoginLimiter() *LoginLimiter {
	return globalLimiter
}

// ==================== 限流检查 ====================

// CheckResult 检查结果
type CheckResult struct {
	Allowed    bool          // 是否允许
	RetryAfter time.Duration // 剩余冷却时间
}

// Check 检查是否允许执行
// key: 限流键，如 "login:1.2.3.4" 或 "captcha:1.2.3.4"
// interval: 冷却间隔
func (r *LoginLimiter) Check(key string, interval time.Duration) CheckResult {
	actual, _ := r.locks.LoadOrStore(key, &lockEntry{})
	entry := actual.(*lockEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(entry.lastTime)

	if elapsed < interval {
		return CheckResult{
			Allowed:    false,
			RetryAfter: interval - elapsed,
		}
	}

	entry.lastTime = now
	return CheckResult{Allowed: true}
}

// Reset 清除限流键（登录成功后解除冷却）
func (r *LoginLimiter) Reset(key string) {
	r.locks.Delete(key)
}
