package cache

import (
	"testing"
	"time"
)

// ==================== 单元测试 ====================

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	if err := store.Set("k1", "1234"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if got := store.Get("k1", false); got != "1234" {
		t.Errorf("Get() = %q, want 1234", got)
	}
	// clear=false 不消费
	if got := store.Get("k1", false); got != "1234" {
		t.Errorf("二次 Get() = %q, want 1234", got)
	}
}

func TestMemoryStore_GetClear(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	_ = store.Set("k1", "1234")

	if got := store.Get("k1", true); got != "1234" {
		t.Fatalf("Get(clear) = %q, want 1234", got)
	}
	if got := store.Get("k1", false); got != "" {
		t.Errorf("清除后 Get() = %q, want 空", got)
	}
}

func TestMemoryStore_Verify(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	_ = store.Set("k1", "1234")

	if store.Verify("k1", "9999", false) {
		t.Error("错误答案不应通过")
	}
	if !store.Verify("k1", "1234", true) {
		t.Error("正确答案应通过")
	}
	// 已消费
	if store.Verify("k1", "1234", true) {
		t.Error("消费后不应再通过")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Nanosecond)
	_ = store.Set("k1", "1234")

	// 过期判断按 Unix 秒，跨过一秒后必然过期
	time.Sleep(1100 * time.Millisecond)
	if got := store.Get("k1", false); got != "" {
		t.Errorf("过期后 Get() = %q, want 空", got)
	}
}

func TestMemoryStore_MissingKey(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	if got := store.Get("absent", true); got != "" {
		t.Errorf("Get(不存在) = %q, want 空", got)
	}
	if store.Verify("absent", "", true) {
		t.Error("空值不应通过校验")
	}
}
