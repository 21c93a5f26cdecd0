package repository

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"admin_scaffold_v1_202608/internal/model"
)

// ==================== 测试辅助 ====================

func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.SysUser{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// ==================== 单元测试 ====================

func TestUserRepo_ExistsByUsername(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))
	ctx := context.Background()

	err := repo.Create(ctx, &model.SysUser{Username: "alice", Password: "x"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err := repo.ExistsByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("ExistsByUsername() error = %v", err)
	}
	if !exists {
		t.Error("alice 应该存在")
	}

	exists, err = repo.ExistsByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("ExistsByUsername() error = %v", err)
	}
	if exists {
		t.Error("bob 不应该存在")
	}
}

func TestUserRepo_GetByUsernameNotFound(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))
	ctx := context.Background()

	user, err := repo.GetByUsername(ctx, "ghost")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if user != nil {
		t.Errorf("未找到时应返回 nil, got %+v", user)
	}
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))
	ctx := context.Background()

	user := &model.SysUser{Username: "alice", Password: "old-hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.UpdatePassword(ctx, user.ID, "new-hash"); err != nil {
		t.Fatalf("UpdatePassword() error = %v", err)
	}

	got, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Password != "new-hash" {
		t.Errorf("Password = %q, want new-hash", got.Password)
	}
}

func TestUserRepo_SearchKeywordAndPage(t *testing.T) {
	repo := NewUserRepository(setupUserTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		user := &model.SysUser{
			Username: fmt.Sprintf("user%02d", i),
			Password: "x",
			RealName: "张三",
			Status:   model.UserStatusActive,
		}
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	// 一个不匹配关键词的用户
	if err := repo.Create(ctx, &model.SysUser{Username: "admin", Password: "x", RealName: "管理员"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	users, total, err := repo.Search(ctx, UserFilter{Keyword: "user", Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if total != 12 {
		t.Errorf("total = %d, want 12", total)
	}
	if len(users) != 2 {
		t.Errorf("第 2 页应剩 2 条, got %d", len(users))
	}
}
