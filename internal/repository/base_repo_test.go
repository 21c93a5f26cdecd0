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

func setupBaseTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.SysMenu{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

func mustCreateMenus(t *testing.T, repo *BaseRepository[model.SysMenu], n int) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= n; i++ {
		menu := &model.SysMenu{
			Name:     fmt.Sprintf("菜单%02d", i),
			Router:   fmt.Sprintf("/m/%d", i),
			OrderNum: i,
		}
		if err := repo.Create(ctx, menu); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
}

// ==================== 单元测试 ====================

func TestBaseRepository_CreateAssignsID(t *testing.T) {
	repo := NewBaseRepository[model.SysMenu](setupBaseTestDB(t))
	ctx := context.Background()

	menu := &model.SysMenu{Name: "系统管理", Type: model.MenuTypeDir}
	if err := repo.Create(ctx, menu); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if menu.ID == 0 {
		t.Error("ID 应该被自动分配")
	}
}

func TestBaseRepository_InfoNotFoundReturnsNil(t *testing.T) {
	repo := NewBaseRepository[model.SysMenu](setupBaseTestDB(t))
	ctx := context.Background()

	got, err := repo.Info(ctx, map[string]interface{}{"id": 999})
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if got != nil {
		t.Errorf("未找到时应返回 nil，got %+v", got)
	}
}

func TestBaseRepository_Updates(t *testing.T) {
	repo := NewBaseRepository[model.SysMenu](setupBaseTestDB(t))
	ctx := context.Background()

	menu := &model.SysMenu{Name: "用户管理", Router: "/sys/user"}
	if err := repo.Create(ctx, menu); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := repo.Updates(ctx, menu.ID, map[string]interface{}{"name": "账号管理"})
	if err != nil {
		t.Fatalf("Updates() error = %v", err)
	}

	got, err := repo.Info(ctx, map[string]interface{}{"id": menu.ID})
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if got.Name != "账号管理" {
		t.Errorf("Name = %q, want 账号管理", got.Name)
	}
	// 未指定的字段不应被动
	if got.Router != "/sys/user" {
		t.Errorf("Router = %q, 部分更新不应清掉其他字段", got.Router)
	}
}

func TestBaseRepository_DeleteMany(t *testing.T) {
	repo := NewBaseRepository[model.SysMenu](setupBaseTestDB(t))
	ctx := context.Background()

	mustCreateMenus(t, repo, 3)

	if err := repo.Delete(ctx, 1, 2); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	rest, err := repo.List(ctx, map[string]interface{}{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("剩余记录数 = %d, want 1", len(rest))
	}

	// 空 ID 列表应当是 no-op
	if err := repo.Delete(ctx); err != nil {
		t.Errorf("Delete() 空参数应无副作用, error = %v", err)
	}
}

func TestBaseRepository_Page(t *testing.T) {
	repo := NewBaseRepository[model.SysMenu](setupBaseTestDB(t))
	ctx := context.Background()

	mustCreateMenus(t, repo, 25)

	// 第 2 页每页 10 条：返回 10 条，total 为全量 25
	records, total, err := repo.Page(ctx, map[string]interface{}{}, 2, 10)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if len(records) != 10 {
		t.Errorf("len(records) = %d, want 10", len(records))
	}
	if total != 25 {
		t.Errorf("total = %d, want 25", total)
	}

	// 最后一页只剩 5 条
	records, total, err = repo.Page(ctx, map[string]interface{}{}, 3, 10)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if len(records) != 5 {
		t.Errorf("len(records) = %d, want 5", len(records))
	}
	if total != 25 {
		t.Errorf("total = %d, want 25", total)
	}
}

func TestBaseRepository_PageDefaults(t *testing.T) {
	repo := NewBaseRepository[model.SysMenu](setupBaseTestDB(t))
	ctx := context.Background()

	mustCreateMenus(t, repo, 3)

	// page/pageSize 不合法时回退默认值，不应报错
	records, total, err := repo.Page(ctx, map[string]interface{}{}, 0, -1)
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}
	if len(records) != 3 || total != 3 {
		t.Errorf("records=%d total=%d, want 3/3", len(records), total)
	}
}
