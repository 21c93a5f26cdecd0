package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/model"
	"admin_scaffold_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupLoginLogSvcTest(t *testing.T) *LoginLogService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.SysLoginLog{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return NewLoginLogService(repository.NewLoginLogRepository(db))
}

// ==================== 单元测试 ====================

func TestLoginLogService_Record(t *testing.T) {
	svc := setupLoginLogSvcTest(t)
	ctx := context.Background()

	// 本机 IP 不触发归属地查询，Record 内的 goroutine 直接退出
	svc.Record(ctx, "alice", "127.0.0.1", model.LoginStatusSuccess, "登录成功")
	svc.Record(ctx, "alice", "127.0.0.1", model.LoginStatusFail, "用户名或密码错误")

	logs, err := svc.ListLogs(ctx, &dto.LoginLogListRequest{Username: "alice"})
	if err != nil {
		t.Fatalf("ListLogs() error = %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("日志条数 = %d, want 2", len(logs))
	}
	for _, l := range logs {
		if l.LoginTime.IsZero() {
			t.Error("LoginTime 不应为零值")
		}
	}
}

func TestLoginLogService_ListFilterByStatus(t *testing.T) {
	svc := setupLoginLogSvcTest(t)
	ctx := context.Background()

	svc.Record(ctx, "alice", "127.0.0.1", model.LoginStatusSuccess, "登录成功")
	svc.Record(ctx, "alice", "127.0.0.1", model.LoginStatusFail, "用户名或密码错误")
	svc.Record(ctx, "bob", "127.0.0.1", model.LoginStatusFail, "用户名或密码错误")

	failed := model.LoginStatusFail
	logs, err := svc.ListLogs(ctx, &dto.LoginLogListRequest{Status: &failed})
	if err != nil {
		t.Fatalf("ListLogs() error = %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("失败日志条数 = %d, want 2", len(logs))
	}
}

func TestLoginLogService_PageLogs(t *testing.T) {
	svc := setupLoginLogSvcTest(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		svc.Record(ctx, "alice", "127.0.0.1", model.LoginStatusSuccess, "登录成功")
	}

	result, err := svc.PageLogs(ctx, &dto.LoginLogPageRequest{
		PageQuery: dto.PageQuery{Page: 2, PageSize: 3},
	})
	if err != nil {
		t.Fatalf("PageLogs() error = %v", err)
	}
	if result.Total != 5 {
		t.Errorf("Total = %d, want 5", result.Total)
	}
	logs := result.List.([]model.SysLoginLog)
	if len(logs) != 2 {
		t.Errorf("第 2 页条数 = %d, want 2", len(logs))
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "标准响应",
			body: `if(window.IPCallBack) {IPCallBack({"ip":"1.2.3.4","pro":"广东省","city":"深圳市","addr":"广东省深圳市 电信","err":""});}`,
			want: "广东省深圳市 电信",
		},
		{
			name: "缺少 addr",
			body: `{"ip":"1.2.3.4","err":"noprovince"}`,
			want: "",
		},
		{
			name: "空响应",
			body: "",
			want: "",
		},
		{
			name: "addr 未闭合",
			body: `{"addr":"广东`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseRegion(tt.body); got != tt.want {
				t.Errorf("parseRegion() = %q, want %q", got, tt.want)
			}
		})
	}
}
