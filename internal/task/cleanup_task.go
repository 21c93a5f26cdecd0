package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"admin_scaffold_v1_202608/internal/model"
	"admin_scaffold_v1_202608/internal/repository"
	"admin_scaffold_v1_202608/pkg/logger"
)

// ==================== CleanupTask 数据清理任务 ====================

// CleanupTask 每天凌晨清理：
//  1. 超期的登录日志（物理删除）
//  2. 软删除超过 30 天的回收站记录（物理删除）
type CleanupTask struct {
	db            *gorm.DB
	logRepo       repository.LoginLogRepository
	logRetainDays int
	cron          *cron.Cron
}

// NewCleanupTask 创建清理任务
func NewCleanupTask(db *gorm.DB, logRepo repository.LoginLogRepository, logRetainDays int) *CleanupTask {
	if logRetainDays <= 0 {
		logRetainDays = 90
	}
	return &CleanupTask{
		db:            db,
		logRepo:       logRepo,
		logRetainDays: logRetainDays,
		cron:          cron.New(cron.WithSeconds()),
	}
}

// Start 启动定时任务，每天 03:00 执行
func (t *CleanupTask) Start() error {
	_, err := t.cron.AddFunc("0 0 3 * * *", func() {
		t.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	t.cron.Start()
	logger.L().Info("数据清理任务已启动", zap.Int("log_retain_days", t.logRetainDays))
	return nil
}

// Stop 停止任务，等待执行中的清理结束
func (t *CleanupTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	logger.L().Info("数据清理任务已停止")
}

// RunOnce 执行一轮清理
func (t *CleanupTask) RunOnce(ctx context.Context) {
	// 登录日志按保留天数物理删除
	before := time.Now().AddDate(0, 0, -t.logRetainDays)
	deleted, err := t.logRepo.DeleteBefore(ctx, before)
	if err != nil {
		logger.L().Warn("清理登录日志失败", zap.Error(err))
	} else if deleted > 0 {
		logger.L().Info("清理登录日志完成", zap.Int64("deleted", deleted))
	}

	// 软删除超过 30 天的记录彻底删除
	purgeBefore := time.Now().AddDate(0, 0, -30)
	for _, m := range []interface{}{&model.SysUser{}, &model.SysRole{}, &model.SysMenu{}} {
		result := t.db.WithContext(ctx).
			Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", purgeBefore).
			Delete(m)
		if result.Error != nil {
			logger.L().Warn("清理回收站记录失败", zap.Error(result.Error))
			continue
		}
		if result.RowsAffected > 0 {
			logger.L().Info("清理回收站记录完成", zap.Int64("deleted", result.RowsAffected))
		}
	}
}
