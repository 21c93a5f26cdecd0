package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"admin_scaffold_v1_202608/internal/model"
)

// ==================== LoginLogRepository 登录日志仓库 ====================

// LoginLogRepository 登录日志仓库接口
type LoginLogRepository interface {
	Create(ctx context.Context, log *model.SysLoginLog) error
	List(ctx context.Context, conds map[string]interface{}) ([]model.SysLoginLog, error)
	Page(ctx context.Context, conds map[string]interface{}, page, pageSize int) ([]model.SysLoginLog, int64, error)

	UpdateRegion(ctx context.Context, id int64, region string) error
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

// ==================== 实现 ====================

type loginLogRepository struct {
	*BaseRepository[model.SysLoginLog]
}

// NewLoginLogRepository 创建登录日志仓库
func NewLoginLogRepository(db *gorm.DB) LoginLogRepository {
	return &loginLogRepository{BaseRepository: NewBaseRepository[model.SysLoginLog](db)}
}

// UpdateRegion 回填 IP 归属地（异步解析完成后调用）
func (r *loginLogRepository) UpdateRegion(ctx context.Context, id int64, region string) error {
	return r.db.WithContext(ctx).
		Model(&model.SysLoginLog{}).
		Where("id = ?", id).
		Update("region", region).Error
}

// DeleteBefore 物理删除指定时间之前的日志，返回删除条数
func (r *loginLogRepository) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("login_time < ?", before).
		Delete(&model.SysLoginLog{})
	return result.RowsAffected, result.Error
}
