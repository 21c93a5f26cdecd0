package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ==================== BaseRepository 通用仓库 ====================

// 三张系统表的增删改查完全同构，抽成泛型基座，
// 各实体仓库内嵌后只需补充自己的特有查询。

// BaseRepository 通用数据访问基座
type BaseRepository[T any] struct {
	db *gorm.DB
}

// NewBaseRepository 创建通用仓库
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db}
}

// DB 暴露底层连接，供特有查询使用
func (r *BaseRepository[T]) DB() *gorm.DB {
	return r.db
}

// Create 插入记录，回填自增 ID
func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Updates 按 ID 做部分更新，values 为 map 或结构体（零值字段跳过）
func (r *BaseRepository[T]) Updates(ctx context.Context, id int64, values interface{}) error {
	var entity T
	return r.db.WithContext(ctx).
		Model(&entity).
		Where("id = ?", id).
		Updates(values).Error
}

// Delete 删除一条或多条记录（软删除）
func (r *BaseRepository[T]) Delete(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	var entity T
	return r.db.WithContext(ctx).Delete(&entity, ids).Error
}

// Info 按条件取第一条，未找到返回 nil
func (r *BaseRepository[T]) Info(ctx context.Context, conds map[string]interface{}) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(conds).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// List 按条件取全部
func (r *BaseRepository[T]) List(ctx context.Context, conds map[string]interface{}) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Where(conds).Order("id DESC").Find(&entities).Error
	return entities, err
}

// Page 分页查询，返回记录 + 未分页总数
func (r *BaseRepository[T]) Page(ctx context.Context, conds map[string]interface{}, page, pageSize int) ([]T, int64, error) {
	var entity T
	query := r.db.WithContext(ctx).Model(&entity).Where(conds)

	// 统计总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var entities []T
	err := query.
		Order("id DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&entities).Error

	return entities, total, err
}
