package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"admin_scaffold_v1_202608/internal/model"
)

// ==================== MenuRepository 菜单仓库 ====================

// MenuRepository 菜单（权限节点）仓库接口
type MenuRepository interface {
	Create(ctx context.Context, menu *model.SysMenu) error
	Updates(ctx context.Context, id int64, values interface{}) error
	Delete(ctx context.Context, ids ...int64) error
	Info(ctx context.Context, conds map[string]interface{}) (*model.SysMenu, error)
	List(ctx context.Context, conds map[string]interface{}) ([]model.SysMenu, error)
	Page(ctx context.Context, conds map[string]interface{}, page, pageSize int) ([]model.SysMenu, int64, error)

	GetByID(ctx context.Context, id int64) (*model.SysMenu, error)
	GetByIDs(ctx context.Context, ids []int64) ([]model.SysMenu, error)
	ListAll(ctx context.Context) ([]model.SysMenu, error)
	CountChildren(ctx context.Context, parentID int64) (int64, error)
}

// ==================== 实现 ====================

type menuRepository struct {
	*BaseRepository[model.SysMenu]
}

// NewMenuRepository 创建菜单仓库
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{BaseRepository: NewBaseRepository[model.SysMenu](db)}
}

// GetByID 根据 ID 获取菜单
func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.SysMenu, error) {
	var menu model.SysMenu
	err := r.db.WithContext(ctx).First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// GetByIDs 批量获取菜单
func (r *menuRepository) GetByIDs(ctx context.Context, ids []int64) ([]model.SysMenu, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var menus []model.SysMenu
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&menus).Error
	return menus, err
}

// ListAll 取全部菜单，按排序号升序用于建树
func (r *menuRepository) ListAll(ctx context.Context) ([]model.SysMenu, error) {
	var menus []model.SysMenu
	err := r.db.WithContext(ctx).Order("order_num ASC, id ASC").Find(&menus).Error
	return menus, err
}

// CountChildren 统计直接子节点数量
func (r *menuRepository) CountChildren(ctx context.Context, parentID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SysMenu{}).
		Where("parent_id = ?", parentID).
		Count(&count).Error
	return count, err
}
