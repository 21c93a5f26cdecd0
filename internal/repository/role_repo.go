package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"admin_scaffold_v1_202608/internal/model"
)

// ==================== RoleRepository 角色仓库 ====================

// RoleRepository 角色仓库接口
type RoleRepository interface {
	Create(ctx context.Context, role *model.SysRole) error
	Updates(ctx context.Context, id int64, values interface{}) error
	Delete(ctx context.Context, ids ...int64) error
	Info(ctx context.Context, conds map[string]interface{}) (*model.SysRole, error)
	List(ctx context.Context, conds map[string]interface{}) ([]model.SysRole, error)
	Page(ctx context.Context, conds map[string]interface{}, page, pageSize int) ([]model.SysRole, int64, error)

	GetByID(ctx context.Context, id int64) (*model.SysRole, error)
	GetWithMenus(ctx context.Context, id int64) (*model.SysRole, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ReplaceMenus(ctx context.Context, role *model.SysRole, menus []model.SysMenu) error
	ClearMenus(ctx context.Context, role *model.SysRole) error
}

// ==================== 实现 ====================

type roleRepository struct {
	*BaseRepository[model.SysRole]
}

// NewRoleRepository 创建角色仓库
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{BaseRepository: NewBaseRepository[model.SysRole](db)}
}

// GetByID 根据 ID 获取角色
func (r *roleRepository) GetByID(ctx context.Context, id int64) (*model.SysRole, error) {
	var role model.SysRole
	err := r.db.WithContext(ctx).First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetWithMenus 获取角色并预载授权菜单
func (r *roleRepository) GetWithMenus(ctx context.Context, id int64) (*model.SysRole, error) {
	var role model.SysRole
	err := r.db.WithContext(ctx).Preload("Menus").First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// ExistsByName 检查角色名是否存在
func (r *roleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SysRole{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// ReplaceMenus 整体替换角色的授权菜单集合
func (r *roleRepository) ReplaceMenus(ctx context.Context, role *model.SysRole, menus []model.SysMenu) error {
	return r.db.WithContext(ctx).Model(role).Association("Menus").Replace(menus)
}

// ClearMenus 清空角色的授权菜单（删除角色前调用）
func (r *roleRepository) ClearMenus(ctx context.Context, role *model.SysRole) error {
	return r.db.WithContext(ctx).Model(role).Association("Menus").Clear()
}
