package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"admin_scaffold_v1_202608/internal/model"
)

// ==================== UserRepository 用户仓库 ====================

// UserRepository 用户仓库接口
type UserRepository interface {
	Create(ctx context.Context, user *model.SysUser) error
	Updates(ctx context.Context, id int64, values interface{}) error
	Delete(ctx context.Context, ids ...int64) error
	Info(ctx context.Context, conds map[string]interface{}) (*model.SysUser, error)
	List(ctx context.Context, conds map[string]interface{}) ([]model.SysUser, error)
	Page(ctx context.Context, conds map[string]interface{}, page, pageSize int) ([]model.SysUser, int64, error)

	GetByID(ctx context.Context, id int64) (*model.SysUser, error)
	GetByUsername(ctx context.Context, username string) (*model.SysUser, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	Search(ctx context.Context, filter UserFilter) ([]model.SysUser, int64, error)
}

// UserFilter 用户筛选条件
type UserFilter struct {
	Keyword  string
	Status   *int
	Page     int
	PageSize int
}

// ==================== 实现 ====================

type userRepository struct {
	*BaseRepository[model.SysUser]
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[model.SysUser](db)}
}

// GetByID 根据 ID 获取用户
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名获取用户
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername 检查用户名是否存在
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SysUser{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

// UpdatePassword 更新密码哈希
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	return r.db.WithContext(ctx).
		Model(&model.SysUser{}).
		Where("id = ?", id).
		Update("password", hashedPassword).Error
}

// Search 带关键词的分页查询
func (r *userRepository) Search(ctx context.Context, filter UserFilter) ([]model.SysUser, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.SysUser{})

	// 关键词搜索
	if filter.Keyword != "" {
		keyword := "%" + filter.Keyword + "%"
		query = query.Where("username LIKE ? OR real_name LIKE ? OR nick_name LIKE ?", keyword, keyword, keyword)
	}

	// 状态筛选
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	var users []model.SysUser
	err := query.
		Order("id DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&users).Error

	return users, total, err
}
