package service

import (
	"context"
	"errors"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/model"
	"admin_scaffold_v1_202608/internal/repository"
)

// ==================== RoleService 角色服务 ====================

// RoleService 角色服务
type RoleService struct {
	roleRepo repository.RoleRepository
	menuRepo repository.MenuRepository
}

// NewRoleService 创建角色服务
func NewRoleService(roleRepo repository.RoleRepository, menuRepo repository.MenuRepository) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		menuRepo: menuRepo,
	}
}

// CreateRole 创建角色，可同时携带授权菜单
func (s *RoleService) CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleInfo, error) {
	exists, err := s.roleRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrRoleExists
	}

	menus, err := s.resolveMenus(ctx, req.MenuIDs)
	if err != nil {
		return nil, err
	}

	role := &model.SysRole{
		Name:   req.Name,
		Label:  req.Label,
		Remark: req.Remark,
		Menus:  menus,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return s.toRoleInfo(role), nil
}

// UpdateRole 更新角色；menuIds 非 nil 时整体替换授权集合
func (s *RoleService) UpdateRole(ctx context.Context, req *dto.UpdateRoleRequest) (*dto.RoleInfo, error) {
	role, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	values := map[string]interface{}{}
	if req.Name != "" && req.Name != role.Name {
		exists, err := s.roleRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrRoleExists
		}
		values["name"] = req.Name
	}
	if req.Label != "" {
		values["label"] = req.Label
	}
	if req.Remark != "" {
		values["remark"] = req.Remark
	}

	if len(values) > 0 {
		if err := s.roleRepo.Updates(ctx, req.ID, values); err != nil {
			return nil, err
		}
	}

	if req.MenuIDs != nil {
		menus, err := s.resolveMenus(ctx, req.MenuIDs)
		if err != nil {
			return nil, err
		}
		if err := s.roleRepo.ReplaceMenus(ctx, role, menus); err != nil {
			return nil, err
		}
	}

	updated, err := s.roleRepo.GetWithMenus(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return s.toRoleInfo(updated), nil
}

// DeleteRoles 删除角色，先清空授权关联
func (s *RoleService) DeleteRoles(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		role, err := s.roleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if role == nil {
			continue
		}
		if err := s.roleRepo.ClearMenus(ctx, role); err != nil {
			return err
		}
	}
	return s.roleRepo.Delete(ctx, ids...)
}

// GetRole 查询单个角色（含授权菜单）
func (s *RoleService) GetRole(ctx context.Context, id int64) (*dto.RoleInfo, error) {
	role, err := s.roleRepo.GetWithMenus(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return s.toRoleInfo(role), nil
}

// ListRoles 角色列表
func (s *RoleService) ListRoles(ctx context.Context, req *dto.RoleListRequest) ([]model.SysRole, error) {
	conds := map[string]interface{}{}
	if req.Name != "" {
		conds["name"] = req.Name
	}
	return s.roleRepo.List(ctx, conds)
}

// PageRoles 角色分页
func (s *RoleService) PageRoles(ctx context.Context, req *dto.RolePageRequest) (*dto.PageResult, error) {
	req.Normalize()

	conds := map[string]interface{}{}
	if req.Name != "" {
		conds["name"] = req.Name
	}

	roles, total, err := s.roleRepo.Page(ctx, conds, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	return &dto.PageResult{
		List:     roles,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// ==================== 辅助方法 ====================

// resolveMenus 校验授权菜单 ID 全部存在
func (s *RoleService) resolveMenus(ctx context.Context, menuIDs []int64) ([]model.SysMenu, error) {
	if len(menuIDs) == 0 {
		return nil, nil
	}
	menus, err := s.menuRepo.GetByIDs(ctx, menuIDs)
	if err != nil {
		return nil, err
	}
	if len(menus) != len(menuIDs) {
		return nil, ErrMenuNotFound
	}
	return menus, nil
}

func (s *RoleService) toRoleInfo(role *model.SysRole) *dto.RoleInfo {
	menuIDs := make([]int64, len(role.Menus))
	for i, m := range role.Menus {
		menuIDs[i] = m.ID
	}
	return &dto.RoleInfo{
		ID:        role.ID,
		Name:      role.Name,
		Label:     role.Label,
		Remark:    role.Remark,
		MenuIDs:   menuIDs,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}
}

// ==================== 错误定义 ====================

var (
	ErrRoleExists   = errors.New("角色已存在")
	ErrRoleNotFound = errors.New("角色不存在")
)
