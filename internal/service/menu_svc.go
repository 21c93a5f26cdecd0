package service

import (
	"context"
	"errors"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/model"
	"admin_scaffold_v1_202608/internal/repository"
)

// ==================== MenuService 菜单服务 ====================

// MenuService 菜单（权限节点）服务
// parentId 必须指向已存在的节点，更新时拒绝把节点挂到自己或自己的子孙下面
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService 创建菜单服务
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// CreateMenu 创建菜单
func (s *MenuService) CreateMenu(ctx context.Context, req *dto.CreateMenuRequest) (*model.SysMenu, error) {
	if req.ParentID > 0 {
		parent, err := s.menuRepo.GetByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrMenuParentNotFound
		}
		// 按钮下面不能再挂节点
		if parent.Type == model.MenuTypeButton {
			return nil, ErrMenuParentInvalid
		}
	}

	menu := &model.SysMenu{
		ParentID:  req.ParentID,
		Name:      req.Name,
		Router:    req.Router,
		Perms:     req.Perms,
		Type:      req.Type,
		Icon:      req.Icon,
		OrderNum:  req.OrderNum,
		ViewPath:  req.ViewPath,
		KeepAlive: true,
		IsShow:    true,
	}
	if req.KeepAlive != nil {
		menu.KeepAlive = *req.KeepAlive
	}
	if req.IsShow != nil {
		menu.IsShow = *req.IsShow
	}

	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// UpdateMenu 更新菜单，换父节点时做存在性与环路校验
func (s *MenuService) UpdateMenu(ctx context.Context, req *dto.UpdateMenuRequest) (*model.SysMenu, error) {
	menu, err := s.menuRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}

	values := map[string]interface{}{}

	if req.ParentID != nil && *req.ParentID != menu.ParentID {
		if err := s.checkParent(ctx, req.ID, *req.ParentID); err != nil {
			return nil, err
		}
		values["parent_id"] = *req.ParentID
	}
	if req.Name != "" {
		values["name"] = req.Name
	}
	if req.Router != "" {
		values["router"] = req.Router
	}
	if req.Perms != "" {
		values["perms"] = req.Perms
	}
	if req.Type != nil {
		values["type"] = *req.Type
	}
	if req.Icon != "" {
		values["icon"] = req.Icon
	}
	if req.OrderNum != nil {
		values["order_num"] = *req.OrderNum
	}
	if req.ViewPath != "" {
		values["view_path"] = req.ViewPath
	}
	if req.KeepAlive != nil {
		values["keep_alive"] = *req.KeepAlive
	}
	if req.IsShow != nil {
		values["is_show"] = *req.IsShow
	}

	if len(values) > 0 {
		if err := s.menuRepo.Updates(ctx, req.ID, values); err != nil {
			return nil, err
		}
	}

	return s.menuRepo.GetByID(ctx, req.ID)
}

// DeleteMenus 删除菜单，带子节点的拒绝删除
func (s *MenuService) DeleteMenus(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		count, err := s.menuRepo.CountChildren(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrMenuHasChildren
		}
	}
	return s.menuRepo.Delete(ctx, ids...)
}

// GetMenu 查询单个菜单
func (s *MenuService) GetMenu(ctx context.Context, id int64) (*model.SysMenu, error) {
	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}

// ListMenus 菜单平铺列表
func (s *MenuService) ListMenus(ctx context.Context, req *dto.MenuListRequest) ([]model.SysMenu, error) {
	conds := map[string]interface{}{}
	if req.ParentID != nil {
		conds["parent_id"] = *req.ParentID
	}
	if req.Type != nil {
		conds["type"] = *req.Type
	}
	return s.menuRepo.List(ctx, conds)
}

// PageMenus 菜单分页
func (s *MenuService) PageMenus(ctx context.Context, req *dto.MenuPageRequest) (*dto.PageResult, error) {
	req.Normalize()

	conds := map[string]interface{}{}
	if req.Type != nil {
		conds["type"] = *req.Type
	}

	menus, total, err := s.menuRepo.Page(ctx, conds, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	return &dto.PageResult{
		List:     menus,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// TreeMenus 全量菜单树，按 orderNum 升序
func (s *MenuService) TreeMenus(ctx context.Context) ([]*model.SysMenu, error) {
	menus, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMenuTree(menus), nil
}

// ==================== 树构建 / 校验 ====================

// BuildMenuTree 平铺记录组装成树，父节点缺失的记录挂到顶层兜底
func BuildMenuTree(menus []model.SysMenu) []*model.SysMenu {
	nodes := make(map[int64]*model.SysMenu, len(menus))
	for i := range menus {
		m := menus[i]
		m.Children = nil
		nodes[m.ID] = &m
	}

	var roots []*model.SysMenu
	for i := range menus {
		node := nodes[menus[i].ID]
		if node.ParentID == 0 {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[node.ParentID]
		if !ok {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// checkParent 父节点存在性 + 环路校验
// 从新父节点一路向上走到根，路径上出现自己即成环
func (s *MenuService) checkParent(ctx context.Context, id, parentID int64) error {
	if parentID == 0 {
		return nil
	}
	if parentID == id {
		return ErrMenuCycle
	}

	seen := map[int64]struct{}{id: {}}
	current := parentID
	for current != 0 {
		if _, ok := seen[current]; ok {
			return ErrMenuCycle
		}
		seen[current] = struct{}{}

		node, err := s.menuRepo.GetByID(ctx, current)
		if err != nil {
			return err
		}
		if node == nil {
			return ErrMenuParentNotFound
		}
		if node.Type == model.MenuTypeButton && current == parentID {
			return ErrMenuParentInvalid
		}
		current = node.ParentID
	}
	return nil
}

// ==================== 错误定义 ====================

var (
	ErrMenuNotFound       = errors.New("菜单不存在")
	ErrMenuParentNotFound = errors.New("上级菜单不存在")
	ErrMenuParentInvalid  = errors.New("按钮节点下不能挂载子节点")
	ErrMenuHasChildren    = errors.New("存在子节点，不能删除")
	ErrMenuCycle          = errors.New("不能将菜单挂载到自身或其子节点下")
)
