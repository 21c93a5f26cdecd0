package dto

// ==================== 菜单 / 权限节点管理 ====================

// CreateMenuRequest 新增菜单
type CreateMenuRequest struct {
	ParentID  int64  `json:"parentId" binding:"omitempty,min=0"`
	Name      string `json:"name" binding:"required,min=2,max=50"`
	Router    string `json:"router" binding:"omitempty,max=100"`
	Perms     string `json:"perms" binding:"omitempty,max=255"`
	Type      int    `json:"type" binding:"oneof=0 1 2"`
	Icon      string `json:"icon" binding:"omitempty,max=50"`
	OrderNum  int    `json:"orderNum" binding:"omitempty,min=0"`
	ViewPath  string `json:"viewPath" binding:"omitempty,max=255"`
	KeepAlive *bool  `json:"keepalive"`
	IsShow    *bool  `json:"isShow"`
}

// UpdateMenuRequest 更新菜单；parentId 可为 0（移到顶级）
type UpdateMenuRequest struct {
	ID        int64  `json:"id" binding:"required,min=1"`
	ParentID  *int64 `json:"parentId" binding:"omitempty,min=0"`
	Name      string `json:"name" binding:"omitempty,min=2,max=50"`
	Router    string `json:"router" binding:"omitempty,max=100"`
	Perms     string `json:"perms" binding:"omitempty,max=255"`
	Type      *int   `json:"type" binding:"omitempty,oneof=0 1 2"`
	Icon      string `json:"icon" binding:"omitempty,max=50"`
	OrderNum  *int   `json:"orderNum" binding:"omitempty,min=0"`
	ViewPath  string `json:"viewPath" binding:"omitempty,max=255"`
	KeepAlive *bool  `json:"keepalive"`
	IsShow    *bool  `json:"isShow"`
}

// MenuListRequest 菜单列表筛选
type MenuListRequest struct {
	ParentID *int64 `json:"parentId" binding:"omitempty,min=0"`
	Type     *int   `json:"type" binding:"omitempty,oneof=0 1 2"`
}

// MenuPageRequest 菜单分页
type MenuPageRequest struct {
	PageQuery
	Type *int `json:"type" binding:"omitempty,oneof=0 1 2"`
}
