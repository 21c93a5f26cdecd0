package dto

import "time"

// ==================== 角色管理 ====================

// CreateRoleRequest 新增角色
type CreateRoleRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=50"`
	Label   string  `json:"label" binding:"omitempty,max=50"`
	Remark  string  `json:"remark" binding:"omitempty,max=255"`
	MenuIDs []int64 `json:"menuIds" binding:"omitempty,dive,min=1"`
}

// UpdateRoleRequest 更新角色；menuIds 非 nil 时整体替换授权集合
type UpdateRoleRequest struct {
	ID      int64   `json:"id" binding:"required,min=1"`
	Name    string  `json:"name" binding:"omitempty,min=2,max=50"`
	Label   string  `json:"label" binding:"omitempty,max=50"`
	Remark  string  `json:"remark" binding:"omitempty,max=255"`
	MenuIDs []int64 `json:"menuIds" binding:"omitempty,dive,min=1"`
}

// RoleListRequest 角色列表筛选
type RoleListRequest struct {
	Name string `json:"name" binding:"omitempty,max=50"`
}

// RolePageRequest 角色分页
type RolePageRequest struct {
	PageQuery
	Name string `json:"name" binding:"omitempty,max=50"`
}

// RoleInfo 角色信息
type RoleInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Remark    string    `json:"remark"`
	MenuIDs   []int64   `json:"menuIds"`
	CreatedAt time.Time `json:"createTime"`
	UpdatedAt time.Time `json:"updateTime"`
}
