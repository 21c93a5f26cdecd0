package controller

import (
	"github.com/gin-gonic/gin"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/service"
	"admin_scaffold_v1_202608/pkg/resp"
)

// ==================== RoleController 角色管理控制器 ====================

// RoleController 角色管理
type RoleController struct {
	roleService *service.RoleService
}

// NewRoleController 创建角色控制器
func NewRoleController(roleService *service.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// Add 新增角色
// @Summary 新增角色
// @Tags Role
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoleRequest true "角色信息"
// @Success 200 {object} resp.Body{data=dto.RoleInfo}
// @Router /role/add [post]
func (c *RoleController) Add(ctx *gin.Context) {
	var req dto.CreateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	role, err := c.roleService.CreateRole(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, role, "创建成功")
}

// Update 更新角色
// @Summary 更新角色
// @Tags Role
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateRoleRequest true "角色信息"
// @Success 200 {object} resp.Body{data=dto.RoleInfo}
// @Router /role/update [post]
func (c *RoleController) Update(ctx *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	role, err := c.roleService.UpdateRole(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, role, "更新成功")
}

// Delete 删除角色
// @Summary 删除角色（支持批量）
// @Tags Role
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IDsRequest true "角色 ID 列表"
// @Success 200 {object} resp.Body
// @Router /role/delete [post]
func (c *RoleController) Delete(ctx *gin.Context) {
	var req dto.IDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	if err := c.roleService.DeleteRoles(ctx.Request.Context(), req.IDs); err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, nil, "删除成功")
}

// Info 查询单个角色
// @Summary 查询单个角色（含授权菜单）
// @Tags Role
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IDRequest true "角色 ID"
// @Success 200 {object} resp.Body{data=dto.RoleInfo}
// @Router /role/info [post]
func (c *RoleController) Info(ctx *gin.Context) {
	var req dto.IDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	role, err := c.roleService.GetRole(ctx.Request.Context(), req.ID)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, role)
}

// List 角色列表
// @Summary 角色列表
// @Tags Role
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RoleListRequest false "筛选条件"
// @Success 200 {object} resp.Body
// @Router /role/list [post]
func (c *RoleController) List(ctx *gin.Context) {
	var req dto.RoleListRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			resp.Fail(ctx, "参数错误: "+err.Error())
			return
		}
	}

	roles, err := c.roleService.ListRoles(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, roles)
}

// Page 角色分页
// @Summary 角色分页
// @Tags Role
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RolePageRequest true "分页参数"
// @Success 200 {object} resp.Body{data=dto.PageResult}
// @Router /role/page [post]
func (c *RoleController) Page(ctx *gin.Context) {
	var req dto.RolePageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	result, err := c.roleService.PageRoles(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, result)
}
