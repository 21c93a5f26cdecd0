package controller

import (
	"github.com/gin-gonic/gin"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/service"
	"admin_scaffold_v1_202608/pkg/resp"
)

// ==================== MenuController 菜单管理控制器 ====================

// MenuController 菜单（权限节点）管理
type MenuController struct {
	menuService *service.MenuService
}

// NewMenuController 创建菜单控制器
func NewMenuController(menuService *service.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

// Add 新增菜单
// @Summary 新增菜单
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMenuRequest true "菜单信息"
// @Success 200 {object} resp.Body{data=model.SysMenu}
// @Router /menu/add [post]
func (c *MenuController) Add(ctx *gin.Context) {
	var req dto.CreateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	menu, err := c.menuService.CreateMenu(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, menu, "创建成功")
}

// Update 更新菜单
// @Summary 更新菜单
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateMenuRequest true "菜单信息"
// @Success 200 {object} resp.Body{data=model.SysMenu}
// @Router /menu/update [post]
func (c *MenuController) Update(ctx *gin.Context) {
	var req dto.UpdateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	menu, err := c.menuService.UpdateMenu(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, menu, "更新成功")
}

// Delete 删除菜单
// @Summary 删除菜单（支持批量，有子节点的拒绝）
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IDsRequest true "菜单 ID 列表"
// @Success 200 {object} resp.Body
// @Router /menu/delete [post]
func (c *MenuController) Delete(ctx *gin.Context) {
	var req dto.IDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	if err := c.menuService.DeleteMenus(ctx.Request.Context(), req.IDs); err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, nil, "删除成功")
}

// Info 查询单个菜单
// @Summary 查询单个菜单
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IDRequest true "菜单 ID"
// @Success 200 {object} resp.Body{data=model.SysMenu}
// @Router /menu/info [post]
func (c *MenuController) Info(ctx *gin.Context) {
	var req dto.IDRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	menu, err := c.menuService.GetMenu(ctx.Request.Context(), req.ID)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, menu)
}

// List 菜单平铺列表
// @Summary 菜单列表
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MenuListRequest false "筛选条件"
// @Success 200 {object} resp.Body
// @Router /menu/list [post]
func (c *MenuController) List(ctx *gin.Context) {
	var req dto.MenuListRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			resp.Fail(ctx, "参数错误: "+err.Error())
			return
		}
	}

	menus, err := c.menuService.ListMenus(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, menus)
}

// Page 菜单分页
// @Summary 菜单分页
// @Tags Menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MenuPageRequest true "分页参数"
// @Success 200 {object} resp.Body{data=dto.PageResult}
// @Router /menu/page [post]
func (c *MenuController) Page(ctx *gin.Context) {
	var req dto.MenuPageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	result, err := c.menuService.PageMenus(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, result)
}

// Tree 菜单树
// @Summary 全量菜单树
// @Tags Menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resp.Body
// @Router /menu/tree [post]
func (c *MenuController) Tree(ctx *gin.Context) {
	tree, err := c.menuService.TreeMenus(ctx.Request.Context())
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, tree)
}
