package controller

import (
	"github.com/gin-gonic/gin"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/service"
	"admin_scaffold_v1_202608/pkg/resp"
)

// ==================== UserController 用户管理控制器 ====================

// UserController 用户管理
type UserController struct {
	userService *service.UserService
}

// NewUserController 创建用户控制器
func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Add 新增用户
// @Summary 新增用户
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "用户信息"
// @Success 200 {object} resp.Body{data=dto.UserInfo}
// @Router /user/add [post]
func (c *UserController) Add(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, user, "创建成功")
}

// Update 更新用户
// @Summary 更新用户
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateUserRequest true "用户信息"
// @Success 200 {object} resp.Body{data=dto.UserInfo}
// @Router /user/update [post]
func (c *UserController) Update(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, user, "更新成功")
}

// Delete 删除用户
// @Summary 删除用户（支持批量）
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IDsRequest true "用户 ID 列表"
// @Success 200 {object} resp.Body
// @Router /user/delete [post]
func (c *UserController) Delete(ctx *gin.Context) {
	var req dto.IDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	if err := c.userService.DeleteUsers(ctx.Request.Context(), req.IDs); err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, nil, "删除成功")
}

// Info 查询单个用户
// @Summary 查询单个用户
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UserInfoRequest true "查询条件"
// @Success 200 {object} resp.Body{data=dto.UserInfo}
// @Router /user/info [post]
func (c *UserController) Info(ctx *gin.Context) {
	var req dto.UserInfoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, user)
}

// List 用户列表
// @Summary 用户列表
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UserListRequest false "筛选条件"
// @Success 200 {object} resp.Body{data=[]dto.UserInfo}
// @Router /user/list [post]
func (c *UserController) List(ctx *gin.Context) {
	var req dto.UserListRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			resp.Fail(ctx, "参数错误: "+err.Error())
			return
		}
	}

	users, err := c.userService.ListUsers(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, users)
}

// Page 用户分页
// @Summary 用户分页
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UserPageRequest true "分页参数"
// @Success 200 {object} resp.Body{data=dto.PageResult}
// @Router /user/page [post]
func (c *UserController) Page(ctx *gin.Context) {
	var req dto.UserPageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	result, err := c.userService.PageUsers(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, result)
}
