package controller

import (
	"github.com/gin-gonic/gin"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/service"
	"admin_scaffold_v1_202608/pkg/resp"
)

// ==================== LoginLogController 登录日志控制器 ====================

// LoginLogController 登录日志查询
type LoginLogController struct {
	logService *service.LoginLogService
}

// NewLoginLogController 创建登录日志控制器
func NewLoginLogController(logService *service.LoginLogService) *LoginLogController {
	return &LoginLogController{logService: logService}
}

// List 登录日志列表
// @Summary 登录日志列表
// @Tags Log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LoginLogListRequest false "筛选条件"
// @Success 200 {object} resp.Body
// @Router /log/login/list [post]
func (c *LoginLogController) List(ctx *gin.Context) {
	var req dto.LoginLogListRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			resp.Fail(ctx, "参数错误: "+err.Error())
			return
		}
	}

	logs, err := c.logService.ListLogs(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, logs)
}

// Page 登录日志分页
// @Summary 登录日志分页
// @Tags Log
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LoginLogPageRequest true "分页参数"
// @Success 200 {object} resp.Body{data=dto.PageResult}
// @Router /log/login/page [post]
func (c *LoginLogController) Page(ctx *gin.Context) {
	var req dto.LoginLogPageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	result, err := c.logService.PageLogs(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, result)
}
