package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/middleware"
	"admin_scaffold_v1_202608/internal/service"
	"admin_scaffold_v1_202608/pkg/resp"
)

// ==================== AuthController 认证控制器 ====================

// 验证码/登录接口的冷却间隔
const (
	captchaCooldown = 1 * time.Second
	loginCooldown   = 2 * time.Second
)

// AuthController 登录、注册、验证码
type AuthController struct {
	userService    *service.UserService
	captchaService *service.CaptchaService
}

// NewAuthController 创建认证控制器
func NewAuthController(userService *service.UserService, captchaService *service.CaptchaService) *AuthController {
	return &AuthController{
		userService:    userService,
		captchaService: captchaService,
	}
}

// GetCaptchaImage 获取图形验证码
// @Summary 获取图形验证码
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.CaptchaRequest false "会话标识（可选）"
// @Success 200 {object} resp.Body{data=dto.CaptchaResponse}
// @Router /user/getCaptchaImage [post]
func (c *AuthController) GetCaptchaImage(ctx *gin.Context) {
	// body 可以整个不传
	var req dto.CaptchaRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			resp.Fail(ctx, "参数错误: "+err.Error())
			return
		}
	}

	// 同一来源 1 秒一张，防刷
	check := middleware.GetLoginLimiter().Check("captcha:"+ctx.ClientIP(), captchaCooldown)
	if !check.Allowed {
		resp.Fail(ctx, "操作过于频繁，请稍后再试")
		return
	}

	captcha, err := c.captchaService.Generate(req.CaptchaID)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, captcha)
}

// Login 用户登录
// @Summary 用户登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} resp.Body{data=dto.LoginResponse}
// @Router /user/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	check := middleware.GetLoginLimiter().Check("login:"+ctx.ClientIP(), loginCooldown)
	if !check.Allowed {
		resp.Fail(ctx, "操作过于频繁，请稍后再试")
		return
	}

	result, err := c.userService.Login(ctx.Request.Context(), &req, ctx.ClientIP())
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}

	middleware.GetLoginLimiter().Reset("login:" + ctx.ClientIP())
	resp.OkMsg(ctx, result, "登录成功")
}

// Register 用户注册
// @Summary 用户注册
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 200 {object} resp.Body{data=dto.UserInfo}
// @Router /user/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	user, err := c.userService.Register(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, user, "注册成功")
}

// RefreshToken 刷新 Token
// @Summary 刷新 Token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token"
// @Success 200 {object} resp.Body{data=dto.RefreshTokenResponse}
// @Router /auth/refreshToken [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	result, err := c.userService.RefreshToken(ctx.Request.Context(), &req)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, result)
}

// Profile 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resp.Body{data=dto.UserInfo}
// @Router /auth/profile [post]
func (c *AuthController) Profile(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	user, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.Ok(ctx, user)
}

// ChangePassword 修改自己的密码
// @Summary 修改密码
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "密码信息"
// @Success 200 {object} resp.Body
// @Router /auth/changePassword [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.Fail(ctx, "参数错误: "+err.Error())
		return
	}

	userID := middleware.GetUserID(ctx)
	if err := c.userService.ChangePassword(ctx.Request.Context(), userID, &req); err != nil {
		resp.FailErr(ctx, err)
		return
	}
	resp.OkMsg(ctx, nil, "密码修改成功")
}
