package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"admin_scaffold_v1_202608/internal/controller"
	"admin_scaffold_v1_202608/internal/middleware"

	_ "admin_scaffold_v1_202608/docs"
)

// Controllers 控制器集合
type Controllers struct {
	Auth     *controller.AuthController
	User     *controller.UserController
	Role     *controller.RoleController
	Menu     *controller.MenuController
	LoginLog *controller.LoginLogController
}

// SetupRouter 组装路由
// 业务接口统一 POST + JSON，登录组不挂 JWT，管理组全部走认证 + 审计
func SetupRouter(c *Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 开放接口：登录 / 注册 / 验证码
	r.POST("/user/login", c.Auth.Login)
	r.POST("/user/register", c.Auth.Register)
	r.POST("/user/getCaptchaImage", c.Auth.GetCaptchaImage)

	// 认证接口
	auth := r.Group("/auth", middleware.JWTAuth(), middleware.AuditContext())
	{
		auth.POST("/profile", c.Auth.Profile)
		auth.POST("/changePassword", c.Auth.ChangePassword)
		auth.POST("/refreshToken", c.Auth.RefreshToken)
	}

	// 管理接口
	authed := r.Group("", middleware.JWTAuth(), middleware.AuditContext())
	{
		user := authed.Group("/user")
		{
			user.POST("/add", c.User.Add)
			user.POST("/update", c.User.Update)
			user.POST("/delete", c.User.Delete)
			user.POST("/info", c.User.Info)
			user.POST("/list", c.User.List)
			user.POST("/page", c.User.Page)
		}

		role := authed.Group("/role")
		{
			role.POST("/add", c.Role.Add)
			role.POST("/update", c.Role.Update)
			role.POST("/delete", c.Role.Delete)
			role.POST("/info", c.Role.Info)
			role.POST("/list", c.Role.List)
			role.POST("/page", c.Role.Page)
		}

		menu := authed.Group("/menu")
		{
			menu.POST("/add", c.Menu.Add)
			menu.POST("/update", c.Menu.Update)
			menu.POST("/delete", c.Menu.Delete)
			menu.POST("/info", c.Menu.Info)
			menu.POST("/list", c.Menu.List)
			menu.POST("/page", c.Menu.Page)
			menu.POST("/tree", c.Menu.Tree)
		}

		log := authed.Group("/log")
		{
			log.POST("/login/list", c.LoginLog.List)
			log.POST("/login/page", c.LoginLog.Page)
		}
	}

	return r
}
