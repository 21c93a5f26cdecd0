package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"admin_scaffold_v1_202608/internal/config"
	"admin_scaffold_v1_202608/internal/controller"
	"admin_scaffold_v1_202608/internal/middleware"
	"admin_scaffold_v1_202608/internal/model"
	"admin_scaffold_v1_202608/internal/repository"
	"admin_scaffold_v1_202608/internal/router"
	"admin_scaffold_v1_202608/internal/service"
	"admin_scaffold_v1_202608/internal/task"
	"admin_scaffold_v1_202608/pkg/cache"
	"admin_scaffold_v1_202608/pkg/database"
	"admin_scaffold_v1_202608/pkg/logger"
)

// @title Admin Scaffold API
// @version 1.0
// @description 后台管理脚手架：用户 / 角色 / 菜单权限 / 登录认证
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. 配置
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	// 2. 日志
	l, err := logger.Init(cfg.Server.Debug)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. JWT 配置
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       cfg.JWT.SecretKey,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
		Issuer:          cfg.JWT.Issuer,
	})

	// 4. 数据库
	db := initDatabase(cfg, l)
	middleware.RegisterAuditCallbacks(db)

	// 5. 依赖装配
	deps := initDependencies(cfg, db)

	// 6. 定时任务
	cleanup := initTasks(cfg, db, deps)
	if cleanup != nil {
		defer cleanup.Stop()
	}

	// 7. 路由 + 启动
	r := router.SetupRouter(deps.Controllers)
	startServer(cfg, r, l)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User     repository.UserRepository
	Role     repository.RoleRepository
	Menu     repository.MenuRepository
	LoginLog repository.LoginLogRepository
}

// Services 服务集合
type Services struct {
	Captcha  *service.CaptchaService
	LoginLog *service.LoginLogService
	User     *service.UserService
	Role     *service.RoleService
	Menu     *service.MenuService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库并迁移系统表
func initDatabase(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.InitDB(
		cfg.Database.DSN,
		cfg.Server.Debug,
		&model.SysUser{},
		&model.SysRole{},
		&model.SysMenu{},
		&model.SysLoginLog{},
	)
	if err != nil {
		l.Fatal("数据库初始化失败", zap.Error(err))
	}

	if err := seedData(db); err != nil {
		l.Fatal("初始数据写入失败", zap.Error(err))
	}
	return db
}

// seedData 空库时写入初始管理员，密码首次登录后应立即修改
func seedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.SysUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&model.SysUser{
		Username: "admin",
		Password: string(hashed),
		RealName: "系统管理员",
		NickName: "admin",
		Status:   model.UserStatusActive,
	}).Error
}

// initCaptchaStore 选择验证码存储：配了 Redis 走 Redis，否则进程内兜底
func initCaptchaStore(cfg *config.Config) cache.Store {
	if cfg.Redis.Addr == "" {
		logger.L().Warn("未配置 Redis，验证码使用进程内存储")
		return cache.NewMemoryStore(cfg.Captcha.Expires)
	}

	client, err := cache.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.L().Fatal("Redis 连接失败", zap.Error(err))
	}
	return cache.NewRedisStore(client, cfg.Captcha.Expires)
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		User:     repository.NewUserRepository(db),
		Role:     repository.NewRoleRepository(db),
		Menu:     repository.NewMenuRepository(db),
		LoginLog: repository.NewLoginLogRepository(db),
	}

	// -------- Service 层 --------
	captchaSvc := service.NewCaptchaService(&service.CaptchaConfig{
		Width:  cfg.Captcha.Width,
		Height: cfg.Captcha.Height,
		Length: cfg.Captcha.Length,
	}, initCaptchaStore(cfg))

	loginLogSvc := service.NewLoginLogService(repos.LoginLog)

	services := &Services{
		Captcha:  captchaSvc,
		LoginLog: loginLogSvc,
		User:     service.NewUserService(repos.User, captchaSvc, loginLogSvc),
		Role:     service.NewRoleService(repos.Role, repos.Menu),
		Menu:     service.NewMenuService(repos.Menu),
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:     controller.NewAuthController(services.User, services.Captcha),
		User:     controller.NewUserController(services.User),
		Role:     controller.NewRoleController(services.Role),
		Menu:     controller.NewMenuController(services.Menu),
		LoginLog: controller.NewLoginLogController(services.LoginLog),
	}

	return &Dependencies{
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initTasks 初始化定时任务
func initTasks(cfg *config.Config, db *gorm.DB, deps *Dependencies) *task.CleanupTask {
	if !cfg.Task.CleanupEnabled {
		return nil
	}

	cleanup := task.NewCleanupTask(db, deps.Repos.LoginLog, cfg.Task.LogRetainDays)
	if err := cleanup.Start(); err != nil {
		logger.L().Warn("清理任务启动失败", zap.Error(err))
		return nil
	}
	return cleanup
}

// ==================== 服务启动 ====================

// startServer 启动 HTTP 服务并优雅关闭
func startServer(cfg *config.Config, r *gin.Engine, l *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		l.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		l.Fatal("服务强制关闭", zap.Error(err))
	}

	l.Info("服务已退出")
}
