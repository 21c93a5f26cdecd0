package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"admin_scaffold_v1_202608/internal/api/dto"
	"admin_scaffold_v1_202608/internal/middleware"
	"admin_scaffold_v1_202608/internal/model"
	"admin_scaffold_v1_202608/internal/repository"
)

// ==================== UserService 用户服务 ====================

// UserService 用户服务
type UserService struct {
	userRepo   repository.UserRepository
	captchaSvc *CaptchaService
	loginLog   *LoginLogService // 可为 nil（测试或未启用日志时）
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, captchaSvc *CaptchaService, loginLog *LoginLogService) *UserService {
	return &UserService{
		userRepo:   userRepo,
		captchaSvc: captchaSvc,
		loginLog:   loginLog,
	}
}

// ==================== 认证相关 ====================

// Login 用户登录：验证码 -> 用户查找 -> 密码比对 -> 签发 Token 对
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest, clientIP string) (*dto.LoginResponse, error) {
	// 先消费验证码，对错都只认一次
	if err := s.captchaSvc.Verify(req.CaptchaID, req.CaptchaValue); err != nil {
		s.recordLogin(ctx, req.Username, clientIP, model.LoginStatusFail, err.Error())
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// 不区分用户不存在和密码错误，避免枚举用户名
		s.recordLogin(ctx, req.Username, clientIP, model.LoginStatusFail, ErrInvalidCredentials.Error())
		return nil, ErrInvalidCredentials
	}

	if user.Status != model.UserStatusActive {
		s.recordLogin(ctx, req.Username, clientIP, model.LoginStatusFail, ErrUserDisabled.Error())
		return nil, ErrUserDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.recordLogin(ctx, req.Username, clientIP, model.LoginStatusFail, ErrInvalidCredentials.Error())
		return nil, ErrInvalidCredentials
	}

	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.Username, user.RoleIDs)
	if err != nil {
		return nil, err
	}

	s.recordLogin(ctx, req.Username, clientIP, model.LoginStatusSuccess, "登录成功")

	cfg := middleware.GetJWTConfig()
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(cfg.AccessTokenTTL),
		User:         s.toUserInfo(user),
	}, nil
}

// Register 自助注册：验证码 -> 走统一创建（默认角色、默认启用）
func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserInfo, error) {
	if err := s.captchaSvc.Verify(req.CaptchaID, req.CaptchaValue); err != nil {
		return nil, err
	}

	return s.CreateUser(ctx, &dto.CreateUserRequest{
		Username: req.Username,
		Password: req.Password,
		RealName: req.RealName,
		NickName: req.NickName,
	})
}

// RefreshToken 刷新 Token
func (s *UserService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	claims, err := middleware.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.Subject != "refresh" {
		return nil, ErrInvalidToken
	}

	// 确认用户仍然有效
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != model.UserStatusActive {
		return nil, ErrUserDisabled
	}

	accessToken, refreshToken, err := middleware.GenerateTokenPair(user.ID, user.Username, user.RoleIDs)
	if err != nil {
		return nil, err
	}

	cfg := middleware.GetJWTConfig()
	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(cfg.AccessTokenTTL),
	}, nil
}

// ChangePassword 修改自己的密码
func (s *UserService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return ErrInvalidOldPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword))
}

// GetProfile 获取当前用户信息
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.toUserInfo(user), nil
}

// ==================== 用户管理 ====================

// CreateUser 创建用户：用户名查重 + 明文密码哈希后落库
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserInfo, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.SysUser{
		Username: req.Username,
		Password: string(hashedPassword),
		RealName: req.RealName,
		NickName: req.NickName,
		HeadImg:  req.HeadImg,
		Remark:   req.Remark,
		RoleIDs:  req.RoleIDs,
		Status:   model.UserStatusActive,
	}
	if req.Status != nil {
		user.Status = *req.Status
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.toUserInfo(user), nil
}

// UpdateUser 更新用户；带新明文密码时重新哈希
func (s *UserService) UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	values := map[string]interface{}{}
	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		values["password"] = string(hashedPassword)
	}
	if req.RealName != "" {
		values["real_name"] = req.RealName
	}
	if req.NickName != "" {
		values["nick_name"] = req.NickName
	}
	if req.HeadImg != "" {
		values["head_img"] = req.HeadImg
	}
	if req.Remark != "" {
		values["remark"] = req.Remark
	}
	if req.RoleIDs != "" {
		values["role_ids"] = req.RoleIDs
	}
	if req.Status != nil {
		values["status"] = *req.Status
	}

	if len(values) > 0 {
		if err := s.userRepo.Updates(ctx, req.ID, values); err != nil {
			return nil, err
		}
	}

	updated, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return s.toUserInfo(updated), nil
}

// DeleteUsers 删除一个或多个用户
func (s *UserService) DeleteUsers(ctx context.Context, ids []int64) error {
	return s.userRepo.Delete(ctx, ids...)
}

// GetUser 查询单个用户，未找到返回 ErrUserNotFound
func (s *UserService) GetUser(ctx context.Context, req *dto.UserInfoRequest) (*dto.UserInfo, error) {
	conds := map[string]interface{}{}
	if req.ID > 0 {
		conds["id"] = req.ID
	}
	if req.Username != "" {
		conds["username"] = req.Username
	}
	if len(conds) == 0 {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.Info(ctx, conds)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.toUserInfo(user), nil
}

// ListUsers 用户列表
func (s *UserService) ListUsers(ctx context.Context, req *dto.UserListRequest) ([]*dto.UserInfo, error) {
	users, _, err := s.userRepo.Search(ctx, repository.UserFilter{
		Keyword:  req.Keyword,
		Status:   req.Status,
		Page:     1,
		PageSize: 1000,
	})
	if err != nil {
		return nil, err
	}
	return s.toUserInfos(users), nil
}

// PageUsers 用户分页
func (s *UserService) PageUsers(ctx context.Context, req *dto.UserPageRequest) (*dto.PageResult, error) {
	req.Normalize()

	users, total, err := s.userRepo.Search(ctx, repository.UserFilter{
		Keyword:  req.Keyword,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return &dto.PageResult{
		List:     s.toUserInfos(users),
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// ==================== 辅助方法 ====================

// recordLogin 登录日志尽力而为，失败不影响主流程
func (s *UserService) recordLogin(ctx context.Context, username, ip string, status int, message string) {
	if s.loginLog == nil {
		return
	}
	s.loginLog.Record(ctx, username, ip, status, message)
}

func (s *UserService) toUserInfo(user *model.SysUser) *dto.UserInfo {
	return &dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		RealName:  user.RealName,
		NickName:  user.NickName,
		HeadImg:   user.HeadImg,
		Remark:    user.Remark,
		RoleIDs:   user.RoleIDs,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (s *UserService) toUserInfos(users []model.SysUser) []*dto.UserInfo {
	list := make([]*dto.UserInfo, len(users))
	for i, u := range users {
		list[i] = s.toUserInfo(&u)
	}
	return list
}

// ==================== 错误定义 ====================

var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUserDisabled       = errors.New("用户已禁用")
	ErrInvalidToken       = errors.New("Token 无效")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrInvalidOldPassword = errors.New("旧密码错误")
	ErrUserExists         = errors.New("用户已存在")
)
