package dto

import "time"

// ==================== 验证码 ====================

// CaptchaRequest 获取图形验证码请求
// captchaId 可由客户端自带（会话标识），为空则服务端生成
type CaptchaRequest struct {
	CaptchaID string `json:"captchaId" binding:"omitempty,max=64"`
}

// CaptchaResponse 图形验证码响应，image 为 base64 data URI
type CaptchaResponse struct {
	CaptchaID string `json:"captchaId"`
	Image     string `json:"image"`
}

// ==================== 登录 / 注册 ====================

// LoginRequest 登录请求
type LoginRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=50"`
	Password     string `json:"password" binding:"required,min=3,max=100"`
	CaptchaID    string `json:"captchaId" binding:"required"`
	CaptchaValue string `json:"captchaValue" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
	User         *UserInfo `json:"user"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=50"`
	Password     string `json:"password" binding:"required,min=6,max=100"`
	RealName     string `json:"realName" binding:"omitempty,max=50"`
	NickName     string `json:"nickName" binding:"omitempty,max=50"`
	CaptchaID    string `json:"captchaId" binding:"required"`
	CaptchaValue string `json:"captchaValue" binding:"required"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse 刷新 Token 响应
type RefreshTokenResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ChangePasswordRequest 修改自己密码
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required,min=6"`
	NewPassword string `json:"newPassword" binding:"required,min=6,max=100"`
}

// ==================== 用户管理 ====================

// CreateUserRequest 新增用户
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=100"`
	RealName string `json:"realName" binding:"omitempty,max=50"`
	NickName string `json:"nickName" binding:"omitempty,max=50"`
	HeadImg  string `json:"headImg" binding:"omitempty,max=255"`
	Remark   string `json:"remark" binding:"omitempty,max=255"`
	RoleIDs  string `json:"roleId" binding:"omitempty,max=255"`
	Status   *int   `json:"status" binding:"omitempty,oneof=0 1"`
}

// UpdateUserRequest 更新用户，零值字段不更新；password 非空则重新哈希
type UpdateUserRequest struct {
	ID       int64  `json:"id" binding:"required,min=1"`
	Password string `json:"password" binding:"omitempty,min=6,max=100"`
	RealName string `json:"realName" binding:"omitempty,max=50"`
	NickName string `json:"nickName" binding:"omitempty,max=50"`
	HeadImg  string `json:"headImg" binding:"omitempty,max=255"`
	Remark   string `json:"remark" binding:"omitempty,max=255"`
	RoleIDs  string `json:"roleId" binding:"omitempty,max=255"`
	Status   *int   `json:"status" binding:"omitempty,oneof=0 1"`
}

// UserInfoRequest 查询单个用户，id / username 至少传一个
type UserInfoRequest struct {
	ID       int64  `json:"id" binding:"omitempty,min=1"`
	Username string `json:"username" binding:"omitempty,max=50"`
}

// UserListRequest 用户列表筛选
type UserListRequest struct {
	Keyword string `json:"keyword" binding:"omitempty,max=50"`
	Status  *int   `json:"status" binding:"omitempty,oneof=0 1"`
}

// UserPageRequest 用户分页
type UserPageRequest struct {
	PageQuery
	Keyword string `json:"keyword" binding:"omitempty,max=50"`
	Status  *int   `json:"status" binding:"omitempty,oneof=0 1"`
}

// UserInfo 用户信息（不含密码哈希）
type UserInfo struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	RealName  string    `json:"realName"`
	NickName  string    `json:"nickName"`
	HeadImg   string    `json:"headImg"`
	Remark    string    `json:"remark"`
	RoleIDs   string    `json:"roleId"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"createTime"`
	UpdatedAt time.Time `json:"updateTime"`
}
