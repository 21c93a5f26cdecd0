package dto

// ==================== 登录日志 ====================

// LoginLogListRequest 登录日志列表筛选
type LoginLogListRequest struct {
	Username string `json:"username" binding:"omitempty,max=50"`
	Status   *int   `json:"status" binding:"omitempty,oneof=0 1"`
}

// LoginLogPageRequest 登录日志分页
type LoginLogPageRequest struct {
	PageQuery
	Username string `json:"username" binding:"omitempty,max=50"`
	Status   *int   `json:"status" binding:"omitempty,oneof=0 1"`
}
