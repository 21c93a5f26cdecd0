package dto

// ==================== 通用请求/响应 ====================

// IDRequest 按 ID 查询
type IDRequest struct {
	ID int64 `json:"id" binding:"required,min=1"`
}

// IDsRequest 按 ID 批量删除，单个删除传一个元素即可
type IDsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,dive,min=1"`
}

// PageQuery 分页参数
type PageQuery struct {
	Page     int `json:"page" binding:"omitempty,min=1"`
	PageSize int `json:"pageSize" binding:"omitempty,min=1,max=200"`
}

// Normalize 补默认值
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}
}

// PageResult 分页响应：记录 + 未分页总数 + 回显分页参数
type PageResult struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}
