package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ==================== 统一响应封装 ====================

// 所有接口共用一种返回壳子，避免各 handler 自拼 JSON 导致格式漂移。

// 固定业务码
const (
	CodeSuccess = 200 // 成功
	CodeError   = 900 // 通用业务错误
)

// Body 响应体 { code, data, message }
type Body struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// Ok 成功返回
func Ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{
		Code:    CodeSuccess,
		Data:    data,
		Message: "success",
	})
}

// OkMsg 成功返回，带提示语
func OkMsg(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Body{
		Code:    CodeSuccess,
		Data:    data,
		Message: message,
	})
}

// Fail 业务错误返回，HTTP 状态保持 200，业务码标记失败
func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Body{
		Code:    CodeError,
		Data:    nil,
		Message: message,
	})
}

// FailErr 业务错误返回（error 版）
func FailErr(c *gin.Context, err error) {
	Fail(c, err.Error())
}
