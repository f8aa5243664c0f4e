package ginx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 预测服务的对外协议是扁平 JSON：成功时直接返回结果对象，
// 失败时返回 {"error": "..."}。字段名是与看板端的兼容性契约，不能包壳。

// ErrorBody 错误响应体
type ErrorBody struct {
	Error string `json:"error"`
}

// Success 成功响应（200），payload 原样输出
func Success(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, ErrorBody{Error: message})
}

// Unavailable 503 错误（模型未加载）
func Unavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}

// InternalError 500 错误
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
