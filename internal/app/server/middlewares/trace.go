package middlewares

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/logger"
)

// Trace 为每个请求生成 trace_id 并注入 Context，日志按此字段串联
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), logger.TraceIDKey, uuid.New().String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
