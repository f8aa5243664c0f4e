package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/logger"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/server/handlers/health"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/server/handlers/predict"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由
// 路径是与现有消费者的兼容性契约，不分版本、不加前缀
func SetupRoutes(
	predictHandler *predict.PredictHandler,
	healthHandler *health.HealthHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Trace())
	r.Use(middlewares.Recovery(log))

	r.GET("/health", healthHandler.Check)

	predictGroup := r.Group("/predict")
	{
		predictGroup.POST("/price", predictHandler.Price)
		predictGroup.POST("/profit", predictHandler.Profit)
		predictGroup.POST("/duration", predictHandler.Duration)
		predictGroup.POST("/batch", predictHandler.Batch)
	}

	return r
}
