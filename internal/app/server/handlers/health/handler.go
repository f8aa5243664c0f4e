package health

import (
	"github.com/gin-gonic/gin"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/apimodel/response"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etfeature"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/services/svpredict"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/ginx"
)

// HealthHandler 健康检查 HTTP 处理器
type HealthHandler struct {
	registry svpredict.ModelRegistry
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(registry svpredict.ModelRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Check 健康检查接口
// GET /health
// 模型缺失不算不健康：任务可用性由 models_loaded 逐项上报
func (h *HealthHandler) Check(c *gin.Context) {
	ginx.Success(c, response.HealthResponse{
		Status: "healthy",
		ModelsLoaded: response.ModelsLoaded{
			PricePrediction:      h.registry.Loaded(etfeature.TaskPrice),
			ProfitClassification: h.registry.Loaded(etfeature.TaskProfit),
			DurationPrediction:   h.registry.Loaded(etfeature.TaskDuration),
		},
	})
}
