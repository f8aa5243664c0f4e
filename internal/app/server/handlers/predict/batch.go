package predict

import (
	"github.com/gin-gonic/gin"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/apimodel/request"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/apimodel/response"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/ginx"
)

// Batch 批量预测接口
// POST /predict/batch
// 单条记录的失败不影响其他记录：批量调用本身在请求体可解析时
// 总是结构化成功，失败任务在对应位置落为 null
func (h *PredictHandler) Batch(c *gin.Context) {
	var req request.BatchPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	results := h.predictService.PredictBatch(c.Request.Context(), req.ToBatchRecords())

	ginx.Success(c, response.FromBatchResults(results))
}
