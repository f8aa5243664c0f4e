package predict

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/apimodel/request"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/apimodel/response"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/errorx"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/ginx"
)

// Profit 盈亏分类接口
// POST /predict/profit
func (h *PredictHandler) Profit(c *gin.Context) {
	var req request.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	result, err := h.predictService.PredictProfit(c.Request.Context(), req.ToRecord())
	if err != nil {
		if errors.Is(err, errorx.ErrModelUnavailable) {
			ginx.Unavailable(c, "Profit classification model not loaded")
			return
		}
		h.log.Errorf(c.Request.Context(), "profit prediction failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromProfitResult(result))
}
