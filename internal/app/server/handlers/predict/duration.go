package predict

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/apimodel/request"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/apimodel/response"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/errorx"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/ginx"
)

// Duration 仓储时长预测接口
// POST /predict/duration
func (h *PredictHandler) Duration(c *gin.Context) {
	var req request.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	result, err := h.predictService.PredictDuration(c.Request.Context(), req.ToRecord())
	if err != nil {
		if errors.Is(err, errorx.ErrModelUnavailable) {
			ginx.Unavailable(c, "Duration prediction model not loaded")
			return
		}
		h.log.Errorf(c.Request.Context(), "duration prediction failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromDurationResult(result))
}
