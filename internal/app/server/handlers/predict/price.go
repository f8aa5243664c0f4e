package predict

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/apimodel/request"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/apimodel/response"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/errorx"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/ginx"
)

// Price 价格预测接口
// POST /predict/price
// 字段缺失或类型错误不拒绝请求，归一化时补默认值
func (h *PredictHandler) Price(c *gin.Context) {
	var req request.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 请求体不是合法 JSON 才会走到这里，按协议返回通用错误
		ginx.InternalError(c, err.Error())
		return
	}

	result, err := h.predictService.PredictPrice(c.Request.Context(), req.ToRecord())
	if err != nil {
		if errors.Is(err, errorx.ErrModelUnavailable) {
			ginx.Unavailable(c, "Price prediction model not loaded")
			return
		}
		h.log.Errorf(c.Request.Context(), "price prediction failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromPriceResult(result))
}
