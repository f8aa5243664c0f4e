package predict

import (
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/services/svpredict"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/logger"
)

// PredictHandler 预测 HTTP 处理器
type PredictHandler struct {
	predictService *svpredict.PredictService
	log            logger.Logger
}

// NewPredictHandler 创建预测处理器实例
func NewPredictHandler(predictService *svpredict.PredictService, log logger.Logger) *PredictHandler {
	return &PredictHandler{
		predictService: predictService,
		log:            log,
	}
}
