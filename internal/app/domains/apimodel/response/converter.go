package response

import (
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/entity/etpredict"
)

// FromPriceResult 从领域对象转换为响应 DTO
func FromPriceResult(result *etpredict.PriceResult) *PriceResponse {
	return &PriceResponse{
		PredictedPrice: result.PredictedPrice,
		Confidence:     result.Confidence,
		Unit:           result.Unit,
	}
}

// FromProfitResult 从领域对象转换为响应 DTO
func FromProfitResult(result *etpredict.ProfitResult) *ProfitResponse {
	return &ProfitResponse{
		IsProfitable:   result.IsProfitable,
		Probability:    result.Probability,
		Recommendation: result.Recommendation,
	}
}

// FromDurationResult 从领域对象转换为响应 DTO
func FromDurationResult(result *etpredict.DurationResult) *DurationResponse {
	return &DurationResponse{
		PredictedDuration: result.PredictedDays,
		Unit:              result.Unit,
		EstimatedMonths:   result.EstimatedMonths,
	}
}

// FromBatchResults 从领域对象转换为响应 DTO。
// 内部三态（成功/模型未加载/推理失败）在这里坍缩为对外的「有值/null」。
func FromBatchResults(results []etpredict.BatchResult) *BatchResponse {
	items := make([]BatchResultResponse, 0, len(results))
	for _, r := range results {
		item := BatchResultResponse{CustomerID: r.CustomerID}
		if r.Price.Status == etpredict.OutcomeOK {
			value := r.Price.Value
			item.Predictions.Price = &value
		}
		if r.Profit.Status == etpredict.OutcomeOK {
			profitable := r.Profit.Profitable
			item.Predictions.Profitable = &profitable
		}
		items = append(items, item)
	}
	return &BatchResponse{Results: items}
}
