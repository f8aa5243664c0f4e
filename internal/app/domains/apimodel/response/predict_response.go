package response

// 响应字段名是与看板端的兼容性契约，必须与现有消费者保持一致

// PriceResponse 价格预测响应（DTO）
type PriceResponse struct {
	PredictedPrice float64 `json:"predicted_price"`
	Confidence     string  `json:"confidence"`
	Unit           string  `json:"unit"`
}

// ProfitResponse 盈亏分类响应（DTO）
type ProfitResponse struct {
	IsProfitable   bool    `json:"is_profitable"`
	Probability    float64 `json:"probability"`
	Recommendation string  `json:"recommendation"`
}

// DurationResponse 仓储时长预测响应（DTO）
type DurationResponse struct {
	PredictedDuration float64 `json:"predicted_duration"`
	Unit              string  `json:"unit"`
	EstimatedMonths   float64 `json:"estimated_months"`
}

// BatchResponse 批量预测响应（DTO），results 与输入同序同长
type BatchResponse struct {
	Results []BatchResultResponse `json:"results"`
}

// BatchResultResponse 批量中单条记录的响应
type BatchResultResponse struct {
	CustomerID  interface{}      `json:"customerId"`
	Predictions BatchPredictions `json:"predictions"`
}

// BatchPredictions 单条记录各任务的预测值。
// 模型未加载和推理失败对外统一表现为 null。
type BatchPredictions struct {
	Price      *float64 `json:"price"`
	Profitable *bool    `json:"profitable"`
}

// HealthResponse 健康检查响应（DTO）
type HealthResponse struct {
	Status       string       `json:"status"`
	ModelsLoaded ModelsLoaded `json:"models_loaded"`
}

// ModelsLoaded 各模型的加载状态
type ModelsLoaded struct {
	PricePrediction      bool `json:"price_prediction"`
	ProfitClassification bool `json:"profit_classification"`
	DurationPrediction   bool `json:"duration_prediction"`
}
