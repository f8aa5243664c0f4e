// Package etpredict 预测结果领域对象。
// 结果按请求新建，不缓存、不落库。
package etpredict

// 结果里的固定文案与单位。confidence 档位是启发式占位逻辑，
// 不是校准过的统计量（待定：是否换成模型输出的校准置信度）。
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"

	UnitPricePerKg = "INR per kg"
	UnitDays       = "days"

	RecommendationHold = "Good position - continue storage"
	RecommendationSell = "Consider selling soon to minimize losses"
)

// PriceResult 价格预测结果
type PriceResult struct {
	PredictedPrice float64
	Confidence     string
	Unit           string
}

// ProfitResult 盈亏分类结果
type ProfitResult struct {
	IsProfitable   bool
	Probability    float64
	Recommendation string
}

// DurationResult 仓储时长预测结果
type DurationResult struct {
	PredictedDays   float64
	Unit            string
	EstimatedMonths float64
}

// OutcomeStatus 批量预测中单条记录单个任务的内部状态。
// 对外协议只区分「有值/null」，内部保留三态便于排查：
// 模型未加载和推理失败是不同的故障。
type OutcomeStatus int

const (
	OutcomeOK OutcomeStatus = iota
	OutcomeUnavailable
	OutcomeFailed
)

// PriceOutcome 批量中单条记录的价格任务结果
type PriceOutcome struct {
	Status OutcomeStatus
	Value  float64
	Err    string // Status == OutcomeFailed 时的失败原因，仅用于日志
}

// ProfitOutcome 批量中单条记录的盈亏任务结果
type ProfitOutcome struct {
	Status     OutcomeStatus
	Profitable bool
	Err        string
}

// BatchResult 批量预测中单条记录的结果，与输入同序同长
type BatchResult struct {
	CustomerID interface{}
	Price      PriceOutcome
	Profit     ProfitOutcome
}
